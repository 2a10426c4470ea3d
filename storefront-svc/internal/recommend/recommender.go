// Package recommend ranks catalog products by TF-IDF cosine similarity of
// their name and description.
package recommend

import (
	"sort"

	"dronemeds/storefront-svc/internal/domain"
)

const DefaultLimit = 5

type Recommender struct {
	products   []domain.Product
	similarity [][]float64
}

// New vectorizes the catalog and builds the full similarity matrix. The
// result is read-only and safe for concurrent use.
func New(products []domain.Product) *Recommender {
	docs := make([]string, len(products))
	for i, p := range products {
		docs[i] = p.Name + " " + p.Description
	}
	return &Recommender{
		products:   products,
		similarity: cosineMatrix(vectorize(docs)),
	}
}

func (r *Recommender) Similarity() [][]float64 {
	return r.similarity
}

// Recommend averages the similarity rows of every catalog entry named in
// selected and returns the best topN products that were not selected.
// Ties keep catalog order.
func (r *Recommender) Recommend(selected []string, topN int) []domain.Product {
	if topN <= 0 {
		topN = DefaultLimit
	}

	chosen := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		chosen[name] = struct{}{}
	}

	var rows []int
	for i, p := range r.products {
		if _, ok := chosen[p.Name]; ok {
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 {
		return []domain.Product{}
	}

	scores := make([]float64, len(r.products))
	for _, row := range rows {
		for j, s := range r.similarity[row] {
			scores[j] += s
		}
	}
	for j := range scores {
		scores[j] /= float64(len(rows))
	}

	order := make([]int, len(r.products))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	result := make([]domain.Product, 0, topN)
	for _, idx := range order {
		if _, ok := chosen[r.products[idx].Name]; ok {
			continue
		}
		result = append(result, r.products[idx])
		if len(result) == topN {
			break
		}
	}
	return result
}
