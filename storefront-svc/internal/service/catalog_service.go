package service

import (
	"context"

	"dronemeds/storefront-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type CatalogService struct {
	products     []domain.Product
	recommender  Recommender
	popularity   PopularityStore
	defaultLimit int
}

func NewCatalogService(products []domain.Product, recommender Recommender, popularity PopularityStore, defaultLimit int) *CatalogService {
	return &CatalogService{
		products:     products,
		recommender:  recommender,
		popularity:   popularity,
		defaultLimit: defaultLimit,
	}
}

func (s *CatalogService) List() []domain.Product {
	return s.products
}

// Select returns every catalog row whose name was chosen, in catalog order,
// and their summed price. Unknown names are ignored.
func (s *CatalogService) Select(names []string) ([]domain.Product, decimal.Decimal) {
	chosen := make(map[string]struct{}, len(names))
	for _, n := range names {
		chosen[n] = struct{}{}
	}

	selected := []domain.Product{}
	total := decimal.Zero
	for _, p := range s.products {
		if _, ok := chosen[p.Name]; ok {
			selected = append(selected, p)
			total = total.Add(p.Price)
		}
	}
	return selected, total
}

func (s *CatalogService) Recommend(names []string, limit int) []domain.Product {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	return s.recommender.Recommend(names, limit)
}

func (s *CatalogService) Quote(names []string) domain.Quote {
	selected, total := s.Select(names)
	quote := domain.Quote{
		Selected:        selected,
		Total:           total,
		Recommendations: []domain.Product{},
	}
	if len(selected) > 0 {
		quote.Recommendations = s.Recommend(names, 0)
	}
	return quote
}

// Popular reports dispatch counts recorded by dispatch-svc. Without a
// popularity store it returns an empty list.
func (s *CatalogService) Popular(ctx context.Context, limit int) ([]domain.ProductPopularity, error) {
	if s.popularity == nil {
		return []domain.ProductPopularity{}, nil
	}
	if limit <= 0 {
		limit = 10
	}
	return s.popularity.PopularProducts(ctx, limit)
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
