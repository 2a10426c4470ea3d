package storage

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"dronemeds/storefront-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	colName        = "Name"
	colDescription = "Description"
	colPrice       = "Price (INR)"
)

func LoadCatalog(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ParseCatalog(f)
}

// ParseCatalog reads Name, Description and Price (INR) columns. Other
// columns are ignored; rows whose price does not parse are skipped.
func ParseCatalog(r io.Reader) ([]domain.Product, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("catalog is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	colIndex, err := columnIndex(header, []string{colName, colDescription, colPrice})
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	line := 1
	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logrus.WithError(err).WithField("line", line).Warn("skipping unreadable catalog row")
			continue
		}

		get := func(key string) string {
			if idx := colIndex[key]; idx < len(rec) {
				return strings.TrimSpace(rec[idx])
			}
			return ""
		}

		price, err := decimal.NewFromString(get(colPrice))
		if err != nil {
			logrus.WithField("line", line).Warn("skipping catalog row with invalid price")
			continue
		}

		products = append(products, domain.Product{
			Name:        get(colName),
			Description: get(colDescription),
			Price:       price,
		})
	}
	return products, nil
}

func columnIndex(header, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}
	return index, nil
}

func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		br.Discard(3)
	}
	return br
}
