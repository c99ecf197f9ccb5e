package search

import (
	"context"
	"fmt"

	"github.com/chocomarket/chocomarket-backend/pkg/db/models"
)

// Service exposes cross-script catalog search.
type Service interface {
	Search(ctx context.Context, query string, limit int) ([]models.Product, error)
}

type productLister interface {
	ListActive(ctx context.Context, limit int) ([]models.Product, error)
}

type service struct {
	products  productLister
	scanLimit int
}

// NewService constructs a search service. scanLimit caps how many active
// products are pulled into memory per query.
func NewService(products productLister, scanLimit int) (Service, error) {
	if products == nil {
		return nil, fmt.Errorf("product lister required")
	}
	if scanLimit <= 0 {
		scanLimit = 200
	}
	return &service{products: products, scanLimit: scanLimit}, nil
}

// Search returns active products whose names match the query in any script.
// An empty or whitespace query matches nothing.
func (s *service) Search(ctx context.Context, query string, limit int) ([]models.Product, error) {
	if len(Variants(query)) == 0 {
		return nil, nil
	}
	if limit <= 0 || limit > s.scanLimit {
		limit = s.scanLimit
	}

	candidates, err := s.products.ListActive(ctx, s.scanLimit)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}

	matched := make([]models.Product, 0, limit)
	for _, product := range candidates {
		if !Matches(Names{EN: product.NameEN, HY: product.NameHY, RU: product.NameRU}, query) {
			continue
		}
		matched = append(matched, product)
		if len(matched) >= limit {
			break
		}
	}
	return matched, nil
}
