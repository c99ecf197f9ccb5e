package recommendations

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chocomarket/chocomarket-backend/internal/catalog"
	"github.com/chocomarket/chocomarket-backend/pkg/db"
	pkgerrors "github.com/chocomarket/chocomarket-backend/pkg/errors"
)

// Service exposes the curated recommendation shelf.
type Service interface {
	List(ctx context.Context) ([]catalog.ProductDTO, error)
	Replace(ctx context.Context, productIDs []uuid.UUID) error
}

type productReader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*catalog.ProductDTO, error)
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	products productReader
}

// NewService constructs a recommendations service instance.
func NewService(repo *Repository, dbClient *db.Client, products productReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("recommendations repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if products == nil {
		return nil, fmt.Errorf("product reader required")
	}
	return &service{repo: repo, dbClient: dbClient, products: products}, nil
}

// List resolves the shelf in position order. Entries whose product has been
// deactivated or deleted are skipped, keeping the shelf ordering dense for
// the remaining rows.
func (s *service) List(ctx context.Context) ([]catalog.ProductDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.ProductDTO, 0, len(rows))
	for _, row := range rows {
		dto, err := s.products.GetProduct(ctx, row.ProductID)
		if err != nil {
			if appErr := pkgerrors.As(err); appErr != nil && appErr.Code() == pkgerrors.CodeNotFound {
				continue
			}
			return nil, err
		}
		if !dto.IsActive {
			continue
		}
		out = append(out, *dto)
	}
	return out, nil
}

// Replace swaps the whole shelf atomically. Every referenced product must
// exist; duplicates are rejected so the unique product constraint cannot
// fail mid-write.
func (s *service) Replace(ctx context.Context, productIDs []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(productIDs))
	for _, id := range productIDs {
		if _, dup := seen[id]; dup {
			return pkgerrors.New(pkgerrors.CodeValidation, "duplicate product in recommendations")
		}
		seen[id] = struct{}{}
		if _, err := s.products.GetProduct(ctx, id); err != nil {
			return err
		}
	}
	return s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Replace(ctx, productIDs)
	})
}
