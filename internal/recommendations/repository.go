// Package recommendations manages the admin-curated product shelf shown on
// the storefront landing page, ordered by a dense position index.
package recommendations

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chocomarket/chocomarket-backend/pkg/db/models"
)

// Repository persists the recommendation ordering.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// List returns recommendations in display order.
func (r *Repository) List(ctx context.Context) ([]models.Recommendation, error) {
	var rows []models.Recommendation
	err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error
	return rows, err
}

// Replace swaps the full recommendation set for the provided product ids,
// assigning dense positions in the given order.
func (r *Repository) Replace(ctx context.Context, productIDs []uuid.UUID) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("1 = 1").Delete(&models.Recommendation{}).Error; err != nil {
		return err
	}
	if len(productIDs) == 0 {
		return nil
	}
	rows := make([]models.Recommendation, 0, len(productIDs))
	for i, id := range productIDs {
		rows = append(rows, models.Recommendation{ProductID: id, Position: i})
	}
	return tx.Create(&rows).Error
}
