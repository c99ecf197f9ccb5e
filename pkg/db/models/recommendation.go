package models

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation pins a product onto the storefront's ordered recommendation
// strip. Position is a dense 0-based rank maintained by the reorder operation.
type Recommendation struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex"`
	Product   *Product  `gorm:"foreignKey:ProductID"`
	Position  int       `gorm:"column:position;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
