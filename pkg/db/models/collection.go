package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/pkg/types"
)

// Collection groups products into a curated storefront shelf (gift boxes,
// truffles, seasonal picks).
type Collection struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug      string    `gorm:"column:slug;not null;uniqueIndex"`
	NameEN    string    `gorm:"column:name_en;not null"`
	NameHY    string    `gorm:"column:name_hy;not null"`
	NameRU    string    `gorm:"column:name_ru;not null"`
	ImageURL  *string   `gorm:"column:image_url"`
	Products  []Product `gorm:"many2many:collection_products;"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Names bundles the three locale name fields for display resolution.
func (c Collection) Names() types.LocalizedText {
	return types.LocalizedText{EN: c.NameEN, HY: c.NameHY, RU: c.NameRU}
}
