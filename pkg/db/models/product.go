package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/chocomarket/chocomarket-backend/pkg/enums"
	"github.com/chocomarket/chocomarket-backend/pkg/types"
)

// Product represents a canonical catalog listing. Names and descriptions are
// stored in all three storefront locales; PriceAMD is the undiscounted amount
// in whole drams, per piece for piece-sold items and per 100 grams for
// weight-sold items.
type Product struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SKU           string            `gorm:"column:sku;not null;uniqueIndex"`
	NameEN        string            `gorm:"column:name_en;not null"`
	NameHY        string            `gorm:"column:name_hy;not null"`
	NameRU        string            `gorm:"column:name_ru;not null"`
	DescriptionEN *string           `gorm:"column:description_en"`
	DescriptionHY *string           `gorm:"column:description_hy"`
	DescriptionRU *string           `gorm:"column:description_ru"`
	BrandID       *uuid.UUID        `gorm:"column:brand_id;type:uuid"`
	Brand         *Brand            `gorm:"foreignKey:BrandID"`
	Unit          enums.ProductUnit `gorm:"column:unit;not null;default:'pieces'"`
	PriceAMD      int               `gorm:"column:price_amd;not null"`
	DiscountAMD   *int              `gorm:"column:discount_amd"`
	Weight        *string           `gorm:"column:weight"`
	Status        *string           `gorm:"column:status"`
	ReadyAfter    *string           `gorm:"column:ready_after"`
	Ingredients   pq.StringArray    `gorm:"column:ingredients;type:text[]"`
	ImageURL      *string           `gorm:"column:image_url"`
	IsActive      bool              `gorm:"column:is_active;not null;default:true"`
	IsFeatured    bool              `gorm:"column:is_featured;not null;default:false"`
	Collections   []Collection      `gorm:"many2many:collection_products;"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// Names bundles the three locale name fields for display resolution.
func (p Product) Names() types.LocalizedText {
	return types.LocalizedText{EN: p.NameEN, HY: p.NameHY, RU: p.NameRU}
}
