package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/pkg/types"
)

// Brand is a chocolate maker whose products the storefront lists.
type Brand struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug      string    `gorm:"column:slug;not null;uniqueIndex"`
	NameEN    string    `gorm:"column:name_en;not null"`
	NameHY    string    `gorm:"column:name_hy;not null"`
	NameRU    string    `gorm:"column:name_ru;not null"`
	LogoURL   *string   `gorm:"column:logo_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Names bundles the three locale name fields for display resolution.
func (b Brand) Names() types.LocalizedText {
	return types.LocalizedText{EN: b.NameEN, HY: b.NameHY, RU: b.NameRU}
}
