package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/pkg/enums"
)

// OrderLineItem is a priced snapshot of one cart line. Exactly one of the two
// unit shapes is meaningful: piece lines carry Quantity with Grams null,
// weight lines carry Grams with the Quantity sentinel 1.
type OrderLineItem struct {
	ID           uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID      uuid.UUID         `gorm:"column:order_id;type:uuid;not null"`
	ProductID    uuid.UUID         `gorm:"column:product_id;type:uuid;not null"`
	NameEN       string            `gorm:"column:name_en;not null"`
	NameHY       string            `gorm:"column:name_hy;not null"`
	NameRU       string            `gorm:"column:name_ru;not null"`
	Unit         enums.ProductUnit `gorm:"column:unit;not null;default:'pieces'"`
	UnitPriceAMD int               `gorm:"column:unit_price_amd;not null"`
	DiscountAMD  *int              `gorm:"column:discount_amd"`
	Quantity     int               `gorm:"column:quantity;not null"`
	Grams        *int              `gorm:"column:grams"`
	LineTotalAMD int               `gorm:"column:line_total_amd;not null"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
}
