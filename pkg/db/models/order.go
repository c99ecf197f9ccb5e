package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/pkg/enums"
)

// Order captures a converted cart together with the customer's contact
// details. Line items snapshot catalog names and prices at checkout time so
// later catalog edits never rewrite order history.
type Order struct {
	ID           uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Number       int64             `gorm:"column:number;autoIncrement;uniqueIndex"`
	CustomerName string            `gorm:"column:customer_name;not null"`
	Phone        string            `gorm:"column:phone;not null"`
	Email        *string           `gorm:"column:email"`
	Address      string            `gorm:"column:address;not null"`
	Comment      *string           `gorm:"column:comment"`
	Locale       enums.Locale      `gorm:"column:locale;not null;default:'hy'"`
	Status       enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	SubtotalAMD  int               `gorm:"column:subtotal_amd;not null;default:0"`
	TotalAMD     int               `gorm:"column:total_amd;not null;default:0"`
	CartToken    string            `gorm:"column:cart_token;not null"`
	Items        []OrderLineItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
