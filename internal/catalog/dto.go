package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/internal/pricing"
	"github.com/chocomarket/chocomarket-backend/pkg/db/models"
	"github.com/chocomarket/chocomarket-backend/pkg/types"
)

// ProductDTO represents the catalog product payload returned to clients.
type ProductDTO struct {
	ID              uuid.UUID            `json:"id"`
	SKU             string               `json:"sku"`
	Name            types.LocalizedText  `json:"name"`
	Description     *types.LocalizedText `json:"description,omitempty"`
	Brand           *BrandDTO            `json:"brand,omitempty"`
	Unit            string               `json:"unit"`
	PriceAMD        int                  `json:"price_amd"`
	DiscountAMD     *int                 `json:"discount_amd,omitempty"`
	EffectiveAMD    int                  `json:"effective_amd"`
	DiscountPercent *int                 `json:"discount_percent,omitempty"`
	Weight          *string              `json:"weight,omitempty"`
	Status          *string              `json:"status,omitempty"`
	ReadyAfter      *string              `json:"ready_after,omitempty"`
	Ingredients     []string             `json:"ingredients,omitempty"`
	ImageURL        *string              `json:"image_url,omitempty"`
	IsActive        bool                 `json:"is_active"`
	IsFeatured      bool                 `json:"is_featured"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// BrandDTO surfaces brand data on catalog payloads.
type BrandDTO struct {
	ID      uuid.UUID           `json:"id"`
	Slug    string              `json:"slug"`
	Name    types.LocalizedText `json:"name"`
	LogoURL *string             `json:"logo_url,omitempty"`
}

// CollectionDTO surfaces one curated shelf, optionally with its products.
type CollectionDTO struct {
	ID       uuid.UUID           `json:"id"`
	Slug     string              `json:"slug"`
	Name     types.LocalizedText `json:"name"`
	ImageURL *string             `json:"image_url,omitempty"`
	Products []ProductDTO        `json:"products,omitempty"`
}

// ProductListResult is one browse page plus the cursor for the next one.
type ProductListResult struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// NewProductDTO builds a DTO from the persisted model, deriving the
// effective price and the display-only discount badge.
func NewProductDTO(product *models.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:           product.ID,
		SKU:          product.SKU,
		Name:         product.Names(),
		Unit:         string(product.Unit),
		PriceAMD:     product.PriceAMD,
		DiscountAMD:  product.DiscountAMD,
		EffectiveAMD: pricing.Effective(product.PriceAMD, product.DiscountAMD),
		Weight:       product.Weight,
		Status:       product.Status,
		ReadyAfter:   product.ReadyAfter,
		Ingredients:  append([]string{}, product.Ingredients...),
		ImageURL:     product.ImageURL,
		IsActive:     product.IsActive,
		IsFeatured:   product.IsFeatured,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
	if pct, ok := pricing.DiscountPercent(product.PriceAMD, product.DiscountAMD); ok {
		dto.DiscountPercent = &pct
	}
	if product.DescriptionEN != nil || product.DescriptionHY != nil || product.DescriptionRU != nil {
		dto.Description = &types.LocalizedText{
			EN: strValue(product.DescriptionEN),
			HY: strValue(product.DescriptionHY),
			RU: strValue(product.DescriptionRU),
		}
	}
	if product.Brand != nil {
		dto.Brand = NewBrandDTO(product.Brand)
	}
	return dto
}

// NewBrandDTO builds a brand payload from the persisted model.
func NewBrandDTO(brand *models.Brand) *BrandDTO {
	return &BrandDTO{
		ID:      brand.ID,
		Slug:    brand.Slug,
		Name:    brand.Names(),
		LogoURL: brand.LogoURL,
	}
}

// NewCollectionDTO builds a collection payload, including product DTOs when
// the association was preloaded.
func NewCollectionDTO(collection *models.Collection) *CollectionDTO {
	dto := &CollectionDTO{
		ID:       collection.ID,
		Slug:     collection.Slug,
		Name:     collection.Names(),
		ImageURL: collection.ImageURL,
	}
	for i := range collection.Products {
		dto.Products = append(dto.Products, *NewProductDTO(&collection.Products[i]))
	}
	return dto
}

func strValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
