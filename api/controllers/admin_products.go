package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/api/responses"
	"github.com/chocomarket/chocomarket-backend/api/validators"
	"github.com/chocomarket/chocomarket-backend/internal/catalog"
	"github.com/chocomarket/chocomarket-backend/pkg/enums"
	pkgerrors "github.com/chocomarket/chocomarket-backend/pkg/errors"
	"github.com/chocomarket/chocomarket-backend/pkg/logger"
)

// CreateProductRequest is the admin payload to create a product.
type CreateProductRequest struct {
	SKU           string   `json:"sku" validate:"required,min=1,max=64"`
	NameEN        string   `json:"name_en" validate:"required,max=300"`
	NameHY        string   `json:"name_hy" validate:"required,max=300"`
	NameRU        string   `json:"name_ru" validate:"required,max=300"`
	DescriptionEN *string  `json:"description_en" validate:"omitempty,max=5000"`
	DescriptionHY *string  `json:"description_hy" validate:"omitempty,max=5000"`
	DescriptionRU *string  `json:"description_ru" validate:"omitempty,max=5000"`
	BrandID       *string  `json:"brand_id" validate:"omitempty,uuid"`
	Unit          string   `json:"unit" validate:"required,oneof=pieces grams"`
	PriceAMD      int      `json:"price_amd" validate:"required,gt=0"`
	DiscountAMD   *int     `json:"discount_amd" validate:"omitempty,gte=0"`
	Weight        *string  `json:"weight" validate:"omitempty,max=32"`
	Status        *string  `json:"status" validate:"omitempty,max=100"`
	ReadyAfter    *string  `json:"ready_after" validate:"omitempty,max=100"`
	Ingredients   []string `json:"ingredients" validate:"omitempty,dive,max=200"`
	ImageURL      *string  `json:"image_url" validate:"omitempty,url"`
	IsActive      *bool    `json:"is_active"`
	IsFeatured    *bool    `json:"is_featured"`
	CollectionIDs []string `json:"collection_ids" validate:"omitempty,dive,uuid"`
}

func (req CreateProductRequest) toInput() catalog.CreateProductInput {
	unit, _ := enums.ParseProductUnit(req.Unit)
	input := catalog.CreateProductInput{
		SKU:           req.SKU,
		NameEN:        req.NameEN,
		NameHY:        req.NameHY,
		NameRU:        req.NameRU,
		DescriptionEN: req.DescriptionEN,
		DescriptionHY: req.DescriptionHY,
		DescriptionRU: req.DescriptionRU,
		Unit:          unit,
		PriceAMD:      req.PriceAMD,
		DiscountAMD:   req.DiscountAMD,
		Weight:        req.Weight,
		Status:        req.Status,
		ReadyAfter:    req.ReadyAfter,
		Ingredients:   req.Ingredients,
		ImageURL:      req.ImageURL,
		IsActive:      true,
		IsFeatured:    false,
	}
	if req.IsActive != nil {
		input.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		input.IsFeatured = *req.IsFeatured
	}
	if req.BrandID != nil {
		id := uuid.MustParse(*req.BrandID)
		input.BrandID = &id
	}
	for _, raw := range req.CollectionIDs {
		input.CollectionIDs = append(input.CollectionIDs, uuid.MustParse(raw))
	}
	return input
}

// UpdateProductRequest is the admin payload for partial product updates.
// Only present fields are applied.
type UpdateProductRequest struct {
	SKU           *string   `json:"sku" validate:"omitempty,min=1,max=64"`
	NameEN        *string   `json:"name_en" validate:"omitempty,max=300"`
	NameHY        *string   `json:"name_hy" validate:"omitempty,max=300"`
	NameRU        *string   `json:"name_ru" validate:"omitempty,max=300"`
	DescriptionEN *string   `json:"description_en" validate:"omitempty,max=5000"`
	DescriptionHY *string   `json:"description_hy" validate:"omitempty,max=5000"`
	DescriptionRU *string   `json:"description_ru" validate:"omitempty,max=5000"`
	BrandID       *string   `json:"brand_id" validate:"omitempty,uuid"`
	Unit          *string   `json:"unit" validate:"omitempty,oneof=pieces grams"`
	PriceAMD      *int      `json:"price_amd" validate:"omitempty,gt=0"`
	DiscountAMD   *int      `json:"discount_amd" validate:"omitempty,gte=0"`
	Weight        *string   `json:"weight" validate:"omitempty,max=32"`
	Status        *string   `json:"status" validate:"omitempty,max=100"`
	ReadyAfter    *string   `json:"ready_after" validate:"omitempty,max=100"`
	Ingredients   *[]string `json:"ingredients" validate:"omitempty,dive,max=200"`
	ImageURL      *string   `json:"image_url" validate:"omitempty,url"`
	IsActive      *bool     `json:"is_active"`
	IsFeatured    *bool     `json:"is_featured"`
	CollectionIDs *[]string `json:"collection_ids" validate:"omitempty,dive,uuid"`
}

func (req UpdateProductRequest) toInput() catalog.UpdateProductInput {
	input := catalog.UpdateProductInput{
		SKU:           req.SKU,
		NameEN:        req.NameEN,
		NameHY:        req.NameHY,
		NameRU:        req.NameRU,
		DescriptionEN: req.DescriptionEN,
		DescriptionHY: req.DescriptionHY,
		DescriptionRU: req.DescriptionRU,
		PriceAMD:      req.PriceAMD,
		DiscountAMD:   req.DiscountAMD,
		Weight:        req.Weight,
		Status:        req.Status,
		ReadyAfter:    req.ReadyAfter,
		Ingredients:   req.Ingredients,
		ImageURL:      req.ImageURL,
		IsActive:      req.IsActive,
		IsFeatured:    req.IsFeatured,
	}
	if req.Unit != nil {
		unit, _ := enums.ParseProductUnit(*req.Unit)
		input.Unit = &unit
	}
	if req.BrandID != nil {
		id := uuid.MustParse(*req.BrandID)
		input.BrandID = &id
	}
	if req.CollectionIDs != nil {
		ids := make([]uuid.UUID, 0, len(*req.CollectionIDs))
		for _, raw := range *req.CollectionIDs {
			ids = append(ids, uuid.MustParse(raw))
		}
		input.CollectionIDs = &ids
	}
	return input
}

// AdminCreateProduct creates a catalog product with its collection links.
func AdminCreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProductRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct applies a partial update to a product.
func AdminUpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var req UpdateProductRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), id, req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a product and its collection links.
func AdminDeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		if err := svc.DeleteProduct(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, nil)
	}
}
