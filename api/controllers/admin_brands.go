package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/api/responses"
	"github.com/chocomarket/chocomarket-backend/api/validators"
	"github.com/chocomarket/chocomarket-backend/internal/catalog"
	pkgerrors "github.com/chocomarket/chocomarket-backend/pkg/errors"
	"github.com/chocomarket/chocomarket-backend/pkg/logger"
)

// BrandRequest is the admin payload to create or replace a brand.
type BrandRequest struct {
	Slug    string  `json:"slug" validate:"required,min=1,max=100"`
	NameEN  string  `json:"name_en" validate:"required,max=300"`
	NameHY  string  `json:"name_hy" validate:"required,max=300"`
	NameRU  string  `json:"name_ru" validate:"required,max=300"`
	LogoURL *string `json:"logo_url" validate:"omitempty,url"`
}

func (req BrandRequest) toInput() catalog.BrandInput {
	return catalog.BrandInput{
		Slug:    req.Slug,
		NameEN:  req.NameEN,
		NameHY:  req.NameHY,
		NameRU:  req.NameRU,
		LogoURL: req.LogoURL,
	}
}

// AdminCreateBrand creates a brand.
func AdminCreateBrand(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BrandRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		brand, err := svc.CreateBrand(r.Context(), req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, brand)
	}
}

// AdminUpdateBrand replaces a brand's fields.
func AdminUpdateBrand(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "brandID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid brand id"))
			return
		}

		var req BrandRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		brand, err := svc.UpdateBrand(r.Context(), id, req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, brand)
	}
}

// AdminDeleteBrand removes a brand; its products keep selling brandless.
func AdminDeleteBrand(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "brandID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid brand id"))
			return
		}

		if err := svc.DeleteBrand(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, nil)
	}
}
