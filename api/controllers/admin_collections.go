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

// CollectionRequest is the admin payload to create or replace a collection.
type CollectionRequest struct {
	Slug     string  `json:"slug" validate:"required,min=1,max=100"`
	NameEN   string  `json:"name_en" validate:"required,max=300"`
	NameHY   string  `json:"name_hy" validate:"required,max=300"`
	NameRU   string  `json:"name_ru" validate:"required,max=300"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

func (req CollectionRequest) toInput() catalog.CollectionInput {
	return catalog.CollectionInput{
		Slug:     req.Slug,
		NameEN:   req.NameEN,
		NameHY:   req.NameHY,
		NameRU:   req.NameRU,
		ImageURL: req.ImageURL,
	}
}

// AdminCreateCollection creates a collection.
func AdminCreateCollection(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CollectionRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		collection, err := svc.CreateCollection(r.Context(), req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, collection)
	}
}

// AdminUpdateCollection replaces a collection's fields.
func AdminUpdateCollection(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "collectionID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid collection id"))
			return
		}

		var req CollectionRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		collection, err := svc.UpdateCollection(r.Context(), id, req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, collection)
	}
}

// AdminDeleteCollection removes a collection and its membership rows.
func AdminDeleteCollection(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "collectionID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid collection id"))
			return
		}

		if err := svc.DeleteCollection(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, nil)
	}
}
