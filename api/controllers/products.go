package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/api/responses"
	"github.com/chocomarket/chocomarket-backend/api/validators"
	"github.com/chocomarket/chocomarket-backend/internal/catalog"
	"github.com/chocomarket/chocomarket-backend/pkg/enums"
	pkgerrors "github.com/chocomarket/chocomarket-backend/pkg/errors"
	"github.com/chocomarket/chocomarket-backend/pkg/logger"
	"github.com/chocomarket/chocomarket-backend/pkg/pagination"
)

// ListProducts serves the public browse endpoint with filters, sort and
// cursor pagination.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := parseListProductsQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListProducts(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// GetProduct serves one product by id.
func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		product, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// GetProductBySKU serves one product by its catalog SKU.
func GetProductBySKU(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sku := strings.TrimSpace(chi.URLParam(r, "sku"))
		if sku == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "sku required"))
			return
		}

		product, err := svc.GetProductBySKU(r.Context(), sku)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func parseListProductsQuery(r *http.Request) (catalog.ListProductsInput, error) {
	var input catalog.ListProductsInput

	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return input, err
	}
	input.Pagination = pagination.Params{
		Limit:  limit,
		Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("sort")); raw != "" {
		sort, err := enums.ParseProductSort(raw)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort")
		}
		input.Sort = sort
	}

	input.Filters.BrandSlug = validators.ParseQueryStringPtr(r, "brand")
	input.Filters.CollectionSlug = validators.ParseQueryStringPtr(r, "collection")
	input.Filters.Query = strings.TrimSpace(r.URL.Query().Get("q"))

	if input.Filters.Discounted, err = validators.ParseQueryBoolPtr(r, "discounted"); err != nil {
		return input, err
	}
	if input.Filters.Featured, err = validators.ParseQueryBoolPtr(r, "featured"); err != nil {
		return input, err
	}
	if input.Filters.PriceMinAMD, err = validators.ParseQueryIntPtr(r, "price_min", 0, 100000000); err != nil {
		return input, err
	}
	if input.Filters.PriceMaxAMD, err = validators.ParseQueryIntPtr(r, "price_max", 0, 100000000); err != nil {
		return input, err
	}
	return input, nil
}
