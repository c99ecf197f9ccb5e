package controllers

import (
	"net/http"
	"strings"

	"github.com/chocomarket/chocomarket-backend/api/responses"
	"github.com/chocomarket/chocomarket-backend/api/validators"
	"github.com/chocomarket/chocomarket-backend/internal/catalog"
	"github.com/chocomarket/chocomarket-backend/internal/search"
	"github.com/chocomarket/chocomarket-backend/pkg/logger"
	"github.com/chocomarket/chocomarket-backend/pkg/pagination"
)

// SearchProducts matches products against the query across all three
// languages, transliterating the query so a shopper can type any script.
func SearchProducts(svc search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.Search(r.Context(), query, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]catalog.ProductDTO, 0, len(products))
		for i := range products {
			items = append(items, *catalog.NewProductDTO(&products[i]))
		}
		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}
