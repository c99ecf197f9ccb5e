package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/api/responses"
	"github.com/chocomarket/chocomarket-backend/api/validators"
	"github.com/chocomarket/chocomarket-backend/internal/recommendations"
	"github.com/chocomarket/chocomarket-backend/pkg/logger"
)

// ReplaceRecommendationsRequest replaces the whole shelf. Order in the
// list is the display order.
type ReplaceRecommendationsRequest struct {
	ProductIDs []string `json:"product_ids" validate:"required,max=50,dive,uuid"`
}

// AdminReplaceRecommendations swaps the curated shelf atomically.
func AdminReplaceRecommendations(svc recommendations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReplaceRecommendationsRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ids := make([]uuid.UUID, 0, len(req.ProductIDs))
		for _, raw := range req.ProductIDs {
			ids = append(ids, uuid.MustParse(raw))
		}

		if err := svc.Replace(r.Context(), ids); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, nil)
	}
}
