package controllers

import (
	"net/http"

	"github.com/chocomarket/chocomarket-backend/api/middleware"
	"github.com/chocomarket/chocomarket-backend/api/responses"
	"github.com/chocomarket/chocomarket-backend/api/validators"
	"github.com/chocomarket/chocomarket-backend/internal/checkout"
	"github.com/chocomarket/chocomarket-backend/pkg/enums"
	"github.com/chocomarket/chocomarket-backend/pkg/logger"
)

// SubmitOrderRequest is the payload for POST /checkout. Prices never come
// from the client; the order is built from the server-side cart.
type SubmitOrderRequest struct {
	CustomerName string  `json:"customer_name" validate:"required,min=2,max=200"`
	Phone        string  `json:"phone" validate:"required,min=6,max=32"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Address      string  `json:"address" validate:"required,min=5,max=500"`
	Comment      *string `json:"comment" validate:"omitempty,max=1000"`
	Locale       string  `json:"locale" validate:"omitempty,oneof=hy en ru"`
}

func (req SubmitOrderRequest) toInput() checkout.SubmitInput {
	locale, err := enums.ParseLocale(req.Locale)
	if err != nil {
		locale = enums.LocaleHY
	}
	return checkout.SubmitInput{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Comment:      req.Comment,
		Locale:       locale,
	}
}

// SubmitOrder converts the session cart into a pending order.
func SubmitOrder(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		order, err := svc.Submit(r.Context(), token, req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
