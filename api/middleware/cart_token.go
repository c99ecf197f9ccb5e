package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/pkg/logger"
)

const cartTokenHeader = "X-Cart-Token"

type cartTokenKey struct{}

// CartToken reads the session's cart token from the request header, minting
// a fresh one when absent, and echoes it back so the client can persist it.
// The token is an opaque capability: whoever holds it owns that cart.
func CartToken(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(cartTokenHeader)
			if token == "" {
				token = uuid.NewString()
			}

			w.Header().Set(cartTokenHeader, token)

			ctx := context.WithValue(r.Context(), cartTokenKey{}, token)
			if logg != nil {
				ctx = logg.WithCartToken(ctx, token)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CartTokenFromContext returns the token set by the CartToken middleware.
func CartTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(cartTokenKey{}).(string)
	return token
}
