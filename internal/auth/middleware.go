package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/brtemplate/authgate/internal/pkg/web"
)

// RequireToken denies requests that fail the gate with the fault's status
// and message. Allowed requests continue with the verified claims in their
// context.
func RequireToken(gate *Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Info("Verifying access token...")

			claims, err := gate.Authorize(r.Header)
			if err != nil {
				RespondError(w, err)
				return
			}

			ctx := ContextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RespondError writes err as a JSON string response.
func RespondError(w http.ResponseWriter, err error) {
	var authErr *Error
	if !errors.As(err, &authErr) {
		web.RespondInternalServerError(w, err)
		return
	}
	web.Fail(w, authErr.StatusCode(), err, authErr.Message())
}
