package middleware

import (
	"net/http"

	"github.com/brtemplate/authgate/internal/pkg/message"
	"github.com/brtemplate/authgate/internal/pkg/web"
)

// ContextGuard stops requests whose context is already done.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			web.RespondRequestTimeout(w, err, message.RequestTimeout)
			return
		}

		next.ServeHTTP(w, r)
	})
}
