package middleware

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/brtemplate/authgate/internal/pkg/message"
	"github.com/brtemplate/authgate/internal/pkg/web"
)

// CheckContentType rejects request bodies that are not JSON. Requests
// without a body pass through.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			next.ServeHTTP(w, r)
			return
		}

		slog.Info("Checking Content-Type...")
		contentType := r.Header.Get(web.HeaderContentType)
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != web.MimeJSON {
			web.RespondUnsupportedMediaType(w, fmt.Errorf("invalid content-type: %q", contentType), message.UnsupportedMedia)
			return
		}

		slog.Info("Content-Type is valid.")
		next.ServeHTTP(w, r)
	})
}
