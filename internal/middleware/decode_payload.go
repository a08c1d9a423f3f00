package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/brtemplate/authgate/internal/pkg/message"
	"github.com/brtemplate/authgate/internal/pkg/web"
)

// DecodePayload decodes a single JSON object of type T into the request
// context. Unknown fields and trailing data are rejected.
func DecodePayload[T any](bodySize int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Info("Decoding json payload...")
			r.Body = http.MaxBytesReader(w, r.Body, bodySize)
			decoder := json.NewDecoder(r.Body)
			decoder.DisallowUnknownFields()
			var decoded T
			if err := decoder.Decode(&decoded); err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					web.RespondRequestEntityTooLarge(w, err, message.PayloadTooLarge)
					return
				}

				const fieldErr = "json: unknown field "
				if fieldName, ok := strings.CutPrefix(err.Error(), fieldErr); ok {
					web.RespondUnprocessableEntity(w, err, "Unknown field in payload: "+fieldName)
					return
				}

				web.RespondBadRequest(w, err, message.InvalidInput)
				return
			}

			if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
				web.RespondBadRequest(w, errors.New("trailing data after json payload"), message.InvalidInput)
				return
			}

			slog.Debug("Payload decoded.", slog.Any("payload", decoded))

			ctx := web.NewContextWithPayload(r.Context(), decoded)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
