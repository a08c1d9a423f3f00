package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/brtemplate/authgate/internal/pkg/message"
	"github.com/brtemplate/authgate/internal/pkg/web"
	"github.com/brtemplate/authgate/internal/platform/validation"
)

// ValidateInput checks the payload stored by DecodePayload. Field errors are
// reported in a single message ordered by field name.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Info("Validating input...")
			payload, err := web.PayloadFromContext[T](r.Context())
			if err != nil {
				web.RespondBadRequest(w, err, message.InvalidInput)
				return
			}

			if errs := validator.ValidateStruct(payload); len(errs) > 0 {
				web.RespondUnprocessableEntity(w, errors.New("invalid input"), invalidInputMessage(errs))
				return
			}

			slog.Info("Input is valid.")
			next.ServeHTTP(w, r)
		})
	}
}

func invalidInputMessage(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, errs[field])
	}

	return "Invalid input: " + strings.Join(msgs, "; ")
}
