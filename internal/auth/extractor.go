package auth

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"
)

const (
	HeaderAuthorization = "Authorization"
	bearerPrefix        = "Bearer "
)

// ExtractBearerToken returns the raw token carried by the Authorization
// header. The token itself is not parsed.
func ExtractBearerToken(header http.Header) (string, error) {
	values := header.Values(HeaderAuthorization)
	if len(values) == 0 {
		return "", authError(ReasonMissingOrMalformedToken, errors.New("missing Authorization header"))
	}

	value := values[0]
	if !utf8.ValidString(value) {
		return "", authError(ReasonMissingOrMalformedToken, errors.New("authorization header is not valid text"))
	}

	rest, ok := strings.CutPrefix(value, bearerPrefix)
	if !ok {
		return "", authError(ReasonMissingOrMalformedToken, errors.New("missing Bearer prefix"))
	}

	token := strings.TrimSpace(rest)
	if token == "" {
		return "", authError(ReasonMissingOrMalformedToken, errors.New("empty bearer token"))
	}

	return token, nil
}
