package auth

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Kind is the category of an auth fault.
type Kind int

const (
	// KindConfig means the signing secret is unavailable.
	KindConfig Kind = iota + 1
	// KindAuth means the request did not carry a valid token.
	KindAuth
	// KindSigning means a token could not be encoded at issuance.
	KindSigning
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindAuth:
		return "auth"
	case KindSigning:
		return "signing"
	default:
		return "unknown"
	}
}

// Reason narrows down a KindAuth fault.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonMissingOrMalformedToken
	ReasonInvalidAuthorizationToken
	ReasonMultipleAuthorizationErrors
)

const (
	MsgMissingOrMalformedToken     = "Missing or malformed authorization token"
	MsgInvalidAuthorizationToken   = "Invalid authorization token"
	msgMultipleAuthorizationErrors = "Multiple errors while validating the authorization token: "
	msgFmtSecretUnavailable        = "Signing secret is unavailable: %s"
	msgFmtCreateToken              = "Failed to create token: %s"
)

// Error is the single fault type produced by the token lifecycle.
//
// Violations is only populated for ReasonMultipleAuthorizationErrors and keeps
// the order in which the validator recorded them.
type Error struct {
	Kind       Kind
	Reason     Reason
	Violations []string
	Err        error
}

var _ error = (*Error)(nil)

// Message renders the client facing text of the fault.
func (e *Error) Message() string {
	switch e.Kind {
	case KindConfig:
		return fmt.Sprintf(msgFmtSecretUnavailable, e.detail())
	case KindSigning:
		return fmt.Sprintf(msgFmtCreateToken, e.detail())
	case KindAuth:
		switch e.Reason {
		case ReasonMissingOrMalformedToken:
			return MsgMissingOrMalformedToken
		case ReasonMultipleAuthorizationErrors:
			return msgMultipleAuthorizationErrors + quoteList(e.Violations)
		default:
			return MsgInvalidAuthorizationToken
		}
	default:
		return http.StatusText(http.StatusInternalServerError)
	}
}

// StatusCode maps the fault to the HTTP status returned to the client.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindConfig:
		return http.StatusServiceUnavailable
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (e *Error) Error() string {
	if e.Err == nil || e.Kind != KindAuth {
		return e.Message()
	}
	return fmt.Sprintf("%s: %v", e.Message(), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind and reason so that the exported
// sentinels below can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Reason == t.Reason
}

func (e *Error) detail() string {
	if e.Err == nil {
		return "unknown error"
	}
	return e.Err.Error()
}

var (
	ErrConfig                      = &Error{Kind: KindConfig}
	ErrSigning                     = &Error{Kind: KindSigning}
	ErrMissingOrMalformedToken     = &Error{Kind: KindAuth, Reason: ReasonMissingOrMalformedToken}
	ErrInvalidAuthorizationToken   = &Error{Kind: KindAuth, Reason: ReasonInvalidAuthorizationToken}
	ErrMultipleAuthorizationErrors = &Error{Kind: KindAuth, Reason: ReasonMultipleAuthorizationErrors}
)

func configError(err error) *Error {
	return &Error{Kind: KindConfig, Err: err}
}

func signingError(err error) *Error {
	return &Error{Kind: KindSigning, Err: err}
}

func authError(reason Reason, err error) *Error {
	return &Error{Kind: KindAuth, Reason: reason, Err: err}
}

// quoteList renders violations as ["a", "b"].
func quoteList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, strconv.Quote(item))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
