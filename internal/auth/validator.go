package auth

import (
	"strings"
	"time"
)

const (
	ViolationID         = "Invalid ID"
	ViolationPublicID   = "Invalid Public ID"
	ViolationEmail      = "Invalid E-mail"
	ViolationExpiration = "Invalid expiration date"
	ViolationExpired    = "Expired token"
)

// ValidateClaims checks claims for well-formedness and expiry at now.
//
// All checks run; the returned error lists every violation found, in order.
func ValidateClaims(claims *Claims, now time.Time) error {
	var violations []string

	if strings.TrimSpace(claims.ID) == "" {
		violations = append(violations, ViolationID)
	}
	if claims.PublicID == 0 {
		violations = append(violations, ViolationPublicID)
	}
	if claims.Email == "" {
		violations = append(violations, ViolationEmail)
	}
	if claims.Exp == 0 {
		violations = append(violations, ViolationExpiration)
	}
	if claims.Exp <= now.Unix() {
		violations = append(violations, ViolationExpired)
	}

	if len(violations) == 0 {
		return nil
	}

	return &Error{
		Kind:       KindAuth,
		Reason:     ReasonMultipleAuthorizationErrors,
		Violations: violations,
	}
}
