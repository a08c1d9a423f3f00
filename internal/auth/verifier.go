package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier checks token signatures and decodes their claims.
type Verifier struct {
	secrets SecretProvider
	method  jwt.SigningMethod
	now     Clock
}

// NewVerifier creates a Verifier that only accepts HS256 tokens.
func NewVerifier(secrets SecretProvider) *Verifier {
	return &Verifier{
		secrets: secrets,
		method:  jwt.SigningMethodHS256,
		now:     time.Now,
	}
}

// WithClock overrides the time used by the decode step.
func (v *Verifier) WithClock(now Clock) *Verifier {
	v.now = now
	return v
}

// Verify decodes tokenString after checking its signature.
//
// Every verification failure is reported as ReasonInvalidAuthorizationToken;
// the wrapped error carries the parser's cause for logging only.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	secret, cfgErr := loadSecret(v.secrets)
	if cfgErr != nil {
		return nil, cfgErr
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{v.method.Alg()}),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return nil, authError(ReasonInvalidAuthorizationToken, fmt.Errorf("parse with claims: %w", err))
	}

	if !token.Valid {
		return nil, authError(ReasonInvalidAuthorizationToken, errors.New("token is not valid"))
	}

	return claims, nil
}
