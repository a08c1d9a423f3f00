package auth

import (
	"net/http"
	"time"
)

// Gate decides whether a request carries a usable token.
type Gate struct {
	verifier *Verifier
	now      Clock
}

// NewGate composes extraction, verification and validation.
func NewGate(verifier *Verifier) *Gate {
	return &Gate{
		verifier: verifier,
		now:      time.Now,
	}
}

// WithClock overrides the time used for claims validation.
func (g *Gate) WithClock(now Clock) *Gate {
	g.now = now
	return g
}

// Authorize runs the stages in order and stops at the first failure.
// A nil error means the request may continue with the returned claims.
func (g *Gate) Authorize(header http.Header) (*Claims, error) {
	token, err := ExtractBearerToken(header)
	if err != nil {
		return nil, err
	}

	claims, err := g.verifier.Verify(token)
	if err != nil {
		return nil, err
	}

	if err := ValidateClaims(claims, g.now()); err != nil {
		return nil, err
	}

	return claims, nil
}
