package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Clock returns the current time.
type Clock func() time.Time

// Issuer signs tokens for authenticated identities.
type Issuer struct {
	secrets SecretProvider
	method  jwt.SigningMethod
	now     Clock
}

// NewIssuer creates an Issuer that signs with HS256.
func NewIssuer(secrets SecretProvider) *Issuer {
	return &Issuer{
		secrets: secrets,
		method:  jwt.SigningMethodHS256,
		now:     time.Now,
	}
}

// WithClock overrides the issuance time source.
func (i *Issuer) WithClock(now Clock) *Issuer {
	i.now = now
	return i
}

// Issue returns a signed token for identity valid for TokenTTL.
//
// It fails with KindConfig when the secret is unavailable and KindSigning
// when the token cannot be encoded.
func (i *Issuer) Issue(identity Identity) (string, error) {
	claims := newClaims(identity, i.now())

	secret, cfgErr := loadSecret(i.secrets)
	if cfgErr != nil {
		slog.Error("signing secret unavailable", "reason", cfgErr.Err)
		return "", cfgErr
	}

	token := jwt.NewWithClaims(i.method, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", signingError(err)
	}

	slog.Debug("Token issued.", slog.Any("claims", claims))
	return signed, nil
}
