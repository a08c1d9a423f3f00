package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = time.Hour

// Identity is the authenticated account a token is issued for.
type Identity struct {
	ID       uuid.UUID
	PublicID int32
	Email    string
	UserType string
}

// Claims is the signed payload of a token.
type Claims struct {
	ID       string `json:"id"`
	PublicID int32  `json:"public_id"`
	UserType string `json:"user_type"`
	Email    string `json:"email"`
	Exp      int64  `json:"exp"`
}

var _ jwt.Claims = (*Claims)(nil)

func newClaims(identity Identity, now time.Time) *Claims {
	return &Claims{
		ID:       identity.ID.String(),
		PublicID: identity.PublicID,
		UserType: identity.UserType,
		Email:    identity.Email,
		Exp:      now.Add(TokenTTL).Unix(),
	}
}

func (c *Claims) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", c.ID),
		slog.Int("public_id", int(c.PublicID)),
		slog.String("user_type", c.UserType),
		slog.Int64("exp", c.Exp),
	)
}

// GetExpirationTime returns nil for a zero exp so the parser leaves it to
// ValidateClaims to report.
func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.Exp == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.Exp, 0)), nil
}

func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	return nil, nil
}

func (c *Claims) GetNotBefore() (*jwt.NumericDate, error) {
	return nil, nil
}

func (c *Claims) GetIssuer() (string, error) {
	return "", nil
}

func (c *Claims) GetSubject() (string, error) {
	return c.ID, nil
}

func (c *Claims) GetAudience() (jwt.ClaimStrings, error) {
	return nil, nil
}
