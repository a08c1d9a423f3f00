package auth

import (
	"context"
	"errors"
)

type ctxKey int

const claimsCtxKey ctxKey = iota + 1

var errNoClaims = errors.New("no claims in context")

// ContextWithClaims returns a new context carrying verified claims.
//
//nolint:ireturn // returning context.Context is intentional: it's the standard context type
func ContextWithClaims(baseCtx context.Context, claims *Claims) context.Context {
	return context.WithValue(baseCtx, claimsCtxKey, claims)
}

// ClaimsFromContext extracts the claims stored by RequireToken.
func ClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsCtxKey).(*Claims)
	if !ok || claims == nil {
		return nil, errNoClaims
	}
	return claims, nil
}
