package web

import (
	"context"
	"fmt"
)

type ctxKey int

const payloadCtxKey ctxKey = iota + 1

// NewContextWithPayload stores a decoded request payload.
//
//nolint:ireturn //This function needs to return a context.
func NewContextWithPayload(baseCtx context.Context, payload any) context.Context {
	return context.WithValue(baseCtx, payloadCtxKey, payload)
}

// PayloadFromContext returns the payload stored by NewContextWithPayload as T.
//
// nolint: ireturn //This is a generic function.
func PayloadFromContext[T any](ctx context.Context) (T, error) {
	payload, ok := ctx.Value(payloadCtxKey).(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("payload in context is %T, want: %T", ctx.Value(payloadCtxKey), zero)
	}
	return payload, nil
}
