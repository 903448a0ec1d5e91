package bearer

import (
	"context"
	"strings"
)

type ctxKey string

const tokenKey ctxKey = "bearer_token"

// WithToken attaches a bearer token to ctx for outgoing backend calls.
// An empty token leaves ctx unchanged.
func WithToken(ctx context.Context, token string) context.Context {
	token = strings.TrimSpace(token)
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey, token)
}

func FromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// FromHeader extracts the token from an "Authorization: Bearer <token>" value.
func FromHeader(h string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
