package authctx

import "context"

type ctxKey string

const keyUID ctxKey = "auth_uid"

// WithUID stores the authenticated user's UID for downstream calls. Identity
// is always passed explicitly; nothing reads it from global session state.
func WithUID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, keyUID, uid)
}

// UID returns the authenticated UID if present.
func UID(ctx context.Context) string {
	v, _ := ctx.Value(keyUID).(string)
	return v
}
