package model

import "context"

// Scope identifies who a request acts on behalf of.
type Scope struct {
	UserID string
}

type scopeKey struct{}

// SetScopeToContext returns a copy of ctx carrying sc.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(Scope)
	return sc, ok && sc.UserID != ""
}
