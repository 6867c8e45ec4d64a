package transport

import (
	"context"
	"net/http"
)

const sessionHeader = "Mcp-Session-Id"

type sessionKey struct{}

// SessionIDFromContext returns the session ID from context, if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionKey{}).(string)
	return sessionID, ok
}

// SessionMiddleware stores the Mcp-Session-Id header in context. Requests
// without the header pass through unchanged; reconciliation state is then
// scoped to the tenant's default session.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(sessionHeader); id != "" {
			r = r.WithContext(context.WithValue(r.Context(), sessionKey{}, id))
		}
		next.ServeHTTP(w, r)
	})
}
