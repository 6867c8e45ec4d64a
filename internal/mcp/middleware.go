package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const (
	tenantIDKey contextKey = iota
	sessionIDKey
)

func getTenantID(ctx context.Context) string {
	v, _ := ctx.Value(tenantIDKey).(string)
	return v
}

func getSessionID(ctx context.Context) string {
	v, _ := ctx.Value(sessionIDKey).(string)
	return v
}

// TenantResolver resolves a tenant ID from a bearer token.
type TenantResolver interface {
	ResolveTenant(ctx context.Context, token string) (string, error)
}

// bearerToken pulls the token out of the request's HTTP headers, when the
// transport carries any.
func bearerToken(req sdkmcp.Request) string {
	extra := req.GetExtra()
	if extra == nil || extra.Header == nil {
		return ""
	}
	auth := extra.Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

// authMiddleware enforces bearer token authentication on every method
// except the handshake itself.
func authMiddleware(resolver TenantResolver) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if method == "initialize" || method == "ping" {
				return next(ctx, method, req)
			}

			token := bearerToken(req)
			if token == "" {
				return nil, fmt.Errorf("unauthorized: missing bearer token")
			}

			tenantID, err := resolver.ResolveTenant(ctx, token)
			if err != nil {
				return nil, fmt.Errorf("unauthorized: %w", err)
			}
			if tenantID == "" {
				return nil, fmt.Errorf("unauthorized: invalid bearer token")
			}

			return next(context.WithValue(ctx, tenantIDKey, tenantID), method, req)
		}
	}
}

// noAuthMiddleware injects a fixed tenant when auth is disabled, which is
// the normal single-operator deployment.
func noAuthMiddleware(defaultTenant string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			return next(context.WithValue(ctx, tenantIDKey, defaultTenant), method, req)
		}
	}
}

// sessionMiddleware extracts the client session ID so reconciliation
// state can be kept per session. HTTP clients send it as the
// Mcp-Session-Id header; stdio clients may pass it in request metadata.
func sessionMiddleware() sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			sessionID := ""
			if extra := req.GetExtra(); extra != nil && extra.Header != nil {
				sessionID = extra.Header.Get("Mcp-Session-Id")
			}
			if sessionID == "" {
				sessionID = metaSessionID(req)
			}
			if sessionID != "" {
				ctx = context.WithValue(ctx, sessionIDKey, sessionID)
			}
			return next(ctx, method, req)
		}
	}
}

// metaSessionID reads _meta.session_id. Some notifications carry nil
// params and the SDK's GetMeta can panic on a nil underlying value, so
// the lookup is guarded.
func metaSessionID(req sdkmcp.Request) (sessionID string) {
	params := req.GetParams()
	if params == nil {
		return ""
	}
	defer func() { recover() }()
	if meta := params.GetMeta(); meta != nil {
		if sid, ok := meta["session_id"].(string); ok {
			sessionID = sid
		}
	}
	return sessionID
}
