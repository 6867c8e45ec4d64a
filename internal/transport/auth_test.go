package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type tokenResolver struct {
	tenants map[string]string
	err     error
}

func (r *tokenResolver) ResolveTenant(_ context.Context, token string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	tenant, ok := r.tenants[token]
	if !ok {
		return "", ErrUnauthorized
	}
	return tenant, nil
}

func tenantRecorder(got *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tenantID, ok := TenantFromContext(r.Context()); ok {
			*got = tenantID
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	resolver := &tokenResolver{tenants: map[string]string{"secret": "tenant1"}}

	var got string
	handler := AuthMiddleware(resolver)(tenantRecorder(&got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "tenant1", got)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	resolver := &tokenResolver{tenants: map[string]string{"secret": "tenant1"}}
	handler := AuthMiddleware(resolver)(tenantRecorder(new(string)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_UnknownToken(t *testing.T) {
	resolver := &tokenResolver{tenants: map[string]string{}}
	handler := AuthMiddleware(resolver)(tenantRecorder(new(string)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ResolverFailure(t *testing.T) {
	resolver := &tokenResolver{err: errors.New("store offline")}
	handler := AuthMiddleware(resolver)(tenantRecorder(new(string)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStaticTenantMiddleware(t *testing.T) {
	var got string
	handler := StaticTenantMiddleware("default")(tenantRecorder(&got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "default", got)
}
