package testserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pgorczak/eventum/internal/domain/costs"
	"github.com/pgorczak/eventum/internal/domain/payments"
	"github.com/pgorczak/eventum/internal/domain/project"
	"github.com/pgorczak/eventum/internal/mcp"
	"github.com/pgorczak/eventum/internal/sqlite"
	"github.com/pgorczak/eventum/internal/transport"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Token    string
	TenantID string
}

func New(t *testing.T, token, tenantID string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	projectRepo := sqlite.NewProjectRepository(db)
	costLineRepo := sqlite.NewCostLineRepository(db)
	costTypeRepo := sqlite.NewCostTypeRepository(db)
	linkedRepo := sqlite.NewLinkedEntityRepository(db)
	paymentRepo := sqlite.NewPaymentRepository(db)

	projectSvc := project.NewService(projectRepo, nil)
	costSvc := costs.NewService(costLineRepo, costTypeRepo, linkedRepo, nil)
	paymentSvc := payments.NewService(paymentRepo, nil)

	handler := mcp.NewHandler(projectSvc, costSvc, paymentSvc, nil)

	resolver := &apiKeyResolver{db: db}
	server := httptest.NewServer(transport.NewServer(handler, handler, transport.AuthMiddleware(resolver)))

	ts := &TestServer{
		Server:   server,
		DB:       db,
		Token:    token,
		TenantID: tenantID,
	}

	require.NoError(t, ts.AddAPIKey(token, tenantID))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

func (ts *TestServer) AddAPIKey(token, tenantID string) error {
	hash := hashToken(token)
	_, err := ts.DB.Exec(
		`INSERT INTO api_keys (key_hash, tenant_id, created_at) VALUES (?, ?, ?)`,
		hash, tenantID, time.Now(),
	)
	return err
}

// SeedCostType inserts a cost type reference row for tests.
func (ts *TestServer) SeedCostType(t *testing.T, id, name string, kind costs.LinkedKind) {
	t.Helper()

	repo := sqlite.NewCostTypeRepository(ts.DB)
	require.NoError(t, repo.Create(context.Background(), ts.TenantID, &costs.CostType{
		ID:         id,
		TenantID:   ts.TenantID,
		Name:       name,
		LinkedKind: kind,
	}))
}

// SeedLinkedEntity inserts a linked entity reference row for tests.
func (ts *TestServer) SeedLinkedEntity(t *testing.T, id string, kind costs.LinkedKind, name string) {
	t.Helper()

	repo := sqlite.NewLinkedEntityRepository(ts.DB)
	require.NoError(t, repo.Create(context.Background(), ts.TenantID, &costs.LinkedEntity{
		ID:   id,
		Kind: kind,
		Name: name,
	}))
}

type apiKeyResolver struct {
	db *sqlite.DB
}

func (r *apiKeyResolver) ResolveTenant(ctx context.Context, token string) (string, error) {
	hash := hashToken(token)
	var tenantID string
	err := r.db.QueryRowContext(ctx, `SELECT tenant_id FROM api_keys WHERE key_hash = ?`, hash).Scan(&tenantID)
	if err != nil || tenantID == "" {
		return "", transport.ErrUnauthorized
	}
	return tenantID, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
