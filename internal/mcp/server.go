package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Config contains server configuration.
type Config struct {
	Handler       *Handler
	Resolver      TenantResolver
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "eventum",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	// Add middleware (auth + session extraction)
	// Stdio mode: always disable auth (local dev only)
	if cfg.TransportMode == "stdio" {
		server.AddReceivingMiddleware(noAuthMiddleware("default"))
	} else {
		// HTTP mode: auth based on config
		if cfg.AuthEnabled {
			server.AddReceivingMiddleware(authMiddleware(cfg.Resolver))
		} else {
			server.AddReceivingMiddleware(noAuthMiddleware("default"))
		}
	}
	server.AddReceivingMiddleware(sessionMiddleware())
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	// Register all tools
	registerTools(server, cfg.Handler)

	return server
}

// registerTools wires the catalog into the SDK server, delegating every
// call to the dispatch handler.
func registerTools(server *sdkmcp.Server, handler *Handler) {
	for _, def := range buildToolCatalog() {
		def := def

		server.AddTool(&sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: toSchema(def.InputSchema),
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			var params json.RawMessage
			if req != nil && req.Params != nil && req.Params.Arguments != nil {
				params, _ = json.Marshal(req.Params.Arguments)
			}

			result, err := handler.Handle(ctx, getTenantID(ctx), getSessionID(ctx), def.Name, params)
			if err != nil {
				var apiErr *APIError
				if errors.As(err, &apiErr) {
					payload, _ := json.Marshal(apiErr)
					return &sdkmcp.CallToolResult{
						IsError: true,
						Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(payload)}},
					}, nil
				}
				return nil, err
			}

			payload, err := json.Marshal(result)
			if err != nil {
				return nil, fmt.Errorf("encoding %s result: %w", def.Name, err)
			}
			return &sdkmcp.CallToolResult{
				Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(payload)}},
			}, nil
		})
	}
}

func toSchema(input map[string]any) *jsonschema.Schema {
	raw, err := json.Marshal(input)
	if err != nil {
		panic(fmt.Sprintf("marshaling tool schema: %v", err))
	}
	var schema jsonschema.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		panic(fmt.Sprintf("unmarshaling tool schema: %v", err))
	}
	return &schema
}
