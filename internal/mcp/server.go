package mcp

import (
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/qiwen/planner-mcp/internal/calendar"
	"github.com/qiwen/planner-mcp/internal/domain/event"
	"github.com/qiwen/planner-mcp/internal/domain/plan"
	"github.com/qiwen/planner-mcp/internal/domain/summary"
)

// Services contains all domain collaborators needed by the tool surface.
type Services struct {
	Events    *event.Store
	Summaries *summary.Store
	Plans     *plan.Store
	Almanac   calendar.Almanac
	// Now supplies the reference instant for the today flag; nil means
	// wall clock.
	Now func() time.Time
}

func (s Services) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Config contains server configuration.
type Config struct {
	Services      Services
	AuthToken     string // empty disables auth
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "planner",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	// Stdio is local-only; auth applies to the HTTP transport.
	if cfg.TransportMode != "stdio" && cfg.AuthToken != "" {
		server.AddReceivingMiddleware(authMiddleware(cfg.AuthToken))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
