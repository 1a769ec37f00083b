package mcp

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// authMiddleware implements bearer token authentication as MCP middleware.
func authMiddleware(token string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			// Skip auth for protocol methods
			if method == "initialize" || method == "ping" {
				return next(ctx, method, req)
			}

			extra := req.GetExtra()
			if extra == nil || extra.Header == nil {
				return nil, fmt.Errorf("unauthorized: missing headers")
			}

			auth := extra.Header.Get("Authorization")
			got := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if got == "" {
				return nil, fmt.Errorf("unauthorized: missing bearer token")
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				return nil, fmt.Errorf("unauthorized: invalid bearer token")
			}

			return next(ctx, method, req)
		}
	}
}

func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			logger.Debug("mcp traffic", "direction", direction, "stage", "request", "method", method, "params", formatPayload(safeParams(req)))

			result, err := next(ctx, method, req)
			if !strings.HasPrefix(method, "notifications/") {
				if err != nil {
					logger.Debug("mcp traffic", "direction", direction, "stage", "response", "method", method, "error", err)
				} else {
					logger.Debug("mcp traffic", "direction", direction, "stage", "response", "method", method, "result", formatPayload(result))
				}
			}

			return result, err
		}
	}
}

func safeParams(req sdkmcp.Request) any {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
