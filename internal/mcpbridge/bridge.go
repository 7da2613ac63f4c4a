// Package mcpbridge adapts the tool registry onto the MCP transport layer.
// Tool failures travel back inside the tool-result channel; only transport
// faults (owned by the MCP SDK) are surfaced as protocol errors.
package mcpbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hashbridge/hedera-mcp/internal/ledger"
	"github.com/hashbridge/hedera-mcp/internal/metrics"
	"github.com/hashbridge/hedera-mcp/internal/toolset"
)

// Register adds every registry tool to the MCP server. Each handler returns
// exactly one text content block on success, or an error result carrying the
// upstream failure message.
func Register(srv *server.MCPServer, registry *toolset.Registry, collector *metrics.Collector, logger *slog.Logger) error {
	if srv == nil {
		return errors.New("register tools: nil MCP server")
	}
	if registry == nil {
		return errors.New("register tools: nil registry")
	}
	if logger == nil {
		logger = slog.Default()
	}

	for _, tool := range registry.Tools() {
		schema, err := json.Marshal(tool.InputSchema)
		if err != nil {
			return fmt.Errorf("encode input schema for %q: %w", tool.Name, err)
		}
		srv.AddTool(
			mcp.NewToolWithRawSchema(tool.Name, tool.Description, schema),
			callHandler(registry, tool.Name, collector, logger),
		)
	}
	return nil
}

func callHandler(registry *toolset.Registry, name string, collector *metrics.Collector, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		content, err := registry.Execute(ctx, name, request.GetArguments())
		elapsed := time.Since(start)

		outcome := outcomeFor(err)
		if collector != nil {
			collector.Observe(name, outcome, elapsed)
		}

		if err != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "tool call failed",
				slog.String("tool", name),
				slog.String("outcome", outcome),
				slog.Int64("duration_ms", elapsed.Milliseconds()),
				slog.Any("error", err),
			)
			return mcp.NewToolResultError(err.Error()), nil
		}

		logger.LogAttrs(ctx, slog.LevelInfo, "tool call",
			slog.String("tool", name),
			slog.Int64("duration_ms", elapsed.Milliseconds()),
		)
		return mcp.NewToolResultText(content), nil
	}
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, toolset.ErrInvalidArguments):
		return metrics.OutcomeValidation
	case errors.Is(err, ledger.ErrDecode):
		return metrics.OutcomeDecode
	case errors.Is(err, ledger.ErrTimeout):
		return metrics.OutcomeTimeout
	case errors.Is(err, ledger.ErrGateway):
		return metrics.OutcomeGateway
	default:
		return metrics.OutcomeError
	}
}
