package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hashbridge/hedera-mcp/internal/config"
	"github.com/hashbridge/hedera-mcp/internal/ledger"
	"github.com/hashbridge/hedera-mcp/internal/mcpbridge"
	"github.com/hashbridge/hedera-mcp/internal/metrics"
	"github.com/hashbridge/hedera-mcp/internal/toolset"
)

const (
	serverName    = "hedera-mcp"
	serverVersion = "0.1.0"

	sseEndpoint     = "/sse"
	messageEndpoint = "/messages"
)

// App owns the tool registry, the MCP transport, and the HTTP server
// lifecycle.
type App struct {
	cfg    config.Config
	logger *slog.Logger
	server *http.Server
	sse    *server.SSEServer
	ready  atomic.Bool
}

func New(cfg config.Config, logger *slog.Logger, gateway ledger.Gateway) (*App, error) {
	if logger == nil {
		return nil, errors.New("new app: nil logger")
	}
	if gateway == nil {
		return nil, errors.New("new app: nil gateway")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new app config: %w", err)
	}

	registry, err := toolset.NewRegistry(gateway, toolset.Options{
		ToolTimeout:      cfg.ToolTimeout,
		RedactWalletKeys: cfg.RedactWalletKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("new app registry: %w", err)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.New(promRegistry)

	mcpServer := server.NewMCPServer(serverName, serverVersion, server.WithRecovery())
	if err := mcpbridge.Register(mcpServer, registry, collector, logger); err != nil {
		return nil, fmt.Errorf("new app tools: %w", err)
	}

	a := &App{
		cfg:    cfg,
		logger: logger,
		sse: server.NewSSEServer(mcpServer,
			server.WithSSEEndpoint(sseEndpoint),
			server.WithMessageEndpoint(messageEndpoint),
		),
	}

	mux := http.NewServeMux()
	mux.Handle(sseEndpoint, a.sse.SSEHandler())
	mux.Handle(messageEndpoint, a.sse.MessageHandler())
	mux.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/readyz", a.handleReadyz)

	a.server = &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: requestLoggingMiddleware(logger)(mux),
	}

	return a, nil
}

func (a *App) Start() error {
	a.ready.Store(true)

	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	a.ready.Store(false)
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	if ctx == nil {
		return errors.New("shutdown: nil context")
	}
	a.ready.Store(false)

	err := a.server.Shutdown(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		// Live event streams keep their connections open past the graceful
		// window; close them so shutdown terminates.
		a.logger.Warn("graceful shutdown timed out; forcing connection close")
		if closeErr := a.server.Close(); closeErr != nil {
			return fmt.Errorf("shutdown timeout and forced close failed: %w", errors.Join(err, closeErr))
		}
		return nil
	}
	return err
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writePlain(w, http.StatusOK, "ok")
}

func (a *App) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !a.ready.Load() {
		writePlain(w, http.StatusServiceUnavailable, "not ready")
		return
	}
	writePlain(w, http.StatusOK, "ready")
}

func writePlain(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
