package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hashbridge/hedera-mcp/internal/app"
	"github.com/hashbridge/hedera-mcp/internal/config"
	"github.com/hashbridge/hedera-mcp/internal/ledger"
)

func main() {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newServerLogger(os.Stderr, cfg)

	gateway, err := ledger.New(ledger.Config{
		OperatorID:  cfg.OperatorID,
		OperatorKey: cfg.OperatorKey,
		Network:     string(cfg.Network),
	})
	if err != nil {
		log.Fatalf("new ledger gateway: %v", err)
	}

	application, err := app.New(cfg, logger, gateway)
	if err != nil {
		log.Fatalf("new app: %v", err)
	}

	logger.Info("starting server",
		"addr", cfg.HTTPAddr(),
		"network", string(cfg.Network),
		"operator", cfg.OperatorID,
	)

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- application.Start()
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrCh:
		if err != nil {
			log.Fatalf("server exited: %v", err)
		}
		return
	case <-sigCtx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown server: %v", err)
	}

	if err := <-serverErrCh; err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
