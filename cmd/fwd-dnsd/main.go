package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nwhited/fwd-dns/internal/dns/common/log"
	"github.com/nwhited/fwd-dns/internal/dns/config"
	"github.com/nwhited/fwd-dns/internal/dns/gateways/local"
	"github.com/nwhited/fwd-dns/internal/dns/gateways/transport"
	"github.com/nwhited/fwd-dns/internal/dns/gateways/upstream"
	"github.com/nwhited/fwd-dns/internal/dns/services/handler"
)

const (
	version = "0.1.0-dev"

	defaultShutdownTimeout = 10 * time.Second
)

// Application holds the wired components of the DNS server.
type Application struct {
	config    *config.AppConfig
	transport *transport.UDPTransport
	handler   *handler.Handler
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"version":   version,
		"env":       cfg.Env,
		"log_level": cfg.LogLevel,
		"port":      cfg.Port,
		"resolver":  cfg.Resolver,
	}, "Starting fwd-dns server")

	app, err := buildApplication(cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to build application")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info(map[string]any{"signal": sig.String()}, "Shutdown signal received")
		cancel()
	}()

	if err := app.Run(ctx); err != nil {
		log.Fatal(map[string]any{"error": err}, "Server failed")
	}

	log.Info(nil, "fwd-dns server stopped gracefully")
}

// buildApplication constructs all components and wires them together.
// When a resolver address is configured, answers come from the upstream
// forwarder; otherwise from the static local source.
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	logger := log.GetLogger()

	source, err := buildAnswerSource(cfg, logger)
	if err != nil {
		return nil, err
	}

	h, err := handler.New(handler.Options{
		Source: source,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build handler: %w", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	udpTransport := transport.NewUDPTransport(addr, int(cfg.MaxInflight), logger)

	return &Application{
		config:    cfg,
		transport: udpTransport,
		handler:   h,
	}, nil
}

// buildAnswerSource selects the forwarder or the static local source.
func buildAnswerSource(cfg *config.AppConfig, logger log.Logger) (handler.AnswerSource, error) {
	if cfg.Resolver == "" {
		src, err := local.NewStatic(cfg.LocalAddr, cfg.LocalTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to build local answer source: %w", err)
		}
		log.Info(map[string]any{
			"addr": cfg.LocalAddr,
			"ttl":  cfg.LocalTTL,
		}, "No resolver configured, answering locally")
		return src, nil
	}

	fwd, err := upstream.NewForwarder(upstream.Options{
		Addr:    cfg.Resolver,
		Timeout: time.Duration(cfg.Timeout) * time.Second,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build forwarder: %w", err)
	}
	log.Info(map[string]any{
		"resolver": cfg.Resolver,
		"timeout":  cfg.Timeout,
	}, "Forwarding to upstream resolver")
	return fwd, nil
}

// Run starts the transport and blocks until the context is cancelled.
func (app *Application) Run(ctx context.Context) error {
	if err := app.transport.Start(ctx, app.handler); err != nil {
		return fmt.Errorf("failed to start UDP transport: %w", err)
	}

	log.Info(map[string]any{
		"address":   app.transport.Address(),
		"transport": "UDP",
	}, "DNS server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- app.transport.Stop()
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Warn(map[string]any{"error": err.Error()}, "Error during transport shutdown")
		}
		return nil
	case <-shutdownCtx.Done():
		return fmt.Errorf("shutdown timeout after %v", defaultShutdownTimeout)
	}
}
