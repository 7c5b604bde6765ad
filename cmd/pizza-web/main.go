package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-pizzaform/internal/config"
	"github.com/goliatone/go-pizzaform/internal/logging"
	"github.com/goliatone/go-pizzaform/internal/server"
	"github.com/goliatone/go-pizzaform/pkg/client"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configFile := flag.String("config", "", "config file (defaults to ./pizzaform.yaml when present)")
	flag.Parse()

	var opts []config.Option
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, !cfg.Production())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	orders, err := client.New(cfg.Endpoint,
		client.WithPath(cfg.OrderPath),
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("Failed to create order client", zap.Error(err))
	}

	router, err := server.NewRouter(server.Config{
		Submitter:  orders,
		Logger:     logger,
		Theme:      server.ThemeFromConfig(cfg.Theme),
		Production: cfg.Production(),
	})
	if err != nil {
		logger.Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting pizza form server",
			zap.String("listen", cfg.Listen),
			zap.String("endpoint", orders.URL()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
