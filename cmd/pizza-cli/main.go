package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/goliatone/go-pizzaform/internal/config"
	"github.com/goliatone/go-pizzaform/internal/logging"
	"github.com/goliatone/go-pizzaform/pkg/client"
	"github.com/goliatone/go-pizzaform/pkg/form"
	"github.com/goliatone/go-pizzaform/pkg/renderers/tui"
)

func main() {
	configFile := flag.String("config", "", "config file (defaults to ./pizzaform.yaml when present)")
	endpoint := flag.String("endpoint", "", "order service base URL (overrides config)")
	format := flag.String("summary", "yaml", "order summary format: yaml or json")
	flag.Parse()

	var opts []config.Option
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *endpoint != "" {
		cfg.Endpoint = *endpoint
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid endpoint: %v", err)
		}
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session, err := tui.NewSession(form.New(orders),
		tui.WithSummaryRenderer(tui.NewRenderer(tui.WithOutputFormat(tui.OutputFormat(*format)))),
	)
	if err != nil {
		logger.Fatal("Failed to start session", zap.Error(err))
	}

	outcome, err := session.Run(ctx)
	switch {
	case tui.IsAbort(err), errors.Is(err, tui.ErrCancelled):
		fmt.Println("No order placed.")
		return
	case err != nil:
		logger.Error("Order session failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	case !outcome.Succeeded():
		os.Exit(2)
	}
}
