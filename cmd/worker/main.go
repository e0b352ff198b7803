// Command worker tails the simulation event queue and writes each recorded
// run to the structured log. Undecodable events go to the DLQ.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/suPer8Hu/defi-sim/internal/config"
	"github.com/suPer8Hu/defi-sim/internal/logger"
	"github.com/suPer8Hu/defi-sim/internal/simulation"
	"github.com/suPer8Hu/defi-sim/internal/store/rabbitmq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.RabbitURL == "" {
		log.Fatal("RABBIT_URL is required for the worker")
	}

	// declares the queue and its DLQ the same way the server does
	pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
	if err != nil {
		log.Fatal("rabbit declare", zap.Error(err))
	}
	_ = pub.Close()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitURL, cfg.RabbitQueue, cfg.WorkerConcurrency, log)
	if err != nil {
		log.Fatal("rabbit consumer", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("worker started",
		zap.String("queue", cfg.RabbitQueue),
		zap.Int("concurrency", cfg.WorkerConcurrency),
	)

	err = consumer.Run(ctx, func(ctx context.Context, ev simulation.Event) error {
		log.Info("simulation recorded",
			zap.Uint64("simulation_id", ev.SimulationID),
			zap.Uint64("query_id", ev.QueryID),
			zap.String("query_slug", ev.QuerySlug),
			zap.String("action", ev.Action),
			zap.String("status", string(ev.Status)),
			zap.String("gas_used", ev.GasUsed),
			zap.String("slippage", ev.Slippage),
			zap.String("error", ev.Error),
			zap.Time("created_at", ev.CreatedAt),
		)
		return nil
	})
	if err != nil {
		log.Error("worker stopped", zap.Error(err))
		os.Exit(1)
	}
}
