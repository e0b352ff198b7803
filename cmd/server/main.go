package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suPer8Hu/defi-sim/internal/config"
	"github.com/suPer8Hu/defi-sim/internal/db"
	"github.com/suPer8Hu/defi-sim/internal/httpapi"
	"github.com/suPer8Hu/defi-sim/internal/httpapi/handlers"
	"github.com/suPer8Hu/defi-sim/internal/logger"
	"github.com/suPer8Hu/defi-sim/internal/market"
	"github.com/suPer8Hu/defi-sim/internal/metrics"
	"github.com/suPer8Hu/defi-sim/internal/random"
	"github.com/suPer8Hu/defi-sim/internal/scenario"
	"github.com/suPer8Hu/defi-sim/internal/simulation"
	"github.com/suPer8Hu/defi-sim/internal/store/rabbitmq"
	"github.com/suPer8Hu/defi-sim/internal/store/redisstore"
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

	if err := run(cfg, log); err != nil {
		log.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.Connect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(gdb) }()

	if err := gdb.WithContext(ctx).AutoMigrate(&scenario.Query{}, &simulation.Simulation{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	// optional seed lock
	var locker scenario.Locker
	if cfg.RedisAddr != "" {
		rds, err := redisstore.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rds.Close()
		locker = rds
	}

	scenarios := scenario.NewService(scenario.NewRepo(gdb), locker, cfg.SeedLockTTL, log.Named("scenario"))
	if _, err := scenarios.SeedIfEmpty(ctx, scenario.Catalog()); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	// optional simulation events
	var publisher simulation.EventPublisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
		if err != nil {
			return fmt.Errorf("rabbit publisher: %w", err)
		}
		defer pub.Close()
		publisher = pub
	}

	src, err := random.NewFromEntropy()
	if err != nil {
		return err
	}

	m := metrics.New()
	runner := simulation.NewRunner(simulation.NewRepo(gdb), scenarios, src, publisher, m, log.Named("simulation"))
	gen := market.NewGenerator(src, time.Now)
	h := handlers.NewHandler(scenarios, runner, gen, m, log.Named("http"))

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(h, m, log.Named("http")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("db_driver", cfg.DBDriver),
			zap.Bool("seed_lock", locker != nil),
			zap.Bool("events", publisher != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}
