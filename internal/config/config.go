package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// DB_DRIVER is "sqlite" or "mysql".
	// mysql DSN demo：
	// app:apppass@tcp(127.0.0.1:3306)/defi_sim?charset=utf8mb4&parseTime=true&loc=Local
	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBDSN    string `env:"DB_DSN" envDefault:"file:defi.db?_pragma=busy_timeout(5000)"`

	// redis, empty addr disables the seed lock
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SeedLockTTL   time.Duration `env:"SEED_LOCK_TTL" envDefault:"30s"`

	// rabbitMQ, empty url disables simulation events
	RabbitURL   string `env:"RABBIT_URL"`
	RabbitQueue string `env:"RABBIT_QUEUE" envDefault:"simulation_events"`

	// event worker pool size, clamped to [1,50]
	WorkerConcurrency int `env:"WORKER_CONCURRENCY" envDefault:"2"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	switch cfg.DBDriver {
	case "":
		cfg.DBDriver = "sqlite"
	case "sqlite", "mysql":
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER=%q", cfg.DBDriver)
	}
	if cfg.WorkerConcurrency <= 0 {
		cfg.WorkerConcurrency = 2
	}
	if cfg.WorkerConcurrency > 50 {
		cfg.WorkerConcurrency = 50
	}
	return cfg, nil
}
