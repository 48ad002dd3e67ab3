package config // package config loads application configuration from environment variables

import (
    "fmt"
    "time"

    "github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable; defaults allow a local run against SQLite with
// no variables set at all.
type Config struct {
    Env          string      `env:"APP_ENV" envDefault:"dev"`              // application environment (dev, test, production)
    Port         string      `env:"APP_PORT" envDefault:"5000"`            // HTTP port to listen on
    ErrorLogPath string      `env:"ERROR_LOG_PATH" envDefault:"error.log"` // file receiving error-level log lines
    RabbitMQURL  string      `env:"RABBITMQ_URL"`                          // broker for domain events; empty disables publishing
    DB           DBConfig    `envPrefix:"DB_"`                             // data store settings
    Redis        RedisConfig `envPrefix:"REDIS_"`                          // rate limiter backend
}

// DBConfig describes the data store.  Driver selects the SQL dialect:
// "mysql" for deployments, "sqlite" for local development and tests.
type DBConfig struct {
    Driver          string        `env:"DRIVER" envDefault:"sqlite"`
    User            string        `env:"USER"`
    Pass            string        `env:"PASS"`
    Host            string        `env:"HOST" envDefault:"127.0.0.1"`
    Port            string        `env:"PORT" envDefault:"3306"`
    Name            string        `env:"NAME" envDefault:"fyyur"`
    SQLitePath      string        `env:"SQLITE_PATH" envDefault:"fyyur.db"`
    MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
    ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
}

// Load reads configuration values from the environment and returns a
// Config.  Unknown drivers are rejected here so that main fails before
// opening any connection.
func Load() (Config, error) {
    var cfg Config
    if err := env.Parse(&cfg); err != nil {
        return Config{}, fmt.Errorf("parse env: %w", err)
    }
    switch cfg.DB.Driver {
    case "mysql", "sqlite":
    default:
        return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
    }
    if cfg.DB.MaxOpenConns < 1 {
        cfg.DB.MaxOpenConns = 1
    }
    return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
    return c.Env == "production" || c.Env == "prod"
}

// IsDevelopment reports whether debug-level logging should be on.
func (c Config) IsDevelopment() bool {
    return c.Env == "dev" || c.Env == "development"
}
