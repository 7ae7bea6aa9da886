// Package config loads application configuration from environment variables.
package config

import (
	"context"
	"fmt"

	// Load .env file into environments.
	_ "github.com/joho/godotenv/autoload"
	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting of the job board server.
type Config struct {
	Port      string `env:"PORT, default=8080"`
	Env       string `env:"ENV, default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// AllowOrigins is a comma separated list of origins allowed by CORS.
	AllowOrigins []string `env:"ALLOW_ORIGIN, default=http://localhost:5173"`

	// StorageBackend selects the storage implementation: "memory" or "postgres".
	StorageBackend string `env:"STORAGE_BACKEND, default=memory"`

	// SeedSampleJobs controls whether the sample job set is loaded at startup.
	SeedSampleJobs bool `env:"SEED_SAMPLE_JOBS, default=true"`

	RateLimitRPS int `env:"RATE_LIMIT_REQUESTS_PER_SECOND, default=5"`

	DB DBConfig
}

// DBConfig holds the configuration parameters for connecting to the
// postgres backend. Constr, when set, wins over the individual fields.
type DBConfig struct {
	Host     string `env:"DB_HOST, default=localhost"`
	Port     string `env:"DB_PORT, default=5432"`
	User     string `env:"DB_USER, default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME, default=jobboard"`
	SSLMode  string `env:"DB_SSLMODE, default=disable"`
	Constr   string `env:"DB_CONNECTION_STR"`
}

// DSN builds the postgres connection string. Constr wins when set.
func (d DBConfig) DSN() string {
	if d.Constr != "" {
		return d.Constr
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
