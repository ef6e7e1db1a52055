package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Storage drivers
const (
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	BotToken       string         `envconfig:"BOT_TOKEN" required:"true"`
	OperatorID     int64          `envconfig:"SUPER_ADMIN" required:"true"`
	StorageDriver  string         `envconfig:"STORAGE_DRIVER" default:"postgres"`
	Database       DatabaseConfig `envconfig:"DB"`
	RedisURL       string         `envconfig:"REDIS_URL"`
	Port           string         `envconfig:"PORT" default:"8080"`
	RequestTimeout time.Duration  `envconfig:"REQUEST_TIMEOUT" default:"15s"`
	StateTTL       time.Duration  `envconfig:"STATE_TTL" default:"30m"`
}

// DatabaseConfig holds database connection settings read from DB_HOST, DB_PORT,
// DB_NAME, DB_USER and DB_PASSWORD. Fields must stay untagged: a tagged field
// is also read from its bare name (PORT, USER).
type DatabaseConfig struct {
	Host     string `default:"localhost"`
	Port     string `default:"5432"`
	Name     string `default:"kinogate"`
	User     string `default:"kinogate"`
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values envconfig cannot express
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.OperatorID == 0 {
		return fmt.Errorf("SUPER_ADMIN is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	switch c.StorageDriver {
	case StoragePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case StorageRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// HTTPAddr returns the listen address of the liveness server
func (c *Config) HTTPAddr() string {
	return ":" + c.Port
}
