package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ideaforge/ideaforge-backend/internal/platform/envutil"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

type Postgres struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Name,
	)
}

type Config struct {
	Env         string   `yaml:"env"`
	HTTPPort    string   `yaml:"http_port"`
	CORSOrigins []string `yaml:"cors_origins"`

	Postgres  Postgres `yaml:"postgres"`
	RedisAddr string   `yaml:"redis_addr"`

	// TxTimeoutSeconds bounds every workflow transaction.
	TxTimeoutSeconds int `yaml:"tx_timeout_seconds"`
}

func (c Config) TxTimeout() time.Duration {
	return time.Duration(c.TxTimeoutSeconds) * time.Second
}

// Load reads an optional YAML file named by CONFIG_PATH, then applies
// environment overrides. Env always wins over the file.
func Load(log *logger.Logger) (Config, error) {
	cfg := Config{
		Env:      "development",
		HTTPPort: "8080",
		CORSOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		Postgres: Postgres{
			Host: "localhost",
			Port: "5432",
			User: "postgres",
			Name: "ideaforge",
		},
		TxTimeoutSeconds: 10,
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_PATH")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
		if log != nil {
			log.Info("loaded config file", "path", path)
		}
	}

	cfg.Env = envutil.GetEnv("APP_ENV", cfg.Env, log)
	cfg.HTTPPort = envutil.GetEnv("HTTP_PORT", cfg.HTTPPort, log)
	cfg.Postgres.Host = envutil.GetEnv("POSTGRES_HOST", cfg.Postgres.Host, log)
	cfg.Postgres.Port = envutil.GetEnv("POSTGRES_PORT", cfg.Postgres.Port, log)
	cfg.Postgres.User = envutil.GetEnv("POSTGRES_USER", cfg.Postgres.User, log)
	cfg.Postgres.Password = envutil.GetEnv("POSTGRES_PASSWORD", cfg.Postgres.Password, log)
	cfg.Postgres.Name = envutil.GetEnv("POSTGRES_NAME", cfg.Postgres.Name, log)
	cfg.RedisAddr = envutil.GetEnv("REDIS_ADDR", cfg.RedisAddr, log)
	cfg.TxTimeoutSeconds = envutil.GetEnvAsInt("TX_TIMEOUT_SECONDS", cfg.TxTimeoutSeconds, log)

	if cfg.TxTimeoutSeconds <= 0 {
		return cfg, fmt.Errorf("tx_timeout_seconds must be positive, got %d", cfg.TxTimeoutSeconds)
	}
	return cfg, nil
}
