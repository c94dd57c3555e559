package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App     AppConfig
	Log     LogConfig
	Auth    AuthConfig
	Scanner ScannerConfig
	Metrics MetricsConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

type LogConfig struct {
	Level      string
	Format     string
	OutputPath string
}

// AuthConfig carries the single manager identity and the shared secret.
// The password is hashed once at startup; only the hash is kept around.
type AuthConfig struct {
	ManagerID      string
	ManagerName    string
	ManagerContact string
	Password       string
}

type ScannerConfig struct {
	Interval time.Duration
}

type MetricsConfig struct {
	Enabled    bool
	ListenAddr string
}

type TracingConfig struct {
	Enabled      bool
	ServiceName  string
	OTLPEndpoint string
	SampleRate   float64
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "pharmatrack"),
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "0.0.0"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "console"),
			OutputPath: getEnv("LOG_OUTPUT", "stderr"),
		},
		Auth: AuthConfig{
			ManagerID:      getEnv("MANAGER_ID", "EMP1"),
			ManagerName:    getEnv("MANAGER_NAME", "Maliha"),
			ManagerContact: getEnv("MANAGER_CONTACT", "maliha@gmail.com"),
			Password:       getEnv("MANAGER_PASSWORD", "pass123"),
		},
		Scanner: ScannerConfig{
			Interval: getEnvDuration("EXPIRY_SCAN_INTERVAL", 20*time.Second),
		},
		Metrics: MetricsConfig{
			Enabled:    getEnvBool("METRICS_ENABLED", false),
			ListenAddr: getEnv("METRICS_ADDR", "127.0.0.1:9464"),
		},
		Tracing: TracingConfig{
			Enabled:      getEnvBool("TRACING_ENABLED", false),
			ServiceName:  getEnv("TRACING_SERVICE_NAME", "pharmatrack"),
			OTLPEndpoint: getEnv("OTLP_ENDPOINT", "localhost:4318"),
			SampleRate:   getEnvFloat("TRACING_SAMPLE_RATE", 1.0),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	var errs []string

	if cfg.Auth.Password == "" {
		errs = append(errs, "MANAGER_PASSWORD must not be empty")
	}
	if cfg.Scanner.Interval <= 0 {
		errs = append(errs, "EXPIRY_SCAN_INTERVAL must be positive")
	}
	if cfg.Metrics.Enabled && cfg.Metrics.ListenAddr == "" {
		errs = append(errs, "METRICS_ADDR is required when metrics are enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
