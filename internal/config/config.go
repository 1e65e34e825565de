package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config represents the full application configuration surface.
type Config struct {
	Storage StorageConfig
	Log     LogConfig
}

// StorageConfig holds the XML file persistence options.
type StorageConfig struct {
	FilePath     string
	AutosaveCron string
	SeedDemo     bool
}

// LogConfig holds logger options.
type LogConfig struct {
	Level string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine when configuration comes from the environment.
		_ = godotenv.Load()
	}

	seed, err := getenvBool("WAREHOUSE_SEED_DEMO", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Storage: StorageConfig{
			FilePath:     getenvWithDefault("WAREHOUSE_FILE", "Warehouse.xml"),
			AutosaveCron: getenvWithDefault("WAREHOUSE_AUTOSAVE_CRON", "*/5 * * * *"),
			SeedDemo:     seed,
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "warn"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Storage.FilePath == "" {
		return errors.New("WAREHOUSE_FILE must be provided")
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getenvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}
