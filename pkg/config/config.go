// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tidycheck/tidycheck/pkg/classify"
)

// Config represents the processing configuration
type Config struct {
	// Classification heuristics
	DateThreshold    float64
	NumericThreshold float64
	SampleSize       int

	// Cleaning
	WorkerPoolSize int // 0 means use runtime.NumCPU()

	// Logging
	LogLevel  string
	LogFormat string
}

// Default returns the configuration with the fixed design constants.
func Default() *Config {
	return &Config{
		DateThreshold:    classify.DefaultDateThreshold,
		NumericThreshold: classify.DefaultNumericThreshold,
		SampleSize:       classify.DefaultSampleSize,
		WorkerPoolSize:   0,
		LogLevel:         "info",
		LogFormat:        "json",
	}
}

// LoadConfig loads configuration from environment variables, reading an
// optional .env file first. Unset variables keep their defaults.
func LoadConfig() (*Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	cfg := &Config{
		DateThreshold:    getEnvAsFloat("DATE_THRESHOLD", classify.DefaultDateThreshold),
		NumericThreshold: getEnvAsFloat("NUMERIC_THRESHOLD", classify.DefaultNumericThreshold),
		SampleSize:       getEnvAsInt("SAMPLE_SIZE", classify.DefaultSampleSize),
		WorkerPoolSize:   getEnvAsInt("WORKER_POOL_SIZE", 0),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.DateThreshold <= 0 || c.DateThreshold >= 1 {
		return errors.New("date threshold must be between 0 and 1")
	}

	if c.NumericThreshold <= 0 || c.NumericThreshold >= 1 {
		return errors.New("numeric threshold must be between 0 and 1")
	}

	if c.SampleSize <= 0 {
		return errors.New("sample size must be positive")
	}

	if c.WorkerPoolSize < 0 {
		return errors.New("worker pool size cannot be negative")
	}

	return nil
}

// BuildLogger constructs a zap logger honoring LogLevel and LogFormat.
// Unknown levels fall back to info; any format other than "console" gets
// the JSON production encoding.
func (c *Config) BuildLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if c.LogFormat == "console" {
		zcfg.Encoding = "console"
	}
	return zcfg.Build()
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
