package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Service holds HTTP server settings.
type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
}

// DuckDB holds settings for the embedded analytical store.
type DuckDB struct {
	Path         string `envconfig:"DUCKDB_PATH" default:"duckmart.db"`
	ReadOnly     bool   `envconfig:"DUCKDB_READ_ONLY" default:"false"`
	MaxOpenConns int    `envconfig:"DUCKDB_MAX_OPEN_CONNS" default:"4"`
}

// Segmentation holds the limits handed to the validator and compiler.
// These are explicit construction-time values, not ambient globals, so
// tests can vary them per case.
type Segmentation struct {
	MaxLimit int `envconfig:"SEGMENTATION_MAX_LIMIT" default:"1000"`
}

// Seed holds settings for the synthetic data loader.
type Seed struct {
	Users           int   `envconfig:"SEED_USERS" default:"10000"`
	Events          int   `envconfig:"SEED_EVENTS" default:"50000"`
	BatchSizeMax    int   `envconfig:"SEED_BATCH_SIZE_MAX" default:"2000"`
	BatchTimeoutSec int   `envconfig:"SEED_BATCH_TIMEOUT_SEC" default:"10"`
	RandomSeed      int64 `envconfig:"SEED_RANDOM_SEED" default:"0"`
}

type Config struct {
	Service      Service
	DuckDB       DuckDB
	Segmentation Segmentation
	Seed         Seed
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
