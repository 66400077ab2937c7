package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
	"go.uber.org/zap"

	"github.com/duckmart/segmentation-service/internal/config"
)

// Client wraps the embedded DuckDB database handle.
type Client struct {
	db     *sql.DB
	config *config.DuckDB
	log    *zap.Logger
}

// NewClient opens the DuckDB file with the given configuration.
func NewClient(ctx context.Context, config *config.DuckDB, log *zap.Logger) (*Client, error) {
	dsn := config.Path
	if config.ReadOnly {
		dsn += "?access_mode=read_only"
	}

	log.Info("Opening DuckDB database",
		zap.String("path", config.Path),
		zap.Bool("readOnly", config.ReadOnly))

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB database: %w", err)
	}

	// Each connection is a session against the same embedded database;
	// a small pool is enough for concurrent read requests.
	db.SetMaxOpenConns(config.MaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("Failed to close DuckDB after ping failure", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("failed to ping DuckDB database: %w", err)
	}

	log.Info("DuckDB database opened successfully")

	return &Client{db: db, config: config, log: log}, nil
}

// DB returns the underlying database handle
func (c *Client) DB() *sql.DB {
	return c.db
}

// Close closes the DuckDB database
func (c *Client) Close() error {
	c.log.Info("Closing DuckDB database")
	if err := c.db.Close(); err != nil {
		c.log.Error("Error closing DuckDB database", zap.Error(err))
		return err
	}
	return nil
}
