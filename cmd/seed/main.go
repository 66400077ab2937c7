package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/duckmart/segmentation-service/internal/config"
	"github.com/duckmart/segmentation-service/internal/domain"
	"github.com/duckmart/segmentation-service/internal/logger"
	"github.com/duckmart/segmentation-service/internal/repository/duckdb"
	"github.com/duckmart/segmentation-service/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment, "segmentation-seed")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting seed run",
		zap.String("environment", cfg.Service.Environment),
		zap.Int("users", cfg.Seed.Users),
		zap.Int("events", cfg.Seed.Events))

	ctx := context.Background()

	// Seeding always needs a writable database
	cfg.DuckDB.ReadOnly = false

	dbClient, err := duckdb.NewClient(ctx, &cfg.DuckDB, log)
	if err != nil {
		log.Fatal("Failed to open DuckDB database", zap.Error(err))
	}
	defer func(dbClient *duckdb.Client) {
		if err := dbClient.Close(); err != nil {
			log.Error("Failed to close DuckDB database", zap.Error(err))
		}
	}(dbClient)

	repo := duckdb.NewRepository(dbClient, log)

	if err := repo.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize schema", zap.Error(err))
	}

	generator := seed.NewGenerator(cfg.Seed.RandomSeed)

	// Load user attributes in chunks
	users := generator.Users(cfg.Seed.Users)
	insertedUsers := 0
	for start := 0; start < len(users); start += cfg.Seed.BatchSizeMax {
		end := start + cfg.Seed.BatchSizeMax
		if end > len(users) {
			end = len(users)
		}
		n, err := repo.InsertUsers(ctx, users[start:end])
		if err != nil {
			log.Fatal("Failed to insert users", zap.Error(err))
		}
		insertedUsers += n
	}
	log.Info("User attributes loaded", zap.Int("count", insertedUsers))

	// Stream events through the batching writer
	eventChan := make(chan *domain.Event, 100)
	writer := seed.NewWriter(repo, seed.WriterConfig{
		MaxBatchSize: cfg.Seed.BatchSizeMax,
		FlushTimeout: time.Duration(cfg.Seed.BatchTimeoutSec) * time.Second,
	}, log)

	go generator.Events(eventChan, cfg.Seed.Users, cfg.Seed.Events)

	insertedEvents, err := writer.Start(ctx, eventChan)
	if err != nil {
		log.Fatal("Failed to load events", zap.Error(err))
	}

	log.Info("Seed run completed",
		zap.Int("users", insertedUsers),
		zap.Int("events", insertedEvents))
}
