package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/duckmart/segmentation-service/docs"
	"github.com/duckmart/segmentation-service/internal/config"
	"github.com/duckmart/segmentation-service/internal/handler"
	"github.com/duckmart/segmentation-service/internal/logger"
	"github.com/duckmart/segmentation-service/internal/repository/duckdb"
	"github.com/duckmart/segmentation-service/internal/segment"
	"github.com/duckmart/segmentation-service/internal/service"
)

// @title DuckMart User Segmentation API
// @version 1.0
// @description API for segmenting users by attribute and event filters
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment, "segmentation-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	// Initialize DuckDB client
	dbClient, err := duckdb.NewClient(ctx, &cfg.DuckDB, log)
	if err != nil {
		log.Fatal("Failed to open DuckDB database", zap.Error(err))
	}
	defer func(dbClient *duckdb.Client) {
		if err := dbClient.Close(); err != nil {
			log.Error("Failed to close DuckDB database", zap.Error(err))
		}
	}(dbClient)

	// Initialize repository
	repo := duckdb.NewRepository(dbClient, log)

	// Initialize segmentation service
	segmentService := service.NewSegmentationService(
		segment.DefaultSchema(), cfg.Segmentation.MaxLimit, repo, log)

	// Initialize handler
	h := handler.NewHandler(segmentService, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
