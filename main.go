package main

import (
	"os"

	"go.uber.org/zap"

	"sentiment-service/internal/config"
	"sentiment-service/internal/repository"
	"sentiment-service/internal/sentiment"
	"sentiment-service/internal/server"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Load the model artifact. A missing artifact is not fatal: item CRUD
	// stays available and /predict answers 503 until one is mounted.
	model, err := sentiment.LoadModel(cfg.Model.Path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Model artifact not found, starting without a model",
				zap.String("path", cfg.Model.Path))
		} else {
			logger.Fatal("Failed to load model artifact", zap.Error(err))
		}
	} else {
		logger.Info("Model artifact loaded", zap.String("path", cfg.Model.Path))
	}
	holder := sentiment.NewHolder(model, cfg.Model.Path)

	// Initialize repositories
	itemRepo := repository.NewItemRepository(db, logger)

	// Initialize and run the server
	srv := server.NewServer(itemRepo, holder, logger)
	srv.Run(cfg.Server.Port)
}
