package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/vladimiradmaev/quantified-self/internal/api"
	"github.com/vladimiradmaev/quantified-self/internal/api/handlers"
	"github.com/vladimiradmaev/quantified-self/internal/config"
	"github.com/vladimiradmaev/quantified-self/internal/database"
	apperrors "github.com/vladimiradmaev/quantified-self/internal/errors"
	"github.com/vladimiradmaev/quantified-self/internal/logger"
	"github.com/vladimiradmaev/quantified-self/internal/repository"
	"github.com/vladimiradmaev/quantified-self/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Info("Configuration loaded successfully", "environment", cfg.Environment)

	if cfg.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg.DB, cfg.Logger.Level)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	store := repository.NewPostgresDB(db)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	// Initialize services
	deps := handlers.Dependencies{
		FoodSvc: services.NewFoodService(repository.NewFoodRepository(db)),
		DaySvc:  services.NewDayService(repository.NewDayRepository(db)),
		MealSvc: services.NewMealService(repository.NewMealRepository(db)),
		Errors:  apperrors.NewHandler(logger.GetLogger()),
	}
	logger.Info("Services initialized successfully")

	server := api.NewServer(cfg.HTTP, deps, store)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("Server stopped with error", "error", err)
	}
	logger.Info("Server stopped gracefully")
}
