// Package main provides the main entry point for the Curio content and collection API
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/curioapp/curio-server/app/handlers"
	"github.com/curioapp/curio-server/app/middleware"
	"github.com/curioapp/curio-server/app/router"
	"github.com/curioapp/curio-server/app/services"
	businessflow "github.com/curioapp/curio-server/business_flow"
	"github.com/curioapp/curio-server/config"
	"github.com/curioapp/curio-server/database"
	"github.com/curioapp/curio-server/repository"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Application represents the main application structure
type Application struct {
	router router.Router
	config *config.Config
}

func main() {
	log.Println("Starting Curio API...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg.Logging)

	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app.router.SetupRoutes()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := app.router.Start(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.router.GetApp().ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// setupLogging routes the standard logger to rotating files when configured
func setupLogging(cfg config.LoggingConfig) {
	if cfg.Output == "stdout" {
		return
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	switch cfg.Output {
	case "file":
		log.SetOutput(rotator)
	case "both":
		log.SetOutput(io.MultiWriter(os.Stdout, rotator))
	}
}

// initializeApplication wires repositories, flows, handlers, and the router
func initializeApplication(cfg *config.Config) (*Application, error) {
	// Initialize database
	db, err := database.Connect(database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Name:            cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		return nil, err
	}

	// Apply pending schema migrations
	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if dirty {
		return nil, fmt.Errorf("database schema is dirty at version %d", version)
	}
	log.Printf("Database schema at version %d", version)

	// Initialize repositories
	itemRepo := repository.NewCollectionItemRepository(db)
	tagRepo := repository.NewTagRepository(db)
	itemTagRepo := repository.NewItemTagRepository(db)
	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	postCategoryRepo := repository.NewPostCategoryRepository(db)

	// Initialize token service
	tokenService, err := services.NewTokenService(
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.JWT.UseRSAKeys,
		cfg.JWT.PublicKey,
		cfg.JWT.SecretKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	log.Printf("Token service initialized with issuer: %s, audience: %s", cfg.JWT.Issuer, cfg.JWT.Audience)

	// Initialize flows
	collectionFlow := businessflow.NewCollectionFlow(itemRepo)
	adminCollectionFlow := businessflow.NewAdminCollectionFlow(itemRepo, tagRepo, itemTagRepo, db)
	tagFlow := businessflow.NewTagFlow(tagRepo)
	adminTagFlow := businessflow.NewAdminTagFlow(tagRepo)
	postFlow := businessflow.NewPostFlow(postRepo)
	adminPostFlow := businessflow.NewAdminPostFlow(postRepo, postCategoryRepo, db)
	categoryFlow := businessflow.NewCategoryFlow(categoryRepo)
	adminCategoryFlow := businessflow.NewAdminCategoryFlow(categoryRepo)

	// Initialize middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	h := router.Handlers{
		Collection:      handlers.NewCollectionHandler(collectionFlow),
		AdminCollection: handlers.NewAdminCollectionHandler(adminCollectionFlow),
		Tag:             handlers.NewTagHandler(tagFlow),
		AdminTag:        handlers.NewAdminTagHandler(adminTagFlow),
		Post:            handlers.NewPostHandler(postFlow),
		AdminPost:       handlers.NewAdminPostHandler(adminPostFlow),
		Category:        handlers.NewCategoryHandler(categoryFlow),
		AdminCategory:   handlers.NewAdminCategoryHandler(adminCategoryFlow),
	}

	r := router.NewFiberRouter(h, authMiddleware, cfg)

	return &Application{
		router: r,
		config: cfg,
	}, nil
}
