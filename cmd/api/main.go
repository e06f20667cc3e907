package main

import (
	"context"
	"log"
	"time"

	"github.com/PavaniTiago/sleep-coach-api/internal/application/usecases"
	"github.com/PavaniTiago/sleep-coach-api/internal/config"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/assessment"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/auth"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/database"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/llm"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/sleep-coach-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/sleep-coach-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load environment variables
	cfg, loaded, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("❌ Error creating logger: %v", err)
	}
	defer appLog.Sync()

	if !loaded {
		appLog.Warn("no .env file found, using system environment variables")
	}
	if err := cfg.Validate(); err != nil {
		appLog.Fatal("invalid configuration", "error", err)
	}

	// Initialize database
	db, err := database.SetupDatabase(cfg.DatabaseURL, cfg.Timezone)
	if err != nil {
		appLog.Fatal("error setting up database", "error", err)
	}

	catalog, err := assessment.LoadCatalog()
	if err != nil {
		appLog.Fatal("error loading assessment catalog", "error", err)
	}

	verifier, err := auth.NewVerifier(cfg.SupabaseJWTSecret, cfg.SupabaseURL, cfg.SupabaseAnonKey)
	if err != nil {
		appLog.Fatal("error configuring auth", "error", err)
	}

	// Sem chave o coach responde 500 CONFIGURATION_ERROR
	var model usecases.ChatModel
	if cfg.GoogleAIAPIKey != "" {
		gemini, err := llm.NewGeminiClient(context.Background(), cfg.GoogleAIAPIKey, cfg.GeminiModel)
		if err != nil {
			appLog.Fatal("error creating gemini client", "error", err)
		}
		model = gemini
	} else {
		appLog.Warn("GOOGLE_AI_API_KEY not set, coach chat disabled")
	}

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		// Desabilitado modo Prefork pois causa instabilidade no container
		Prefork: false,
		// Set reasonable body limit
		BodyLimit: 1 * 1024 * 1024, // 1MB
		// Configure server for better performance
		ReadTimeout: 5 * time.Second,
		// Gemini pode levar alguns segundos, com retry
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app, cfg.CORSOriginList(), appLog)

	// Setup routes
	routes.SetupRoutes(app, routes.Dependencies{
		DB:       db,
		Catalog:  catalog,
		Verifier: verifier,
		Model:    model,
		Config:   cfg,
		Log:      appLog,
	})

	// Start server
	appLog.Info("server is running", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}
