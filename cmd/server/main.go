package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"designvault/internal/auth"
	"designvault/internal/config"
	"designvault/internal/handler"
	"designvault/internal/middleware"
	"designvault/internal/repository/postgres"
	"designvault/internal/seed"
	"designvault/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.IsDev() {
		logLevel = slog.LevelDebug
	}

	var logOutput io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, 10)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create JWT verifier. Without a JWKS URL the auth middleware falls
	// back to the configured dev identity.
	var jwtVerifier auth.JWTVerifier
	if cfg.AuthJWKSURL != "" {
		var err error
		jwtVerifier, err = auth.NewJWTVerifier(cfg.AuthJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		defer jwtVerifier.Close()
	} else {
		logger.Warn("AUTH_JWKS_URL not set, requests run as the dev user", "dev_user_id", cfg.DevUserID)
	}

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Ensure schema exists
	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.Migrate(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	itemRepo := postgres.NewItemRepository(repoConfig)
	categoryRepo := postgres.NewCategoryRepository(repoConfig)
	assetRepo := postgres.NewLooseAssetRepository(repoConfig)
	gradeRepo := postgres.NewGradeRepository(repoConfig)
	sessionRepo := postgres.NewSessionStatRepository(repoConfig)
	profileRepo := postgres.NewUserProfileRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create services
	itemService := service.NewItemService(itemRepo, categoryRepo, logger)
	categoryService := service.NewCategoryService(categoryRepo, itemRepo, logger)
	importExportService := service.NewImportExportService(itemRepo, txManager, logger)
	assetService := service.NewAssetService(assetRepo, logger)
	studyService := service.NewStudyService(gradeRepo, sessionRepo, itemRepo, logger)
	profileService := service.NewProfileService(profileRepo, logger)

	// Create handlers
	itemHandler := handler.NewItemHandler(itemService, logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, logger)
	importExportHandler := handler.NewImportExportHandler(importExportService, logger)
	assetHandler := handler.NewAssetHandler(assetService, logger)
	studyHandler := handler.NewStudyHandler(studyService, logger)
	profileHandler := handler.NewProfileHandler(profileService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /api/health", itemHandler.HealthCheck)

	// Item routes
	mux.HandleFunc("GET /api/items", itemHandler.ListItems)
	mux.HandleFunc("POST /api/items", itemHandler.CreateItem)
	mux.HandleFunc("GET /api/items/export", importExportHandler.Export) // Must come before {id} route
	mux.HandleFunc("POST /api/items/import", importExportHandler.Import)
	mux.HandleFunc("GET /api/items/{id}", itemHandler.GetItem)
	mux.HandleFunc("PUT /api/items/{id}", itemHandler.UpdateItem)
	mux.HandleFunc("DELETE /api/items/{id}", itemHandler.DeleteItem)

	// Asset routes
	mux.HandleFunc("POST /api/assets/ingest", assetHandler.IngestAsset)
	mux.HandleFunc("GET /api/assets", assetHandler.ListAssets)

	// Category routes
	mux.HandleFunc("GET /api/categories", categoryHandler.ListCategories)
	mux.HandleFunc("GET /api/categories/tree", categoryHandler.GetCategoryTree)
	mux.HandleFunc("POST /api/categories", categoryHandler.CreateCategory)
	mux.HandleFunc("PUT /api/categories/{id}", categoryHandler.UpdateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", categoryHandler.DeleteCategory)

	// Flashcard routes
	mux.HandleFunc("POST /api/flashcards/grade", studyHandler.Grade)
	mux.HandleFunc("GET /api/flashcards/due", studyHandler.DueItems)
	mux.HandleFunc("GET /api/flashcards/progress/{itemId}", studyHandler.Progress)
	mux.HandleFunc("DELETE /api/flashcards/progress", studyHandler.ResetProgress)
	mux.HandleFunc("POST /api/flashcards/sessions", studyHandler.CreateSession)
	mux.HandleFunc("GET /api/flashcards/sessions/stats", studyHandler.SessionStats)

	// Profile routes
	mux.HandleFunc("GET /api/users/me/profile", profileHandler.GetProfile)
	mux.HandleFunc("PATCH /api/users/me/profile", profileHandler.UpdateProfile)

	// Dev-only seed route
	if cfg.IsDev() {
		seeder := seed.NewSeeder(categoryService, itemService, logger)
		seedHandler := handler.NewSeedHandler(seeder, logger)
		mux.HandleFunc("POST /api/dev/seed", seedHandler.Seed)
		logger.Warn("Dev route registered: POST /api/dev/seed (sample data)")
	}

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	h = middleware.AuthMiddleware(jwtVerifier, cfg.DevUserID)(h)
	h = middleware.Recovery(logger)(h)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
