package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/elarca/treasury/docs"
	"github.com/elarca/treasury/internal/chapter"
	"github.com/elarca/treasury/internal/config"
	"github.com/elarca/treasury/internal/database"
	"github.com/elarca/treasury/internal/debt"
	"github.com/elarca/treasury/internal/distribution"
	mw "github.com/elarca/treasury/pkg/middleware"
)

// @title           El Arca Treasury API
// @version         1.0
// @description     Treasury service for the federation: proportional debt distribution across chapters, payment proof review, chapter roster management.
// @BasePath        /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database successfully")

	// Chapter feature
	chapterRepo := chapter.NewRepository(db)
	chapterService := chapter.NewService(chapterRepo)
	chapterHandler := chapter.NewHandler(chapterService)

	// Debt feature
	debtRepo := debt.NewRepository(db)
	debtService := debt.NewService(debtRepo)
	debtHandler := debt.NewHandler(debtService)

	// Distribution feature (chapter repo doubles as the roster source)
	distributionRepo := distribution.NewRepository(db)
	distributionService := distribution.NewService(chapterRepo, distributionRepo)
	distributionHandler := distribution.NewHandler(distributionService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.ActorMiddleware)

		// Chapter and distribution management is admin-only
		r.With(mw.RequireAdmin).Mount("/chapters", chapterHandler.Routes())
		r.With(mw.RequireAdmin).Mount("/distributions", distributionHandler.Routes())

		// Debt review: presidents upload proofs, admins decide
		r.Mount("/debts", debtHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
