package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/dhruvkap/splitit/docs"
	"github.com/dhruvkap/splitit/internal/config"
	"github.com/dhruvkap/splitit/internal/database"
	"github.com/dhruvkap/splitit/internal/expense"
	"github.com/dhruvkap/splitit/internal/friend"
	"github.com/dhruvkap/splitit/internal/ledger/split"
	"github.com/dhruvkap/splitit/internal/payment"
	"github.com/dhruvkap/splitit/internal/report"
	mw "github.com/dhruvkap/splitit/pkg/middleware"
)

// @title        SplitIt API
// @version      1.0
// @description  Shared-expense ledger for a group trip.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	trip, err := config.LoadTrip(cfg.TripFile)
	if err != nil {
		log.Fatalf("Failed to load trip config: %v", err)
	}
	log.Printf("Loaded trip %q with %d categories", trip.Name, len(trip.Categories))

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Connected to database successfully")

	// Split Strategy Factory
	splitFactory := split.NewFactory()

	// Friend feature (trip roster)
	friendRepo := friend.NewRepository(db)
	friendService := friend.NewService(friendRepo)
	friendHandler := friend.NewHandler(friendService)

	// Expense feature (with split factory injected)
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, friendRepo, splitFactory, trip)
	expenseHandler := expense.NewHandler(expenseService)

	// Payment feature
	paymentRepo := payment.NewRepository(db)
	paymentService := payment.NewService(paymentRepo, friendRepo)
	paymentHandler := payment.NewHandler(paymentService)

	// Report feature (balances, settle-up plan, dashboard)
	reportService := report.NewService(friendRepo, expenseRepo, paymentRepo, trip)
	reportHandler := report.NewHandler(reportService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.Viewer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/friends", friendHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/payments", paymentHandler.Routes())
		r.Mount("/reports", reportHandler.Routes())
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
