package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/thanwa-dev/priceboard/internal/config"
	"github.com/thanwa-dev/priceboard/internal/db"
	"github.com/thanwa-dev/priceboard/internal/handlers"
	mw "github.com/thanwa-dev/priceboard/internal/middleware"
	"github.com/thanwa-dev/priceboard/internal/repo"
	"github.com/thanwa-dev/priceboard/internal/session"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.Env == "prod" && cfg.SessionSecret == "dev-insecure-secret" {
		log.Fatal("SESSION_SECRET must be set in prod")
	}

	database, err := db.Connect(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBUser,
		cfg.DBPass,
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Successfully connected to the database")

	if err := db.Run(db.URL(cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBUser, cfg.DBPass)); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	priceRepo := repo.NewPriceRepo(database)
	adminRepo := repo.NewAdminRepo(database)
	sessions := session.NewManager(cfg.SessionSecret, cfg.TLSCertFile != "" && cfg.TLSKeyFile != "")

	admin := &handlers.AdminHandler{
		Prices:   priceRepo,
		Admins:   adminRepo,
		Sessions: sessions,
		RateTHB:  cfg.ExchangeRateTHB,
	}
	feed := &handlers.FeedHandler{
		Prices:  priceRepo,
		RateTHB: cfg.ExchangeRateTHB,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(mw.RequestLog)
	r.Use(mw.Recoverer)
	r.Use(mw.Metrics)
	r.Use(mw.SecurityHeaders(cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""))
	r.Use(mw.MaxBytes(mw.DefaultMaxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Admin console: GET renders current state, POST dispatches one action.
	r.Get("/admin", admin.Show)
	r.Post("/admin", admin.Dispatch)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin", http.StatusFound)
	})

	// Public price feed.
	r.Get("/prices", feed.Get)

	addr := ":" + cfg.Port
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		log.Printf("Starting server with TLS on %s", addr)
		log.Fatal(http.ListenAndServeTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile, r))
	}
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
