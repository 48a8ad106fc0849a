package main

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/odemir/folio/internal/db"
	"github.com/odemir/folio/internal/handlers"
	"github.com/odemir/folio/internal/logger"
	"github.com/odemir/folio/internal/repositories"
	"github.com/odemir/folio/internal/services"
)

func main() {
	// .env is optional; environment variables win
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Database connection
	config := db.NewConfig()
	database, err := db.Connect(config)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Health(); err != nil {
		log.Fatal("database health check failed", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}
	log.Info("database connection established", zap.String("driver", config.Driver))

	// Repositories
	wordRepo := repositories.NewWordRepository(database)
	progressRepo := repositories.NewProgressRepository(database)
	contentRepo := repositories.NewContentRepository(database)

	// Services
	cryptoProvider := services.NewBinanceTickerProvider(os.Getenv("CRYPTO_API_URL"))
	forexProvider := services.NewHTTPForexProvider(os.Getenv("FOREX_API_URL"))
	rateService := services.NewRateService(cryptoProvider, forexProvider, log)
	wordService := services.NewWordService(wordRepo)
	progressService := services.NewProgressService(progressRepo)
	contentService := services.NewContentService(contentRepo)

	// Handlers
	rateHandler := handlers.NewRateHandler(rateService, log)
	wordHandler := handlers.NewWordHandler(wordService)
	progressHandler := handlers.NewProgressHandler(progressService)
	contentHandler := handlers.NewContentHandler(contentService)

	r := mux.NewRouter()

	// Health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "folio-backend",
		})
	})

	api := r.PathPrefix("/api").Subrouter()

	// Rates
	api.HandleFunc("/rates", rateHandler.HandleRates).Methods(http.MethodGet)

	// Words
	api.HandleFunc("/words/daily", wordHandler.HandleDaily).Methods(http.MethodGet)
	api.HandleFunc("/words", wordHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/words", wordHandler.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/words/{id}", wordHandler.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/words/{id}", wordHandler.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/words/{id}", wordHandler.HandleDelete).Methods(http.MethodDelete)

	// Progress
	api.HandleFunc("/progress", progressHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/progress", progressHandler.HandleUpsert).Methods(http.MethodPost)

	// Content
	api.HandleFunc("/posts", contentHandler.HandlePosts)
	api.HandleFunc("/posts/{id}/like", contentHandler.HandleLikePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}", contentHandler.HandlePost)
	api.HandleFunc("/works", contentHandler.HandleWorks)
	api.HandleFunc("/works/{id}", contentHandler.HandleWork)
	api.HandleFunc("/recommendations", contentHandler.HandleRecommendations)
	api.HandleFunc("/recommendations/{id}", contentHandler.HandleRecommendation)
	api.HandleFunc("/suggestions", contentHandler.HandleSuggestions)
	api.HandleFunc("/suggestions/{id}", contentHandler.HandleSuggestion)
	api.HandleFunc("/contacts", contentHandler.HandleContacts)
	api.HandleFunc("/contacts/{id}", contentHandler.HandleContact)

	handler := corsMiddleware(requestLogger(log)(r))

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("took", time.Since(start)),
			)
		})
	}
}
