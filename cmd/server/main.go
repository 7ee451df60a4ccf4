package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/api"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/config"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/pipeline"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/service"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	log.Info().Msg("Starting GameStop network analysis backend")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log.Info().
		Str("address", cfg.Server.Address).
		Int("cache_size", cfg.Runs.CacheSize).
		Msg("Configuration loaded")

	analysisService, err := service.NewAnalysisService(cfg.Runs, pipeline.NewConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize analysis service")
	}

	router := mux.NewRouter()
	router.Use(api.LoggingMiddleware, api.RecoveryMiddleware)
	api.SetupRoutes(router, api.NewHandlers(analysisService))

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info().Str("address", cfg.Server.Address).Msg("Listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
