package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes mounts every endpoint under /api/v1.
func SetupRoutes(router *mux.Router, handlers *Handlers) {
	api := router.PathPrefix("/api/v1").Subrouter()

	analyses := api.PathPrefix("/analyses").Subrouter()
	analyses.HandleFunc("", handlers.SubmitAnalysis).Methods("POST")
	analyses.HandleFunc("/{runId}", handlers.GetAnalysis).Methods("GET")
	analyses.HandleFunc("/{runId}/result", handlers.GetResult).Methods("GET")

	exports := analyses.PathPrefix("/{runId}/export").Subrouter()
	exports.HandleFunc("/network.gexf", handlers.ExportGEXF).Methods("GET")
	exports.HandleFunc("/influencers.csv", handlers.ExportInfluencers).Methods("GET")
	exports.HandleFunc("/bridges.csv", handlers.ExportBridges).Methods("GET")
	exports.HandleFunc("/cooperation.csv", handlers.ExportCooperation).Methods("GET")
	exports.HandleFunc("/matrix.bin", handlers.ExportMatrix).Methods("GET")

	api.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
}
