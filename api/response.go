// Package api exposes the dashboard HTTP surface: run submission, status
// and result retrieval, and artifact exports.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Response is the JSON envelope shared by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeSuccess(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, Response{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Int("status", status).Msg("Failed to encode JSON response")
	}
}
