// internal/server/handlers/trend.go

package handlers

import (
	"encoding/json"
	"net/http"

	"pintrends/internal/logger"
)

// PredictMessage is the static acknowledgment returned by the predict
// endpoint until real inference exists.
const PredictMessage = "Prediction endpoint hit. Implement your ML prediction logic here!"

// TrendSource is the precomputed trend snapshot the handlers serve from.
type TrendSource interface {
	// Payload returns the frozen JSON encoding of the trends list.
	Payload() []byte

	// SnapshotID identifies the one-time extraction run.
	SnapshotID() string

	// TrendCount returns the number of trends in the snapshot.
	TrendCount() int
}

// TrendHandler handles trend-related HTTP requests
type TrendHandler struct {
	source TrendSource
}

// NewTrendHandler creates a new trend handler
func NewTrendHandler(source TrendSource) *TrendHandler {
	return &TrendHandler{
		source: source,
	}
}

// GetTrends returns the snapshot's trends list verbatim. The payload bytes
// were frozen at startup, so every call in a process run is byte-identical.
func (h *TrendHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Snapshot-ID", h.source.SnapshotID())
	w.WriteHeader(http.StatusOK)
	w.Write(h.source.Payload())
}

// Predict acknowledges a prediction request. The body is ignored; this
// endpoint documents an intended future capability, not a current one.
func (h *TrendHandler) Predict(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": PredictMessage,
	})
}

// Health reports liveness and which snapshot is being served.
func (h *TrendHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"snapshot": h.source.SnapshotID(),
		"trends":   h.source.TrendCount(),
	})
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Errorf("http: marshal response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
