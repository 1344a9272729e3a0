// Package handlers implements the HTTP API.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/study-air/internal/db"
	"github.com/ukydev/study-air/internal/models"
)

const maxBodyBytes = 1 << 20

// Handler serves the API on top of a document store.
type Handler struct {
	store db.Store
}

// New creates a handler backed by store.
func New(store db.Store) *Handler {
	return &Handler{store: store}
}

// Root reports that the service is up.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Study Air backend running"})
}

// Test returns a static description of the backing database.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"backend":           "Study Air API",
		"database":          "MongoDB",
		"database_url":      "env:DATABASE_URL",
		"database_name":     "env:DATABASE_NAME",
		"connection_status": "ok",
		"collections":       []string{"achievement", "session"},
	})
}

// Health reports the document store mode.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "store": h.store.Mode()})
}

// decodeObject reads a JSON object body into v after checking that every
// required field is present and not null. It writes the error response itself
// and returns false when the body is unusable.
func decodeObject(w http.ResponseWriter, r *http.Request, v interface{}, required ...string) (map[string]json.RawMessage, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return nil, false
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return nil, false
	}
	if err := models.RequireFields(raw, required...); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if err := json.Unmarshal(body, v); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return nil, false
	}
	return raw, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}
