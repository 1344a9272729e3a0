package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/study-air/internal/db"
	"github.com/ukydev/study-air/internal/models"
)

// ListAchievements returns the stored achievements.
func (h *Handler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.CollectionAchievement)
}

// CreateAchievement stores a new achievement.
func (h *Handler) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	var req models.AchievementCreate
	if _, ok := decodeObject(w, r, &req, models.AchievementRequired...); !ok {
		return
	}
	h.create(w, r, models.CollectionAchievement, req.Document())
}

// ListSessions returns the recorded study sessions.
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.CollectionSession)
}

// CreateSession records a study session.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionCreate
	if _, ok := decodeObject(w, r, &req, models.SessionRequired...); !ok {
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.create(w, r, models.CollectionSession, req.Document())
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, collection string) {
	items, err := h.store.List(r.Context(), collection, nil, db.DefaultListLimit)
	if err != nil {
		log.WithError(err).WithField("collection", collection).Error("Failed to list documents")
		http.Error(w, "Failed to list "+collection, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, collection string, data models.Document) {
	doc, err := h.store.Create(r.Context(), collection, data)
	if err != nil {
		log.WithError(err).WithField("collection", collection).Error("Failed to create document")
		http.Error(w, "Failed to create "+collection, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
