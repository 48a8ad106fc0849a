package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/odemir/folio/internal/services"
)

// ProgressHandler serves the user progress endpoints
type ProgressHandler struct {
	service services.ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(service services.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// HandleUpsert stores one progress entry.
// @Summary Upsert word progress
// @Description Insert or overwrite the learning status for (user_id, word_id)
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} models.ProgressEntry
// @Failure 400 {string} string "Invalid request"
// @Router /progress [post]
func (h *ProgressHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
		WordID string `json:"word_id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	entry, err := h.service.UpsertProgress(r.Context(), req.UserID, req.WordID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// HandleList returns all progress entries for a user.
// @Summary List word progress
// @Tags progress
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} models.ProgressEntry
// @Failure 400 {string} string "Invalid request"
// @Router /progress [get]
func (h *ProgressHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListProgress(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
