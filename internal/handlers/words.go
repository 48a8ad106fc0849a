package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/odemir/folio/internal/models"
	"github.com/odemir/folio/internal/services"
)

// WordHandler serves the vocabulary word endpoints
type WordHandler struct {
	service services.WordService
}

// NewWordHandler creates a new word handler
func NewWordHandler(service services.WordService) *WordHandler {
	return &WordHandler{service: service}
}

// HandleList lists words with search, level filter and pagination.
// @Summary List words
// @Description Get a page of vocabulary words
// @Tags words
// @Produce json
// @Param search query string false "Search text (term or meaning)"
// @Param level query string false "Proficiency level (A1..C2)"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} models.WordPage
// @Failure 500 {string} string "Internal server error"
// @Router /words [get]
func (h *WordHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &models.WordFilter{
		Search: q.Get("search"),
		Level:  q.Get("level"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = limit
	}

	page, err := h.service.ListWords(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// HandleCreate creates a new word.
// @Summary Create word
// @Tags words
// @Accept json
// @Produce json
// @Success 201 {object} models.Word
// @Failure 400 {string} string "Invalid request"
// @Router /words [post]
func (h *WordHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var word models.Word
	if err := json.NewDecoder(r.Body).Decode(&word); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if err := h.service.CreateWord(r.Context(), &word); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, &word)
}

// HandleGet returns one word by id.
// @Summary Get word
// @Tags words
// @Produce json
// @Param id path string true "Word ID"
// @Success 200 {object} models.Word
// @Failure 404 {string} string "Not found"
// @Router /words/{id} [get]
func (h *WordHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	word, err := h.service.GetWord(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, word)
}

// HandleUpdate updates one word by id.
// @Summary Update word
// @Tags words
// @Accept json
// @Produce json
// @Param id path string true "Word ID"
// @Success 200 {object} models.Word
// @Failure 400 {string} string "Invalid request"
// @Failure 404 {string} string "Not found"
// @Router /words/{id} [put]
func (h *WordHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var word models.Word
	if err := json.NewDecoder(r.Body).Decode(&word); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	word.ID = mux.Vars(r)["id"]
	if err := h.service.UpdateWord(r.Context(), &word); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &word)
}

// HandleDelete deletes one word by id.
// @Summary Delete word
// @Tags words
// @Param id path string true "Word ID"
// @Success 204
// @Failure 404 {string} string "Not found"
// @Router /words/{id} [delete]
func (h *WordHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteWord(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDaily returns the word of the day.
// @Summary Get word of the day
// @Tags words
// @Produce json
// @Success 200 {object} models.Word
// @Failure 500 {string} string "Internal server error"
// @Router /words/daily [get]
func (h *WordHandler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	word, err := h.service.WordOfTheDay(r.Context(), time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, word)
}
