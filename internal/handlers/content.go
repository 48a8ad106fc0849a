package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/odemir/folio/internal/models"
	"github.com/odemir/folio/internal/services"
)

// ContentHandler serves the site content CRUD endpoints
type ContentHandler struct {
	service services.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(service services.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// Posts

// HandlePosts lists or creates blog posts.
// @Summary List or create posts
// @Tags posts
// @Accept json
// @Produce json
// @Param published query bool false "Only published posts"
// @Success 200 {array} models.Post
// @Failure 400 {string} string "Invalid request"
// @Router /posts [get]
// @Router /posts [post]
func (h *ContentHandler) HandlePosts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		publishedOnly := r.URL.Query().Get("published") == "true"
		posts, err := h.service.ListPosts(r.Context(), publishedOnly)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, posts)
	case http.MethodPost:
		var post models.Post
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}
		if err := h.service.CreatePost(r.Context(), &post); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, &post)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandlePost gets, updates or deletes one post by id or slug.
// @Summary Get, update or delete a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID or slug"
// @Success 200 {object} models.Post
// @Failure 404 {string} string "Not found"
// @Router /posts/{id} [get]
// @Router /posts/{id} [put]
// @Router /posts/{id} [delete]
func (h *ContentHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	switch r.Method {
	case http.MethodGet:
		post, err := h.service.GetPost(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, post)
	case http.MethodPut:
		var post models.Post
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}
		post.ID = id
		if err := h.service.UpdatePost(r.Context(), &post); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, &post)
	case http.MethodDelete:
		if err := h.service.DeletePost(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleLikePost increments a post's like counter.
// @Summary Like a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]int64
// @Failure 404 {string} string "Not found"
// @Router /posts/{id}/like [post]
func (h *ContentHandler) HandleLikePost(w http.ResponseWriter, r *http.Request) {
	likes, err := h.service.LikePost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"likes": likes})
}

// Works

// HandleWorks lists or creates portfolio items.
// @Summary List or create portfolio items
// @Tags works
// @Accept json
// @Produce json
// @Success 200 {array} models.Work
// @Failure 400 {string} string "Invalid request"
// @Router /works [get]
// @Router /works [post]
func (h *ContentHandler) HandleWorks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		works, err := h.service.ListWorks(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, works)
	case http.MethodPost:
		var work models.Work
		if err := json.NewDecoder(r.Body).Decode(&work); err != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}
		if err := h.service.CreateWork(r.Context(), &work); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, &work)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleWork gets, updates or deletes one portfolio item.
// @Summary Get, update or delete a portfolio item
// @Tags works
// @Accept json
// @Produce json
// @Param id path string true "Work ID"
// @Success 200 {object} models.Work
// @Failure 404 {string} string "Not found"
// @Router /works/{id} [get]
// @Router /works/{id} [put]
// @Router /works/{id} [delete]
func (h *ContentHandler) HandleWork(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	switch r.Method {
	case http.MethodGet:
		work, err := h.service.GetWork(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, work)
	case http.MethodPut:
		var work models.Work
		if err := json.NewDecoder(r.Body).Decode(&work); err != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}
		work.ID = id
		if err := h.service.UpdateWork(r.Context(), &work); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, &work)
	case http.MethodDelete:
		if err := h.service.DeleteWork(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Recommendations

// HandleRecommendations lists or creates recommendations.
// @Summary List or create recommendations
// @Tags recommendations
// @Accept json
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} models.Recommendation
// @Failure 400 {string} string "Invalid request"
// @Router /recommendations [get]
// @Router /recommendations [post]
func (h *ContentHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		recs, err := h.service.ListRecommendations(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recs)
	case http.MethodPost:
		var rec models.Recommendation
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}
		if err := h.service.CreateRecommendation(r.Context(), &rec); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, &rec)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleRecommendation deletes one recommendation.
// @Summary Delete a recommendation
// @Tags recommendations
// @Param id path string true "Recommendation ID"
// @Success 204
// @Failure 404 {string} string "Not found"
// @Router /recommendations/{id} [delete]
func (h *ContentHandler) HandleRecommendation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := h.service.DeleteRecommendation(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Suggestions

// HandleSuggestions lists or creates suggestions.
// @Summary List or create suggestions
// @Tags suggestions
// @Accept json
// @Produce json
// @Success 200 {array} models.Suggestion
// @Failure 400 {string} string "Invalid request"
// @Router /suggestions [get]
// @Router /suggestions [post]
func (h *ContentHandler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		suggestions, err := h.service.ListSuggestions(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, suggestions)
	case http.MethodPost:
		var s models.Suggestion
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}
		if err := h.service.CreateSuggestion(r.Context(), &s); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, &s)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleSuggestion deletes one suggestion.
// @Summary Delete a suggestion
// @Tags suggestions
// @Param id path string true "Suggestion ID"
// @Success 204
// @Failure 404 {string} string "Not found"
// @Router /suggestions/{id} [delete]
func (h *ContentHandler) HandleSuggestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := h.service.DeleteSuggestion(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Contacts

// HandleContacts lists or creates contact messages.
// @Summary List or create contact messages
// @Tags contacts
// @Accept json
// @Produce json
// @Param since query string false "Only messages on or after this date (YYYY-MM-DD)"
// @Success 200 {array} models.Contact
// @Failure 400 {string} string "Invalid request"
// @Router /contacts [get]
// @Router /contacts [post]
func (h *ContentHandler) HandleContacts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		var since time.Time
		if s := r.URL.Query().Get("since"); s != "" {
			if t, err := time.Parse("2006-01-02", s); err == nil {
				since = t
			}
		}
		contacts, err := h.service.ListContacts(r.Context(), since)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, contacts)
	case http.MethodPost:
		var c models.Contact
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}
		if err := h.service.CreateContact(r.Context(), &c); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, &c)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleContact deletes one contact message.
// @Summary Delete a contact message
// @Tags contacts
// @Param id path string true "Contact ID"
// @Success 204
// @Failure 404 {string} string "Not found"
// @Router /contacts/{id} [delete]
func (h *ContentHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := h.service.DeleteContact(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
