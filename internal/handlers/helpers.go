package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/odemir/folio/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps application errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var notFound *apperrors.ErrNotFound
	if errors.As(err, &notFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	var validation *apperrors.ErrValidation
	if errors.As(err, &validation) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
