package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/odemir/folio/internal/db"
	"github.com/odemir/folio/internal/models"
	"github.com/odemir/folio/internal/repositories"
	"github.com/odemir/folio/internal/services"
)

type stubRateService struct {
	table models.RateTable
}

func (s *stubRateService) Rates(ctx context.Context) models.RateTable {
	return s.table
}

// newTestRouter wires the word and progress handlers against a throwaway
// sqlite database, the same way the server main does.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	database, err := db.Connect(&db.Config{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate())
	t.Cleanup(func() { _ = database.Close() })

	wordHandler := NewWordHandler(services.NewWordService(repositories.NewWordRepository(database)))
	progressHandler := NewProgressHandler(services.NewProgressService(repositories.NewProgressRepository(database)))

	router := mux.NewRouter()
	router.HandleFunc("/api/words/daily", wordHandler.HandleDaily).Methods("GET")
	router.HandleFunc("/api/words", wordHandler.HandleList).Methods("GET")
	router.HandleFunc("/api/words", wordHandler.HandleCreate).Methods("POST")
	router.HandleFunc("/api/words/{id}", wordHandler.HandleGet).Methods("GET")
	router.HandleFunc("/api/words/{id}", wordHandler.HandleUpdate).Methods("PUT")
	router.HandleFunc("/api/words/{id}", wordHandler.HandleDelete).Methods("DELETE")
	router.HandleFunc("/api/progress", progressHandler.HandleUpsert).Methods("POST")
	router.HandleFunc("/api/progress", progressHandler.HandleList).Methods("GET")
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRateHandler_ServesTable(t *testing.T) {
	table := models.NewRateTable()
	table[models.SymbolBTC] = decimal.NewFromInt(1800000)
	handler := NewRateHandler(&stubRateService{table: table}, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/rates", nil)
	rec := httptest.NewRecorder()
	handler.HandleRates(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]decimal.Decimal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, len(models.RateSymbols))
	assert.True(t, got[models.SymbolBTC].Equal(decimal.NewFromInt(1800000)))
	assert.True(t, got[models.SymbolETH].IsZero())
}

func TestRateHandler_RejectsPost(t *testing.T) {
	handler := NewRateHandler(&stubRateService{table: models.NewRateTable()}, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/rates", nil)
	rec := httptest.NewRecorder()
	handler.HandleRates(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestWordHandler_CRUD(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/words", map[string]string{
		"term":    "ephemeral",
		"meaning": "lasting a very short time",
		"level":   "C1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Word
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	rec = doJSON(t, router, "GET", "/api/words/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "PUT", "/api/words/"+created.ID, map[string]string{
		"term":    "ephemeral",
		"meaning": "short-lived",
		"level":   "C1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "GET", "/api/words/"+created.ID, nil)
	var updated models.Word
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "short-lived", updated.Meaning)

	rec = doJSON(t, router, "DELETE", "/api/words/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, "GET", "/api/words/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWordHandler_CreateRejectsInvalid(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/words", map[string]string{"term": "orphan"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, "POST", "/api/words", map[string]string{
		"term": "x", "meaning": "y", "level": "Z9",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWordHandler_ListWithFilter(t *testing.T) {
	router := newTestRouter(t)

	for _, w := range []map[string]string{
		{"term": "apple", "meaning": "a fruit", "level": "A1"},
		{"term": "run", "meaning": "to move fast", "level": "A1"},
		{"term": "serendipity", "meaning": "a happy accident", "level": "C1"},
	} {
		rec := doJSON(t, router, "POST", "/api/words", w)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, "GET", "/api/words?level=A1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page models.WordPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
}

func TestWordHandler_DailyIsStableWithinDay(t *testing.T) {
	router := newTestRouter(t)

	for _, term := range []string{"alpha", "bravo", "charlie"} {
		rec := doJSON(t, router, "POST", "/api/words", map[string]string{
			"term": term, "meaning": "meaning of " + term,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, "GET", "/api/words/daily", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var first models.Word
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))

	rec = doJSON(t, router, "GET", "/api/words/daily", nil)
	var second models.Word
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, first.ID, second.ID)
}

func TestProgressHandler_UpsertAndList(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/progress", map[string]string{
		"user_id": "u1", "word_id": "w1", "status": "learning",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Same key again: overwrite, not a second entry.
	rec = doJSON(t, router, "POST", "/api/progress", map[string]string{
		"user_id": "u1", "word_id": "w1", "status": "known",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "GET", "/api/progress?user_id=u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []models.ProgressEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "known", entries[0].Status)
}

func TestProgressHandler_RejectsBadStatus(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/progress", map[string]string{
		"user_id": "u1", "word_id": "w1", "status": "mastered",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
