package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spaceshooter/internal/score"
)

func TestIndexShowsConnectCommandAndScores(t *testing.T) {
	store := score.NewJSONStore(filepath.Join(t.TempDir(), "highscores.json"))
	logger := log.New(io.Discard)
	require.NoError(t, score.NewTable(store, logger).Add("<Ace>", 12500))

	h := indexHandler(store, "play.example.com", "2222", logger)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "ssh -t -p 2222 play.example.com")
	assert.Contains(t, body, "&lt;Ace&gt;", "names are escaped")
	assert.Contains(t, body, "12,500")
	assert.NotContains(t, body, "No high scores yet!")
}

func TestIndexWithoutScores(t *testing.T) {
	store := score.NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	h := indexHandler(store, "localhost", "2222", log.New(io.Discard))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), "No high scores yet!")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
