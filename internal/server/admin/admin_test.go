package admin

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkravets/geoseek/internal/logging"
	"github.com/dkravets/geoseek/internal/models"
	"github.com/dkravets/geoseek/internal/server/sessions"
	"github.com/dkravets/geoseek/internal/store"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestServer() (*Server, *sessions.Service) {
	svc := sessions.NewService(sessions.NewInMemoryRepository(), testLogger())
	return NewServer("127.0.0.1:0", "optoken", svc, testLogger()), svc
}

func doRequest(s *Server, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router().ServeHTTP(w, req)
	return w
}

func TestBearerAuth(t *testing.T) {
	s, _ := newTestServer()

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(s, http.MethodGet, "/api/games", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong token", func(t *testing.T) {
		w := doRequest(s, http.MethodGet, "/api/games", "nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
		req.Header.Set("Authorization", "optoken")
		w := httptest.NewRecorder()
		s.router().ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := doRequest(s, http.MethodGet, "/api/games", "optoken")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestListGames(t *testing.T) {
	s, svc := newTestServer()
	ctx := context.Background()

	_, err := svc.CreateGame(ctx, &store.GameRecord{
		GameCode:  "123456",
		HiderID:   "h1",
		HiderName: "Alice",
		Status:    models.StatusWaiting,
		Config:    models.DefaultConfig(),
	})
	require.NoError(t, err)

	w := doRequest(s, http.MethodGet, "/api/games", "optoken")
	require.Equal(t, http.StatusOK, w.Code)

	var games []gameSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "123456", games[0].GameCode)
	assert.Equal(t, "Alice", games[0].HiderName)
	assert.Equal(t, string(models.StatusWaiting), games[0].Status)
}

func TestEndGame(t *testing.T) {
	s, svc := newTestServer()
	ctx := context.Background()

	id, err := svc.CreateGame(ctx, &store.GameRecord{
		GameCode:  "123456",
		HiderID:   "h1",
		HiderName: "Alice",
		Status:    models.StatusActive,
		Config:    models.DefaultConfig(),
	})
	require.NoError(t, err)

	t.Run("unknown id", func(t *testing.T) {
		w := doRequest(s, http.MethodPost, "/api/games/missing/end", "optoken")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ends active game", func(t *testing.T) {
		w := doRequest(s, http.MethodPost, "/api/games/"+id+"/end", "optoken")
		require.Equal(t, http.StatusOK, w.Code)

		game, err := svc.GetGame(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.StatusEnded, game.Status)
	})

	t.Run("ending again is idempotent", func(t *testing.T) {
		w := doRequest(s, http.MethodPost, "/api/games/"+id+"/end", "optoken")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
