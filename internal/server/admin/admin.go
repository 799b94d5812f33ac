// Package admin exposes the operator HTTP API. Ending a game is an
// operator action and this API is its only entry point.
package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/logging"
	"github.com/dkravets/geoseek/internal/models"
	"github.com/dkravets/geoseek/internal/server/sessions"
)

type Server struct {
	address  string
	token    string
	sessions *sessions.Service
	logger   logging.Logger
}

func NewServer(address, token string, svc *sessions.Service, logger logging.Logger) *Server {
	return &Server{
		address:  address,
		token:    token,
		sessions: svc,
		logger:   logger.With("module", "admin"),
	}
}

// bearerAuth checks the static operator token.
func (s *Server) bearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")

		if auth == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(auth, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization format"})
			c.Abort()
			return
		}

		if parts[1] != s.token {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		c.Next()
	}
}

type gameSummary struct {
	ID            string  `json:"id"`
	GameCode      string  `json:"gameCode"`
	HiderName     string  `json:"hiderName"`
	Status        string  `json:"status"`
	StartTime     int64   `json:"startTime"`
	CurrentRadius float64 `json:"currentRadius"`
	CreatedAt     int64   `json:"createdAt"`
}

func (s *Server) listGames(c *gin.Context) {
	games, err := s.sessions.ListGames(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := make([]gameSummary, 0, len(games))
	for _, g := range games {
		out = append(out, gameSummary{
			ID:            g.ID,
			GameCode:      g.GameCode,
			HiderName:     g.HiderName,
			Status:        string(g.Status),
			StartTime:     g.StartTime,
			CurrentRadius: g.CurrentRadius,
			CreatedAt:     g.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) endGame(c *gin.Context) {
	id := c.Param("id")

	game, err := s.sessions.GetGame(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if game.Status == models.StatusEnded {
		c.JSON(http.StatusOK, gin.H{"status": "ended"})
		return
	}

	if err := s.sessions.EndGame(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ended"})
}

func (s *Server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api", s.bearerAuth())
	{
		api.GET("/games", s.listGames)
		api.POST("/games/:id/end", s.endGame)
	}

	return r
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping admin server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting admin server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
