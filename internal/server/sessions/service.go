package sessions

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dkravets/geoseek/internal/dbx"
	"github.com/dkravets/geoseek/internal/logging"
	"github.com/dkravets/geoseek/internal/models"
	"github.com/dkravets/geoseek/internal/store"
)

// Archiver receives the final snapshot of a game when it ends.
type Archiver interface {
	ArchiveGame(ctx context.Context, snap store.Snapshot) error
}

// Service fronts a Repository and owns snapshot fan-out: every mutation
// goes through the service, which re-reads the full game snapshot and
// broadcasts it to watchers. Watch channels have capacity one and are
// coalesced, so a slow watcher sees a compressed sequence whose last
// value is always the current state.
type Service struct {
	repo     Repository
	db       *sql.DB // nil when the repository is not SQL-backed
	archiver Archiver
	logger   logging.Logger

	mu       sync.Mutex
	watchers map[string]map[chan store.Snapshot]struct{}
}

// NewService builds a service over a repository that needs no external
// transaction handling (e.g. InMemoryRepository).
func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{
		repo:     repo,
		logger:   logger,
		watchers: make(map[string]map[chan store.Snapshot]struct{}),
	}
}

// NewPostgresService builds a service whose mutations run inside
// transactions on db.
func NewPostgresService(db *sql.DB, logger logging.Logger) *Service {
	s := NewService(NewPostgresRepository(db), logger)
	s.db = db
	return s
}

// SetArchiver installs the end-of-game archiver. Archive failures are
// logged, never surfaced to players.
func (s *Service) SetArchiver(a Archiver) {
	s.archiver = a
}

// withRepo runs fn against the repository, inside a transaction when the
// backend is SQL.
func (s *Service) withRepo(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error {
	if s.db == nil {
		return fn(ctx, s.repo)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewPostgresRepository(tx))
	})
}

func (s *Service) CreateGame(ctx context.Context, rec *store.GameRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().UnixMilli()
	}
	err := s.withRepo(ctx, func(ctx context.Context, repo Repository) error {
		return repo.CreateGame(ctx, rec)
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *Service) FindGameByCode(ctx context.Context, code string) (*store.GameRecord, error) {
	return s.repo.FindGameByCode(ctx, code)
}

func (s *Service) GetGame(ctx context.Context, id string) (*store.GameRecord, error) {
	return s.repo.GetGame(ctx, id)
}

func (s *Service) ListGames(ctx context.Context) ([]*store.GameRecord, error) {
	return s.repo.ListGames(ctx)
}

// snapshot assembles the full authoritative state of one game.
func (s *Service) snapshot(ctx context.Context, repo Repository, gameID string) (store.Snapshot, error) {
	game, err := repo.GetGame(ctx, gameID)
	if err != nil {
		return store.Snapshot{}, err
	}
	players, err := repo.ListPlayers(ctx, gameID)
	if err != nil {
		return store.Snapshot{}, err
	}
	snap := store.Snapshot{Game: game, Players: make(map[string]*store.PlayerRecord, len(players))}
	for _, p := range players {
		snap.Players[p.UserID] = p
	}
	return snap, nil
}

func (s *Service) UpdateGame(ctx context.Context, gameID string, upd store.GameUpdate) error {
	err := s.withRepo(ctx, func(ctx context.Context, repo Repository) error {
		return repo.UpdateGame(ctx, gameID, upd)
	})
	if err != nil {
		return err
	}
	s.broadcast(ctx, gameID)
	return nil
}

func (s *Service) PutPlayer(ctx context.Context, gameID string, rec *store.PlayerRecord) error {
	err := s.withRepo(ctx, func(ctx context.Context, repo Repository) error {
		if _, err := repo.GetGame(ctx, gameID); err != nil {
			return err
		}
		return repo.PutPlayer(ctx, gameID, rec)
	})
	if err != nil {
		return err
	}
	s.broadcast(ctx, gameID)
	return nil
}

func (s *Service) UpdatePlayer(ctx context.Context, gameID, userID string, upd store.PlayerUpdate) error {
	err := s.withRepo(ctx, func(ctx context.Context, repo Repository) error {
		return repo.UpdatePlayer(ctx, gameID, userID, upd)
	})
	if err != nil {
		return err
	}
	s.broadcast(ctx, gameID)
	return nil
}

// EndGame marks a game ended and hands its final snapshot to the
// archiver. Ending is the only transition into the ended status.
func (s *Service) EndGame(ctx context.Context, gameID string) error {
	ended := models.StatusEnded
	err := s.withRepo(ctx, func(ctx context.Context, repo Repository) error {
		return repo.UpdateGame(ctx, gameID, store.GameUpdate{Status: &ended})
	})
	if err != nil {
		return err
	}
	s.broadcast(ctx, gameID)

	if s.archiver != nil {
		snap, err := s.snapshot(ctx, s.repo, gameID)
		if err != nil {
			s.logger.Error(ctx, "snapshot for archive failed", "game_id", gameID, "error", err)
			return nil
		}
		if err := s.archiver.ArchiveGame(ctx, snap); err != nil {
			s.logger.Error(ctx, "archive failed", "game_id", gameID, "error", err)
		}
	}
	return nil
}

// Watch registers a snapshot channel for gameID. The current snapshot is
// delivered immediately; the stop function unregisters and closes the
// channel.
func (s *Service) Watch(ctx context.Context, gameID string) (<-chan store.Snapshot, func(), error) {
	snap, err := s.snapshot(ctx, s.repo, gameID)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan store.Snapshot, 1)
	ch <- snap

	s.mu.Lock()
	set, ok := s.watchers[gameID]
	if !ok {
		set = make(map[chan store.Snapshot]struct{})
		s.watchers[gameID] = set
	}
	set[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			s.mu.Lock()
			if set, ok := s.watchers[gameID]; ok {
				delete(set, ch)
				if len(set) == 0 {
					delete(s.watchers, gameID)
				}
			}
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, stop, nil
}

func (s *Service) broadcast(ctx context.Context, gameID string) {
	s.mu.Lock()
	n := len(s.watchers[gameID])
	s.mu.Unlock()
	if n == 0 {
		return
	}

	snap, err := s.snapshot(ctx, s.repo, gameID)
	if err != nil {
		s.logger.Error(ctx, "snapshot for broadcast failed", "game_id", gameID, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.watchers[gameID] {
		// Drop the stale pending value so the channel always carries
		// the latest snapshot.
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}
