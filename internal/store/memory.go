package store

import (
	"context"
	"sync"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/models"
	"github.com/google/uuid"
)

type gameEntry struct {
	game     *GameRecord
	players  map[string]*PlayerRecord
	watchers map[chan Snapshot]struct{}
}

// MemoryStore is an in-process SessionStore. It backs tests and local play
// and doubles as the reference for the adapter contract.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]*gameEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[string]*gameEntry)}
}

func (s *MemoryStore) CreateGame(ctx context.Context, rec *GameRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	s.games[rec.ID] = &gameEntry{
		game:     CloneGame(rec),
		players:  make(map[string]*PlayerRecord),
		watchers: make(map[chan Snapshot]struct{}),
	}

	return rec.ID, nil
}

func (s *MemoryStore) FindGameByCode(ctx context.Context, code string) (*GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Codes are only probabilistically unique; prefer the most recently
	// created non-ended match so a stale ended game never shadows a live one.
	var best *GameRecord
	for _, e := range s.games {
		if e.game.GameCode != code {
			continue
		}
		if best == nil || rankGame(e.game) > rankGame(best) ||
			(rankGame(e.game) == rankGame(best) && e.game.CreatedAt > best.CreatedAt) {
			best = e.game
		}
	}
	if best == nil {
		return nil, common.ErrNotFound
	}
	return CloneGame(best), nil
}

func rankGame(g *GameRecord) int {
	if g.Status == models.StatusEnded {
		return 0
	}
	return 1
}

func (s *MemoryStore) UpdateGame(ctx context.Context, gameID string, upd GameUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.games[gameID]
	if !ok {
		return common.ErrNotFound
	}

	ApplyGameUpdate(e.game, upd)
	s.broadcastLocked(e)
	return nil
}

func (s *MemoryStore) PutPlayer(ctx context.Context, gameID string, rec *PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.games[gameID]
	if !ok {
		return common.ErrNotFound
	}

	e.players[rec.UserID] = ClonePlayer(rec)
	s.broadcastLocked(e)
	return nil
}

func (s *MemoryStore) UpdatePlayer(ctx context.Context, gameID, userID string, upd PlayerUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.games[gameID]
	if !ok {
		return common.ErrNotFound
	}
	p, ok := e.players[userID]
	if !ok {
		return common.ErrNotFound
	}

	ApplyPlayerUpdate(p, upd)
	s.broadcastLocked(e)
	return nil
}

func (s *MemoryStore) Watch(ctx context.Context, gameID string) (<-chan Snapshot, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.games[gameID]
	if !ok {
		return nil, nil, common.ErrNotFound
	}

	// Capacity 1 with drop-stale sends: the channel always holds the latest
	// snapshot, so a slow consumer coalesces but never observes stale state
	// as final.
	ch := make(chan Snapshot, 1)
	e.watchers[ch] = struct{}{}
	ch <- snapshotLocked(e)

	var once sync.Once
	stop := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if e, ok := s.games[gameID]; ok {
				delete(e.watchers, ch)
			}
			close(ch)
		})
	}

	return ch, stop, nil
}

// EndGame flips a game to ended. Only administrative surfaces call this;
// coordinators have no path to it.
func (s *MemoryStore) EndGame(ctx context.Context, gameID string) error {
	ended := models.StatusEnded
	return s.UpdateGame(ctx, gameID, GameUpdate{Status: &ended})
}

// Games returns a copy of all game records, for administrative listing.
func (s *MemoryStore) Games(ctx context.Context) []*GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*GameRecord, 0, len(s.games))
	for _, e := range s.games {
		out = append(out, CloneGame(e.game))
	}
	return out
}

func snapshotLocked(e *gameEntry) Snapshot {
	players := make(map[string]*PlayerRecord, len(e.players))
	for id, p := range e.players {
		players[id] = ClonePlayer(p)
	}
	return Snapshot{Game: CloneGame(e.game), Players: players}
}

func (s *MemoryStore) broadcastLocked(e *gameEntry) {
	snap := snapshotLocked(e)
	for ch := range e.watchers {
		select {
		case ch <- snap:
		default:
			// Drop the stale buffered snapshot, then deliver the fresh one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
