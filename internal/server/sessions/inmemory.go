package sessions

import (
	"context"
	"sync"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/models"
	"github.com/dkravets/geoseek/internal/store"
)

type memoryGame struct {
	game    *store.GameRecord
	players map[string]*store.PlayerRecord
}

// InMemoryRepository keeps all records in process memory. Used by tests and
// by servers started without a database DSN.
type InMemoryRepository struct {
	mu    sync.RWMutex
	games map[string]*memoryGame
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{games: make(map[string]*memoryGame)}
}

func (r *InMemoryRepository) CreateGame(ctx context.Context, rec *store.GameRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[rec.ID] = &memoryGame{
		game:    store.CloneGame(rec),
		players: make(map[string]*store.PlayerRecord),
	}
	return nil
}

func (r *InMemoryRepository) GetGame(ctx context.Context, id string) (*store.GameRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return store.CloneGame(g.game), nil
}

func (r *InMemoryRepository) FindGameByCode(ctx context.Context, code string) (*store.GameRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *store.GameRecord
	for _, g := range r.games {
		if g.game.GameCode != code {
			continue
		}
		if best == nil || liveRank(g.game) > liveRank(best) ||
			(liveRank(g.game) == liveRank(best) && g.game.CreatedAt > best.CreatedAt) {
			best = g.game
		}
	}
	if best == nil {
		return nil, common.ErrNotFound
	}
	return store.CloneGame(best), nil
}

func liveRank(g *store.GameRecord) int {
	if g.Status == models.StatusEnded {
		return 0
	}
	return 1
}

func (r *InMemoryRepository) ListGames(ctx context.Context) ([]*store.GameRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*store.GameRecord, 0, len(r.games))
	for _, g := range r.games {
		out = append(out, store.CloneGame(g.game))
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateGame(ctx context.Context, id string, upd store.GameUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	if !ok {
		return common.ErrNotFound
	}
	store.ApplyGameUpdate(g.game, upd)
	return nil
}

func (r *InMemoryRepository) PutPlayer(ctx context.Context, gameID string, rec *store.PlayerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[gameID]
	if !ok {
		return common.ErrNotFound
	}
	g.players[rec.UserID] = store.ClonePlayer(rec)
	return nil
}

func (r *InMemoryRepository) UpdatePlayer(ctx context.Context, gameID, userID string, upd store.PlayerUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[gameID]
	if !ok {
		return common.ErrNotFound
	}
	p, ok := g.players[userID]
	if !ok {
		return common.ErrNotFound
	}
	store.ApplyPlayerUpdate(p, upd)
	return nil
}

func (r *InMemoryRepository) ListPlayers(ctx context.Context, gameID string) ([]*store.PlayerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[gameID]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := make([]*store.PlayerRecord, 0, len(g.players))
	for _, p := range g.players {
		out = append(out, store.ClonePlayer(p))
	}
	return out, nil
}
