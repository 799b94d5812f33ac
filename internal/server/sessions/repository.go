// Package sessions holds the store server's persistence layer and the
// service that fronts it: repositories over games and their player
// sub-records, plus snapshot fan-out to watchers.
package sessions

import (
	"context"

	"github.com/dkravets/geoseek/internal/store"
)

// Repository is the persistence contract for game records. Updates are
// per-record last-writer-wins; no cross-record transactions are required.
type Repository interface {
	CreateGame(ctx context.Context, rec *store.GameRecord) error
	GetGame(ctx context.Context, id string) (*store.GameRecord, error)
	FindGameByCode(ctx context.Context, code string) (*store.GameRecord, error)
	ListGames(ctx context.Context) ([]*store.GameRecord, error)
	UpdateGame(ctx context.Context, id string, upd store.GameUpdate) error
	PutPlayer(ctx context.Context, gameID string, rec *store.PlayerRecord) error
	UpdatePlayer(ctx context.Context, gameID, userID string, upd store.PlayerUpdate) error
	ListPlayers(ctx context.Context, gameID string) ([]*store.PlayerRecord, error)
}
