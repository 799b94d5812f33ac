// Package store defines the Session Store Adapter: the narrow contract the
// coordinator requires from the external real-time document store, plus an
// in-memory and a gRPC-backed implementation.
//
// The store's consistency contract is per-record last-writer-wins; no
// cross-record transactions. Watch delivers full snapshots, never diffs.
package store

import (
	"context"

	"github.com/dkravets/geoseek/internal/models"
)

// GameRecord is the persisted form of a game. Locations are stored
// encrypted; LegacyHiderLocation is the deprecated plaintext field that
// encrypted writes retire via the deletion sentinel.
type GameRecord struct {
	ID                     string
	GameCode               string
	HiderID                string
	HiderName              string
	EncryptedHiderLocation *models.EncryptedLocation
	LegacyHiderLocation    *models.Location
	CircleOffset           models.Location
	Status                 models.GameStatus
	Config                 models.GameConfig
	StartTime              int64
	CurrentRadius          float64
	CreatedAt              int64
}

// PlayerRecord is the persisted form of a player sub-record.
type PlayerRecord struct {
	UserID            string
	DisplayName       string
	EncryptedLocation *models.EncryptedLocation
	LegacyLocation    *models.Location
	LastUpdated       int64
	Found             bool
	JoinedAt          int64
}

// GameUpdate is a partial update to a game record. Nil fields are left
// untouched. ClearLegacyHiderLocation is an explicit deletion sentinel,
// distinct from "absent".
type GameUpdate struct {
	Status                   *models.GameStatus
	StartTime                *int64
	CurrentRadius            *float64
	EncryptedHiderLocation   *models.EncryptedLocation
	ClearLegacyHiderLocation bool
}

// PlayerUpdate is a partial update to a player sub-record.
type PlayerUpdate struct {
	EncryptedLocation   *models.EncryptedLocation
	LastUpdated         *int64
	Found               *bool
	ClearLegacyLocation bool
}

// Snapshot is the complete authoritative state of one game at an instant.
type Snapshot struct {
	Game    *GameRecord
	Players map[string]*PlayerRecord
}

// SessionStore is the adapter to the external store.
//
// Watch returns a channel that carries the current snapshot immediately and
// a fresh snapshot after every subsequent mutation; a slow consumer may
// observe a coalesced sequence, but the last value delivered is always the
// current state. The returned stop function cancels delivery; after it
// returns, no further sends occur and the channel is closed.
type SessionStore interface {
	// CreateGame persists a new game record. If rec.ID is empty a new id is
	// assigned; the (possibly updated) id is returned.
	CreateGame(ctx context.Context, rec *GameRecord) (string, error)

	// FindGameByCode resolves a human-entered join code by exact match.
	// Returns common.ErrNotFound if no game carries the code.
	FindGameByCode(ctx context.Context, code string) (*GameRecord, error)

	// UpdateGame applies a partial update, last-writer-wins.
	UpdateGame(ctx context.Context, gameID string, upd GameUpdate) error

	// PutPlayer creates or replaces a player sub-record.
	PutPlayer(ctx context.Context, gameID string, rec *PlayerRecord) error

	// UpdatePlayer applies a partial update to one player sub-record.
	UpdatePlayer(ctx context.Context, gameID, userID string, upd PlayerUpdate) error

	// Watch subscribes to snapshot delivery for one game.
	Watch(ctx context.Context, gameID string) (<-chan Snapshot, func(), error)
}

// CloneGame returns a deep copy of a game record.
func CloneGame(rec *GameRecord) *GameRecord {
	if rec == nil {
		return nil
	}
	out := *rec
	if rec.EncryptedHiderLocation != nil {
		enc := *rec.EncryptedHiderLocation
		out.EncryptedHiderLocation = &enc
	}
	if rec.LegacyHiderLocation != nil {
		loc := *rec.LegacyHiderLocation
		out.LegacyHiderLocation = &loc
	}
	return &out
}

// ClonePlayer returns a deep copy of a player record.
func ClonePlayer(rec *PlayerRecord) *PlayerRecord {
	if rec == nil {
		return nil
	}
	out := *rec
	if rec.EncryptedLocation != nil {
		enc := *rec.EncryptedLocation
		out.EncryptedLocation = &enc
	}
	if rec.LegacyLocation != nil {
		loc := *rec.LegacyLocation
		out.LegacyLocation = &loc
	}
	return &out
}

// ApplyGameUpdate mutates rec in place per the partial-update semantics.
// Shared by store implementations so partial updates behave identically
// everywhere.
func ApplyGameUpdate(rec *GameRecord, upd GameUpdate) {
	if upd.Status != nil {
		rec.Status = *upd.Status
	}
	if upd.StartTime != nil {
		rec.StartTime = *upd.StartTime
	}
	if upd.CurrentRadius != nil {
		rec.CurrentRadius = *upd.CurrentRadius
	}
	if upd.EncryptedHiderLocation != nil {
		rec.EncryptedHiderLocation = upd.EncryptedHiderLocation
	}
	if upd.ClearLegacyHiderLocation {
		rec.LegacyHiderLocation = nil
	}
}

// ApplyPlayerUpdate mutates rec in place per the partial-update semantics.
func ApplyPlayerUpdate(rec *PlayerRecord, upd PlayerUpdate) {
	if upd.EncryptedLocation != nil {
		rec.EncryptedLocation = upd.EncryptedLocation
	}
	if upd.LastUpdated != nil {
		rec.LastUpdated = *upd.LastUpdated
	}
	if upd.Found != nil {
		rec.Found = *upd.Found
	}
	if upd.ClearLegacyLocation {
		rec.LegacyLocation = nil
	}
}
