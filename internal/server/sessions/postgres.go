package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/dbx"
	"github.com/dkravets/geoseek/internal/models"
	"github.com/dkravets/geoseek/internal/store"
)

// PostgresRepository persists games and players in PostgreSQL. Location
// blobs and the config are stored as JSONB; partial updates are applied
// read-modify-write under the caller's transaction.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func toJSON(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func fromJSON[T any](data []byte) (*T, error) {
	if len(data) == 0 {
		return nil, nil
	}
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) CreateGame(ctx context.Context, rec *store.GameRecord) error {
	offset, err := toJSON(rec.CircleOffset)
	if err != nil {
		return err
	}
	cfg, err := toJSON(rec.Config)
	if err != nil {
		return err
	}
	encLoc, err := toJSON(rec.EncryptedHiderLocation)
	if err != nil {
		return err
	}
	legacyLoc, err := toJSON(rec.LegacyHiderLocation)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO games (id, game_code, hider_id, hider_name, encrypted_hider_location,
		                    legacy_hider_location, circle_offset, status, config,
		                    start_time, current_radius, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 `

	_, err = r.db.ExecContext(ctx, query,
		rec.ID, rec.GameCode, rec.HiderID, rec.HiderName, encLoc,
		legacyLoc, offset, string(rec.Status), cfg,
		rec.StartTime, rec.CurrentRadius, rec.CreatedAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

const gameColumns = `id, game_code, hider_id, hider_name, encrypted_hider_location,
	legacy_hider_location, circle_offset, status, config, start_time, current_radius, created_at`

func (r *PostgresRepository) scanGame(row interface{ Scan(...any) error }) (*store.GameRecord, error) {
	rec := &store.GameRecord{}
	var encLoc, legacyLoc, offset, cfg []byte
	var status string

	err := row.Scan(&rec.ID, &rec.GameCode, &rec.HiderID, &rec.HiderName, &encLoc,
		&legacyLoc, &offset, &status, &cfg, &rec.StartTime, &rec.CurrentRadius, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	rec.Status = models.GameStatus(status)
	if rec.EncryptedHiderLocation, err = fromJSON[models.EncryptedLocation](encLoc); err != nil {
		return nil, err
	}
	if rec.LegacyHiderLocation, err = fromJSON[models.Location](legacyLoc); err != nil {
		return nil, err
	}
	off, err := fromJSON[models.Location](offset)
	if err != nil {
		return nil, err
	}
	if off != nil {
		rec.CircleOffset = *off
	}
	conf, err := fromJSON[models.GameConfig](cfg)
	if err != nil {
		return nil, err
	}
	if conf != nil {
		rec.Config = *conf
	}
	return rec, nil
}

func (r *PostgresRepository) GetGame(ctx context.Context, id string) (*store.GameRecord, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	return r.scanGame(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) FindGameByCode(ctx context.Context, code string) (*store.GameRecord, error) {
	// Codes are only probabilistically unique; prefer the newest live match.
	query := `SELECT ` + gameColumns + ` FROM games
		 WHERE game_code = $1
		 ORDER BY (status <> 'ended') DESC, created_at DESC
		 LIMIT 1`
	return r.scanGame(r.db.QueryRowContext(ctx, query, code))
}

func (r *PostgresRepository) ListGames(ctx context.Context) ([]*store.GameRecord, error) {
	query := `SELECT ` + gameColumns + ` FROM games ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*store.GameRecord
	for rows.Next() {
		rec, err := r.scanGame(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) UpdateGame(ctx context.Context, id string, upd store.GameUpdate) error {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1 FOR UPDATE`
	rec, err := r.scanGame(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return err
	}

	store.ApplyGameUpdate(rec, upd)

	encLoc, err := toJSON(rec.EncryptedHiderLocation)
	if err != nil {
		return err
	}
	legacyLoc, err := toJSON(rec.LegacyHiderLocation)
	if err != nil {
		return err
	}

	update :=
		`UPDATE games
		 SET encrypted_hider_location = $2, legacy_hider_location = $3,
		     status = $4, start_time = $5, current_radius = $6
		 WHERE id = $1
		 `

	_, err = r.db.ExecContext(ctx, update, id, encLoc, legacyLoc,
		string(rec.Status), rec.StartTime, rec.CurrentRadius)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) PutPlayer(ctx context.Context, gameID string, rec *store.PlayerRecord) error {
	encLoc, err := toJSON(rec.EncryptedLocation)
	if err != nil {
		return err
	}
	legacyLoc, err := toJSON(rec.LegacyLocation)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO players (game_id, user_id, display_name, encrypted_location,
		                      legacy_location, last_updated, found_chicken, joined_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (game_id, user_id) DO UPDATE
		 SET display_name = EXCLUDED.display_name,
		     encrypted_location = EXCLUDED.encrypted_location,
		     legacy_location = EXCLUDED.legacy_location,
		     last_updated = EXCLUDED.last_updated,
		     found_chicken = EXCLUDED.found_chicken,
		     joined_at = EXCLUDED.joined_at
		 `

	_, err = r.db.ExecContext(ctx, query, gameID, rec.UserID, rec.DisplayName, encLoc,
		legacyLoc, rec.LastUpdated, rec.Found, rec.JoinedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) scanPlayer(row interface{ Scan(...any) error }) (*store.PlayerRecord, error) {
	rec := &store.PlayerRecord{}
	var encLoc, legacyLoc []byte

	err := row.Scan(&rec.UserID, &rec.DisplayName, &encLoc, &legacyLoc,
		&rec.LastUpdated, &rec.Found, &rec.JoinedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if rec.EncryptedLocation, err = fromJSON[models.EncryptedLocation](encLoc); err != nil {
		return nil, err
	}
	if rec.LegacyLocation, err = fromJSON[models.Location](legacyLoc); err != nil {
		return nil, err
	}
	return rec, nil
}

const playerColumns = `user_id, display_name, encrypted_location, legacy_location,
	last_updated, found_chicken, joined_at`

func (r *PostgresRepository) UpdatePlayer(ctx context.Context, gameID, userID string, upd store.PlayerUpdate) error {
	query := `SELECT ` + playerColumns + ` FROM players
		 WHERE game_id = $1 AND user_id = $2 FOR UPDATE`
	rec, err := r.scanPlayer(r.db.QueryRowContext(ctx, query, gameID, userID))
	if err != nil {
		return err
	}

	store.ApplyPlayerUpdate(rec, upd)

	encLoc, err := toJSON(rec.EncryptedLocation)
	if err != nil {
		return err
	}
	legacyLoc, err := toJSON(rec.LegacyLocation)
	if err != nil {
		return err
	}

	update :=
		`UPDATE players
		 SET encrypted_location = $3, legacy_location = $4,
		     last_updated = $5, found_chicken = $6
		 WHERE game_id = $1 AND user_id = $2
		 `

	_, err = r.db.ExecContext(ctx, update, gameID, userID, encLoc, legacyLoc,
		rec.LastUpdated, rec.Found)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListPlayers(ctx context.Context, gameID string) ([]*store.PlayerRecord, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE game_id = $1 ORDER BY joined_at`

	rows, err := r.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*store.PlayerRecord
	for rows.Next() {
		rec, err := r.scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
