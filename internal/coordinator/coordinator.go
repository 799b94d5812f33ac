// Package coordinator implements the session state machine: it translates
// commands into encrypted writes through the store adapter, drains the
// store's snapshot channel as the single serialization point for
// authoritative state, and republishes a consistent decrypted view to local
// subscribers.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/cryptox"
	"github.com/dkravets/geoseek/internal/geo"
	"github.com/dkravets/geoseek/internal/logging"
	"github.com/dkravets/geoseek/internal/models"
	"github.com/dkravets/geoseek/internal/schedule"
	"github.com/dkravets/geoseek/internal/store"
)

// View is one consistent observation of the session: the decrypted game,
// its players, and the derived countdown to the next shrink.
type View struct {
	Game               *models.Game
	Players            map[string]*models.Player
	TimeToNextShrinkMs int64
}

// Coordinator drives a single session for a single identity. It must not be
// shared across sessions; create/join fail while a session is attached.
type Coordinator struct {
	st       store.SessionStore
	logger   logging.Logger
	identity models.Identity

	mu       sync.RWMutex
	gameID   string
	joinCode string // key material source; set on create/join, cleared on leave
	game     *models.Game
	players  map[string]*models.Player

	subsMu sync.Mutex
	subs   map[chan View]struct{}

	stopWatch func()
	loopStop  context.CancelFunc
	loopDone  chan struct{}

	// Test seams.
	nowFn        func() time.Time
	tickInterval time.Duration
	codeFn       func() string
}

// New returns a coordinator bound to one identity.
func New(st store.SessionStore, logger logging.Logger, identity models.Identity) *Coordinator {
	return &Coordinator{
		st:           st,
		logger:       logger.With("module", "coordinator", "uid", identity.UID),
		identity:     identity,
		players:      make(map[string]*models.Player),
		subs:         make(map[chan View]struct{}),
		nowFn:        time.Now,
		tickInterval: time.Second,
		codeFn:       generateJoinCode,
	}
}

// generateJoinCode returns a random 6-digit numeric code. Uniqueness across
// live sessions is only probabilistic; the store resolves lookups to the
// most recent live match.
func generateJoinCode() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}

// CreateSession validates and merges the config, generates the join code
// and the circle offset, writes the initial record and attaches to it as
// the hider. Returns the new session id.
func (c *Coordinator) CreateSession(ctx context.Context, override models.ConfigOverride) (string, error) {
	cfg := models.MergeConfig(override)
	if err := models.ValidateConfig(cfg); err != nil {
		return "", err
	}

	c.mu.Lock()
	if c.gameID != "" {
		c.mu.Unlock()
		return "", errors.New("coordinator already attached to a session")
	}
	c.mu.Unlock()

	now := c.nowFn().UnixMilli()
	code := c.codeFn()

	// No hider location exists yet, so the longitude factor is taken at the
	// equator; the offset stays within bounds either way.
	offset := geo.GenerateCircleOffset(cfg.InitialRadiusMeters, 0)

	rec := &store.GameRecord{
		GameCode:      code,
		HiderID:       c.identity.UID,
		HiderName:     c.identity.DisplayName,
		CircleOffset:  offset,
		Status:        models.StatusWaiting,
		Config:        cfg,
		CurrentRadius: cfg.InitialRadiusMeters, // display hint only
		CreatedAt:     now,
	}

	id, err := c.st.CreateGame(ctx, rec)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.gameID = id
	c.joinCode = code
	c.game = gameFromRecord(rec, code, c.logger)
	c.players = make(map[string]*models.Player)
	c.mu.Unlock()

	if err := c.attach(id); err != nil {
		return "", err
	}
	return id, nil
}

// JoinSession resolves the join code, rejects ended games, registers the
// caller as a player and attaches to the session.
func (c *Coordinator) JoinSession(ctx context.Context, joinCode string) (string, error) {
	c.mu.Lock()
	if c.gameID != "" {
		c.mu.Unlock()
		return "", errors.New("coordinator already attached to a session")
	}
	c.mu.Unlock()

	rec, err := c.st.FindGameByCode(ctx, joinCode)
	if err != nil {
		return "", err
	}
	if rec.Status == models.StatusEnded {
		return "", fmt.Errorf("%w: code %s", common.ErrSessionEnded, joinCode)
	}

	now := c.nowFn().UnixMilli()
	player := &store.PlayerRecord{
		UserID:      c.identity.UID,
		DisplayName: c.identity.DisplayName,
		LastUpdated: now,
		JoinedAt:    now,
	}
	if err := c.st.PutPlayer(ctx, rec.ID, player); err != nil {
		return "", err
	}

	c.mu.Lock()
	c.gameID = rec.ID
	c.joinCode = joinCode
	c.game = gameFromRecord(rec, joinCode, c.logger)
	c.players = make(map[string]*models.Player)
	c.mu.Unlock()

	if err := c.attach(rec.ID); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// StartSession transitions waiting -> active. Hider only, and only once a
// hider location has been recorded.
func (c *Coordinator) StartSession(ctx context.Context) error {
	c.mu.RLock()
	game := c.game
	c.mu.RUnlock()

	if game == nil {
		return fmt.Errorf("%w: no session", common.ErrPrecondition)
	}
	if game.HiderID != c.identity.UID {
		return fmt.Errorf("%w: only the hider can start the game", common.ErrNotAuthorized)
	}
	if game.HiderLocation == nil {
		return fmt.Errorf("%w: hider location must be set before starting", common.ErrPrecondition)
	}

	now := c.nowFn().UnixMilli()
	active := models.StatusActive
	radius := game.Config.InitialRadiusMeters
	return c.st.UpdateGame(ctx, game.ID, store.GameUpdate{
		Status:        &active,
		StartTime:     &now,
		CurrentRadius: &radius,
	})
}

// UpdateHiderLocation encrypts and writes the hider's position, clearing
// the deprecated plaintext field. No-op for non-hiders.
func (c *Coordinator) UpdateHiderLocation(ctx context.Context, loc models.Location) error {
	c.mu.RLock()
	game := c.game
	code := c.joinCode
	c.mu.RUnlock()

	if game == nil || game.HiderID != c.identity.UID {
		return nil
	}

	enc, err := cryptox.EncryptLocation(loc, code)
	if err != nil {
		return err
	}

	if err := c.st.UpdateGame(ctx, game.ID, store.GameUpdate{
		EncryptedHiderLocation:   enc,
		ClearLegacyHiderLocation: true,
	}); err != nil {
		return err
	}

	// The snapshot will confirm, but the hider needs its own location
	// visible immediately (StartSession preconditions on it).
	c.mu.Lock()
	if c.game != nil {
		l := loc
		c.game.HiderLocation = &l
	}
	c.mu.Unlock()
	c.publish()
	return nil
}

// UpdatePlayerLocation encrypts and writes the caller's own position. A
// caller can never write another player's location.
func (c *Coordinator) UpdatePlayerLocation(ctx context.Context, loc models.Location) error {
	c.mu.RLock()
	game := c.game
	code := c.joinCode
	c.mu.RUnlock()

	if game == nil {
		return fmt.Errorf("%w: no session", common.ErrPrecondition)
	}

	enc, err := cryptox.EncryptLocation(loc, code)
	if err != nil {
		return err
	}

	now := c.nowFn().UnixMilli()
	return c.st.UpdatePlayer(ctx, game.ID, c.identity.UID, store.PlayerUpdate{
		EncryptedLocation:   enc,
		LastUpdated:         &now,
		ClearLegacyLocation: true,
	})
}

// MarkFound flags the caller's own record. Idempotent; repeat calls are
// no-ops.
func (c *Coordinator) MarkFound(ctx context.Context) error {
	c.mu.RLock()
	game := c.game
	already := c.players[c.identity.UID] != nil && c.players[c.identity.UID].Found
	c.mu.RUnlock()

	if game == nil {
		return fmt.Errorf("%w: no session", common.ErrPrecondition)
	}
	if already {
		return nil
	}

	found := true
	return c.st.UpdatePlayer(ctx, game.ID, c.identity.UID, store.PlayerUpdate{Found: &found})
}

// LeaveSession tears the session down locally: the ticker and the watch are
// cancelled synchronously, the join code slot is cleared, and the in-memory
// view is discarded. The durable record is untouched; retention belongs to
// the store.
func (c *Coordinator) LeaveSession() {
	c.mu.Lock()
	stopWatch := c.stopWatch
	loopStop := c.loopStop
	loopDone := c.loopDone
	c.stopWatch = nil
	c.loopStop = nil
	c.loopDone = nil
	c.gameID = ""
	c.joinCode = ""
	c.game = nil
	c.players = make(map[string]*models.Player)
	c.mu.Unlock()

	if loopStop != nil {
		loopStop()
	}
	if stopWatch != nil {
		stopWatch()
	}
	if loopDone != nil {
		<-loopDone
	}

	c.subsMu.Lock()
	for ch := range c.subs {
		close(ch)
	}
	c.subs = make(map[chan View]struct{})
	c.subsMu.Unlock()
}

// Subscribe registers a local consumer of the session view. The channel
// carries the latest view (coalesced when the consumer is slow) and is
// closed by LeaveSession or the returned cancel function.
func (c *Coordinator) Subscribe() (<-chan View, func()) {
	ch := make(chan View, 1)

	c.subsMu.Lock()
	c.subs[ch] = struct{}{}
	c.subsMu.Unlock()

	if v, ok := c.snapshotView(); ok {
		ch <- v
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.subsMu.Lock()
			if _, ok := c.subs[ch]; ok {
				delete(c.subs, ch)
				close(ch)
			}
			c.subsMu.Unlock()
		})
	}
	return ch, cancel
}

// CurrentView returns the latest consistent view, or false when no session
// is attached.
func (c *Coordinator) CurrentView() (View, bool) {
	return c.snapshotView()
}

// attach starts the watch stream and the reconciliation loop for gameID.
func (c *Coordinator) attach(gameID string) error {
	loopCtx, loopStop := context.WithCancel(context.Background())

	snaps, stopWatch, err := c.st.Watch(loopCtx, gameID)
	if err != nil {
		loopStop()
		return err
	}

	done := make(chan struct{})
	c.mu.Lock()
	c.stopWatch = stopWatch
	c.loopStop = loopStop
	c.loopDone = done
	c.mu.Unlock()

	go c.run(loopCtx, snaps, done)
	return nil
}

// run is the coordinator's single consuming task: it drains store snapshots
// and, independently, re-derives the radius on a local ~1 Hz timer. Timer
// recomputation derives and never mutates authoritative state, so the two
// inputs commute.
func (c *Coordinator) run(ctx context.Context, snaps <-chan store.Snapshot, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case snap, ok := <-snaps:
			if !ok {
				return
			}
			c.applySnapshot(snap)
			c.publish()
		case <-ticker.C:
			c.publish()
		case <-ctx.Done():
			return
		}
	}
}

// applySnapshot replaces the in-memory view with the decrypted snapshot.
// Later-arriving snapshots win wholesale; no causal reordering is
// attempted. A record that fails decryption is logged and its location
// nulled; the rest of the snapshot still applies.
func (c *Coordinator) applySnapshot(snap store.Snapshot) {
	if snap.Game == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gameID == "" || snap.Game.ID != c.gameID {
		return
	}

	c.game = gameFromRecord(snap.Game, c.joinCode, c.logger)

	players := make(map[string]*models.Player, len(snap.Players))
	for id, rec := range snap.Players {
		players[id] = playerFromRecord(rec, c.joinCode, c.logger)
	}
	c.players = players
}

// gameFromRecord decodes a persisted game into the in-memory form,
// decrypting the hider location. Decryption failure degrades to a nil
// location.
func gameFromRecord(rec *store.GameRecord, joinCode string, logger logging.Logger) *models.Game {
	game := &models.Game{
		ID:            rec.ID,
		GameCode:      rec.GameCode,
		HiderID:       rec.HiderID,
		HiderName:     rec.HiderName,
		CircleOffset:  rec.CircleOffset,
		Status:        rec.Status,
		Config:        rec.Config,
		StartTime:     rec.StartTime,
		CurrentRadius: rec.CurrentRadius,
		CreatedAt:     rec.CreatedAt,
	}

	switch {
	case rec.EncryptedHiderLocation != nil:
		loc, err := cryptox.DecryptLocation(rec.EncryptedHiderLocation, joinCode)
		if err != nil {
			logger.Warn(context.Background(), "hider location undecryptable, treating as unset", "game_id", rec.ID, "error", err)
		} else {
			game.HiderLocation = loc
		}
	case rec.LegacyHiderLocation != nil:
		// Pre-encryption record not yet migrated.
		loc := *rec.LegacyHiderLocation
		game.HiderLocation = &loc
	}

	return game
}

func playerFromRecord(rec *store.PlayerRecord, joinCode string, logger logging.Logger) *models.Player {
	p := &models.Player{
		UserID:      rec.UserID,
		DisplayName: rec.DisplayName,
		LastUpdated: rec.LastUpdated,
		Found:       rec.Found,
		JoinedAt:    rec.JoinedAt,
	}

	switch {
	case rec.EncryptedLocation != nil:
		loc, err := cryptox.DecryptLocation(rec.EncryptedLocation, joinCode)
		if err != nil {
			logger.Warn(context.Background(), "player location undecryptable, treating as unset", "user_id", rec.UserID, "error", err)
		} else {
			p.Location = loc
		}
	case rec.LegacyLocation != nil:
		loc := *rec.LegacyLocation
		p.Location = &loc
	}

	return p
}

// snapshotView builds a View with freshly derived schedule values.
func (c *Coordinator) snapshotView() (View, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.game == nil {
		return View{}, false
	}

	now := c.nowFn()
	game := *c.game
	game.CurrentRadius = schedule.CurrentRadius(game.Config, game.StartTime, game.Status, now)

	players := make(map[string]*models.Player, len(c.players))
	for id, p := range c.players {
		cp := *p
		if p.Location != nil {
			loc := *p.Location
			cp.Location = &loc
		}
		players[id] = &cp
	}
	if game.HiderLocation != nil {
		loc := *game.HiderLocation
		game.HiderLocation = &loc
	}

	return View{
		Game:               &game,
		Players:            players,
		TimeToNextShrinkMs: schedule.TimeToNextShrink(game.Config, game.StartTime, game.Status, now),
	}, true
}

// publish pushes the current view to all subscribers, coalescing per
// subscriber.
func (c *Coordinator) publish() {
	v, ok := c.snapshotView()
	if !ok {
		return
	}

	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for ch := range c.subs {
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}
