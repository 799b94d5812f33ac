package coordinator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/cryptox"
	"github.com/dkravets/geoseek/internal/logging"
	"github.com/dkravets/geoseek/internal/models"
	"github.com/dkravets/geoseek/internal/store"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClock lets tests move the coordinator's notion of now.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCoordinator(st store.SessionStore, uid, name string) (*Coordinator, *fakeClock) {
	clock := &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
	c := New(st, testLogger(), models.Identity{UID: uid, DisplayName: name})
	c.nowFn = clock.Now
	c.codeFn = func() string { return "123456" }
	c.tickInterval = 10 * time.Millisecond
	return c, clock
}

func waitForView(t *testing.T, c *Coordinator, cond func(View) bool) View {
	t.Helper()
	var last View
	require.Eventually(t, func() bool {
		v, ok := c.CurrentView()
		if !ok {
			return false
		}
		last = v
		return cond(v)
	}, 2*time.Second, 5*time.Millisecond)
	return last
}

func TestCreateSession(t *testing.T) {
	st := store.NewMemoryStore()
	hider, _ := newTestCoordinator(st, "h1", "Alice")
	defer hider.LeaveSession()

	id, err := hider.CreateSession(context.Background(), models.ConfigOverride{})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	v, ok := hider.CurrentView()
	require.True(t, ok)
	assert.Equal(t, "123456", v.Game.GameCode)
	assert.Equal(t, models.StatusWaiting, v.Game.Status)
	assert.Equal(t, 500.0, v.Game.CurrentRadius)
	assert.Equal(t, "h1", v.Game.HiderID)
}

func TestCreateSession_InvalidConfig(t *testing.T) {
	st := store.NewMemoryStore()
	hider, _ := newTestCoordinator(st, "h1", "Alice")

	radius := 10.0
	_, err := hider.CreateSession(context.Background(), models.ConfigOverride{InitialRadiusMeters: &radius})
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestCreateSession_AlreadyAttached(t *testing.T) {
	st := store.NewMemoryStore()
	hider, _ := newTestCoordinator(st, "h1", "Alice")
	defer hider.LeaveSession()

	_, err := hider.CreateSession(context.Background(), models.ConfigOverride{})
	require.NoError(t, err)

	_, err = hider.CreateSession(context.Background(), models.ConfigOverride{})
	assert.Error(t, err)
}

func TestJoinSession(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	hider, _ := newTestCoordinator(st, "h1", "Alice")
	defer hider.LeaveSession()
	_, err := hider.CreateSession(ctx, models.ConfigOverride{})
	require.NoError(t, err)

	seeker, _ := newTestCoordinator(st, "s1", "Bob")
	defer seeker.LeaveSession()
	_, err = seeker.JoinSession(ctx, "123456")
	require.NoError(t, err)

	// Both sides converge on the same roster.
	waitForView(t, seeker, func(v View) bool { return v.Players["s1"] != nil })
	waitForView(t, hider, func(v View) bool { return v.Players["s1"] != nil })
}

func TestJoinSession_UnknownCode(t *testing.T) {
	st := store.NewMemoryStore()
	seeker, _ := newTestCoordinator(st, "s1", "Bob")

	_, err := seeker.JoinSession(context.Background(), "999999")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestJoinSession_EndedGame(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	hider, _ := newTestCoordinator(st, "h1", "Alice")
	id, err := hider.CreateSession(ctx, models.ConfigOverride{})
	require.NoError(t, err)
	hider.LeaveSession()

	require.NoError(t, st.EndGame(ctx, id))

	seeker, _ := newTestCoordinator(st, "s1", "Bob")
	_, err = seeker.JoinSession(ctx, "123456")
	assert.True(t, errors.Is(err, common.ErrSessionEnded))
}

func TestStartSession_RequiresHiderLocation(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	hider, _ := newTestCoordinator(st, "h1", "Alice")
	defer hider.LeaveSession()
	_, err := hider.CreateSession(ctx, models.ConfigOverride{})
	require.NoError(t, err)

	err = hider.StartSession(ctx)
	assert.True(t, errors.Is(err, common.ErrPrecondition))
}

func TestStartSession_HiderOnly(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	hider, _ := newTestCoordinator(st, "h1", "Alice")
	defer hider.LeaveSession()
	_, err := hider.CreateSession(ctx, models.ConfigOverride{})
	require.NoError(t, err)

	seeker, _ := newTestCoordinator(st, "s1", "Bob")
	defer seeker.LeaveSession()
	_, err = seeker.JoinSession(ctx, "123456")
	require.NoError(t, err)

	err = seeker.StartSession(ctx)
	assert.True(t, errors.Is(err, common.ErrNotAuthorized))
}

func TestStartSession_Transitions(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	hider, _ := newTestCoordinator(st, "h1", "Alice")
	defer hider.LeaveSession()
	_, err := hider.CreateSession(ctx, models.ConfigOverride{})
	require.NoError(t, err)

	require.NoError(t, hider.UpdateHiderLocation(ctx, models.Location{Lat: 52.52, Lng: 13.405}))
	require.NoError(t, hider.StartSession(ctx))

	v := waitForView(t, hider, func(v View) bool { return v.Game.Status == models.StatusActive })
	assert.NotZero(t, v.Game.StartTime)
	assert.Equal(t, 500.0, v.Game.CurrentRadius)
}

func TestUpdateHiderLocation_EncryptsAndClearsLegacy(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	hider, _ := newTestCoordinator(st, "h1", "Alice")
	defer hider.LeaveSession()
	_, err := hider.CreateSession(ctx, models.ConfigOverride{})
	require.NoError(t, err)

	loc := models.Location{Lat: 52.52, Lng: 13.405}
	require.NoError(t, hider.UpdateHiderLocation(ctx, loc))

	rec, err := st.FindGameByCode(ctx, "123456")
	require.NoError(t, err)
	require.NotNil(t, rec.EncryptedHiderLocation)
	assert.Nil(t, rec.LegacyHiderLocation)

	// Only the join code decrypts it.
	got, err := cryptox.DecryptLocation(rec.EncryptedHiderLocation, "123456")
	require.NoError(t, err)
	assert.Equal(t, loc, *got)

	_, err = cryptox.DecryptLocation(rec.EncryptedHiderLocation, "000000")
	assert.Error(t, err)
}

func TestUpdateHiderLocation_NoOpForSeeker(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	hider, _ := newTestCoordinator(st, "h1", "Alice")
	defer hider.LeaveSession()
	_, err := hider.CreateSession(ctx, models.ConfigOverride{})
	require.NoError(t, err)

	seeker, _ := newTestCoordinator(st, "s1", "Bob")
	defer seeker.LeaveSession()
	_, err = seeker.JoinSession(ctx, "123456")
	require.NoError(t, err)

	require.NoError(t, seeker.UpdateHiderLocation(ctx, models.Location{Lat: 1, Lng: 2}))

	rec, err := st.FindGameByCode(ctx, "123456")
	require.NoError(t, err)
	assert.Nil(t, rec.EncryptedHiderLocation)
}

func TestUpdatePlayerLocation(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	hider, _ := newTestCoordinator(st, "h1", "Alice")
	defer hider.LeaveSession()
	_, err := hider.CreateSession(ctx, models.ConfigOverride{})
	require.NoError(t, err)

	seeker, _ := newTestCoordinator(st, "s1", "Bob")
	defer seeker.LeaveSession()
	_, err = seeker.JoinSession(ctx, "123456")
	require.NoError(t, err)

	loc := models.Location{Lat: 52.51, Lng: 13.41}
	require.NoError(t, seeker.UpdatePlayerLocation(ctx, loc))

	// Both coordinators decrypt the seeker's position from the snapshot.
	v := waitForView(t, hider, func(v View) bool {
		return v.Players["s1"] != nil && v.Players["s1"].Location != nil
	})
	assert.Equal(t, loc, *v.Players["s1"].Location)
}

func TestMarkFound_Idempotent(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	hider, _ := newTestCoordinator(st, "h1", "Alice")
	defer hider.LeaveSession()
	_, err := hider.CreateSession(ctx, models.ConfigOverride{})
	require.NoError(t, err)

	seeker, _ := newTestCoordinator(st, "s1", "Bob")
	defer seeker.LeaveSession()
	_, err = seeker.JoinSession(ctx, "123456")
	require.NoError(t, err)

	require.NoError(t, seeker.MarkFound(ctx))
	waitForView(t, seeker, func(v View) bool {
		return v.Players["s1"] != nil && v.Players["s1"].Found
	})

	// Second call is a no-op, not an error.
	require.NoError(t, seeker.MarkFound(ctx))
}

func TestLeaveSession(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	hider, _ := newTestCoordinator(st, "h1", "Alice")
	_, err := hider.CreateSession(ctx, models.ConfigOverride{})
	require.NoError(t, err)

	views, _ := hider.Subscribe()

	hider.LeaveSession()

	// Subscriber channels close and the view is gone.
	for range views {
	}
	_, ok := hider.CurrentView()
	assert.False(t, ok)

	// A second leave is harmless.
	hider.LeaveSession()

	// The durable record survives; leaving is local teardown only.
	_, err = st.FindGameByCode(ctx, "123456")
	assert.NoError(t, err)
}

func TestRadiusShrinksWithClock(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	hider, clock := newTestCoordinator(st, "h1", "Alice")
	defer hider.LeaveSession()
	_, err := hider.CreateSession(ctx, models.ConfigOverride{})
	require.NoError(t, err)

	require.NoError(t, hider.UpdateHiderLocation(ctx, models.Location{Lat: 52.52, Lng: 13.405}))
	require.NoError(t, hider.StartSession(ctx))
	waitForView(t, hider, func(v View) bool { return v.Game.Status == models.StatusActive })

	// One millisecond before the boundary nothing changes.
	clock.Advance(299_999 * time.Millisecond)
	v := waitForView(t, hider, func(v View) bool { return v.Game.CurrentRadius == 500 })
	assert.Greater(t, v.TimeToNextShrinkMs, int64(0))

	// Crossing the boundary shrinks by one step.
	clock.Advance(1 * time.Millisecond)
	waitForView(t, hider, func(v View) bool { return v.Game.CurrentRadius == 450 })

	// Far past the schedule the circle collapses to zero.
	clock.Advance(time.Hour)
	waitForView(t, hider, func(v View) bool { return v.Game.CurrentRadius == 0 })
}

func TestApplySnapshot_DecryptionFailureIsolated(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	hider, _ := newTestCoordinator(st, "h1", "Alice")
	defer hider.LeaveSession()
	id, err := hider.CreateSession(ctx, models.ConfigOverride{})
	require.NoError(t, err)

	// A corrupt encrypted blob lands in the store (e.g. written by a buggy
	// client). The snapshot still applies, with the location nulled.
	bad := &models.EncryptedLocation{Encrypted: "AAAA", IV: "AAAAAAAAAAAAAAAA", Salt: "AAAAAAAAAAAAAAAAAAAAAA=="}
	require.NoError(t, st.UpdateGame(ctx, id, store.GameUpdate{EncryptedHiderLocation: bad}))

	require.NoError(t, st.PutPlayer(ctx, id, &store.PlayerRecord{UserID: "s1", DisplayName: "Bob"}))

	v := waitForView(t, hider, func(v View) bool { return v.Players["s1"] != nil })
	assert.Nil(t, v.Game.HiderLocation)
	assert.Equal(t, "Bob", v.Players["s1"].DisplayName)
}
