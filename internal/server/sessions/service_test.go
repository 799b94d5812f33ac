package sessions

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/logging"
	"github.com/dkravets/geoseek/internal/models"
	"github.com/dkravets/geoseek/internal/store"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestService() *Service {
	return NewService(NewInMemoryRepository(), testLogger())
}

func testGame(code string) *store.GameRecord {
	return &store.GameRecord{
		GameCode:  code,
		HiderID:   "h1",
		HiderName: "Alice",
		Status:    models.StatusWaiting,
		Config:    models.DefaultConfig(),
	}
}

func TestService_CreateGame_AssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	rec := testGame("123456")
	id, err := svc.CreateGame(context.Background(), rec)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NotZero(t, rec.CreatedAt)

	got, err := svc.GetGame(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "123456", got.GameCode)
}

func TestService_FindGameByCode_PrefersLive(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	ctx := context.Background()

	ended := testGame("123456")
	ended.Status = models.StatusEnded
	ended.CreatedAt = 2
	_, err := svc.CreateGame(ctx, ended)
	require.NoError(t, err)

	live := testGame("123456")
	live.CreatedAt = 1
	liveID, err := svc.CreateGame(ctx, live)
	require.NoError(t, err)

	got, err := svc.FindGameByCode(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, liveID, got.ID)
}

func TestService_Watch_DeliversSnapshotsOnMutations(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	ctx := context.Background()

	id, err := svc.CreateGame(ctx, testGame("123456"))
	require.NoError(t, err)

	snaps, stop, err := svc.Watch(ctx, id)
	require.NoError(t, err)
	defer stop()

	first := <-snaps
	assert.Equal(t, id, first.Game.ID)
	assert.Empty(t, first.Players)

	require.NoError(t, svc.PutPlayer(ctx, id, &store.PlayerRecord{UserID: "s1", DisplayName: "Bob"}))
	second := <-snaps
	require.Contains(t, second.Players, "s1")

	found := true
	require.NoError(t, svc.UpdatePlayer(ctx, id, "s1", store.PlayerUpdate{Found: &found}))
	third := <-snaps
	assert.True(t, third.Players["s1"].Found)
}

func TestService_Watch_CoalescesForSlowConsumer(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	ctx := context.Background()

	id, err := svc.CreateGame(ctx, testGame("123456"))
	require.NoError(t, err)

	snaps, stop, err := svc.Watch(ctx, id)
	require.NoError(t, err)
	defer stop()

	for i := int64(1); i <= 3; i++ {
		v := i
		require.NoError(t, svc.UpdateGame(ctx, id, store.GameUpdate{StartTime: &v}))
	}

	snap := <-snaps
	assert.Equal(t, int64(3), snap.Game.StartTime)
}

func TestService_Watch_UnknownGame(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	_, _, err := svc.Watch(context.Background(), "nope")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestService_PutPlayer_UnknownGame(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	err := svc.PutPlayer(context.Background(), "nope", &store.PlayerRecord{UserID: "s1"})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

// captureArchiver records the snapshot it is handed.
type captureArchiver struct {
	snaps []store.Snapshot
	err   error
}

func (a *captureArchiver) ArchiveGame(ctx context.Context, snap store.Snapshot) error {
	a.snaps = append(a.snaps, snap)
	return a.err
}

func TestService_EndGame_MarksEndedAndArchives(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	ctx := context.Background()

	arch := &captureArchiver{}
	svc.SetArchiver(arch)

	id, err := svc.CreateGame(ctx, testGame("123456"))
	require.NoError(t, err)
	require.NoError(t, svc.PutPlayer(ctx, id, &store.PlayerRecord{UserID: "s1", DisplayName: "Bob"}))

	require.NoError(t, svc.EndGame(ctx, id))

	got, err := svc.GetGame(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusEnded, got.Status)

	require.Len(t, arch.snaps, 1)
	assert.Equal(t, id, arch.snaps[0].Game.ID)
	assert.Contains(t, arch.snaps[0].Players, "s1")
}

func TestService_EndGame_ArchiveFailureIsNotFatal(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	ctx := context.Background()

	svc.SetArchiver(&captureArchiver{err: errors.New("bucket gone")})

	id, err := svc.CreateGame(ctx, testGame("123456"))
	require.NoError(t, err)

	// The game still ends even when the archive upload fails.
	require.NoError(t, svc.EndGame(ctx, id))

	got, err := svc.GetGame(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusEnded, got.Status)
}

func TestInMemoryRepository_UpdateGame_Sentinel(t *testing.T) {
	t.Parallel()
	repo := NewInMemoryRepository()
	ctx := context.Background()

	rec := testGame("123456")
	rec.ID = "g1"
	rec.LegacyHiderLocation = &models.Location{Lat: 1, Lng: 2}
	require.NoError(t, repo.CreateGame(ctx, rec))

	enc := &models.EncryptedLocation{Encrypted: "ct", IV: "iv", Salt: "salt"}
	require.NoError(t, repo.UpdateGame(ctx, "g1", store.GameUpdate{
		EncryptedHiderLocation:   enc,
		ClearLegacyHiderLocation: true,
	}))

	got, err := repo.GetGame(ctx, "g1")
	require.NoError(t, err)
	assert.NotNil(t, got.EncryptedHiderLocation)
	assert.Nil(t, got.LegacyHiderLocation)
}

func TestInMemoryRepository_PlayerLifecycle(t *testing.T) {
	t.Parallel()
	repo := NewInMemoryRepository()
	ctx := context.Background()

	rec := testGame("123456")
	rec.ID = "g1"
	require.NoError(t, repo.CreateGame(ctx, rec))

	require.NoError(t, repo.PutPlayer(ctx, "g1", &store.PlayerRecord{UserID: "s1", DisplayName: "Bob"}))

	err := repo.UpdatePlayer(ctx, "g1", "missing", store.PlayerUpdate{})
	assert.True(t, errors.Is(err, common.ErrNotFound))

	players, err := repo.ListPlayers(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Bob", players[0].DisplayName)
}
