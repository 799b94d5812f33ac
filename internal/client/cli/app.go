// Package cli implements the interactive geoseek client: a REPL that
// drives the session coordinator against a remote store server.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/dkravets/geoseek/internal/client/config"
	"github.com/dkravets/geoseek/internal/coordinator"
	"github.com/dkravets/geoseek/internal/logging"
	"github.com/dkravets/geoseek/internal/models"
	"github.com/dkravets/geoseek/internal/store"
	"github.com/dkravets/geoseek/internal/venues"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	identity models.Identity
	store    *store.GRPCStore
	coord    *coordinator.Coordinator
	venues   *venues.Client
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	// Logs go to stderr; stdout belongs to the REPL.
	sl := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(sl)

	reader := bufio.NewReader(os.Stdin)

	name := c.DisplayName
	if name == "" {
		var err error
		name, err = GetSimpleText(reader, "What's your name?", os.Stdout)
		if err != nil {
			return nil, err
		}
	}

	// Identities are ephemeral: a fresh uid per run, like a fresh browser
	// session.
	identity := models.Identity{UID: uuid.NewString(), DisplayName: name}

	st, err := store.NewGRPCStore(ctx, c.ServerEndpointAddr, identity)
	if err != nil {
		return nil, err
	}

	return &App{
		config:   c,
		logger:   logger,
		identity: identity,
		store:    st,
		coord:    coordinator.New(st, logger, identity),
		venues:   venues.NewClient(c.OverpassEndpoint, logger),
		reader:   reader,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

// inSession reports whether a session is currently attached.
func (a *App) inSession() bool {
	_, ok := a.coord.CurrentView()
	return ok
}

// isHider reports whether this identity created the attached session.
func (a *App) isHider() bool {
	v, ok := a.coord.CurrentView()
	return ok && v.Game.HiderID == a.identity.UID
}
