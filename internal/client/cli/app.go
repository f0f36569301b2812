// Package cli implements the interactive Porter Owner console: a small
// REPL over the API gateway and the session store.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/porterowner/internal/client/api"
	"github.com/dmitrijs2005/porterowner/internal/client/config"
	"github.com/dmitrijs2005/porterowner/internal/client/models"
	"github.com/dmitrijs2005/porterowner/internal/client/session"
	"github.com/dmitrijs2005/porterowner/internal/logging"

	_ "modernc.org/sqlite"
)

// Gateway is the backend surface the console uses. api.Gateway satisfies
// it; tests substitute a fake.
type Gateway interface {
	Login(ctx context.Context, phone string, password []byte) (*api.LoginResult, error)
	IsNewAccount(ctx context.Context, phone string) (bool, error)
	FleetStatus(ctx context.Context, ownerID int64) (models.FleetStatus, error)
	FleetList(ctx context.Context, ownerID int64, filter string) ([]models.Vehicle, error)
	WalletTransactions(ctx context.Context, accountID int64, pageNo, pageSize int) (models.TransactionPage, error)
	Revenue(ctx context.Context, start, end time.Time, zones string) ([]models.RevenuePoint, error)
	DriverSummary(ctx context.Context, start, end time.Time, ownerID int64) ([]models.DriverSummary, error)
	Trips(ctx context.Context, date time.Time, opts api.TripOptions) ([]models.TripRow, error)
}

type App struct {
	config  *config.Config
	gateway Gateway
	store   session.Store
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the production composition: SQLite-backed session store and
// the HTTP gateway, both built from cfg.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := session.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db, cfg.SessionExpiryDays)
	gw := api.New(cfg.APIBaseURL, store, log)

	return &App{
		config:  cfg,
		gateway: gw,
		store:   store,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Close releases the session database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run starts the REPL and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
