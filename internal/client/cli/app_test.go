package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/porterowner/internal/client/api"
	"github.com/dmitrijs2005/porterowner/internal/client/config"
	"github.com/dmitrijs2005/porterowner/internal/client/models"
	"github.com/dmitrijs2005/porterowner/internal/client/session"
	"github.com/dmitrijs2005/porterowner/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestApp builds an App with an in-memory store, buffered output and the
// given fake gateway.
func newTestApp(t *testing.T, gw Gateway, store session.Store) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()
	if store == nil {
		store = session.NewStatic(7)
	}
	return &App{
		config:  cfg,
		gateway: gw,
		store:   store,
		log:     testLogger(),
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     &out,
	}, &out
}

func signedInStore(t *testing.T, ownerID int64) *session.Static {
	t.Helper()
	s := session.NewStatic(7)
	require.NoError(t, s.Save(context.Background(),
		session.Profile{Name: "Asha", Phone: "9876543210", OwnerID: ownerID},
		"42"))
	return s
}

func stubInputs(t *testing.T, text string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

// fakeGateway implements Gateway for unit tests.
type fakeGateway struct {
	loginResult *api.LoginResult
	loginErr    error
	loginPhone  string
	loginPass   []byte

	isNewRet bool
	isNewErr error

	fleetStatusRet models.FleetStatus
	fleetStatusErr error
	fleetStatusID  int64

	fleetListRet    []models.Vehicle
	fleetListErr    error
	fleetListFilter string

	walletRet  models.TransactionPage
	walletErr  error
	walletID   int64
	walletPage int
	walletSize int

	revenueRet   []models.RevenuePoint
	revenueErr   error
	revenueZones string

	summaryRet   []models.DriverSummary
	summaryErr   error
	summaryOwner int64
	summaryCalls int

	tripsRet  []models.TripRow
	tripsErr  error
	tripsOpts api.TripOptions
}

func (f *fakeGateway) Login(_ context.Context, phone string, password []byte) (*api.LoginResult, error) {
	f.loginPhone, f.loginPass = phone, append([]byte(nil), password...)
	return f.loginResult, f.loginErr
}
func (f *fakeGateway) IsNewAccount(context.Context, string) (bool, error) {
	return f.isNewRet, f.isNewErr
}
func (f *fakeGateway) FleetStatus(_ context.Context, ownerID int64) (models.FleetStatus, error) {
	f.fleetStatusID = ownerID
	return f.fleetStatusRet, f.fleetStatusErr
}
func (f *fakeGateway) FleetList(_ context.Context, _ int64, filter string) ([]models.Vehicle, error) {
	f.fleetListFilter = filter
	return f.fleetListRet, f.fleetListErr
}
func (f *fakeGateway) WalletTransactions(_ context.Context, accountID int64, pageNo, pageSize int) (models.TransactionPage, error) {
	f.walletID, f.walletPage, f.walletSize = accountID, pageNo, pageSize
	return f.walletRet, f.walletErr
}
func (f *fakeGateway) Revenue(_ context.Context, _, _ time.Time, zones string) ([]models.RevenuePoint, error) {
	f.revenueZones = zones
	return f.revenueRet, f.revenueErr
}
func (f *fakeGateway) DriverSummary(_ context.Context, _, _ time.Time, ownerID int64) ([]models.DriverSummary, error) {
	f.summaryOwner = ownerID
	f.summaryCalls++
	return f.summaryRet, f.summaryErr
}
func (f *fakeGateway) Trips(_ context.Context, _ time.Time, opts api.TripOptions) ([]models.TripRow, error) {
	f.tripsOpts = opts
	return f.tripsRet, f.tripsErr
}
