// Package api is the gateway to the Porter Owner backend: the only
// component in the client that performs network I/O. It owns request
// construction, credential injection and the uniform transport error;
// interpreting the returned payloads beyond the shared envelope is left
// to callers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/porterowner/internal/client/session"
	"github.com/dmitrijs2005/porterowner/internal/logging"
)

// Backend endpoint paths, relative to the configured base URL.
const (
	pathLogin         = "/oa/login"
	pathIsNew         = "/oa/isNew"
	pathFleetStatus   = "/oa/stats/fleetStatus"
	pathFleetList     = "/oa/stats/fleetList"
	pathWalletTxns    = "/driver/walletTxns"
	pathRevenue       = "/admin/stats/revenue"
	pathDriverSummary = "/oa/driverSummary"
	pathTrips         = "/trips"
)

// dateLayout is the wire format for date query parameters.
const dateLayout = "2006-01-02"

// SessionStore is the slice of session.Store the gateway needs: the
// credential to attach to outgoing requests, and the write performed by a
// successful login.
type SessionStore interface {
	Current(ctx context.Context) (string, error)
	Save(ctx context.Context, profile session.Profile, credential string) error
}

// Gateway executes backend calls on behalf of the rest of the client.
// It holds no per-call state: concurrent calls are independent, and there
// is no retry, coalescing or circuit breaking.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	session    SessionStore
	log        logging.Logger
}

// New builds a Gateway for the given base URL. The store supplies (and,
// on login, receives) the session credential.
func New(baseURL string, store SessionStore, log logging.Logger) *Gateway {
	return &Gateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		session:    store,
		log:        log.With("component", "gateway"),
	}
}
