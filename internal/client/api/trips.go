package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/porterowner/internal/client/models"
)

// TripOptions narrows a trips query. The zero value asks for the day's
// trips with stats and bill included, cancelled trips excluded.
type TripOptions struct {
	DriverID      int64
	IncludeCancel bool
	Include       []string
}

// Trips returns raw trip rows for one day. Rows are unfiltered: the backend
// returns trips for every owner, and the report package narrows them to the
// signed-in owner.
func (g *Gateway) Trips(ctx context.Context, date time.Time, opts TripOptions) ([]models.TripRow, error) {
	include := opts.Include
	if len(include) == 0 {
		include = []string{"stats", "bill"}
	}

	q := url.Values{}
	q.Set("date", date.Format(dateLayout))
	q.Set("include", strings.Join(include, ","))
	q.Set("includeCancel", strconv.FormatBool(opts.IncludeCancel))
	if opts.DriverID != 0 {
		q.Set("driverID", strconv.FormatInt(opts.DriverID, 10))
	}

	env, err := g.request(ctx, http.MethodGet, pathTrips, requestOptions{query: q})
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.TripRow](env)
}
