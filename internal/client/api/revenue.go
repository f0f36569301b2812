package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/porterowner/internal/client/models"
)

// DefaultZones is the zone list used when the caller does not narrow the
// revenue query.
const DefaultZones = "1,2,3"

// Revenue returns the revenue/trip-count time series for the date range,
// bounds inclusive. zones is a comma-separated zone id list.
func (g *Gateway) Revenue(ctx context.Context, start, end time.Time, zones string) ([]models.RevenuePoint, error) {
	if zones == "" {
		zones = DefaultZones
	}

	q := url.Values{}
	q.Set("startDate", start.Format(dateLayout))
	q.Set("endDate", end.Format(dateLayout))
	q.Set("zones", zones)

	env, err := g.request(ctx, http.MethodGet, pathRevenue, requestOptions{query: q})
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.RevenuePoint](env)
}
