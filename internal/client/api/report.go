package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/porterowner/internal/client/models"
)

// DriverSummary returns per-driver trip/earnings aggregates over the date
// range, already mapped from the backend's wire rows. Range validation
// (the 31-day cap) is the caller's responsibility; see the report package.
func (g *Gateway) DriverSummary(ctx context.Context, start, end time.Time, ownerID int64) ([]models.DriverSummary, error) {
	q := url.Values{}
	q.Set("startDate", start.Format(dateLayout))
	q.Set("endDate", end.Format(dateLayout))
	q.Set("oaId", strconv.FormatInt(ownerID, 10))

	env, err := g.request(ctx, http.MethodGet, pathDriverSummary, requestOptions{query: q})
	if err != nil {
		return nil, err
	}

	rows, err := decodeData[[]models.DriverSummaryRow](env)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.DriverSummary, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, r.Summary())
	}
	return summaries, nil
}
