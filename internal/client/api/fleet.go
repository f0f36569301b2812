package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/porterowner/internal/client/models"
)

// FleetFilterAll requests the vehicle list without a state filter.
const FleetFilterAll = "all"

// FleetStatus returns the aggregate vehicle counts by state for one owner.
func (g *Gateway) FleetStatus(ctx context.Context, ownerID int64) (models.FleetStatus, error) {
	q := url.Values{}
	q.Set("oaId", strconv.FormatInt(ownerID, 10))

	env, err := g.request(ctx, http.MethodGet, pathFleetStatus, requestOptions{query: q})
	if err != nil {
		return models.FleetStatus{}, err
	}
	return decodeData[models.FleetStatus](env)
}

// FleetList returns the owner's vehicles, optionally filtered by state
// (onTrip, online, offline). An empty filter means all vehicles.
func (g *Gateway) FleetList(ctx context.Context, ownerID int64, filter string) ([]models.Vehicle, error) {
	if filter == "" {
		filter = FleetFilterAll
	}

	q := url.Values{}
	q.Set("oaId", strconv.FormatInt(ownerID, 10))
	q.Set("filterBy", filter)

	env, err := g.request(ctx, http.MethodGet, pathFleetList, requestOptions{query: q})
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Vehicle](env)
}
