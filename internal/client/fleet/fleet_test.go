package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/porterowner/internal/client/models"
)

func sampleFleet() []models.Vehicle {
	return []models.Vehicle{
		{VehicleNumber: "KA01", Status: models.VehicleStatusOnTrip},
		{VehicleNumber: "KA02", Status: models.VehicleStatusOnline},
		{VehicleNumber: "KA03", Status: models.VehicleStatusOnline},
		{VehicleNumber: "KA04", Status: models.VehicleStatusOffline},
	}
}

func TestFilterByStatus(t *testing.T) {
	vehicles := sampleFleet()

	online := FilterByStatus(vehicles, models.VehicleStatusOnline)
	require.Len(t, online, 2)
	assert.Equal(t, "KA02", online[0].VehicleNumber)

	all := FilterByStatus(vehicles, "all")
	assert.Len(t, all, 4)

	// "all" returns a copy, not the backing array
	all[0].VehicleNumber = "changed"
	assert.Equal(t, "KA01", vehicles[0].VehicleNumber)

	assert.Len(t, FilterByStatus(vehicles, ""), 4)
	assert.Empty(t, FilterByStatus(nil, models.VehicleStatusOnline))
}

func TestCountByStatus(t *testing.T) {
	got := CountByStatus(sampleFleet())
	assert.Equal(t, models.FleetStatus{OnTrip: 1, Online: 2, Offline: 1}, got)
	assert.Equal(t, int64(4), got.Total())

	assert.Zero(t, CountByStatus(nil).Total())
}
