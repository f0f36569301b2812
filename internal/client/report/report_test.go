package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/porterowner/internal/client/models"
)

func day(d int) time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"same day", day(0), day(0), nil},
		{"week", day(0), day(7), nil},
		{"exactly at cap", day(0), day(31), nil},
		{"one past cap", day(0), day(32), ErrRangeTooLong},
		{"end before start", day(5), day(4), ErrEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(tt.start, tt.end)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(start, end))
}

func TestForOwner(t *testing.T) {
	rows := []models.TripRow{
		{TripAutoID: 1, OwnerAssistID: 13},
		{TripAutoID: 2, OwnerAssistID: 99},
		{TripAutoID: 3, OwnerAssistID: 13},
	}

	got := ForOwner(rows, 13)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].TripAutoID)
	assert.Equal(t, int64(3), got[1].TripAutoID)

	assert.Empty(t, ForOwner(rows, 7))
}

func TestFromRow_FareShare(t *testing.T) {
	trip := FromRow(models.TripRow{TripAutoID: 1, TotalFare: 1000}, "2025-06-01")
	assert.InDelta(t, 850.0, trip.Fare, 0.001)

	free := FromRow(models.TripRow{TripAutoID: 2}, "2025-06-01")
	assert.Zero(t, free.Fare)
}

func TestFromRow_Fallbacks(t *testing.T) {
	// sparse legacy row: only aliases populated
	trip := FromRow(models.TripRow{
		TripID:     77,
		Date:       "2025-05-30",
		Time:       "10:15",
		Pickup:     "Market",
		DropLocation: "Depot",
	}, "2025-06-01")

	assert.Equal(t, int64(77), trip.TripID)
	assert.Equal(t, "2025-05-30", trip.Date)
	assert.Equal(t, "10:15", trip.Time)
	assert.Equal(t, "Market", trip.Pickup)
	assert.Equal(t, "Depot", trip.Drop)
	assert.Equal(t, "N/A", trip.DriverName)

	// nothing at all: fallback date, placeholders elsewhere
	blank := FromRow(models.TripRow{}, "2025-06-01")
	assert.Equal(t, "2025-06-01", blank.Date)
	assert.Equal(t, "N/A", blank.Time)
	assert.Equal(t, "N/A", blank.Pickup)
	assert.Equal(t, "N/A", blank.Drop)
}

func TestSortSummaries(t *testing.T) {
	items := []models.DriverSummary{
		{DriverName: "Bala", AmountEarned: 300, TotalTrips: 3},
		{DriverName: "Arun", AmountEarned: 500, TotalTrips: 1},
		{DriverName: "Chitra", AmountEarned: 100, TotalTrips: 2},
	}

	SortSummaries(items, ByAmountEarned, Descending)
	assert.Equal(t, "Arun", items[0].DriverName)
	assert.Equal(t, "Chitra", items[2].DriverName)

	SortSummaries(items, ByDriverName, Ascending)
	assert.Equal(t, "Arun", items[0].DriverName)
	assert.Equal(t, "Chitra", items[2].DriverName)

	SortSummaries(items, ByTotalTrips, Ascending)
	assert.Equal(t, int64(1), items[0].TotalTrips)
	assert.Equal(t, int64(3), items[2].TotalTrips)
}

func TestSortSummaries_StableOnEqualKeys(t *testing.T) {
	items := []models.DriverSummary{
		{DriverID: 1, AmountEarned: 100},
		{DriverID: 2, AmountEarned: 100},
		{DriverID: 3, AmountEarned: 100},
	}
	SortSummaries(items, ByAmountEarned, Descending)
	assert.Equal(t, int64(1), items[0].DriverID)
	assert.Equal(t, int64(3), items[2].DriverID)
}

func TestSortTrips(t *testing.T) {
	items := []models.Trip{
		{TripID: 2, Fare: 100, Time: "12:00"},
		{TripID: 1, Fare: 300, Time: "09:00"},
		{TripID: 3, Fare: 200, Time: "15:00"},
	}

	SortTrips(items, ByFare, Descending)
	assert.Equal(t, int64(1), items[0].TripID)

	SortTrips(items, ByTripTime, Ascending)
	assert.Equal(t, "09:00", items[0].Time)

	SortTrips(items, ByTripID, Ascending)
	assert.Equal(t, int64(1), items[0].TripID)
	assert.Equal(t, int64(3), items[2].TripID)
}

func TestDirectionToggle(t *testing.T) {
	assert.Equal(t, Descending, Ascending.Toggle())
	assert.Equal(t, Ascending, Descending.Toggle())
}
