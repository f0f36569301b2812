package report

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/porterowner/internal/client/models"
)

// Direction is a sort order for report tables.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Toggle flips the direction; selecting the active column again reverses
// its order.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SummaryField names a sortable column of the driver summary table.
type SummaryField string

const (
	ByDriverName    SummaryField = "driverName"
	ByTotalTrips    SummaryField = "totalTrips"
	ByAmountEarned  SummaryField = "amountEarned"
	ByTotalDistance SummaryField = "totalDistance"
)

func summaryLess(a, b models.DriverSummary, field SummaryField) bool {
	switch field {
	case ByDriverName:
		return strings.Compare(a.DriverName, b.DriverName) < 0
	case ByTotalTrips:
		return a.TotalTrips < b.TotalTrips
	case ByTotalDistance:
		return a.TotalDistance < b.TotalDistance
	default: // ByAmountEarned
		return a.AmountEarned < b.AmountEarned
	}
}

// SortSummaries stably sorts items in place by the given column.
func SortSummaries(items []models.DriverSummary, field SummaryField, dir Direction) {
	sort.SliceStable(items, func(i, j int) bool {
		if dir == Descending {
			return summaryLess(items[j], items[i], field)
		}
		return summaryLess(items[i], items[j], field)
	})
}

// TripField names a sortable column of the per-day trips table.
type TripField string

const (
	ByTripID     TripField = "tripId"
	ByFare       TripField = "fare"
	ByTripTime   TripField = "time"
	ByTripDriver TripField = "driverName"
)

func tripLess(a, b models.Trip, field TripField) bool {
	switch field {
	case ByTripID:
		return a.TripID < b.TripID
	case ByTripTime:
		return strings.Compare(a.Time, b.Time) < 0
	case ByTripDriver:
		return strings.Compare(a.DriverName, b.DriverName) < 0
	default: // ByFare
		return a.Fare < b.Fare
	}
}

// SortTrips stably sorts items in place by the given column.
func SortTrips(items []models.Trip, field TripField, dir Direction) {
	sort.SliceStable(items, func(i, j int) bool {
		if dir == Descending {
			return tripLess(items[j], items[i], field)
		}
		return tripLess(items[i], items[j], field)
	})
}
