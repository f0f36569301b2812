package report

import "github.com/dmitrijs2005/porterowner/internal/client/models"

// OwnerFareShare is the owner's cut of a trip's total fare, in percent.
const OwnerFareShare = 85

// placeholder fills fields the backend left empty.
const placeholder = "N/A"

// ForOwner keeps only the trips that belong to ownerID. The trips endpoint
// returns every owner's trips for the day, so the narrowing happens here.
func ForOwner(rows []models.TripRow, ownerID int64) []models.TripRow {
	out := make([]models.TripRow, 0, len(rows))
	for _, r := range rows {
		if r.OwnerAssistID == ownerID {
			out = append(out, r)
		}
	}
	return out
}

// FromRow resolves a wire row's legacy aliases into a Trip and applies the
// owner's fare share. fallbackDate is used when the row carries no date of
// its own (typically the date the caller queried for).
func FromRow(r models.TripRow, fallbackDate string) models.Trip {
	id := r.TripAutoID
	if id == 0 {
		id = r.TripID
	}
	if id == 0 {
		id = r.ID
	}

	var fare float64
	if r.TotalFare != 0 {
		fare = r.TotalFare * OwnerFareShare / 100
	}

	return models.Trip{
		TripID:      id,
		PaymentMode: r.PaymentMode,
		Fare:        fare,
		Status:      r.Status,
		Date:        firstNonEmpty(r.TripDate, r.Date, fallbackDate),
		Time:        firstNonEmpty(r.TripTime, r.Time, placeholder),
		Pickup:      firstNonEmpty(r.PickupLocation, r.Pickup, placeholder),
		Drop:        firstNonEmpty(r.DropLocation, r.Drop, placeholder),
		DriverName:  firstNonEmpty(r.DriverName, placeholder),
	}
}

// MapTrips converts a day's wire rows to presentation trips.
func MapTrips(rows []models.TripRow, fallbackDate string) []models.Trip {
	out := make([]models.Trip, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromRow(r, fallbackDate))
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
