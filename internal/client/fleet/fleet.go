// Package fleet contains client-side helpers over an already-fetched
// vehicle list. The backend filters by state when asked, but the dashboard
// also narrows and recounts locally when the user switches tabs.
package fleet

import "github.com/dmitrijs2005/porterowner/internal/client/models"

// FilterByStatus returns the vehicles in the given state. An empty filter
// or "all" returns a copy of the whole list.
func FilterByStatus(vehicles []models.Vehicle, status string) []models.Vehicle {
	if status == "" || status == "all" {
		out := make([]models.Vehicle, len(vehicles))
		copy(out, vehicles)
		return out
	}

	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Status == status {
			out = append(out, v)
		}
	}
	return out
}

// CountByStatus recomputes the aggregate counts from a vehicle list.
// Unknown states are not counted.
func CountByStatus(vehicles []models.Vehicle) models.FleetStatus {
	var s models.FleetStatus
	for _, v := range vehicles {
		switch v.Status {
		case models.VehicleStatusOnTrip:
			s.OnTrip++
		case models.VehicleStatusOnline:
			s.Online++
		case models.VehicleStatusOffline:
			s.Offline++
		}
	}
	return s
}
