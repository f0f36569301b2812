// Package models defines the wire shapes returned by the Porter Owner
// backend, plus the presentation-side rows derived from them.
package models

// Vehicle status values as the backend reports them.
const (
	VehicleStatusOnTrip  = "onTrip"
	VehicleStatusOnline  = "online"
	VehicleStatusOffline = "offline"
)

// FleetStatus is the aggregate count of vehicles by state.
type FleetStatus struct {
	OnTrip  int64 `json:"onTrip"`
	Online  int64 `json:"online"`
	Offline int64 `json:"offline"`
}

// Total is the number of vehicles across all states.
func (s FleetStatus) Total() int64 {
	return s.OnTrip + s.Online + s.Offline
}

// Vehicle is one row of the per-vehicle fleet list.
type Vehicle struct {
	Name              string  `json:"name"`
	VehicleNumber     string  `json:"vehicleNumber"`
	VehicleTypeName   string  `json:"vehicleTypeName"`
	VehicleTypeAutoID int64   `json:"vehicleTypeAutoId"`
	DriverID          int64   `json:"driverId"`
	DriverStatus      bool    `json:"driverStatus"`
	IsOnTrip          int     `json:"isOnTrip"`
	Status            string  `json:"status"`
	CurrentLatitude   float64 `json:"currentLatitude"`
	CurrentLongitude  float64 `json:"currentLongitude"`
	ImageURL          string  `json:"imageUrl"`
}
