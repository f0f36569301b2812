package models

// DriverSummaryRow is a per-driver aggregate exactly as the backend sends
// it. Column naming is mixed on the wire; the row is mapped to
// DriverSummary before anything displays it.
type DriverSummaryRow struct {
	DriverAutoID  int64   `json:"DRIVER_AUTO_ID"`
	DriverName    string  `json:"driver_name"`
	DriverNumber  string  `json:"driver_number"`
	TotalTrips    int64   `json:"total_trips"`
	TotalAmount   float64 `json:"total_amount"`
	TotalDistance float64 `json:"total_distance"`
}

// DriverSummary is the presentation-side per-driver aggregate.
type DriverSummary struct {
	DriverID      int64
	DriverName    string
	PhoneNumber   string
	TotalTrips    int64
	AmountEarned  float64
	TotalDistance float64
}

// Summary converts a wire row to its presentation form.
func (r DriverSummaryRow) Summary() DriverSummary {
	return DriverSummary{
		DriverID:      r.DriverAutoID,
		DriverName:    r.DriverName,
		PhoneNumber:   r.DriverNumber,
		TotalTrips:    r.TotalTrips,
		AmountEarned:  r.TotalAmount,
		TotalDistance: r.TotalDistance,
	}
}
