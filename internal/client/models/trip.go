package models

// TripRow is one trip record as the backend sends it. Older backend
// revisions emit lower_snake aliases for some columns, so the row keeps
// both and the report mapping applies the fallbacks.
type TripRow struct {
	TripAutoID    int64   `json:"TRIP_AUTO_ID"`
	PaymentMode   int     `json:"PAYMENT_MODE"`
	TotalFare     float64 `json:"TOTAL_FARE"`
	Status        int     `json:"STATUS"`
	OwnerAssistID int64   `json:"OWNER_ASSIST_ID"`

	// lower_snake aliases from older revisions
	TripID         int64  `json:"trip_id"`
	ID             int64  `json:"id"`
	TripDate       string `json:"trip_date"`
	Date           string `json:"date"`
	TripTime       string `json:"trip_time"`
	Time           string `json:"time"`
	PickupLocation string `json:"pickup_location"`
	Pickup         string `json:"pickup"`
	DropLocation   string `json:"drop_location"`
	Drop           string `json:"drop"`
	DriverName     string `json:"driver_name"`
}

// Trip is the presentation-side trip record with fallbacks resolved and the
// owner's fare share applied.
type Trip struct {
	TripID      int64
	PaymentMode int
	Fare        float64
	Status      int
	Date        string
	Time        string
	Pickup      string
	Drop        string
	DriverName  string
}
