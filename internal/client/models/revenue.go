package models

// RevenuePoint is one bucket of the revenue/trip-count time series.
type RevenuePoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
