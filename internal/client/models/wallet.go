package models

// WalletTransaction is one ledger row. The backend returns these columns in
// UPPER_SNAKE form.
type WalletTransaction struct {
	TransactionID   int64   `json:"TRANSACTION_ID"`
	TransactionType string  `json:"TRANSACTION_TYPE"`
	Amount          float64 `json:"AMOUNT"`
	CreatedTime     string  `json:"CREATED_TIME"`
	Description     string  `json:"DESCRIPTION,omitempty"`
	TripID          int64   `json:"TRIP_ID,omitempty"`
	DriverID        int64   `json:"DRIVER_ID"`
}

// TransactionPage is one page of wallet transactions together with the
// total row count reported by the backend envelope.
type TransactionPage struct {
	Transactions []WalletTransaction
	TotalCount   int64
}
