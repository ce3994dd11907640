package models

import "time"

// ReferenceCurrency is the unit every price row is stored in. Display
// currencies are converted from it at render time and never persisted.
const ReferenceCurrency = "USD"

// Default prices served when the prices table is still empty.
const (
	DefaultRAMPrice = 5.00
	DefaultCPUPrice = 10.00
)

type PriceRecord struct {
	ID        int       `json:"id"`
	RAMPrice  float64   `json:"ram_price"`
	CPUPrice  float64   `json:"cpu_price"`
	Currency  string    `json:"currency"`
	UpdatedAt time.Time `json:"updated_at"`
}
