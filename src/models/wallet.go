package models

import (
	"gataama/src/types"
)

// Wallet is an aggregate balance bucket keyed by currency symbol. Rows are
// provisioned out of band; only the payment webhook mutates Amount.
type Wallet struct {
	ID uint `gorm:"primarykey" json:"id"`

	Symbol   string  `gorm:"uniqueIndex" json:"symbol"`
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Status   int     `json:"status"`

	types.Timestamps
}
