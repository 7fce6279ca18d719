package models

import (
	"gataama/src/types"
)

// Transaction is a donation record. It is created when a checkout link is
// issued and updated once by the payment webhook. Status holds whatever
// value the processor's callback carried, typically "successful".
type Transaction struct {
	ID uint `gorm:"primarykey" json:"id"`

	TxRef              string      `gorm:"uniqueIndex" json:"tx_ref"`
	Amount             float64     `json:"amount"`
	Currency           string      `json:"currency"`
	DonationType       string      `json:"donationType,omitempty"`
	Email              string      `json:"email"`
	FullNames          string      `json:"fullNames"`
	TransactionType    string      `json:"transactionType"`
	Status             string      `json:"status,omitempty"`
	TransactionID      string      `json:"transactionId,omitempty"`
	TransactionSummary types.JSONB `json:"transactionSummary,omitempty"`

	types.Timestamps
}
