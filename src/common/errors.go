package common

import "errors"

// Error kinds the handlers translate into HTTP statuses. The messages double
// as the response bodies the API has always returned.
var (
	ErrInvalidAmount  = errors.New("Invalid amount set")
	ErrMissingFields  = errors.New("Missing required fields")
	ErrCheckoutScreen = errors.New("Failed to load payment screen, kindly try again")
	ErrWalletNotFound = errors.New("Wallet not found")
	ErrEmailDelivery  = errors.New("Error sending email, but your donation was successful.")
)
