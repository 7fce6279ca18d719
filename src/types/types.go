package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

// CreateDonationRequestBody carries the checkout-initiation payload. Fields
// are validated in the service layer so each field group keeps its own
// client error message.
type CreateDonationRequestBody struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Email         string  `json:"email"`
	FullNames     string  `json:"fullNames"`
	DonationType  string  `json:"donationType,omitempty"`
	DonationTitle string  `json:"donationTitle,omitempty"`
}

type FlutterwaveCustomer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type FlutterwaveMeta struct {
	DonationType string `json:"donationType,omitempty"`
}

type FlutterwaveCustomizations struct {
	Title       string `json:"title"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

// FlutterwavePaymentRequest is the JSON body posted to /v3/payments.
type FlutterwavePaymentRequest struct {
	TxRef          string                    `json:"tx_ref"`
	Amount         float64                   `json:"amount"`
	Currency       string                    `json:"currency"`
	RedirectURL    string                    `json:"redirect_url"`
	Customer       FlutterwaveCustomer       `json:"customer"`
	Meta           FlutterwaveMeta           `json:"meta"`
	Customizations FlutterwaveCustomizations `json:"customizations"`
}

type FlutterwavePaymentData struct {
	Link string `json:"link"`
}

type FlutterwavePaymentResponse struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message"`
	Data    *FlutterwavePaymentData `json:"data"`
}
