package common

import (
	"context"
	"errors"
	"fmt"
	"gataama/src/config"
	"gataama/src/db"
	"gataama/src/lib"
	"gataama/src/lib/mailer"
	"gataama/src/models"
	"gataama/src/types"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type donationInput struct {
	Amount    float64 `validate:"required,gt=0"`
	Email     string  `validate:"required"`
	Currency  string  `validate:"required"`
	FullNames string  `validate:"required"`
}

// CreateDonationCheckout validates the request, asks the payment gateway for
// a hosted checkout link and records the pending donation. The returned URL
// is where the donor completes payment.
func CreateDonationCheckout(ctx context.Context, body *types.CreateDonationRequestBody) (string, error) {
	in := donationInput{
		Amount:    body.Amount,
		Email:     body.Email,
		Currency:  body.Currency,
		FullNames: body.FullNames,
	}
	if err := validate.Struct(&in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "Amount" {
					return "", ErrInvalidAmount
				}
			}
		}
		return "", ErrMissingFields
	}

	cfg := config.Get()
	txRef := uuid.NewString()
	formData := &types.FlutterwavePaymentRequest{
		TxRef:       txRef,
		Amount:      body.Amount,
		Currency:    body.Currency,
		RedirectURL: fmt.Sprintf("%s/donation-status", cfg.PaymentURL),
		Customer: types.FlutterwaveCustomer{
			Email: body.Email,
			Name:  body.FullNames,
		},
		Meta: types.FlutterwaveMeta{
			DonationType: body.DonationType,
		},
		Customizations: types.FlutterwaveCustomizations{
			Title:       "Gataama",
			Logo:        "https://gatamaapi.tickets2go.net/avatars/logo.jpg",
			Description: fmt.Sprintf("Donation for %s", body.DonationTitle),
		},
	}

	fw := lib.GetFlutterwaveClient()
	res, err := fw.CreatePayment(ctx, formData)
	if err != nil {
		return "", err
	}
	if res.Data == nil || res.Data.Link == "" {
		return "", ErrCheckoutScreen
	}

	txn := models.Transaction{
		TxRef:           txRef,
		Amount:          body.Amount,
		Currency:        body.Currency,
		DonationType:    body.DonationType,
		Email:           body.Email,
		FullNames:       body.FullNames,
		TransactionType: "deposit",
	}
	db := db.GetDb()
	if err := db.Create(&txn).Error; err != nil {
		return "", err
	}
	return res.Data.Link, nil
}

type WebhookParams struct {
	Status        string
	TxRef         string
	TransactionID string
}

// ProcessPaymentWebhook applies the processor's callback. A "successful"
// status verifies the transaction with the gateway, records the outcome,
// credits the currency wallet and mails the receipt; anything else only
// records the outcome. The wallet credit is a plain read-modify-write with
// no delivery deduplication, so a replayed callback credits again.
func ProcessPaymentWebhook(ctx context.Context, params *WebhookParams) (string, error) {
	dbi := db.GetDb()
	if params.Status != "successful" {
		if err := dbi.
			Model(&models.Transaction{}).
			Where("tx_ref = ?", params.TxRef).
			Updates(map[string]any{
				"status":         params.Status,
				"transaction_id": params.TransactionID,
			}).
			Error; err != nil {
			return "", err
		}
		return "Payment failed, kindly retry", nil
	}

	fw := lib.GetFlutterwaveClient()
	summary, err := fw.VerifyTransaction(ctx, params.TransactionID)
	if err != nil {
		return "", err
	}

	var txn models.Transaction
	if err := dbi.
		Where(&models.Transaction{TxRef: params.TxRef}).
		First(&txn).
		Error; err != nil {
		return "", err
	}
	if err := dbi.
		Model(&models.Transaction{}).
		Where("tx_ref = ?", params.TxRef).
		Updates(map[string]any{
			"status":              params.Status,
			"transaction_id":      params.TransactionID,
			"transaction_summary": summary,
		}).
		Error; err != nil {
		return "", err
	}

	var wallet models.Wallet
	if err := dbi.
		Where(&models.Wallet{Symbol: txn.Currency}).
		First(&wallet).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrWalletNotFound
		}
		return "", err
	}
	updatedAmount := wallet.Amount + txn.Amount
	if err := dbi.
		Model(&models.Wallet{}).
		Where("id = ?", wallet.ID).
		Update("amount", updatedAmount).
		Error; err != nil {
		return "", err
	}

	if err := mailer.SendDonationReceipt(&txn); err != nil {
		log.Printf("Error sending email: %s\n", err.Error())
		return "", ErrEmailDelivery
	}
	return fmt.Sprintf("Thank you for your Donation, check your email (%s)", txn.Email), nil
}

// ListCurrencies returns the active wallets ordered by currency code.
func ListCurrencies() ([]models.Wallet, error) {
	var wallets []models.Wallet
	dbi := db.GetDb()
	if err := dbi.
		Where("status = ?", 1).
		Order("currency asc").
		Find(&wallets).
		Error; err != nil {
		return nil, err
	}
	return wallets, nil
}

// GetAdminAnalytics returns the funded active wallets plus the 20 most
// recent settled donations, newest first.
func GetAdminAnalytics() ([]models.Wallet, []models.Transaction, error) {
	dbi := db.GetDb()
	var wallets []models.Wallet
	if err := dbi.
		Where("amount > ? AND status = ?", 0, 1).
		Order("currency asc").
		Find(&wallets).
		Error; err != nil {
		return nil, nil, err
	}
	var transactions []models.Transaction
	if err := dbi.
		Where("status = ?", "successful").
		Order("created_at desc").
		Limit(20).
		Find(&transactions).
		Error; err != nil {
		return nil, nil, err
	}
	return wallets, transactions, nil
}
