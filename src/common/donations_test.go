package common

import (
	"context"
	"gataama/src/config"
	"gataama/src/lib"
	"gataama/src/types"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newGatewayStub(t *testing.T, calls *int, response string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	lib.NewFlutterwaveClient(lib.NewFlutterwave(srv.URL, "test-secret"))
	t.Cleanup(func() { lib.NewFlutterwaveClient(nil) })
	return srv
}

func TestCreateDonationCheckoutRejectsAmount(t *testing.T) {
	var calls int
	newGatewayStub(t, &calls, `{}`)

	for _, amount := range []float64{0, -5} {
		url, err := CreateDonationCheckout(context.Background(), &types.CreateDonationRequestBody{
			Amount:    amount,
			Currency:  "USD",
			Email:     "donor@example.com",
			FullNames: "Jane Donor",
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Empty(t, url)
	}
	assert.Zero(t, calls)
}

func TestCreateDonationCheckoutRejectsMissingFields(t *testing.T) {
	var calls int
	newGatewayStub(t, &calls, `{}`)

	bodies := []*types.CreateDonationRequestBody{
		{Amount: 10, Currency: "USD", FullNames: "Jane Donor"},
		{Amount: 10, Email: "donor@example.com", FullNames: "Jane Donor"},
		{Amount: 10, Currency: "USD", Email: "donor@example.com"},
	}
	for _, body := range bodies {
		url, err := CreateDonationCheckout(context.Background(), body)
		assert.ErrorIs(t, err, ErrMissingFields)
		assert.Empty(t, url)
	}
	assert.Zero(t, calls)
}

func TestCreateDonationCheckoutAmountErrorWins(t *testing.T) {
	var calls int
	newGatewayStub(t, &calls, `{}`)

	_, err := CreateDonationCheckout(context.Background(), &types.CreateDonationRequestBody{})
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Zero(t, calls)
}

func TestCreateDonationCheckoutNoLink(t *testing.T) {
	config.Set(&config.AppConfig{PaymentURL: "https://donate.example.org"})
	t.Cleanup(func() { config.Set(nil) })

	var calls int
	newGatewayStub(t, &calls, `{"status":"error","message":"no checkout"}`)

	url, err := CreateDonationCheckout(context.Background(), &types.CreateDonationRequestBody{
		Amount:    10,
		Currency:  "USD",
		Email:     "donor@example.com",
		FullNames: "Jane Donor",
	})
	assert.ErrorIs(t, err, ErrCheckoutScreen)
	assert.Empty(t, url)
	assert.Equal(t, 1, calls)
}
