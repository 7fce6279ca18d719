package lib

import (
	"context"
	"gataama/src/types"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestCreatePayment(t *testing.T) {
	var gotPath, gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","message":"Hosted Link","data":{"link":"https://checkout.flutterwave.com/v3/hosted/pay/abc123"}}`))
	}))
	defer srv.Close()

	fw := NewFlutterwave(srv.URL, "test-secret")
	res, err := fw.CreatePayment(context.Background(), &types.FlutterwavePaymentRequest{
		TxRef:       "ref-1",
		Amount:      50,
		Currency:    "USD",
		RedirectURL: "https://donate.example.org/donation-status",
		Customer: types.FlutterwaveCustomer{
			Email: "donor@example.com",
			Name:  "Jane Donor",
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "/v3/payments", gotPath)
	assert.Equal(t, "Bearer test-secret", gotAuth)
	assert.Equal(t, "ref-1", gjson.Get(gotBody, "tx_ref").String())
	assert.Equal(t, float64(50), gjson.Get(gotBody, "amount").Float())
	assert.NotNil(t, res.Data)
	assert.Equal(t, "https://checkout.flutterwave.com/v3/hosted/pay/abc123", res.Data.Link)
}

func TestCreatePaymentErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","message":"Invalid authorization key"}`))
	}))
	defer srv.Close()

	fw := NewFlutterwave(srv.URL, "bad-secret")
	res, err := fw.CreatePayment(context.Background(), &types.FlutterwavePaymentRequest{TxRef: "ref-2"})
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestVerifyTransaction(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","message":"Transaction fetched successfully","data":{"id":12345,"tx_ref":"ref-1","amount":50,"currency":"USD","status":"successful"}}`))
	}))
	defer srv.Close()

	fw := NewFlutterwave(srv.URL, "test-secret")
	data, err := fw.VerifyTransaction(context.Background(), "12345")
	assert.NoError(t, err)
	assert.Equal(t, "/v3/transactions/12345/verify", gotPath)
	assert.Equal(t, "ref-1", data["tx_ref"])
	assert.Equal(t, "successful", data["status"])
}
