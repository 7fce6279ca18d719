package lib

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"gataama/src/config"
	"gataama/src/types"
	"io"
	"net/http"
)

type FlutterwaveClient struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

var flutterwaveClient *FlutterwaveClient

func GetFlutterwaveClient() *FlutterwaveClient {
	if flutterwaveClient != nil {
		return flutterwaveClient
	}
	cfg := config.Get()
	fw := NewFlutterwave(cfg.FlutterwaveBaseURL, cfg.FlutterwaveSecretKey)
	flutterwaveClient = fw

	return fw
}

func NewFlutterwaveClient(c *FlutterwaveClient) {
	flutterwaveClient = c
}

func NewFlutterwave(baseURL string, secretKey string) *FlutterwaveClient {
	return &FlutterwaveClient{
		baseURL:   baseURL,
		secretKey: secretKey,
		client:    &http.Client{},
	}
}

func (c *FlutterwaveClient) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.secretKey))
	req.Header.Set("Content-Type", "application/json")
	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("unexpected response from payment gateway: %d %s", res.StatusCode, string(body))
	}
	return body, nil
}

// CreatePayment requests a hosted checkout link for the given payment.
func (c *FlutterwaveClient) CreatePayment(ctx context.Context, params *types.FlutterwavePaymentRequest) (*types.FlutterwavePaymentResponse, error) {
	b, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v3/payments", c.baseURL), bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var res types.FlutterwavePaymentResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// VerifyTransaction fetches the processor's view of a transaction. The data
// payload is returned as-is so callers can persist it verbatim.
func (c *FlutterwaveClient) VerifyTransaction(ctx context.Context, transactionId string) (types.JSONB, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v3/transactions/%s/verify", c.baseURL, transactionId), nil)
	if err != nil {
		return nil, err
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var res struct {
		Status  string      `json:"status"`
		Message string      `json:"message"`
		Data    types.JSONB `json:"data"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}
