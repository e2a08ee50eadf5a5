package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"StorePulse/internal/model"
)

// Submitter pushes a synthetic order to the storefront. Implementations
// return the acknowledgment on success; any failure means zero realized
// revenue for the attempt.
type Submitter interface {
	Submit(ctx context.Context, o model.SyntheticOrder) (*model.OrderAck, error)
}

// Client talks to the storefront Admin API.
type Client struct {
	storeURL  string
	apiKey    string
	password  string
	variantID int64
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient builds the Admin API client. maxPerMinute throttles submissions
// so a burst of pacing ticks cannot hammer the storefront.
func NewClient(storeURL, apiKey, password string, variantID int64, timeout time.Duration, maxPerMinute int) *Client {
	return &Client{
		storeURL:  storeURL,
		apiKey:    apiKey,
		password:  password,
		variantID: variantID,
		http:      &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Limit(float64(maxPerMinute)/60), 1),
	}
}

type lineItem struct {
	VariantID int64 `json:"variant_id"`
	Quantity  int   `json:"quantity"`
}

type orderPayload struct {
	Order struct {
		Email             string     `json:"email"`
		FinancialStatus   string     `json:"financial_status"`
		FulfillmentStatus string     `json:"fulfillment_status"`
		LineItems         []lineItem `json:"line_items"`
		Note              string     `json:"note,omitempty"`
	} `json:"order"`
}

type orderResponse struct {
	Order struct {
		ID        int64  `json:"id"`
		CreatedAt string `json:"created_at"`
	} `json:"order"`
}

// Submit POSTs the order and expects HTTP 201. The caller's context bounds
// the whole attempt, including any wait on the rate limiter.
func (c *Client) Submit(ctx context.Context, o model.SyntheticOrder) (*model.OrderAck, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("order throttle: %w", err)
	}

	var payload orderPayload
	payload.Order.Email = o.BuyerHandle
	payload.Order.FinancialStatus = "paid"
	payload.Order.FulfillmentStatus = "unfulfilled"
	payload.Order.LineItems = []lineItem{{VariantID: c.variantID, Quantity: o.UnitCount}}
	payload.Order.Note = "ref:" + o.Reference

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	endpoint := fmt.Sprintf("%s/admin/api/2024-01/orders.json", c.storeURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.apiKey, c.password)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("submit order: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	return &model.OrderAck{OrderID: result.Order.ID, CreatedAt: result.Order.CreatedAt}, nil
}
