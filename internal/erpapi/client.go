// Package erpapi is the typed client for the remote ERP JSON API. The API
// itself is a black box: this package only shapes requests, classifies
// failures and decodes responses. A non-2xx answer becomes *APIError so
// callers can tell a server rejection apart from a transport failure with
// errors.As; everything else (DNS, timeout, connection reset) surfaces as
// the underlying error.
package erpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Kavesh2000/ERP/internal/domain"
)

// APIError is a response the server returned and refused: the request
// completed at the network level but was rejected.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

type Client struct {
	base   *url.URL
	http   *http.Client
	logger *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	// Session auth rides on a cookie the server sets at login.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		base: u,
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		logger: logger,
	}, nil
}

// Ping probes API availability.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/ping", nil, nil)
}

func (c *Client) Login(ctx context.Context, username, password string) (*domain.User, error) {
	body := map[string]string{"username": username, "password": password}
	var u domain.User
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Whoami(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodGet, "/api/whoami", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
}

// createOrderResponse tolerates the server's historical id field names.
type createOrderResponse struct {
	ID          *int64  `json:"id"`
	SaleID      *int64  `json:"sale_id"`
	OrderID     *int64  `json:"order_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Timestamp   string  `json:"timestamp"`
	CreatedBy   int64   `json:"created_by"`
	BottlesUsed int     `json:"bottles_used"`
	BottlePrice float64 `json:"bottle_price"`
}

func (r createOrderResponse) serverID() int64 {
	for _, id := range []*int64{r.ID, r.SaleID, r.OrderID} {
		if id != nil {
			return *id
		}
	}
	return 0
}

// CreateOrder submits one order. On success the returned Order carries the
// server-assigned id (first of id/sale_id/order_id) and timestamp; an
// empty or unparsable 2xx body is tolerated and leaves those fields zero.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	body, resp, err := c.roundTrip(ctx, http.MethodPost, "/api/orders", req)
	if err != nil {
		return nil, err
	}
	if err := rejectionFrom(resp, body); err != nil {
		return nil, err
	}

	var cr createOrderResponse
	if len(bytes.TrimSpace(body)) > 0 && string(bytes.TrimSpace(body)) != "null" {
		if err := json.Unmarshal(body, &cr); err != nil {
			c.logger.Warn("order confirmed with unparsable body",
				zap.Int("status", resp.StatusCode),
				zap.Error(err),
			)
			cr = createOrderResponse{}
		}
	}

	return &domain.Order{
		ID:              cr.serverID(),
		ProductID:       req.ProductID,
		ProductName:     cr.ProductName,
		Quantity:        req.Quantity,
		UnitPrice:       cr.UnitPrice,
		Total:           cr.Total,
		PaymentMethod:   req.PaymentMethod,
		Timestamp:       cr.Timestamp,
		CreatedBy:       cr.CreatedBy,
		BottlesUsed:     cr.BottlesUsed,
		BottlePrice:     cr.BottlePrice,
		ClientTimestamp: req.ClientTimestamp,
	}, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := c.do(ctx, http.MethodGet, "/api/products", nil, &out)
	return out, err
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := c.do(ctx, http.MethodGet, "/api/orders", nil, &out)
	return out, err
}

func (c *Client) ListStock(ctx context.Context) ([]domain.StockRecord, error) {
	var out []domain.StockRecord
	err := c.do(ctx, http.MethodGet, "/api/stock", nil, &out)
	return out, err
}

func (c *Client) ListSources(ctx context.Context) ([]domain.Source, error) {
	var out []domain.Source
	err := c.do(ctx, http.MethodGet, "/api/sources", nil, &out)
	return out, err
}

func (c *Client) ListProductSources(ctx context.Context) ([]domain.ProductSource, error) {
	var out []domain.ProductSource
	err := c.do(ctx, http.MethodGet, "/api/product_sources", nil, &out)
	return out, err
}

func (c *Client) ListMovements(ctx context.Context) ([]domain.Movement, error) {
	var out []domain.Movement
	err := c.do(ctx, http.MethodGet, "/api/movements", nil, &out)
	return out, err
}

// ProductPriceHistory lists the recorded price changes for one product,
// newest first.
func (c *Client) ProductPriceHistory(ctx context.Context, productID int64) ([]domain.PriceChange, error) {
	var out []domain.PriceChange
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d/history", productID), nil, &out)
	return out, err
}

func (c *Client) DailySummary(ctx context.Context) (*domain.DailySummary, error) {
	var out domain.DailySummary
	if err := c.do(ctx, http.MethodGet, "/api/daily_summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do runs one request and decodes a JSON body into dest when given.
func (c *Client) do(ctx context.Context, method, path string, in, dest any) error {
	body, resp, err := c.roundTrip(ctx, method, path, in)
	if err != nil {
		return err
	}
	if err := rejectionFrom(resp, body); err != nil {
		return err
	}
	if dest == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// roundTrip performs the HTTP exchange. Any returned error is a transport
// failure; rejections are classified by the caller from resp/body.
func (c *Client) roundTrip(ctx context.Context, method, path string, in any) ([]byte, *http.Response, error) {
	var reqBody io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reqBody)
	if err != nil {
		return nil, nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	return body, resp, nil
}

func (c *Client) endpoint(path string) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	return u.String()
}

// rejectionFrom turns a non-2xx response into *APIError, taking the message
// from the body's error field when present and "HTTP <status>" otherwise.
func rejectionFrom(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
