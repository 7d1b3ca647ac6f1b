package domain

// Payment methods accepted by the ERP API.
const (
	PaymentCash  = "Cash"
	PaymentMpesa = "Mpesa"
)

// OrderRequest is the order-creation body for POST /api/orders.
// order_date is naive ISO 8601 (server interprets it as UTC wall clock),
// client_timestamp carries the device's local time with its offset.
type OrderRequest struct {
	ProductID       int64   `json:"product_id"`
	Quantity        float64 `json:"quantity"`
	PaymentMethod   string  `json:"payment_method"`
	OrderDate       string  `json:"order_date,omitempty"`
	ClientTimestamp string  `json:"client_timestamp,omitempty"`
	UseBottle       bool    `json:"use_bottle,omitempty"`
	BottlesUsed     int     `json:"bottles_used,omitempty"`
	BottleSize      int     `json:"bottle_size,omitempty"`
	BottlePrice     float64 `json:"bottle_price,omitempty"`
}

// Order is a sale row as the ERP API returns it. ID stays zero when the
// server confirmed without sending an identifier.
type Order struct {
	ID              int64   `json:"id"`
	ProductID       int64   `json:"product_id"`
	ProductName     string  `json:"product_name,omitempty"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	Total           float64 `json:"total"`
	PaymentMethod   string  `json:"payment_method"`
	Timestamp       string  `json:"timestamp,omitempty"`
	CreatedBy       int64   `json:"created_by,omitempty"`
	BottlesUsed     int     `json:"bottles_used,omitempty"`
	BottlePrice     float64 `json:"bottle_price,omitempty"`
	ClientTimestamp string  `json:"client_timestamp,omitempty"`
}
