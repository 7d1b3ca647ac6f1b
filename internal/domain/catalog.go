package domain

type Product struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// StockRecord is one inventory row: unit counts per product.
type StockRecord struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    float64 `json:"quantity"`
	LastUpdated string  `json:"last_updated,omitempty"`
}

// Source is a central tank or gallon store the water is drawn from.
type Source struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit,omitempty"`
	Quantity    float64 `json:"quantity"`
	LastUpdated string  `json:"last_updated,omitempty"`
}

// ProductSource links a product to its source. Factor is the litres
// consumed per product unit sold.
type ProductSource struct {
	ProductID   int64   `json:"product_id"`
	SourceID    int64   `json:"source_id"`
	Factor      float64 `json:"factor"`
	ProductName string  `json:"product_name,omitempty"`
	SourceName  string  `json:"source_name,omitempty"`
}

// Movement is one audit row for a source or inventory adjustment. Kind
// is "source" or "inventory"; RefID points at the adjusted row.
type Movement struct {
	ID        int64   `json:"id"`
	Kind      string  `json:"kind"`
	RefID     int64   `json:"ref_id,omitempty"`
	Delta     float64 `json:"delta"`
	Reason    string  `json:"reason,omitempty"`
	Timestamp string  `json:"timestamp,omitempty"`
	UserID    int64   `json:"user_id,omitempty"`
}

// PriceChange is one recorded price edit for a product. OldPrice is zero
// on the initial row.
type PriceChange struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	OldPrice  float64 `json:"old_price"`
	NewPrice  float64 `json:"new_price"`
	ChangedBy int64   `json:"changed_by,omitempty"`
	Timestamp string  `json:"timestamp,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

// DailySummary is computed server-side and passed through to the panel.
type DailySummary struct {
	Date          string  `json:"date"`
	TotalQuantity int     `json:"total_quantity"`
	TotalMoney    float64 `json:"total_money"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}
