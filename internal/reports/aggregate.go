package reports

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Kavesh2000/ERP/internal/domain"
)

// lowStockThreshold flags inventory counts at or below this level. The
// catalog carries no per-product threshold, so the panel uses one line
// for everything.
const lowStockThreshold = 10

// DateRow is one calendar day of sales. Revenue is summed with decimal
// arithmetic so long runs of float64 totals do not drift.
type DateRow struct {
	Date     string          `json:"date"`
	Orders   int             `json:"orders"`
	Quantity float64         `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type PaymentRow struct {
	Method  string          `json:"method"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type CategoryRow struct {
	Category string          `json:"category"`
	Orders   int             `json:"orders"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type StockRow struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Low         bool    `json:"low"`
	LastUpdated string  `json:"last_updated,omitempty"`
}

type SupplyRow struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Factor      float64 `json:"factor"`
}

type SourceRow struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Unit        string      `json:"unit,omitempty"`
	Quantity    float64     `json:"quantity"`
	LastUpdated string      `json:"last_updated,omitempty"`
	Supplies    []SupplyRow `json:"supplies"`
}

// orderDay extracts the calendar day an order belongs to, preferring the
// server timestamp over the client one.
func orderDay(o domain.Order) (string, bool) {
	ts := o.Timestamp
	if ts == "" {
		ts = o.ClientTimestamp
	}
	if len(ts) < len("2006-01-02") {
		return "", false
	}
	return ts[:len("2006-01-02")], true
}

// AggregateSalesByDate groups orders by calendar day, oldest day first.
// Orders without any timestamp are skipped.
func AggregateSalesByDate(orders []domain.Order) []DateRow {
	byDay := make(map[string]*DateRow)
	for _, o := range orders {
		day, ok := orderDay(o)
		if !ok {
			continue
		}
		row, ok := byDay[day]
		if !ok {
			row = &DateRow{Date: day}
			byDay[day] = row
		}
		row.Orders++
		row.Quantity += o.Quantity
		row.Revenue = row.Revenue.Add(decimal.NewFromFloat(o.Total))
	}

	rows := make([]DateRow, 0, len(byDay))
	for _, row := range byDay {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

// AggregateSalesByPayment splits orders by payment method. Cash and
// Mpesa rows are always present, even at zero; anything else the server
// ever returns is appended after them.
func AggregateSalesByPayment(orders []domain.Order) []PaymentRow {
	byMethod := map[string]*PaymentRow{
		domain.PaymentCash:  {Method: domain.PaymentCash},
		domain.PaymentMpesa: {Method: domain.PaymentMpesa},
	}
	var extras []string
	for _, o := range orders {
		row, ok := byMethod[o.PaymentMethod]
		if !ok {
			row = &PaymentRow{Method: o.PaymentMethod}
			byMethod[o.PaymentMethod] = row
			extras = append(extras, o.PaymentMethod)
		}
		row.Orders++
		row.Revenue = row.Revenue.Add(decimal.NewFromFloat(o.Total))
	}

	sort.Strings(extras)
	rows := make([]PaymentRow, 0, len(byMethod))
	for _, method := range append([]string{domain.PaymentCash, domain.PaymentMpesa}, extras...) {
		rows = append(rows, *byMethod[method])
	}
	return rows
}

// categoryOf buckets a product by its name. The catalog has no category
// column, so the panels group by the shop's naming convention
// ("20L refill", "Empty 10L bottle", "5L water").
func categoryOf(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "bottle"):
		return "bottles"
	case strings.Contains(n, "water") || strings.Contains(n, "refill"):
		return "water"
	default:
		return "uncategorized"
	}
}

// AggregateSalesByCategory joins orders to the product catalog and
// groups revenue by category, alphabetically. Orders whose product is
// unknown land in the "uncategorized" bucket.
func AggregateSalesByCategory(orders []domain.Order, products []domain.Product) []CategoryRow {
	categories := make(map[int64]string, len(products))
	for _, p := range products {
		categories[p.ID] = categoryOf(p.Name)
	}

	byCategory := make(map[string]*CategoryRow)
	for _, o := range orders {
		cat := categories[o.ProductID]
		if cat == "" {
			cat = "uncategorized"
		}
		row, ok := byCategory[cat]
		if !ok {
			row = &CategoryRow{Category: cat}
			byCategory[cat] = row
		}
		row.Orders++
		row.Revenue = row.Revenue.Add(decimal.NewFromFloat(o.Total))
	}

	rows := make([]CategoryRow, 0, len(byCategory))
	for _, row := range byCategory {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })
	return rows
}

// BuildStockLevels flags low counts, keeping the rows alphabetical by
// product.
func BuildStockLevels(stock []domain.StockRecord) []StockRow {
	rows := make([]StockRow, 0, len(stock))
	for _, s := range stock {
		rows = append(rows, StockRow{
			ProductID:   s.ProductID,
			ProductName: s.ProductName,
			Quantity:    s.Quantity,
			Low:         s.Quantity <= lowStockThreshold,
			LastUpdated: s.LastUpdated,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductName < rows[j].ProductName })
	return rows
}

// BuildSourceOverview attaches each source's supplied products, sources
// alphabetical, supplies alphabetical within a source.
func BuildSourceOverview(sources []domain.Source, supplies []domain.ProductSource) []SourceRow {
	bySource := make(map[int64][]SupplyRow)
	for _, ps := range supplies {
		bySource[ps.SourceID] = append(bySource[ps.SourceID], SupplyRow{
			ProductID:   ps.ProductID,
			ProductName: ps.ProductName,
			Factor:      ps.Factor,
		})
	}

	rows := make([]SourceRow, 0, len(sources))
	for _, src := range sources {
		supplyRows := bySource[src.ID]
		sort.Slice(supplyRows, func(i, j int) bool {
			return supplyRows[i].ProductName < supplyRows[j].ProductName
		})
		rows = append(rows, SourceRow{
			ID:          src.ID,
			Name:        src.Name,
			Unit:        src.Unit,
			Quantity:    src.Quantity,
			LastUpdated: src.LastUpdated,
			Supplies:    supplyRows,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}
