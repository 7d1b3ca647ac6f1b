package reports

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportWorkbook renders the daily summary and the sales panels into an
// XLSX workbook, one sheet per report. Loads go through the usual tiers,
// so the export works from captured data while the API is away.
func (l *Loader) ExportWorkbook(ctx context.Context) (*excelize.File, error) {
	daily, _, err := l.Daily(ctx)
	if err != nil {
		return nil, fmt.Errorf("load daily summary: %w", err)
	}
	byDate, _, err := l.SalesByDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sales by date: %w", err)
	}
	byPayment, _, err := l.SalesByPayment(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sales by payment: %w", err)
	}
	stock, _, err := l.StockLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stock levels: %w", err)
	}

	f := excelize.NewFile()

	const dailySheet = "Daily Summary"
	if err := f.SetSheetName("Sheet1", dailySheet); err != nil {
		return nil, err
	}
	writeRow(f, dailySheet, 1, "Date", "Quantity", "Revenue")
	if daily != nil {
		writeRow(f, dailySheet, 2, daily.Date, daily.TotalQuantity, daily.TotalMoney)
	}

	const dateSheet = "Sales by Date"
	if _, err := f.NewSheet(dateSheet); err != nil {
		return nil, err
	}
	writeRow(f, dateSheet, 1, "Date", "Orders", "Quantity", "Revenue")
	for i, row := range byDate {
		writeRow(f, dateSheet, i+2, row.Date, row.Orders, row.Quantity, row.Revenue.InexactFloat64())
	}

	const paymentSheet = "Sales by Payment"
	if _, err := f.NewSheet(paymentSheet); err != nil {
		return nil, err
	}
	writeRow(f, paymentSheet, 1, "Method", "Orders", "Revenue")
	for i, row := range byPayment {
		writeRow(f, paymentSheet, i+2, row.Method, row.Orders, row.Revenue.InexactFloat64())
	}

	const stockSheet = "Stock"
	if _, err := f.NewSheet(stockSheet); err != nil {
		return nil, err
	}
	writeRow(f, stockSheet, 1, "Product", "Quantity", "Low")
	for i, row := range stock {
		writeRow(f, stockSheet, i+2, row.ProductName, row.Quantity, row.Low)
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(sheet, cell, v)
	}
}
