package services

import (
	"bytes"
	"fmt"
	"log"

	"github.com/tealeg/xlsx"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

// ExportOrdersXLSX renders a user's order history as a spreadsheet.
func ExportOrdersXLSX(rows []models.OrderHistoryRow) (*bytes.Buffer, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, title := range []string{"Order ID", "Basket", "Date", "Items", "Payment", "Status", "Total"} {
		cell := header.AddCell()
		cell.Value = title
	}

	for _, row := range rows {
		r := sheet.AddRow()
		r.AddCell().Value = row.ID
		r.AddCell().Value = row.BasketID
		r.AddCell().Value = row.CreatedAt.Format("2006-01-02 15:04")
		r.AddCell().SetInt(row.ItemCount)
		r.AddCell().Value = row.PaymentMode
		r.AddCell().Value = row.Status
		r.AddCell().SetFloatWithFormat(row.Total, "0.00")
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		log.Printf("[order.export] failed to write workbook: %v", err)
		return nil, err
	}
	return &buf, nil
}
