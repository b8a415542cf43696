// Package xlsx renders read models as Excel workbooks for the cutting office.
package xlsx

import (
	"fmt"
	"io"

	"garment/internal/core/application/usecases/queries"
	"garment/internal/core/domain/services"

	"github.com/xuri/excelize/v2"
)

const statsSheet = "Bundling"

var statsHeaders = []string{
	"Size", "Order Qty", "Cut Qty", "Bundled Qty", "Available", "Cut %", "Bundled %",
}

// BundleStatsExporter writes the per-size bundling view of one order.
type BundleStatsExporter struct{}

func NewBundleStatsExporter() BundleStatsExporter {
	return BundleStatsExporter{}
}

// FileName is the attachment name for an order's export.
func (BundleStatsExporter) FileName(orderID string) string {
	return fmt.Sprintf("bundling-%s.xlsx", orderID)
}

// Write renders a title row, the header row, one row per size and a bold totals row.
func (BundleStatsExporter) Write(w io.Writer, stats *queries.BundleStatsBySizeResponse) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", statsSheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Order %s / Style %s / Category %s", stats.OrderID, stats.StyleID, stats.CategoryName)
	if err = f.SetCellValue(statsSheet, "A1", title); err != nil {
		return err
	}

	for i, h := range statsHeaders {
		cell, cellErr := excelize.CoordinatesToCellName(i+1, 2)
		if cellErr != nil {
			return cellErr
		}
		if err = f.SetCellValue(statsSheet, cell, h); err != nil {
			return err
		}
	}
	if err = f.SetCellStyle(statsSheet, "A2", "G2", headerStyle); err != nil {
		return err
	}

	row := 3
	for _, s := range stats.Sizes {
		if err = writeStatRow(f, row, s); err != nil {
			return err
		}
		row++
	}
	if err = writeStatRow(f, row, stats.Total); err != nil {
		return err
	}
	if err = f.SetCellStyle(statsSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), totalStyle); err != nil {
		return err
	}

	if err = f.SetColWidth(statsSheet, "A", "A", 10); err != nil {
		return err
	}
	if err = f.SetColWidth(statsSheet, "B", "G", 13); err != nil {
		return err
	}

	return f.Write(w)
}

func writeStatRow(f *excelize.File, row int, s services.SizeStat) error {
	cut, _ := s.CutPercent.Float64()
	bundled, _ := s.BundledPercent.Float64()
	return f.SetSheetRow(statsSheet, fmt.Sprintf("A%d", row), &[]any{
		s.Size, s.OrderQty, s.CutQty, s.BundledQty, s.AvailableForBundling, cut, bundled,
	})
}
