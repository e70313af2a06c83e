package progress

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/api-catalog/internal/types"
)

// Sheet names of the progress workbook
const (
	SummarySheet = "Summary"
	RecordsSheet = "APIs"
)

var summaryHeaders = []string{"Category", "Total", "Working", "Broken", "Needs Key", "Paid Only", "Skipped", "Pending", "Done"}

var recordHeaders = []string{"Name", "Category", "Status", "Auth", "HTTPS", "CORS", "URL", "Date Checked", "Notes"}

// ExportXLSX writes a workbook with the category table (plus a total row)
// and the full record list
func ExportXLSX(path string, stats []CategoryStats, records []types.APIRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(RecordsSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeHeaders(f, SummarySheet, summaryHeaders, headerStyle); err != nil {
		return err
	}
	rows := append(append([]CategoryStats{}, stats...), Totals(stats))
	for i, c := range rows {
		if err := writeRow(f, SummarySheet, i+2, summaryRow(c)); err != nil {
			return err
		}
	}

	if err := writeHeaders(f, RecordsSheet, recordHeaders, headerStyle); err != nil {
		return err
	}
	for i := range records {
		if err := writeRow(f, RecordsSheet, i+2, recordRow(&records[i])); err != nil {
			return err
		}
	}

	for _, sheet := range []string{SummarySheet, RecordsSheet} {
		if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

func summaryRow(c CategoryStats) []interface{} {
	return []interface{}{
		c.Name,
		c.Total,
		c.Count(types.StatusWorking),
		c.Count(types.StatusBroken),
		c.Count(types.StatusNeedsKey),
		c.Count(types.StatusPaidOnly),
		c.Count(types.StatusSkipped),
		c.Pending(),
		c.Done(),
	}
}

func recordRow(r *types.APIRecord) []interface{} {
	checked := ""
	if r.DateChecked != nil {
		checked = *r.DateChecked
	}
	return []interface{}{
		r.Name,
		r.Category,
		string(r.Status),
		string(r.Auth),
		r.HTTPS,
		string(r.Cors),
		r.URL,
		checked,
		r.Notes,
	}
}

func writeHeaders(f *excelize.File, sheet string, headers []string, style int) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
