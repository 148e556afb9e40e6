// Package export reshapes a transaction listing and its rollup into the
// named sheets of the cooperative's Excel report and writes them to an xlsx
// workbook buffer.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"kaslele/internal/models"
	"kaslele/internal/report"
)

// Sheet is one named tab of the exported workbook: a header row followed by
// data rows. Cell values are written as-is, so numbers stay numbers in the
// spreadsheet.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// Workbook sheet names, matching the reports the cooperative already files.
const (
	SheetTransactions   = "Transaksi"
	SheetCategoryRollup = "Rekap_Kategori"
	SheetWeeklyRollup   = "Rekap_Mingguan"
	SheetMonthlyRollup  = "Rekap_Bulanan"
	SheetYearlyRollup   = "Rekap_Tahunan"
)

// BuildSheets assembles the export sheets from a listing and its rollup.
// It is pure reshaping: no sums are computed here.
func BuildSheets(records []models.Transaction, rollup report.Rollup) []Sheet {
	listing := Sheet{
		Name:   SheetTransactions,
		Header: []string{"id", "periode", "kategori", "jenis", "keterangan", "jumlah", "created_at"},
	}
	for _, r := range records {
		listing.Rows = append(listing.Rows, []interface{}{
			r.ID,
			r.Period,
			string(r.Category),
			string(r.Kind),
			r.Description,
			r.Amount.InexactFloat64(),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	categories := Sheet{
		Name:   SheetCategoryRollup,
		Header: []string{"kategori", "pemasukan", "pengeluaran", "saldo"},
	}
	for _, row := range rollup.Categories {
		categories.Rows = append(categories.Rows, []interface{}{
			string(row.Category),
			row.Income.InexactFloat64(),
			row.Expense.InexactFloat64(),
			row.Balance.InexactFloat64(),
		})
	}

	return []Sheet{
		listing,
		categories,
		periodSheet(SheetWeeklyRollup, rollup.Weekly),
		periodSheet(SheetMonthlyRollup, rollup.Monthly),
		periodSheet(SheetYearlyRollup, rollup.Yearly),
	}
}

func periodSheet(name string, rows []report.PeriodTotal) Sheet {
	sheet := Sheet{
		Name:   name,
		Header: []string{"periode", "jenis", "jumlah"},
	}
	for _, row := range rows {
		sheet.Rows = append(sheet.Rows, []interface{}{
			row.Period,
			string(row.Kind),
			row.Total.InexactFloat64(),
		})
	}
	return sheet
}

// WriteWorkbook renders the sheets into an xlsx workbook held in memory.
func WriteWorkbook(sheets []Sheet) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, fmt.Errorf("rename sheet %s: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, fmt.Errorf("create sheet %s: %w", sheet.Name, err)
			}
		}

		header := make([]interface{}, len(sheet.Header))
		for c, h := range sheet.Header {
			header[c] = h
		}
		if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
			return nil, fmt.Errorf("write header of %s: %w", sheet.Name, err)
		}
		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, fmt.Errorf("address row %d of %s: %w", r+2, sheet.Name, err)
			}
			if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
				return nil, fmt.Errorf("write row %d of %s: %w", r+2, sheet.Name, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

// Filename returns the download name for a report generated on the given day.
func Filename(day time.Time) string {
	return fmt.Sprintf("laporan_keuangan_lele_%s.xlsx", day.Format("2006-01-02"))
}

// Rupiah formats an amount the way the ledgers print it: "Rp 1.234.567",
// rounded to whole rupiah with dot-grouped thousands.
func Rupiah(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "Rp -" + b.String()
	}
	return "Rp " + b.String()
}
