package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"kaslele/internal/models"
	"kaslele/internal/store"
	"kaslele/internal/testutil"
)

func newReportService(t *testing.T) (ReportServicer, store.TransactionStore, context.Context) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	s := store.New(db)
	return NewReportService(s), s, context.Background()
}

func TestRollup(t *testing.T) {
	svc, s, ctx := newReportService(t)

	for _, tx := range []*models.Transaction{
		testutil.NewTransaction(testutil.Date(2024, time.March, 1), models.CategoryMonthly, models.KindIncome, "jual lele", 500000),
		testutil.NewTransaction(testutil.Date(2024, time.March, 10), models.CategoryMonthly, models.KindExpense, "beli pakan", 200000),
		testutil.NewTransaction(testutil.Date(2024, time.March, 4), models.CategoryWeekly, models.KindIncome, "jual bibit", 75000),
	} {
		testutil.AssertNoError(t, s.Insert(ctx, tx))
	}

	rollup, err := svc.Rollup(ctx, store.Filter{})
	testutil.AssertNoError(t, err)

	if len(rollup.Categories) != 2 {
		t.Fatalf("expected 2 category rows, got %d", len(rollup.Categories))
	}
	for _, row := range rollup.Categories {
		if row.Category == models.CategoryMonthly {
			if !row.Balance.Equal(decimal.NewFromInt(300000)) {
				t.Errorf("monthly balance = %s, want 300000", row.Balance)
			}
		}
	}
	if len(rollup.Weekly) != 1 || rollup.Weekly[0].Period != "Maret 2024 - Minggu 2" {
		t.Errorf("weekly rows = %+v", rollup.Weekly)
	}
}

func TestRollupHonorsFilter(t *testing.T) {
	svc, s, ctx := newReportService(t)

	testutil.AssertNoError(t, s.Insert(ctx, testutil.NewTransaction(testutil.Date(2024, time.March, 1), models.CategoryMonthly, models.KindIncome, "jual lele", 500000)))
	testutil.AssertNoError(t, s.Insert(ctx, testutil.NewTransaction(testutil.Date(2024, time.March, 1), models.CategoryDaily, models.KindExpense, "beli es", 10000)))

	monthly := models.CategoryMonthly
	rollup, err := svc.Rollup(ctx, store.Filter{Category: &monthly})
	testutil.AssertNoError(t, err)
	if len(rollup.Categories) != 1 || rollup.Categories[0].Category != models.CategoryMonthly {
		t.Errorf("filtered rollup = %+v", rollup.Categories)
	}
}

func TestRollupEmptyStore(t *testing.T) {
	svc, _, ctx := newReportService(t)

	rollup, err := svc.Rollup(ctx, store.Filter{})
	testutil.AssertNoError(t, err)
	if len(rollup.Categories) != 0 {
		t.Errorf("expected empty rollup, got %+v", rollup)
	}
}

func TestExportWorkbook(t *testing.T) {
	svc, s, ctx := newReportService(t)

	testutil.AssertNoError(t, s.Insert(ctx, testutil.NewTransaction(testutil.Date(2024, time.March, 1), models.CategoryMonthly, models.KindIncome, "jual lele", 500000)))

	buf, filename, err := svc.ExportWorkbook(ctx, store.Filter{})
	testutil.AssertNoError(t, err)

	if filename != "laporan_keuangan_lele_"+time.Now().Format("2006-01-02")+".xlsx" {
		t.Errorf("filename = %q", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("workbook unreadable: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Transaksi")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("Transaksi rows = %d, want header + 1", len(rows))
	}
}
