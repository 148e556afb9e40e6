package services

import (
	"bytes"
	"context"
	"time"

	"kaslele/internal/export"
	"kaslele/internal/report"
	"kaslele/internal/store"
)

// reportService computes rollups and builds the Excel export over the same
// filtered listing the operator is looking at.
type reportService struct {
	store store.TransactionStore
	now   func() time.Time
}

// NewReportService creates a new ReportServicer.
func NewReportService(s store.TransactionStore) ReportServicer {
	return &reportService{store: s, now: time.Now}
}

// Rollup aggregates the filtered listing into the report tables.
func (s *reportService) Rollup(ctx context.Context, filter store.Filter) (report.Rollup, error) {
	txs, err := s.store.List(ctx, filter)
	if err != nil {
		return report.Rollup{}, err
	}
	return report.Aggregate(txs), nil
}

// ExportWorkbook renders the filtered listing plus its rollup into an xlsx
// workbook and returns the buffer together with the dated download filename.
func (s *reportService) ExportWorkbook(ctx context.Context, filter store.Filter) (*bytes.Buffer, string, error) {
	txs, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	buf, err := export.WriteWorkbook(export.BuildSheets(txs, report.Aggregate(txs)))
	if err != nil {
		return nil, "", err
	}
	return buf, export.Filename(s.now()), nil
}
