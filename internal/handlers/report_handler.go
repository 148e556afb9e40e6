package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kaslele/internal/errors"
	"kaslele/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves the rollup report and the Excel export.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetRollup handles the aggregated report
// @Summary     Rollup report
// @Description Category totals with balances plus per-period sums for the weekly, monthly and yearly categories, over the filtered listing
// @Tags        reports
// @Produce     json
// @Param       category query string false "Category filter" Enums(Harian, Mingguan, Bulanan, Tahunan)
// @Param       q        query string false "Case-insensitive search"
// @Success     200 {object} report.Rollup
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /reports/rollup [get]
func (h *ReportHandler) GetRollup(c *gin.Context) {
	var query listTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rollup, err := h.reportService.Rollup(c.Request.Context(), query.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rollup": rollup})
}

// ExportWorkbook handles the Excel download
// @Summary     Export to Excel
// @Description Download the filtered listing and its rollups as a multi-sheet xlsx workbook
// @Tags        reports
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       category query string false "Category filter" Enums(Harian, Mingguan, Bulanan, Tahunan)
// @Param       q        query string false "Case-insensitive search"
// @Success     200 {file} file "Workbook"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /export [get]
func (h *ReportHandler) ExportWorkbook(c *gin.Context) {
	var query listTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	buf, filename, err := h.reportService.ExportWorkbook(c.Request.Context(), query.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
