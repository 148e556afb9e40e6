package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "kaslele/internal/errors"
	"kaslele/internal/models"
	"kaslele/internal/pagination"
	"kaslele/internal/services"
	"kaslele/internal/store"
)

// TransactionHandler handles cash-book entry requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest is the payload for creating or replacing an entry.
// Category, kind and amount are checked by the service so rejections carry
// their specific error codes; period is never accepted from the caller.
type TransactionRequest struct {
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Kind        string          `json:"kind"`
	Description string          `json:"description" binding:"max=500"`
	Amount      decimal.Decimal `json:"amount"`
}

// TransactionResponse represents a cash-book entry in the response.
type TransactionResponse struct {
	ID          uint            `json:"id"`
	Date        string          `json:"date"`
	Category    models.Category `json:"category"`
	Kind        models.Kind     `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Period      string          `json:"period"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newTransactionResponse(tx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Date:        tx.Date.Format("2006-01-02"),
		Category:    tx.Category,
		Kind:        tx.Kind,
		Description: tx.Description,
		Amount:      tx.Amount,
		Period:      tx.Period,
		CreatedAt:   tx.CreatedAt,
	}
}

func (r TransactionRequest) toInput() (services.TransactionInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return services.TransactionInput{}, err
	}
	return services.TransactionInput{
		Date:        date,
		Category:    models.Category(r.Category),
		Kind:        models.Kind(r.Kind),
		Description: r.Description,
		Amount:      r.Amount,
	}, nil
}

// listTransactionsQuery holds the listing filters and pagination.
type listTransactionsQuery struct {
	Category string `form:"category" binding:"omitempty,tx_category"`
	Search   string `form:"q"`
	pagination.PageRequest
}

func (q listTransactionsQuery) filter() store.Filter {
	f := store.Filter{Search: q.Search}
	if q.Category != "" {
		c := models.Category(q.Category)
		f.Category = &c
	}
	return f
}

// CreateTransaction handles the creation of a new cash-book entry
// @Summary     Create a transaction
// @Description Record an income or expense entry; the period label is derived from date and category
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "Invalid amount, kind or category"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	in, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": newTransactionResponse(tx)})
}

// GetTransactions handles the filtered, paginated listing
// @Summary     List transactions
// @Description List entries newest first, optionally filtered by category and free-text search over period, kind and description
// @Tags        transactions
// @Produce     json
// @Param       category  query string false "Category filter" Enums(Harian, Mingguan, Bulanan, Tahunan)
// @Param       q         query string false "Case-insensitive search"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size"
// @Success     200 {object} pagination.PageResponse[TransactionResponse]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var query listTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	page, err := h.transactionService.GetTransactions(c.Request.Context(), query.filter(), query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data := make([]TransactionResponse, len(page.Data))
	for i, tx := range page.Data {
		data[i] = newTransactionResponse(&tx)
	}
	c.JSON(http.StatusOK, pagination.NewPageResponse(data, page.Page, page.PageSize, page.TotalItems))
}

// GetTransactionByID handles fetching a single entry
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} TransactionResponse
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransactionByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": newTransactionResponse(tx)})
}

// UpdateTransaction handles the full replacement of an entry's mutable fields
// @Summary     Update a transaction
// @Description Replace all mutable fields; the period label is recomputed and created_at is preserved
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path int                true "Transaction ID"
// @Param       request body TransactionRequest true "New transaction details"
// @Success     200 {object} TransactionResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     422 {object} ErrorResponse "Invalid amount, kind or category"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	in, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.UpdateTransaction(c.Request.Context(), id, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": newTransactionResponse(tx)})
}

// DeleteTransaction handles removing an entry
// @Summary     Delete a transaction
// @Tags        transactions
// @Param       id path int true "Transaction ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
