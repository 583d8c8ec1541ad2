package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/gestao-api/internal/application/service"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/request"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/response"
)

// FinancialHandler handles the cash book
type FinancialHandler struct {
	financialService *service.FinancialService
	loc              *time.Location
}

// NewFinancialHandler creates a new financial handler
func NewFinancialHandler(financialService *service.FinancialService, loc *time.Location) *FinancialHandler {
	return &FinancialHandler{financialService: financialService, loc: orDefault(loc)}
}

func (h *FinancialHandler) input(req *request.TransactionRequest) *service.TransactionInput {
	return &service.TransactionInput{
		Type:          req.Type,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          request.TimePtr(req.Date, h.loc),
		PaymentMethod: req.PaymentMethod,
	}
}

// List handles listing ledger entries
// @Summary List transactions
// @Tags financial
// @Produce json
// @Security BearerAuth
// @Param type query string false "entrada or saida"
// @Param category query string false "Category"
// @Success 200 {object} response.APIResponse
// @Router /financial/transactions [get]
func (h *FinancialHandler) List(c *gin.Context) {
	var filter request.TransactionFilterRequest
	if !bindQuery(c, &filter) {
		return
	}
	from, to, ok := period(c, filter.PeriodRequest, h.loc)
	if !ok {
		return
	}
	txType, ok := optionalEnum(c, filter.Type, enum.ParseTransactionType)
	if !ok {
		return
	}

	result, err := h.financialService.ListTransactions(c.Request.Context(), &service.ListTransactionsInput{
		Pagination: paginationOf(filter.ListRequest),
		Search:     filter.Search,
		SortBy:     filter.SortBy,
		SortOrder:  filter.SortOrder,
		Type:       txType,
		Category:   filter.Category,
		From:       from,
		To:         to,
	})
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessWithPagination(c, "Transactions retrieved successfully", result)
}

// Create handles booking a manual entry
// @Summary Create transaction
// @Tags financial
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.TransactionRequest true "Entry"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /financial/transactions [post]
func (h *FinancialHandler) Create(c *gin.Context) {
	var req request.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	tx, err := h.financialService.CreateTransaction(c.Request.Context(), h.input(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, "Transaction created successfully", tx)
}

// Get handles getting a single ledger entry
// @Summary Get transaction
// @Tags financial
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.APIResponse
// @Router /financial/transactions/{id} [get]
func (h *FinancialHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	tx, err := h.financialService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", tx)
}

// Update handles editing a manual entry
// @Summary Update transaction
// @Tags financial
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body request.TransactionRequest true "Entry"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /financial/transactions/{id} [put]
func (h *FinancialHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req request.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	tx, err := h.financialService.UpdateTransaction(c.Request.Context(), id, h.input(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Transaction updated successfully", tx)
}

// Delete handles deleting a manual entry
// @Summary Delete transaction
// @Tags financial
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 409 {object} response.APIResponse
// @Router /financial/transactions/{id} [delete]
func (h *FinancialHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.financialService.DeleteTransaction(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	response.NoContent(c)
}

// Summary totals the ledger over a period
// @Summary Financial summary
// @Tags financial
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /financial/summary [get]
func (h *FinancialHandler) Summary(c *gin.Context) {
	var p request.PeriodRequest
	if !bindQuery(c, &p) {
		return
	}
	from, to, ok := period(c, p, h.loc)
	if !ok {
		return
	}

	summary, err := h.financialService.Summary(c.Request.Context(), repository.DateRange{From: from, To: to})
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", summary)
}

// Categories lists the allowed categories per type
// @Summary Transaction categories
// @Tags financial
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /financial/categories [get]
func (h *FinancialHandler) Categories(c *gin.Context) {
	response.OK(c, "Categories retrieved successfully", h.financialService.Categories())
}
