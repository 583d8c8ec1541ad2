package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/gestao-api/internal/application/service"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/request"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/response"
)

// QuotationHandler handles quotation-related HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
	loc              *time.Location
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService, loc *time.Location) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService, loc: orDefault(loc)}
}

func (h *QuotationHandler) input(req *request.QuotationRequest) *service.QuotationInput {
	return &service.QuotationInput{
		VendorID:   req.VendorID,
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		Items:      lineItems(req.Items),
		Discount:   req.Discount,
		ValidUntil: request.TimePtr(req.ValidUntil, h.loc),
		Notes:      req.Notes,
	}
}

// List handles listing quotations
// @Summary List quotations
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param status query string false "draft, sent, accepted or rejected"
// @Success 200 {object} response.APIResponse
// @Router /quotations [get]
func (h *QuotationHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var filter request.QuotationFilterRequest
	if !bindQuery(c, &filter) {
		return
	}
	clientID, ok := optionalUUID(c, "client_id", filter.ClientID)
	if !ok {
		return
	}
	status, ok := optionalEnum(c, filter.Status, enum.ParseQuotationStatus)
	if !ok {
		return
	}

	result, err := h.quotationService.ListQuotations(c.Request.Context(), a, &service.ListQuotationsInput{
		Pagination: paginationOf(filter.ListRequest),
		Search:     filter.Search,
		SortBy:     filter.SortBy,
		SortOrder:  filter.SortOrder,
		ClientID:   clientID,
		Status:     status,
	})
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessWithPagination(c, "Quotations retrieved successfully", result)
}

// Create handles creating a quotation
// @Summary Create quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replay protection key"
// @Param request body request.QuotationRequest true "Quotation"
// @Success 201 {object} response.APIResponse
// @Router /quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.QuotationRequest
	if !bindJSON(c, &req) {
		return
	}

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), a, h.input(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, "Quotation created successfully", quotation)
}

// Get handles getting a single quotation
// @Summary Get quotation
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id} [get]
func (h *QuotationHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), a, id)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Quotation retrieved successfully", quotation)
}

// Update replaces the content of an open quotation
// @Summary Update quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Param request body request.QuotationRequest true "Quotation"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /quotations/{id} [put]
func (h *QuotationHandler) Update(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req request.QuotationRequest
	if !bindJSON(c, &req) {
		return
	}

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), a, id, h.input(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Quotation updated successfully", quotation)
}

// UpdateStatus moves a quotation through draft, sent, accepted and rejected
// @Summary Update quotation status
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Param request body request.QuotationStatusRequest true "Status"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id}/status [patch]
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req request.QuotationStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	quotation, err := h.quotationService.UpdateStatus(c.Request.Context(), a, id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Quotation status updated", quotation)
}

// Convert turns a quotation into a sale at the quoted prices
// @Summary Convert quotation to sale
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Param request body request.ConvertQuotationRequest true "Payment"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /quotations/{id}/convert [post]
func (h *QuotationHandler) Convert(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req request.ConvertQuotationRequest
	if !bindJSON(c, &req) {
		return
	}

	sale, err := h.quotationService.ConvertToSale(c.Request.Context(), a, id, &service.ConvertInput{
		PaymentMethod: req.PaymentMethod,
		Installments:  req.Installments,
		Observations:  req.Observations,
	})
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, "Quotation converted to sale", sale)
}

// Delete handles deleting a quotation
// @Summary Delete quotation
// @Tags quotations
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Success 204
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) Delete(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), a, id); err != nil {
		fail(c, err)
		return
	}

	response.NoContent(c)
}
