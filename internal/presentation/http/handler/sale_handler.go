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

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
	loc         *time.Location
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, loc *time.Location) *SaleHandler {
	return &SaleHandler{saleService: saleService, loc: orDefault(loc)}
}

// Preview prices a cart without saving anything
// @Summary Preview sale totals
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.PreviewRequest true "Cart"
// @Success 200 {object} response.APIResponse
// @Router /sales/preview [post]
func (h *SaleHandler) Preview(c *gin.Context) {
	var req request.PreviewRequest
	if !bindJSON(c, &req) {
		return
	}

	preview, err := h.saleService.Preview(c.Request.Context(), &service.PreviewInput{
		Items:    lineItems(req.Items),
		Discount: req.Discount,
	})
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Preview computed", preview)
}

// Create handles creating a sale
// @Summary Create sale
// @Description Records the sale, its ledger entry and the vendor commission in one transaction
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replay protection key"
// @Param request body request.CreateSaleRequest true "Sale"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.CreateSaleRequest
	if !bindJSON(c, &req) {
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), a, &service.CreateSaleInput{
		VendorID:      req.VendorID,
		ClientID:      req.ClientID,
		ClientName:    req.ClientName,
		Items:         lineItems(req.Items),
		Discount:      req.Discount,
		PaymentMethod: req.PaymentMethod,
		Installments:  req.Installments,
		Observations:  req.Observations,
		Date:          request.TimePtr(req.Date, h.loc),
	})
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, "Sale created successfully", sale)
}

// List handles listing sales
// @Summary List sales
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param status query string false "completed or cancelled"
// @Success 200 {object} response.APIResponse
// @Router /sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var filter request.SaleFilterRequest
	if !bindQuery(c, &filter) {
		return
	}
	from, to, ok := period(c, filter.PeriodRequest, h.loc)
	if !ok {
		return
	}
	vendorID, ok := optionalUUID(c, "vendor_id", filter.VendorID)
	if !ok {
		return
	}
	clientID, ok := optionalUUID(c, "client_id", filter.ClientID)
	if !ok {
		return
	}
	status, ok := optionalEnum(c, filter.Status, enum.ParseSaleStatus)
	if !ok {
		return
	}

	result, err := h.saleService.ListSales(c.Request.Context(), a, &service.ListSalesInput{
		Pagination: paginationOf(filter.ListRequest),
		Search:     filter.Search,
		SortBy:     filter.SortBy,
		SortOrder:  filter.SortOrder,
		VendorID:   vendorID,
		ClientID:   clientID,
		Status:     status,
		From:       from,
		To:         to,
	})
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessWithPagination(c, "Sales retrieved successfully", result)
}

// Get handles getting a single sale
// @Summary Get sale
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 200 {object} response.APIResponse
// @Router /sales/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), a, id)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Cancel cancels a sale and reverses its effects
// @Summary Cancel sale
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /sales/{id}/cancel [post]
func (h *SaleHandler) Cancel(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.CancelSale(c.Request.Context(), a, id)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Sale cancelled successfully", sale)
}

// Revenue sums completed sales in a period
// @Summary Revenue summary
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /sales/revenue [get]
func (h *SaleHandler) Revenue(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var p request.PeriodRequest
	if !bindQuery(c, &p) {
		return
	}
	from, to, ok := period(c, p, h.loc)
	if !ok {
		return
	}

	summary, err := h.saleService.Revenue(c.Request.Context(), a, repository.DateRange{From: from, To: to})
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Revenue retrieved successfully", summary)
}
