package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/application/service"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/request"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/response"
	"github.com/sangkips/gestao-api/pkg/apperror"
)

// VendorHandler handles vendor-related HTTP requests
type VendorHandler struct {
	vendorService *service.VendorService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService *service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

func vendorInput(req *request.VendorRequest) *service.VendorInput {
	return &service.VendorInput{
		UserID:         req.UserID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		PhotoURL:       req.PhotoURL,
		CommissionRate: req.CommissionRate,
	}
}

// List handles listing vendors
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	var filter request.ListRequest
	if !bindQuery(c, &filter) {
		return
	}

	result, err := h.vendorService.ListVendors(c.Request.Context(), listFilter(filter))
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessWithPagination(c, "Vendors retrieved successfully", result)
}

// Create handles creating a vendor
// @Summary Create vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.VendorRequest true "Vendor"
// @Success 201 {object} response.APIResponse
// @Router /vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	var req request.VendorRequest
	if !bindJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), vendorInput(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, "Vendor created successfully", vendor)
}

// Get handles getting a single vendor
// @Summary Get vendor
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Success 200 {object} response.APIResponse
// @Router /vendors/{id} [get]
func (h *VendorHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	vendor, err := h.vendorService.GetVendor(c.Request.Context(), a, id)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Vendor retrieved successfully", vendor)
}

// Update handles updating a vendor
// @Summary Update vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Param request body request.VendorRequest true "Fields to change"
// @Success 200 {object} response.APIResponse
// @Router /vendors/{id} [put]
func (h *VendorHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req request.VendorRequest
	if !bindJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), id, vendorInput(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Vendor updated successfully", vendor)
}

// Delete handles deleting a vendor
// @Summary Delete vendor
// @Tags vendors
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Success 204
// @Router /vendors/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.vendorService.DeleteVendor(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	response.NoContent(c)
}

// PayCommission pays out pending commission
// @Summary Pay commission
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Param request body request.PayCommissionRequest true "Payout"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /vendors/{id}/commissions/pay [post]
func (h *VendorHandler) PayCommission(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req request.PayCommissionRequest
	if !bindJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.PayCommission(c.Request.Context(), &service.PayCommissionInput{
		VendorID:      id,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
	})
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Commission paid successfully", vendor)
}

// Tier returns a vendor's tier and the distance to the next one
// @Summary Vendor tier progress
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Success 200 {object} response.APIResponse
// @Router /vendors/{id}/tier [get]
func (h *VendorHandler) Tier(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	h.tier(c, a, id)
}

// MyTier is Tier for the caller's own vendor
// @Summary Own tier progress
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /vendors/me/tier [get]
func (h *VendorHandler) MyTier(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	if a.VendorID == nil {
		fail(c, apperror.NewNotFoundError("Vendor"))
		return
	}
	h.tier(c, a, *a.VendorID)
}

func (h *VendorHandler) tier(c *gin.Context, a service.Actor, id uuid.UUID) {
	progress, err := h.vendorService.TierProgress(c.Request.Context(), a, id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Tier retrieved successfully", progress)
}
