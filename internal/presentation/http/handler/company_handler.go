package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/gestao-api/internal/application/service"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/request"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/response"
)

// CompanyHandler handles the company info endpoints
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Get handles reading the company info
// @Summary Get company info
// @Tags company
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /company [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	info, err := h.companyService.GetCompany(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Company info retrieved successfully", info)
}

// Update handles saving the company info
// @Summary Save company info
// @Tags company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CompanyRequest true "Company info"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /company [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	var req request.CompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	info, err := h.companyService.UpdateCompany(c.Request.Context(), &service.CompanyInput{
		Name:    req.Name,
		CNPJ:    req.CNPJ,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Company info saved successfully", info)
}
