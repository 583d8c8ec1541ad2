package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/gestao-api/internal/application/service"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/request"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/response"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func productInput(req *request.ProductRequest) *service.ProductInput {
	return &service.ProductInput{
		Name:          req.Name,
		Code:          req.Code,
		Description:   req.Description,
		Colors:        req.Colors,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
		TaxInfo:       req.TaxInfo,
	}
}

func listFilter(l request.ListRequest) repository.FilterParams {
	return repository.FilterParams{
		Pagination: paginationOf(l),
		Search:     l.Search,
		SortBy:     l.SortBy,
		SortOrder:  l.SortOrder,
	}
}

// List handles listing products
// @Summary List products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or code"
// @Success 200 {object} response.APIResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ListRequest
	if !bindQuery(c, &filter) {
		return
	}

	result, err := h.productService.ListProducts(c.Request.Context(), listFilter(filter))
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessWithPagination(c, "Products retrieved successfully", result)
}

// Create handles creating a product
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.ProductRequest true "Product"
// @Success 201 {object} response.APIResponse
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), productInput(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles getting a single product
// @Summary Get product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} response.APIResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body request.ProductRequest true "Fields to change"
// @Success 200 {object} response.APIResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req request.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, productInput(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product
// @Summary Delete product
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	response.NoContent(c)
}

// ServiceHandler handles the services catalog
type ServiceHandler struct {
	catalogService *service.CatalogService
}

// NewServiceHandler creates a new service catalog handler
func NewServiceHandler(catalogService *service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

func serviceInput(req *request.ServiceRequest) *service.ServiceInput {
	return &service.ServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
}

// List handles listing services
// @Summary List services
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	var filter request.ListRequest
	if !bindQuery(c, &filter) {
		return
	}

	result, err := h.catalogService.ListServices(c.Request.Context(), listFilter(filter))
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessWithPagination(c, "Services retrieved successfully", result)
}

// Create handles creating a service
// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.ServiceRequest true "Service"
// @Success 201 {object} response.APIResponse
// @Router /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var req request.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), serviceInput(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, "Service created successfully", svc)
}

// Get handles getting a single service
// @Summary Get service
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} response.APIResponse
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Service retrieved successfully", svc)
}

// Update handles updating a service
// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body request.ServiceRequest true "Fields to change"
// @Success 200 {object} response.APIResponse
// @Router /services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req request.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), id, serviceInput(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Service updated successfully", svc)
}

// Delete handles deleting a service
// @Summary Delete service
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	response.NoContent(c)
}
