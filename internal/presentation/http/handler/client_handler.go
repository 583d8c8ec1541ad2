package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/gestao-api/internal/application/service"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/request"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/response"
)

// ClientHandler handles client-related HTTP requests
type ClientHandler struct {
	clientService *service.ClientService
	loc           *time.Location
}

// NewClientHandler creates a new client handler. Bare dates in requests
// are read in loc.
func NewClientHandler(clientService *service.ClientService, loc *time.Location) *ClientHandler {
	return &ClientHandler{clientService: clientService, loc: orDefault(loc)}
}

func (h *ClientHandler) input(req *request.ClientRequest) *service.ClientInput {
	return &service.ClientInput{
		VendorID:      req.VendorID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		DocumentType:  req.DocumentType,
		Document:      req.Document,
		ScheduledDate: request.TimePtr(req.ScheduledDate, h.loc),
		IsPremium:     req.IsPremium,
		PlanValue:     req.PlanValue,
		PaymentDue:    request.TimePtr(req.PaymentDue, h.loc),
		PurchasedItem: req.PurchasedItem,
	}
}

// List handles listing clients
// @Summary List clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name, email, phone or document"
// @Param premium query bool false "Premium clients only"
// @Success 200 {object} response.APIResponse
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var filter request.ClientFilterRequest
	if !bindQuery(c, &filter) {
		return
	}

	result, err := h.clientService.ListClients(c.Request.Context(), a, &service.ListClientsInput{
		Pagination:  paginationOf(filter.ListRequest),
		Search:      filter.Search,
		SortBy:      filter.SortBy,
		SortOrder:   filter.SortOrder,
		PremiumOnly: filter.PremiumOnly,
	})
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessWithPagination(c, "Clients retrieved successfully", result)
}

// Create handles creating a client
// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.ClientRequest true "Client"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), a, h.input(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, "Client created successfully", client)
}

// Get handles getting a single client
// @Summary Get client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), a, id)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Client retrieved successfully", client)
}

// Update handles updating a client
// @Summary Update client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param request body request.ClientRequest true "Fields to change"
// @Success 200 {object} response.APIResponse
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req request.ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), a, id, h.input(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Client updated successfully", client)
}

// Delete handles deleting a client
// @Summary Delete client
// @Tags clients
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 204
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), a, id); err != nil {
		fail(c, err)
		return
	}

	response.NoContent(c)
}

// PremiumDueTomorrow lists premium clients whose payment is due tomorrow
// @Summary Premium payments due tomorrow
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /clients/premium/due-tomorrow [get]
func (h *ClientHandler) PremiumDueTomorrow(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	clients, err := h.clientService.PremiumDueTomorrow(c.Request.Context(), a)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Clients retrieved successfully", clients)
}
