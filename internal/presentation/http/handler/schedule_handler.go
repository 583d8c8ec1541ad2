package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/gestao-api/internal/application/service"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/request"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/response"
)

func queryInt(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.Query(name))
	return n
}

// VisitHandler handles the visit agenda
type VisitHandler struct {
	visitService *service.VisitService
	loc          *time.Location
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(visitService *service.VisitService, loc *time.Location) *VisitHandler {
	return &VisitHandler{visitService: visitService, loc: orDefault(loc)}
}

func (h *VisitHandler) input(req *request.VisitRequest) *service.VisitInput {
	return &service.VisitInput{
		VendorID:        req.VendorID,
		ClientID:        req.ClientID,
		ClientName:      req.ClientName,
		ScheduledDate:   request.TimePtr(req.ScheduledDate, h.loc),
		Status:          req.Status,
		Location:        req.Location,
		Notes:           req.Notes,
		FollowUpDate:    request.TimePtr(req.FollowUpDate, h.loc),
		RejectionReason: req.RejectionReason,
		MaintenanceType: req.MaintenanceType,
	}
}

// List handles listing visits
// @Summary List visits
// @Tags visits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /visits [get]
func (h *VisitHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var filter request.VisitFilterRequest
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
	status, ok := optionalEnum(c, filter.Status, enum.ParseVisitStatus)
	if !ok {
		return
	}

	result, err := h.visitService.ListVisits(c.Request.Context(), a, &service.ListVisitsInput{
		Pagination: paginationOf(filter.ListRequest),
		Search:     filter.Search,
		SortBy:     filter.SortBy,
		SortOrder:  filter.SortOrder,
		VendorID:   vendorID,
		Status:     status,
		From:       from,
		To:         to,
	})
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessWithPagination(c, "Visits retrieved successfully", result)
}

// Create handles scheduling a visit
// @Summary Create visit
// @Tags visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.VisitRequest true "Visit"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /visits [post]
func (h *VisitHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.VisitRequest
	if !bindJSON(c, &req) {
		return
	}

	visit, err := h.visitService.CreateVisit(c.Request.Context(), a, h.input(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, "Visit created successfully", visit)
}

// Get handles getting a single visit
// @Summary Get visit
// @Tags visits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Visit ID"
// @Success 200 {object} response.APIResponse
// @Router /visits/{id} [get]
func (h *VisitHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	visit, err := h.visitService.GetVisit(c.Request.Context(), a, id)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Visit retrieved successfully", visit)
}

// Update handles editing a visit
// @Summary Update visit
// @Tags visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Visit ID"
// @Param request body request.VisitRequest true "Fields to change"
// @Success 200 {object} response.APIResponse
// @Router /visits/{id} [put]
func (h *VisitHandler) Update(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req request.VisitRequest
	if !bindJSON(c, &req) {
		return
	}

	visit, err := h.visitService.UpdateVisit(c.Request.Context(), a, id, h.input(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Visit updated successfully", visit)
}

// UpdateStatus records the outcome of a visit
// @Summary Update visit status
// @Description thinking needs follow_up_date; completed_no_purchase needs rejection_reason
// @Tags visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Visit ID"
// @Param request body request.VisitStatusRequest true "Status"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /visits/{id}/status [patch]
func (h *VisitHandler) UpdateStatus(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req request.VisitStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	visit, err := h.visitService.UpdateStatus(c.Request.Context(), a, id, &service.VisitStatusInput{
		Status:          req.Status,
		FollowUpDate:    request.TimePtr(req.FollowUpDate, h.loc),
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Visit status updated", visit)
}

// Delete handles deleting a visit
// @Summary Delete visit
// @Tags visits
// @Security BearerAuth
// @Param id path string true "Visit ID"
// @Success 204
// @Router /visits/{id} [delete]
func (h *VisitHandler) Delete(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.visitService.DeleteVisit(c.Request.Context(), a, id); err != nil {
		fail(c, err)
		return
	}

	response.NoContent(c)
}

// Upcoming lists the next visits from today on
// @Summary Upcoming visits
// @Tags visits
// @Produce json
// @Security BearerAuth
// @Param limit query int false "At most 50"
// @Success 200 {object} response.APIResponse
// @Router /visits/upcoming [get]
func (h *VisitHandler) Upcoming(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	visits, err := h.visitService.Upcoming(c.Request.Context(), a, queryInt(c, "limit"))
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Visits retrieved successfully", visits)
}

// MaintenanceHandler handles refill and service appointments
type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
	loc                *time.Location
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService, loc *time.Location) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService, loc: orDefault(loc)}
}

func (h *MaintenanceHandler) input(req *request.MaintenanceRequest) *service.MaintenanceInput {
	return &service.MaintenanceInput{
		VendorID:      req.VendorID,
		ClientID:      req.ClientID,
		ProductName:   req.ProductName,
		Type:          req.Type,
		ScheduledDate: request.TimePtr(req.ScheduledDate, h.loc),
		Notes:         req.Notes,
	}
}

// List handles listing maintenances
// @Summary List maintenances
// @Tags maintenances
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /maintenances [get]
func (h *MaintenanceHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var filter request.MaintenanceFilterRequest
	if !bindQuery(c, &filter) {
		return
	}
	from, to, ok := period(c, filter.PeriodRequest, h.loc)
	if !ok {
		return
	}
	clientID, ok := optionalUUID(c, "client_id", filter.ClientID)
	if !ok {
		return
	}
	status, ok := optionalEnum(c, filter.Status, enum.ParseMaintenanceStatus)
	if !ok {
		return
	}
	kind, ok := optionalEnum(c, filter.Type, enum.ParseMaintenanceType)
	if !ok {
		return
	}

	result, err := h.maintenanceService.ListMaintenances(c.Request.Context(), a, &service.ListMaintenancesInput{
		Pagination: paginationOf(filter.ListRequest),
		Search:     filter.Search,
		SortBy:     filter.SortBy,
		SortOrder:  filter.SortOrder,
		ClientID:   clientID,
		Status:     status,
		Type:       kind,
		From:       from,
		To:         to,
	})
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessWithPagination(c, "Maintenances retrieved successfully", result)
}

// Create handles scheduling a maintenance
// @Summary Create maintenance
// @Tags maintenances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.MaintenanceRequest true "Maintenance"
// @Success 201 {object} response.APIResponse
// @Router /maintenances [post]
func (h *MaintenanceHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.MaintenanceRequest
	if !bindJSON(c, &req) {
		return
	}

	maintenance, err := h.maintenanceService.CreateMaintenance(c.Request.Context(), a, h.input(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, "Maintenance created successfully", maintenance)
}

// Get handles getting a single maintenance
// @Summary Get maintenance
// @Tags maintenances
// @Produce json
// @Security BearerAuth
// @Param id path string true "Maintenance ID"
// @Success 200 {object} response.APIResponse
// @Router /maintenances/{id} [get]
func (h *MaintenanceHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	maintenance, err := h.maintenanceService.GetMaintenance(c.Request.Context(), a, id)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Maintenance retrieved successfully", maintenance)
}

// Update handles editing a maintenance
// @Summary Update maintenance
// @Tags maintenances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Maintenance ID"
// @Param request body request.MaintenanceRequest true "Fields to change"
// @Success 200 {object} response.APIResponse
// @Router /maintenances/{id} [put]
func (h *MaintenanceHandler) Update(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req request.MaintenanceRequest
	if !bindJSON(c, &req) {
		return
	}

	maintenance, err := h.maintenanceService.UpdateMaintenance(c.Request.Context(), a, id, h.input(&req))
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Maintenance updated successfully", maintenance)
}

// UpdateStatus moves a maintenance to a new status
// @Summary Update maintenance status
// @Tags maintenances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Maintenance ID"
// @Param request body request.MaintenanceStatusRequest true "Status"
// @Success 200 {object} response.APIResponse
// @Router /maintenances/{id}/status [patch]
func (h *MaintenanceHandler) UpdateStatus(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req request.MaintenanceStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	maintenance, err := h.maintenanceService.UpdateStatus(c.Request.Context(), a, id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Maintenance status updated", maintenance)
}

// Complete marks a maintenance done and schedules the next one
// @Summary Complete maintenance
// @Tags maintenances
// @Produce json
// @Security BearerAuth
// @Param id path string true "Maintenance ID"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /maintenances/{id}/complete [post]
func (h *MaintenanceHandler) Complete(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	maintenance, err := h.maintenanceService.Complete(c.Request.Context(), a, id)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Maintenance completed", maintenance)
}

// Delete handles deleting a maintenance
// @Summary Delete maintenance
// @Tags maintenances
// @Security BearerAuth
// @Param id path string true "Maintenance ID"
// @Success 204
// @Router /maintenances/{id} [delete]
func (h *MaintenanceHandler) Delete(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.maintenanceService.DeleteMaintenance(c.Request.Context(), a, id); err != nil {
		fail(c, err)
		return
	}

	response.NoContent(c)
}

// Upcoming lists the next scheduled maintenances
// @Summary Upcoming maintenances
// @Tags maintenances
// @Produce json
// @Security BearerAuth
// @Param limit query int false "At most 50"
// @Success 200 {object} response.APIResponse
// @Router /maintenances/upcoming [get]
func (h *MaintenanceHandler) Upcoming(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	maintenances, err := h.maintenanceService.Upcoming(c.Request.Context(), a, queryInt(c, "limit"))
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Maintenances retrieved successfully", maintenances)
}

// Due lists completed maintenances whose next date is close or overdue
// @Summary Maintenances due
// @Tags maintenances
// @Produce json
// @Security BearerAuth
// @Param days query int false "Look-ahead in days, default 7"
// @Success 200 {object} response.APIResponse
// @Router /maintenances/due [get]
func (h *MaintenanceHandler) Due(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	maintenances, err := h.maintenanceService.Due(c.Request.Context(), a, queryInt(c, "days"))
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Maintenances retrieved successfully", maintenances)
}
