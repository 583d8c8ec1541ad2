package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/application/service"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/request"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/response"
	"github.com/sangkips/gestao-api/internal/presentation/http/middleware"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/sangkips/gestao-api/pkg/pagination"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetVendorID extracts the caller's vendor link, if any
func GetVendorID(c *gin.Context) *uuid.UUID {
	vendorIDVal, exists := c.Get(middleware.ContextVendorID)
	if !exists {
		return nil
	}
	vendorID, ok := vendorIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &vendorID
}

// GetUserRoles extracts the user roles from the Gin context
func GetUserRoles(c *gin.Context) []string {
	return c.GetStringSlice(middleware.ContextUserRoles)
}

// IsAdmin checks if the user has the admin role
func IsAdmin(c *gin.Context) bool {
	for _, role := range GetUserRoles(c) {
		if role == entity.RoleAdmin {
			return true
		}
	}
	return false
}

// actor builds the service-side view of the caller. It writes a 401 and
// returns false when the request is not authenticated.
func actor(c *gin.Context) (service.Actor, bool) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return service.Actor{}, false
	}
	return service.Actor{
		UserID:   *userID,
		VendorID: GetVendorID(c),
		IsAdmin:  IsAdmin(c),
	}, true
}

// fail sends err through the domain error mapping
func fail(c *gin.Context, err error) {
	response.Error(c, service.TranslateError(err))
}

// bindJSON decodes the body. Malformed amounts and enum values become field
// errors (422); any other decoding problem is a 400.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var parseErr *money.ParseError
		var enumErr *enum.InvalidValueError
		if errors.As(err, &parseErr) || errors.As(err, &enumErr) {
			fail(c, err)
			return false
		}
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// bindQuery decodes query parameters into dst
func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return false
	}
	return true
}

// paramID parses the :id path parameter
func paramID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUID parses an optional query id; an invalid value is a 400
func optionalUUID(c *gin.Context, name, raw string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return nil, false
	}
	return &id, true
}

func paginationOf(l request.ListRequest) *pagination.PaginationParams {
	return &pagination.PaginationParams{Page: l.Page, PerPage: l.PerPage}
}

// period parses from/to. A bare "to" day includes the whole day.
func period(c *gin.Context, p request.PeriodRequest, loc *time.Location) (from, to *time.Time, ok bool) {
	if p.From != "" {
		d, err := request.ParseDate(p.From)
		if err != nil {
			response.BadRequest(c, "Invalid from date")
			return nil, nil, false
		}
		t := d.In(loc)
		from = &t
	}
	if p.To != "" {
		d, err := request.ParseDate(p.To)
		if err != nil {
			response.BadRequest(c, "Invalid to date")
			return nil, nil, false
		}
		t := d.In(loc)
		if len(p.To) == len("2006-01-02") {
			t = t.AddDate(0, 0, 1)
		}
		to = &t
	}
	return from, to, true
}

func orDefault(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

// optionalEnum parses an optional enum query value; an unknown value is a 422
func optionalEnum[T any](c *gin.Context, raw string, parse func(string) (T, error)) (*T, bool) {
	if raw == "" {
		return nil, true
	}
	v, err := parse(raw)
	if err != nil {
		fail(c, err)
		return nil, false
	}
	return &v, true
}

func lineItems(items []request.LineItemRequest) []service.LineItemInput {
	out := make([]service.LineItemInput, len(items))
	for i, item := range items {
		out[i] = service.LineItemInput{
			Type:      item.Type,
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return out
}
