package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
)

// VisitRequest creates or updates a visit
type VisitRequest struct {
	VendorID        *uuid.UUID            `json:"vendor_id"`
	ClientID        *uuid.UUID            `json:"client_id"`
	ClientName      *string               `json:"client_name" binding:"omitempty,max=255"`
	ScheduledDate   *Date                 `json:"scheduled_date"`
	Status          *enum.VisitStatus     `json:"status"`
	Location        *string               `json:"location"`
	Notes           *string               `json:"notes"`
	FollowUpDate    *Date                 `json:"follow_up_date"`
	RejectionReason *string               `json:"rejection_reason"`
	MaintenanceType *enum.MaintenanceType `json:"maintenance_type"`
}

// VisitStatusRequest moves a visit to a new status
type VisitStatusRequest struct {
	Status          enum.VisitStatus `json:"status" binding:"required"`
	FollowUpDate    *Date            `json:"follow_up_date"`
	RejectionReason *string          `json:"rejection_reason"`
}

// VisitFilterRequest represents visit filter parameters
type VisitFilterRequest struct {
	ListRequest
	PeriodRequest
	VendorID string `form:"vendor_id"`
	Status   string `form:"status"`
}

// MaintenanceRequest creates or updates a maintenance
type MaintenanceRequest struct {
	VendorID      *uuid.UUID            `json:"vendor_id"`
	ClientID      *uuid.UUID            `json:"client_id"`
	ProductName   *string               `json:"product_name" binding:"omitempty,max=255"`
	Type          *enum.MaintenanceType `json:"maintenance_type"`
	ScheduledDate *Date                 `json:"scheduled_date"`
	Notes         *string               `json:"notes"`
}

// MaintenanceStatusRequest moves a maintenance to a new status
type MaintenanceStatusRequest struct {
	Status enum.MaintenanceStatus `json:"status" binding:"required"`
}

// MaintenanceFilterRequest represents maintenance filter parameters
type MaintenanceFilterRequest struct {
	ListRequest
	PeriodRequest
	ClientID string `form:"client_id"`
	Status   string `form:"status"`
	Type     string `form:"maintenance_type"`
}
