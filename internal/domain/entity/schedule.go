package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/schedule"
	"gorm.io/gorm"
)

// Visit is a scheduled sales visit to a client
type Visit struct {
	ID              uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	VendorID        uuid.UUID             `gorm:"type:uuid;not null;index" json:"vendor_id"`
	ClientID        *uuid.UUID            `gorm:"type:uuid;index" json:"client_id,omitempty"`
	ClientName      string                `gorm:"size:255;not null" json:"client_name"`
	ScheduledDate   time.Time             `gorm:"not null;index" json:"scheduled_date"`
	Status          enum.VisitStatus      `gorm:"size:30;not null;default:'scheduled';index" json:"status"`
	Location        string                `gorm:"size:255" json:"location"`
	Notes           string                `gorm:"type:text" json:"notes"`
	FollowUpDate    *time.Time            `json:"follow_up_date,omitempty"`
	RejectionReason *string               `gorm:"type:text" json:"rejection_reason,omitempty"`
	MaintenanceType *enum.MaintenanceType `gorm:"size:20" json:"maintenance_type,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	DeletedAt       gorm.DeletedAt        `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new visit
func (v *Visit) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Visit model
func (Visit) TableName() string {
	return "visits"
}

// StatusFields returns the fields the status rules look at
func (v *Visit) StatusFields() schedule.VisitFields {
	return schedule.VisitFields{
		FollowUpDate:    v.FollowUpDate,
		RejectionReason: v.RejectionReason,
	}
}

// Maintenance is a refill or service appointment for an installed product
type Maintenance struct {
	ID                  uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	ClientID            uuid.UUID              `gorm:"type:uuid;not null;index" json:"client_id"`
	ClientName          string                 `gorm:"size:255;not null" json:"client_name"`
	ClientPhone         *string                `gorm:"size:50" json:"client_phone,omitempty"`
	VendorID            uuid.UUID              `gorm:"type:uuid;not null;index" json:"vendor_id"`
	VendorName          string                 `gorm:"size:255" json:"vendor_name"`
	ProductName         string                 `gorm:"size:255;not null" json:"product_name"`
	Type                enum.MaintenanceType   `gorm:"column:maintenance_type;size:20;not null" json:"maintenance_type"`
	ScheduledDate       time.Time              `gorm:"not null;index" json:"scheduled_date"`
	Status              enum.MaintenanceStatus `gorm:"size:20;not null;default:'agendado';index" json:"status"`
	Notes               string                 `gorm:"type:text" json:"notes"`
	CompletedAt         *time.Time             `json:"completed_at,omitempty"`
	NextMaintenanceDate *time.Time             `gorm:"index" json:"next_maintenance_date,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
	DeletedAt           gorm.DeletedAt         `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new maintenance
func (m *Maintenance) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Maintenance model
func (Maintenance) TableName() string {
	return "maintenances"
}

// Complete stamps the completion time and schedules the next maintenance
func (m *Maintenance) Complete(at time.Time) error {
	next, err := schedule.NextMaintenanceDue(m.Type, at)
	if err != nil {
		return err
	}
	m.Status = enum.MaintenanceStatusCompleted
	m.CompletedAt = &at
	m.NextMaintenanceDate = &next
	return nil
}
