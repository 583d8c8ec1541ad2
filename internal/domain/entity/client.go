package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
	"gorm.io/gorm"
)

// Client represents a customer of the business
type Client struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	VendorID      *uuid.UUID        `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	Name          string            `gorm:"size:255;not null" json:"name"`
	Email         *string           `gorm:"size:255" json:"email,omitempty"`
	Phone         *string           `gorm:"size:50" json:"phone,omitempty"`
	Address       *string           `gorm:"type:text" json:"address,omitempty"`
	DocumentType  enum.DocumentType `gorm:"size:4" json:"document_type,omitempty"`
	Document      string            `gorm:"size:20;index" json:"document,omitempty"`
	ScheduledDate *time.Time        `json:"scheduled_date,omitempty"`
	TotalValue    money.Cents       `gorm:"type:bigint;default:0" json:"total_value"`
	IsPremium     bool              `gorm:"default:false;index" json:"is_premium"`
	PlanValue     money.Cents       `gorm:"type:bigint;default:0" json:"plan_value"`
	PaymentDue    *time.Time        `gorm:"type:date" json:"payment_due,omitempty"`
	PurchasedItem *string           `gorm:"size:255" json:"purchased_item,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
