package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
)

// ClientRequest creates or updates a client. Omitted fields are left as
// they are on update.
type ClientRequest struct {
	VendorID      *uuid.UUID         `json:"vendor_id"`
	Name          *string            `json:"name" binding:"omitempty,max=255"`
	Email         *string            `json:"email" binding:"omitempty,email"`
	Phone         *string            `json:"phone" binding:"omitempty,max=50"`
	Address       *string            `json:"address"`
	DocumentType  *enum.DocumentType `json:"document_type"`
	Document      *string            `json:"document" binding:"omitempty,max=20"`
	ScheduledDate *Date              `json:"scheduled_date"`
	IsPremium     *bool              `json:"is_premium"`
	PlanValue     *money.Cents       `json:"plan_value"`
	PaymentDue    *Date              `json:"payment_due"`
	PurchasedItem *string            `json:"purchased_item"`
}

// ClientFilterRequest represents client filter parameters
type ClientFilterRequest struct {
	ListRequest
	PremiumOnly bool `form:"premium"`
}
