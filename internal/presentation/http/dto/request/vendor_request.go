package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/shopspring/decimal"
)

// VendorRequest creates or updates a vendor
type VendorRequest struct {
	UserID         *uuid.UUID       `json:"user_id"`
	Name           *string          `json:"name" binding:"omitempty,min=2,max=255"`
	Email          *string          `json:"email" binding:"omitempty,email"`
	Phone          *string          `json:"phone" binding:"omitempty,max=50"`
	Address        *string          `json:"address"`
	PhotoURL       *string          `json:"photo_url" binding:"omitempty,url"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
}

// PayCommissionRequest pays out part of a vendor's pending commission
type PayCommissionRequest struct {
	Amount        money.Cents        `json:"amount"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Description   string             `json:"description" binding:"max=500"`
}
