package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
)

// QuotationRequest creates or replaces the content of a quotation
type QuotationRequest struct {
	VendorID   *uuid.UUID        `json:"vendor_id"`
	ClientID   *uuid.UUID        `json:"client_id"`
	ClientName string            `json:"client_name" binding:"max=255"`
	Items      []LineItemRequest `json:"items" binding:"dive"`
	Discount   money.Cents       `json:"discount"`
	ValidUntil *Date             `json:"valid_until"`
	Notes      string            `json:"notes"`
}

// QuotationStatusRequest moves a quotation to a new status
type QuotationStatusRequest struct {
	Status enum.QuotationStatus `json:"status" binding:"required"`
}

// ConvertQuotationRequest turns a quotation into a sale
type ConvertQuotationRequest struct {
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Installments  int                `json:"installments"`
	Observations  string             `json:"observations"`
}

// QuotationFilterRequest represents quotation filter parameters
type QuotationFilterRequest struct {
	ListRequest
	ClientID string `form:"client_id"`
	Status   string `form:"status"`
}
