package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
)

// LineItemRequest is one cart line. UnitPrice overrides the catalog price.
type LineItemRequest struct {
	Type      enum.ItemType `json:"type" binding:"required"`
	ItemID    uuid.UUID     `json:"item_id" binding:"required"`
	Quantity  int           `json:"quantity"`
	UnitPrice *money.Cents  `json:"unit_price"`
}

// PreviewRequest prices a cart without saving it
type PreviewRequest struct {
	Items    []LineItemRequest `json:"items" binding:"dive"`
	Discount money.Cents       `json:"discount"`
}

// CreateSaleRequest represents a sale creation request
type CreateSaleRequest struct {
	VendorID      *uuid.UUID         `json:"vendor_id"`
	ClientID      *uuid.UUID         `json:"client_id"`
	ClientName    string             `json:"client_name" binding:"max=255"`
	Items         []LineItemRequest  `json:"items" binding:"dive"`
	Discount      money.Cents        `json:"discount"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Installments  int                `json:"installments"`
	Observations  string             `json:"observations"`
	Date          *Date              `json:"date"`
}

// SaleFilterRequest represents sale filter parameters
type SaleFilterRequest struct {
	ListRequest
	PeriodRequest
	VendorID string `form:"vendor_id"`
	ClientID string `form:"client_id"`
	Status   string `form:"status"`
}
