package request

import (
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
)

// TransactionRequest records a manual cash entry
type TransactionRequest struct {
	Type          enum.TransactionType `json:"type"`
	Category      string               `json:"category" binding:"max=100"`
	Description   string               `json:"description" binding:"max=500"`
	Amount        money.Cents          `json:"amount"`
	Date          *Date                `json:"date"`
	PaymentMethod enum.PaymentMethod   `json:"payment_method"`
}

// TransactionFilterRequest represents ledger filter parameters
type TransactionFilterRequest struct {
	ListRequest
	PeriodRequest
	Type     string `form:"type"`
	Category string `form:"category"`
}
