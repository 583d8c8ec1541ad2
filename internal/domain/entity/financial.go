package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
	"gorm.io/gorm"
)

// FinancialTransaction is one entry of the cash book
type FinancialTransaction struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Type          enum.TransactionType `gorm:"size:10;not null;index" json:"type"`
	Category      string               `gorm:"size:100;not null;index" json:"category"`
	Description   string               `gorm:"type:text" json:"description"`
	Amount        money.Cents          `gorm:"type:bigint;not null" json:"amount"`
	Date          time.Time            `gorm:"not null;index" json:"date"`
	PaymentMethod enum.PaymentMethod   `gorm:"size:50;not null" json:"payment_method"`
	ReferenceID   *uuid.UUID           `gorm:"type:uuid;index" json:"reference_id,omitempty"`
	ReferenceType *string              `gorm:"size:50" json:"reference_type,omitempty"`
	VendorID      *uuid.UUID           `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	DeletedAt     gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *FinancialTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FinancialTransaction model
func (FinancialTransaction) TableName() string {
	return "financial_transactions"
}

// FinancialSummary is the cash book overview
type FinancialSummary struct {
	TotalIncome       money.Cents            `json:"total_entradas"`
	TotalExpense      money.Cents            `json:"total_saidas"`
	Balance           money.Cents            `json:"saldo"`
	TransactionsToday int64                  `json:"transacoes_hoje"`
	TopIncome         []FinancialTransaction `json:"maiores_entradas"`
	TopExpense        []FinancialTransaction `json:"maiores_saidas"`
}
