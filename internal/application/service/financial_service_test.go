package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/domain/repository/mocks"
	"github.com/sangkips/gestao-api/pkg/money"
	"go.uber.org/mock/gomock"
)

func TestFinancialService_CreateTransaction(t *testing.T) {
	tests := []struct {
		name  string
		input TransactionInput
		field string
	}{
		{
			name:  "unknown type",
			input: TransactionInput{Type: "transfer", Category: "Aluguel", Amount: 100, PaymentMethod: enum.PaymentMethodPix},
			field: "type",
		},
		{
			name:  "category of the other type",
			input: TransactionInput{Type: enum.TransactionTypeIncome, Category: "Aluguel", Amount: 100, PaymentMethod: enum.PaymentMethodPix},
			field: "category",
		},
		{
			name:  "zero amount",
			input: TransactionInput{Type: enum.TransactionTypeExpense, Category: "Aluguel", PaymentMethod: enum.PaymentMethodPix},
			field: "amount",
		},
		{
			name:  "missing payment method",
			input: TransactionInput{Type: enum.TransactionTypeExpense, Category: "Aluguel", Amount: 100},
			field: "payment_method",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewFinancialService(nil, fixedClock())
			_, err := svc.CreateTransaction(context.Background(), &tt.input)
			expectField(t, err, tt.field)
		})
	}

	t.Run("valid expense", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockFinancialRepository(ctrl)
		svc := NewFinancialService(repo, fixedClock())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *entity.FinancialTransaction) error {
				if tx.Date.IsZero() || tx.Category != "Aluguel" {
					t.Fatalf("unexpected entry: %+v", tx)
				}
				return nil
			},
		)

		_, err := svc.CreateTransaction(context.Background(), &TransactionInput{
			Type:          enum.TransactionTypeExpense,
			Category:      " Aluguel ",
			Amount:        money.FromUnits(2500, 0),
			PaymentMethod: enum.PaymentMethodBankTransfer,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFinancialService_LinkedEntriesAreReadOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockFinancialRepository(ctrl)
	svc := NewFinancialService(repo, fixedClock())

	saleID := uuid.New()
	tx := &entity.FinancialTransaction{ID: uuid.New(), ReferenceID: &saleID}
	repo.EXPECT().GetByID(gomock.Any(), tx.ID).Return(tx, nil).Times(2)

	_, err := svc.UpdateTransaction(context.Background(), tx.ID, &TransactionInput{})
	expectCode(t, err, http.StatusConflict)
	err = svc.DeleteTransaction(context.Background(), tx.ID)
	expectCode(t, err, http.StatusConflict)
}

func TestFinancialService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockFinancialRepository(ctrl)
	svc := NewFinancialService(repo, fixedClock())

	period := repository.DateRange{}
	repo.EXPECT().SumByType(gomock.Any(), enum.TransactionTypeIncome, period).Return(money.FromUnits(10000, 0), nil)
	repo.EXPECT().SumByType(gomock.Any(), enum.TransactionTypeExpense, period).Return(money.FromUnits(12500, 50), nil)
	today := time.Date(2025, 3, 14, 0, 0, 0, 0, saoPaulo)
	repo.EXPECT().CountOnDate(gomock.Any(), today).Return(int64(3), nil)
	repo.EXPECT().Top(gomock.Any(), enum.TransactionTypeIncome, 5).Return([]entity.FinancialTransaction{{}}, nil)
	repo.EXPECT().Top(gomock.Any(), enum.TransactionTypeExpense, 5).Return(nil, nil)

	summary, err := svc.Summary(context.Background(), period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Balance != -money.FromUnits(2500, 50) {
		t.Fatalf("balance = %v", summary.Balance)
	}
	if summary.TransactionsToday != 3 || len(summary.TopIncome) != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestFinancialService_Categories(t *testing.T) {
	cats := NewFinancialService(nil, fixedClock()).Categories()
	if !contains(cats[enum.TransactionTypeIncome], enum.CategorySales) {
		t.Fatal("Vendas must be an income category")
	}
	if !contains(cats[enum.TransactionTypeExpense], enum.CategorySalesReversal) {
		t.Fatal("Estorno de Vendas must be an expense category")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
