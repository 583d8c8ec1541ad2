package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/sangkips/gestao-api/pkg/pagination"
)

const summaryTopN = 5

// FinancialService handles the cash book
type FinancialService struct {
	financialRepo repository.FinancialRepository
	now           Clock
}

// NewFinancialService creates a new financial service
func NewFinancialService(financialRepo repository.FinancialRepository, now Clock) *FinancialService {
	return &FinancialService{financialRepo: financialRepo, now: now}
}

// TransactionInput represents a manual ledger entry
type TransactionInput struct {
	Type          enum.TransactionType
	Category      string
	Description   string
	Amount        money.Cents
	Date          *time.Time
	PaymentMethod enum.PaymentMethod
}

// CreateTransaction books a manual entry
func (s *FinancialService) CreateTransaction(ctx context.Context, input *TransactionInput) (*entity.FinancialTransaction, error) {
	tx := &entity.FinancialTransaction{}
	if err := s.apply(tx, input); err != nil {
		return nil, err
	}
	if err := s.financialRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetTransaction retrieves a ledger entry by ID
func (s *FinancialService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.FinancialTransaction, error) {
	tx, err := s.financialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return tx, nil
}

// ListTransactionsInput holds the ledger listing options
type ListTransactionsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	SortBy     string
	SortOrder  string
	Type       *enum.TransactionType
	Category   string
	From       *time.Time
	To         *time.Time
}

// ListTransactions lists ledger entries
func (s *FinancialService) ListTransactions(ctx context.Context, input *ListTransactionsInput) (*pagination.PaginatedResult[entity.FinancialTransaction], error) {
	filter := repository.FinancialFilter{
		FilterParams: repository.FilterParams{
			Pagination: input.Pagination,
			Search:     input.Search,
			SortBy:     input.SortBy,
			SortOrder:  input.SortOrder,
		},
		DateRange: repository.DateRange{From: input.From, To: input.To},
		Type:      input.Type,
		Category:  input.Category,
	}
	params := filter.Page()
	filter.Pagination = params

	txs, total, err := s.financialRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(txs, params, total), nil
}

// UpdateTransaction edits a manual entry. Entries booked by sales and
// payouts follow their source record and cannot be edited here.
func (s *FinancialService) UpdateTransaction(ctx context.Context, id uuid.UUID, input *TransactionInput) (*entity.FinancialTransaction, error) {
	tx, err := s.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.ReferenceID != nil {
		return nil, apperror.NewConflictError("Transaction is linked to another record and cannot be edited")
	}
	if err := s.apply(tx, input); err != nil {
		return nil, err
	}
	if err := s.financialRepo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// DeleteTransaction deletes a manual entry
func (s *FinancialService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	tx, err := s.GetTransaction(ctx, id)
	if err != nil {
		return err
	}
	if tx.ReferenceID != nil {
		return apperror.NewConflictError("Transaction is linked to another record and cannot be deleted")
	}
	return s.financialRepo.Delete(ctx, id)
}

// Summary totals the ledger over a period: entradas, saidas, balance, the
// number of entries dated today and the five largest of each type
func (s *FinancialService) Summary(ctx context.Context, period repository.DateRange) (*entity.FinancialSummary, error) {
	income, err := s.financialRepo.SumByType(ctx, enum.TransactionTypeIncome, period)
	if err != nil {
		return nil, err
	}
	expense, err := s.financialRepo.SumByType(ctx, enum.TransactionTypeExpense, period)
	if err != nil {
		return nil, err
	}
	today, err := s.financialRepo.CountOnDate(ctx, startOfDay(s.now()))
	if err != nil {
		return nil, err
	}
	topIncome, err := s.financialRepo.Top(ctx, enum.TransactionTypeIncome, summaryTopN)
	if err != nil {
		return nil, err
	}
	topExpense, err := s.financialRepo.Top(ctx, enum.TransactionTypeExpense, summaryTopN)
	if err != nil {
		return nil, err
	}

	return &entity.FinancialSummary{
		TotalIncome:       income,
		TotalExpense:      expense,
		Balance:           income - expense,
		TransactionsToday: today,
		TopIncome:         topIncome,
		TopExpense:        topExpense,
	}, nil
}

// Categories returns the allowed categories per transaction type
func (s *FinancialService) Categories() map[enum.TransactionType][]string {
	return map[enum.TransactionType][]string{
		enum.TransactionTypeIncome:  enum.TransactionTypeIncome.Categories(),
		enum.TransactionTypeExpense: enum.TransactionTypeExpense.Categories(),
	}
}

func (s *FinancialService) apply(tx *entity.FinancialTransaction, input *TransactionInput) error {
	txType, err := enum.ParseTransactionType(string(input.Type))
	if err != nil {
		return apperror.NewFieldError("type", "Tipo deve ser entrada ou saida", err)
	}
	category := strings.TrimSpace(input.Category)
	if !txType.HasCategory(category) {
		return apperror.NewFieldError("category", "Categoria inválida para "+string(txType), nil)
	}
	if input.Amount <= 0 {
		return apperror.NewFieldError("amount", "O valor deve ser maior que zero", nil)
	}
	if input.PaymentMethod == "" {
		return apperror.NewFieldError("payment_method", "Forma de pagamento é obrigatória", nil)
	}

	tx.Type = txType
	tx.Category = category
	tx.Description = strings.TrimSpace(input.Description)
	tx.Amount = input.Amount
	tx.PaymentMethod = input.PaymentMethod
	if input.Date != nil {
		tx.Date = *input.Date
	} else if tx.Date.IsZero() {
		tx.Date = s.now()
	}
	return nil
}
