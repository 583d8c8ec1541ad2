package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/pricing"
	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/infrastructure/database"
	"github.com/sangkips/gestao-api/internal/infrastructure/repository"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	_ = godotenv.Load("../../../.env")

	// Integration tests need a dedicated database; they truncate every table.
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := database.AutoMigrate(db, zap.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Exec(`TRUNCATE TABLE sale_items, sales, quotation_items, quotations,
		financial_transactions, clients, vendors CASCADE`).Error; err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return db
}

func TestSaleRepository_CreateAndCancel(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	vendors := repository.NewVendorRepository(db)
	sales := repository.NewSaleRepository(db)
	ledger := repository.NewFinancialRepository(db)

	vendor := &entity.Vendor{Name: "Ana", CommissionRate: decimal.NewFromInt(5), TotalSales: money.FromUnits(24900, 0)}
	if err := vendors.Create(ctx, vendor); err != nil {
		t.Fatalf("create vendor: %v", err)
	}

	lines := []pricing.Line{{Kind: enum.ItemTypeProduct, ItemID: uuid.New(), Name: "Purificador", UnitPrice: money.FromUnits(1000, 0), Quantity: 2, Total: money.FromUnits(2000, 0)}}
	totals, err := pricing.ComputeAggregate(lines, 0)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	sale := &entity.Sale{
		Reference:     "VND-TEST-" + uuid.NewString()[:8],
		ClientName:    "Cliente",
		VendorID:      vendor.ID,
		VendorName:    vendor.Name,
		Subtotal:      totals.Subtotal,
		Total:         totals.Total,
		Commission:    money.FromUnits(100, 0),
		PaymentMethod: enum.PaymentMethodPix,
		Installments:  1,
		Status:        enum.SaleStatusCompleted,
		Date:          time.Now(),
		Items:         entity.SaleItemsFromLines(lines),
	}
	entry := &entity.FinancialTransaction{
		Type:          enum.TransactionTypeIncome,
		Category:      enum.CategorySales,
		Amount:        sale.Total,
		Date:          sale.Date,
		PaymentMethod: sale.PaymentMethod,
	}
	if err := sales.Create(ctx, &domainRepo.SaleWrite{Sale: sale, Ledger: entry}); err != nil {
		t.Fatalf("create sale: %v", err)
	}

	got, _ := vendors.GetByID(ctx, vendor.ID)
	if got.TotalSales != money.FromUnits(26900, 0) || got.Level != enum.TierSilver {
		t.Fatalf("vendor after sale: total=%v level=%v", got.TotalSales, got.Level)
	}
	if got.PendingCommissions != money.FromUnits(100, 0) {
		t.Fatalf("pending = %v", got.PendingCommissions)
	}

	cancelled, err := sales.Cancel(ctx, &domainRepo.SaleCancellation{
		SaleID: sale.ID,
		At:     time.Now(),
		Reversal: &entity.FinancialTransaction{
			Type:          enum.TransactionTypeExpense,
			Category:      enum.CategorySalesReversal,
			Date:          time.Now(),
			PaymentMethod: sale.PaymentMethod,
		},
	})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if !cancelled.IsCancelled() || len(cancelled.Items) != 1 {
		t.Fatalf("unexpected cancelled sale %+v", cancelled)
	}

	got, _ = vendors.GetByID(ctx, vendor.ID)
	if got.TotalSales != money.FromUnits(24900, 0) || got.Level != enum.TierBronze || got.PendingCommissions != 0 {
		t.Fatalf("vendor after cancel: %+v", got)
	}

	expense, err := ledger.SumByType(ctx, enum.TransactionTypeExpense, domainRepo.DateRange{})
	if err != nil || expense != sale.Total {
		t.Fatalf("reversal sum = %v, %v", expense, err)
	}

	if _, err := sales.Cancel(ctx, &domainRepo.SaleCancellation{SaleID: sale.ID, At: time.Now()}); err == nil {
		t.Fatal("second cancel must fail")
	}
}

func TestVendorRepository_PayCommission(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	vendors := repository.NewVendorRepository(db)

	vendor := &entity.Vendor{Name: "Bruno", PendingCommissions: money.FromUnits(500, 0)}
	if err := vendors.Create(ctx, vendor); err != nil {
		t.Fatalf("create vendor: %v", err)
	}

	_, err := vendors.PayCommission(ctx, &domainRepo.CommissionPayment{VendorID: vendor.ID, Amount: money.FromUnits(600, 0)})
	if !errors.Is(err, domainRepo.ErrCommissionExceedsPending) {
		t.Fatalf("expected ErrCommissionExceedsPending, got %v", err)
	}

	updated, err := vendors.PayCommission(ctx, &domainRepo.CommissionPayment{VendorID: vendor.ID, Amount: money.FromUnits(200, 0)})
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if updated.PendingCommissions != money.FromUnits(300, 0) || updated.ReceivedCommissions != money.FromUnits(200, 0) {
		t.Fatalf("unexpected totals %+v", updated)
	}
}
