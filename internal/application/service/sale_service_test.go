package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/pricing"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/domain/repository/mocks"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type saleMocks struct {
	sales    *mocks.MockSaleRepository
	vendors  *mocks.MockVendorRepository
	clients  *mocks.MockClientRepository
	products *mocks.MockProductRepository
	services *mocks.MockServiceRepository
}

func newSaleService(ctrl *gomock.Controller) (*SaleService, saleMocks) {
	m := saleMocks{
		sales:    mocks.NewMockSaleRepository(ctrl),
		vendors:  mocks.NewMockVendorRepository(ctrl),
		clients:  mocks.NewMockClientRepository(ctrl),
		products: mocks.NewMockProductRepository(ctrl),
		services: mocks.NewMockServiceRepository(ctrl),
	}
	svc := NewSaleService(m.sales, m.vendors, m.clients, m.products, m.services, nil, zap.NewNop(), fixedClock())
	return svc, m
}

func TestSaleService_CreateSale(t *testing.T) {
	vendor := &entity.Vendor{ID: uuid.New(), Name: "Ana", CommissionRate: decimal.NewFromInt(5)}
	purifier := &entity.Product{ID: uuid.New(), Name: "Purificador", Price: money.FromUnits(1500, 0)}
	install := &entity.Service{ID: uuid.New(), Name: "Instalação", Price: money.FromUnits(150, 0)}

	t.Run("success books revenue and commission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newSaleService(ctrl)

		m.vendors.EXPECT().GetByID(gomock.Any(), vendor.ID).Return(vendor, nil)
		m.products.EXPECT().GetByID(gomock.Any(), purifier.ID).Return(purifier, nil).Times(2)
		m.services.EXPECT().GetByID(gomock.Any(), install.ID).Return(install, nil)
		m.sales.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w *repository.SaleWrite) error {
				s := w.Sale
				// 2 x 1.500,00 + 150,00 - 150,00
				if s.Subtotal != money.FromUnits(3150, 0) || s.Total != money.FromUnits(3000, 0) {
					t.Fatalf("unexpected totals: subtotal=%v total=%v", s.Subtotal, s.Total)
				}
				if s.Commission != money.FromUnits(150, 0) {
					t.Fatalf("commission = %v", s.Commission)
				}
				if len(s.Items) != 2 || s.Items[0].Quantity != 2 || s.Items[1].Type != enum.ItemTypeService {
					t.Fatalf("unexpected items: %+v", s.Items)
				}
				if s.Status != enum.SaleStatusCompleted || s.VendorName != "Ana" || s.Installments != 1 {
					t.Fatalf("unexpected sale: %+v", s)
				}
				l := w.Ledger
				if l.Type != enum.TransactionTypeIncome || l.Category != enum.CategorySales || l.Amount != s.Total {
					t.Fatalf("unexpected ledger entry: %+v", l)
				}
				s.ID = uuid.New()
				return nil
			},
		)

		sale, err := svc.CreateSale(context.Background(), vendorActor(vendor.ID), &CreateSaleInput{
			ClientName: "Maria",
			Items: []LineItemInput{
				{Type: enum.ItemTypeProduct, ItemID: purifier.ID, Quantity: 1},
				{Type: enum.ItemTypeService, ItemID: install.ID, Quantity: 1},
				{Type: enum.ItemTypeProduct, ItemID: purifier.ID, Quantity: 1},
			},
			Discount:      money.FromUnits(150, 0),
			PaymentMethod: enum.PaymentMethodPix,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.Reference[:13] != "VND-20250314-" {
			t.Fatalf("reference = %q", sale.Reference)
		}
	})

	t.Run("discount above subtotal writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newSaleService(ctrl)

		m.vendors.EXPECT().GetByID(gomock.Any(), vendor.ID).Return(vendor, nil)
		m.services.EXPECT().GetByID(gomock.Any(), install.ID).Return(install, nil)

		_, err := svc.CreateSale(context.Background(), vendorActor(vendor.ID), &CreateSaleInput{
			ClientName:    "Maria",
			Items:         []LineItemInput{{Type: enum.ItemTypeService, ItemID: install.ID, Quantity: 1}},
			Discount:      money.FromUnits(200, 0),
			PaymentMethod: enum.PaymentMethodCash,
		})
		expectField(t, err, "discount")
		if !errors.Is(err, pricing.ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount in chain, got %v", err)
		}
	})

	t.Run("explicit unit price overrides catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newSaleService(ctrl)

		price := money.FromUnits(1200, 0)
		m.vendors.EXPECT().GetByID(gomock.Any(), vendor.ID).Return(vendor, nil)
		m.products.EXPECT().GetByID(gomock.Any(), purifier.ID).Return(purifier, nil)
		m.sales.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w *repository.SaleWrite) error {
				if w.Sale.Total != price {
					t.Fatalf("total = %v", w.Sale.Total)
				}
				return nil
			},
		)

		_, err := svc.CreateSale(context.Background(), vendorActor(vendor.ID), &CreateSaleInput{
			ClientName:    "Maria",
			Items:         []LineItemInput{{Type: enum.ItemTypeProduct, ItemID: purifier.ID, Quantity: 1, UnitPrice: &price}},
			PaymentMethod: enum.PaymentMethodCash,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("vendor cannot sell as another vendor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _ := newSaleService(ctrl)

		other := uuid.New()
		_, err := svc.CreateSale(context.Background(), vendorActor(vendor.ID), &CreateSaleInput{VendorID: &other})
		expectCode(t, err, http.StatusForbidden)
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newSaleService(ctrl)

		m.vendors.EXPECT().GetByID(gomock.Any(), vendor.ID).Return(vendor, nil)
		m.products.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := svc.CreateSale(context.Background(), vendorActor(vendor.ID), &CreateSaleInput{
			ClientName:    "Maria",
			Items:         []LineItemInput{{Type: enum.ItemTypeProduct, ItemID: uuid.New(), Quantity: 1}},
			PaymentMethod: enum.PaymentMethodCash,
		})
		expectCode(t, err, http.StatusNotFound)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newSaleService(ctrl)

		m.vendors.EXPECT().GetByID(gomock.Any(), vendor.ID).Return(vendor, nil)
		m.services.EXPECT().GetByID(gomock.Any(), install.ID).Return(install, nil)
		m.sales.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperror.NewStoreError("insert", errors.New("conn reset")))

		_, err := svc.CreateSale(context.Background(), vendorActor(vendor.ID), &CreateSaleInput{
			ClientName:    "Maria",
			Items:         []LineItemInput{{Type: enum.ItemTypeService, ItemID: install.ID, Quantity: 1}},
			PaymentMethod: enum.PaymentMethodCash,
		})
		if !apperror.IsStoreError(err) {
			t.Fatalf("expected store error, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newSaleService(ctrl)

		m.vendors.EXPECT().GetByID(gomock.Any(), vendor.ID).Return(vendor, nil)
		_, err := svc.CreateSale(context.Background(), vendorActor(vendor.ID), &CreateSaleInput{ClientName: "Maria"})
		expectField(t, err, "payment_method")
	})
}

func TestSaleService_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newSaleService(ctrl)

	install := &entity.Service{ID: uuid.New(), Name: "Instalação", Price: money.FromUnits(100, 0)}
	m.services.EXPECT().GetByID(gomock.Any(), install.ID).Return(install, nil)

	preview, err := svc.Preview(context.Background(), &PreviewInput{
		Items:    []LineItemInput{{Type: enum.ItemTypeService, ItemID: install.ID, Quantity: 1}},
		Discount: money.FromUnits(150, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.Valid || preview.Totals.Total != 0 || len(preview.Errors) != 1 || preview.Errors[0].Field != "discount" {
		t.Fatalf("unexpected preview: %+v", preview)
	}
	if len(preview.Totals.Warnings) != 1 || preview.Totals.Warnings[0] != pricing.WarningTotalClamped {
		t.Fatalf("expected clamp warning, got %+v", preview.Totals.Warnings)
	}
}

func TestSaleService_CancelSale(t *testing.T) {
	vendorID := uuid.New()
	sale := &entity.Sale{
		ID:            uuid.New(),
		Reference:     "VND-20250301-AAAA0001",
		VendorID:      vendorID,
		Total:         money.FromUnits(500, 0),
		PaymentMethod: enum.PaymentMethodPix,
		Status:        enum.SaleStatusCompleted,
	}

	t.Run("books an estorno", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newSaleService(ctrl)

		m.sales.EXPECT().GetByID(gomock.Any(), sale.ID).Return(sale, nil)
		m.sales.EXPECT().Cancel(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *repository.SaleCancellation) (*entity.Sale, error) {
				r := c.Reversal
				if r.Type != enum.TransactionTypeExpense || r.Category != enum.CategorySalesReversal || r.Amount != sale.Total {
					t.Fatalf("unexpected reversal: %+v", r)
				}
				if c.At.IsZero() || *r.ReferenceID != sale.ID {
					t.Fatalf("unexpected cancellation: %+v", c)
				}
				cancelled := *sale
				cancelled.Status = enum.SaleStatusCancelled
				return &cancelled, nil
			},
		)

		got, err := svc.CancelSale(context.Background(), vendorActor(vendorID), sale.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsCancelled() {
			t.Fatal("expected cancelled sale")
		}
	})

	t.Run("already cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newSaleService(ctrl)

		cancelled := *sale
		cancelled.Status = enum.SaleStatusCancelled
		m.sales.EXPECT().GetByID(gomock.Any(), sale.ID).Return(&cancelled, nil)

		_, err := svc.CancelSale(context.Background(), adminActor(), sale.ID)
		expectCode(t, err, http.StatusConflict)
	})

	t.Run("other vendor's sale is hidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newSaleService(ctrl)

		m.sales.EXPECT().GetByID(gomock.Any(), sale.ID).Return(sale, nil)

		_, err := svc.CancelSale(context.Background(), vendorActor(uuid.New()), sale.ID)
		expectCode(t, err, http.StatusNotFound)
	})
}

func TestSaleService_ListSales_ScopesVendors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newSaleService(ctrl)

	vendorID := uuid.New()
	requested := uuid.New()
	m.sales.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f repository.SaleFilter) ([]entity.Sale, int64, error) {
			// a vendor's own id wins over the requested filter
			if f.VendorID == nil || *f.VendorID != vendorID {
				t.Fatalf("unexpected scope: %+v", f.VendorScope)
			}
			if f.Pagination == nil || f.Pagination.PerPage != 15 {
				t.Fatalf("expected default pagination, got %+v", f.Pagination)
			}
			return nil, 0, nil
		},
	)

	res, err := svc.ListSales(context.Background(), vendorActor(vendorID), &ListSalesInput{VendorID: &requested})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Items == nil || res.Pagination.Total != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
