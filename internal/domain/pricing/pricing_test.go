package pricing

import (
	"errors"
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
)

func TestCart_ProductAndServiceWithDiscount(t *testing.T) {
	productA := Item{Kind: enum.ItemTypeProduct, ID: uuid.New(), Name: "Product A", UnitPrice: money.MustParse("1.500,00")}
	serviceB := Item{Kind: enum.ItemTypeService, ID: uuid.New(), Name: "Service B", UnitPrice: money.MustParse("299,90")}

	cart := NewCart()
	if err := cart.AddLine(productA); err != nil {
		t.Fatalf("add product: %v", err)
	}
	if err := cart.AddLine(productA); err != nil {
		t.Fatalf("add product again: %v", err)
	}
	if err := cart.AddLine(serviceB); err != nil {
		t.Fatalf("add service: %v", err)
	}
	cart.SetDiscount(money.FromUnits(100, 0))

	totals, err := cart.Totals()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Subtotal != money.MustParse("3.299,90") {
		t.Errorf("subtotal = %s, want 3.299,90", totals.Subtotal)
	}
	if totals.Total != money.MustParse("3.199,90") {
		t.Errorf("total = %s, want 3.199,90", totals.Total)
	}
	if len(totals.Warnings) != 0 {
		t.Errorf("unexpected warnings %v", totals.Warnings)
	}

	lines := cart.Lines()
	if len(lines) != 2 || lines[0].Quantity != 2 || lines[0].Total != money.FromUnits(3000, 0) {
		t.Fatalf("unexpected lines %+v", lines)
	}
}

func TestCart_SameIDDifferentKindIsSeparateLine(t *testing.T) {
	id := uuid.New()
	cart := NewCart()
	_ = cart.AddLine(Item{Kind: enum.ItemTypeProduct, ID: id, UnitPrice: 100})
	_ = cart.AddLine(Item{Kind: enum.ItemTypeService, ID: id, UnitPrice: 200})

	if cart.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", cart.Len())
	}
}

func TestCart_SetQuantity(t *testing.T) {
	a := Item{Kind: enum.ItemTypeProduct, ID: uuid.New(), Name: "A", UnitPrice: 1000}
	b := Item{Kind: enum.ItemTypeProduct, ID: uuid.New(), Name: "B", UnitPrice: 250}

	cart := NewCart()
	_ = cart.AddLine(a)
	_ = cart.AddLine(b)

	if err := cart.SetQuantity(a.Kind, a.ID, 3); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if got := cart.Lines()[0].Total; got != 3000 {
		t.Fatalf("line total = %d, want 3000", got)
	}

	if err := cart.SetQuantity(a.Kind, a.ID, 0); err != nil {
		t.Fatalf("set quantity zero: %v", err)
	}
	lines := cart.Lines()
	if len(lines) != 1 || lines[0].ItemID != b.ID {
		t.Fatalf("expected only B to remain, got %+v", lines)
	}

	if err := cart.SetQuantity(b.Kind, b.ID, -1); err != nil {
		t.Fatalf("set negative quantity: %v", err)
	}
	if cart.Len() != 0 {
		t.Fatal("negative quantity should remove the line")
	}

	if err := cart.SetQuantity(a.Kind, a.ID, 1); !errors.Is(err, ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
}

func TestCart_RejectsBadInput(t *testing.T) {
	cart := NewCart()
	if err := cart.Add(Item{ID: uuid.New(), UnitPrice: 10}, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := cart.AddLine(Item{ID: uuid.New(), UnitPrice: -1}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestComputeAggregate_DiscountAboveSubtotal(t *testing.T) {
	lines := []Line{{Kind: enum.ItemTypeService, ItemID: uuid.New(), UnitPrice: 5000, Quantity: 1}}

	totals, err := ComputeAggregate(lines, 5001)
	if !errors.Is(err, ErrInvalidDiscount) {
		t.Fatalf("expected ErrInvalidDiscount, got %v", err)
	}
	var de *DiscountError
	if !errors.As(err, &de) || de.Subtotal != 5000 || de.Discount != 5001 {
		t.Fatalf("unexpected discount error %#v", err)
	}
	if totals.Total != 0 {
		t.Fatalf("total must be clamped to zero, got %d", totals.Total)
	}
	if len(totals.Warnings) != 1 || totals.Warnings[0] != WarningTotalClamped {
		t.Fatalf("expected clamp warning, got %v", totals.Warnings)
	}
}

func TestComputeAggregate_DiscountEqualToSubtotal(t *testing.T) {
	lines := []Line{{Kind: enum.ItemTypeProduct, ItemID: uuid.New(), UnitPrice: 5000, Quantity: 2}}
	totals, err := ComputeAggregate(lines, 10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Total != 0 || len(totals.Warnings) != 0 {
		t.Fatalf("unexpected totals %+v", totals)
	}
}

func TestComputeAggregate_NegativeDiscount(t *testing.T) {
	lines := []Line{{Kind: enum.ItemTypeProduct, ItemID: uuid.New(), UnitPrice: 100, Quantity: 1}}
	if _, err := ComputeAggregate(lines, -1); !errors.Is(err, ErrInvalidDiscount) {
		t.Fatalf("expected ErrInvalidDiscount, got %v", err)
	}
}

func TestComputeAggregate_IgnoresStoredLineTotals(t *testing.T) {
	lines := []Line{{Kind: enum.ItemTypeProduct, ItemID: uuid.New(), UnitPrice: 1250, Quantity: 4, Total: 1}}
	totals, err := ComputeAggregate(lines, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Subtotal != 5000 {
		t.Fatalf("subtotal = %d, stale line total used", totals.Subtotal)
	}
	if lines[0].Total != 1 {
		t.Fatalf("caller's line was modified: %d", lines[0].Total)
	}

	bad := []Line{{Kind: enum.ItemTypeProduct, ItemID: uuid.New(), UnitPrice: 1, Quantity: 0}}
	if _, err := ComputeAggregate(bad, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestComputeAggregate_SubtotalIndependentOfOrder(t *testing.T) {
	f := func(prices []uint16, quantities []uint8, seed int64) bool {
		n := len(prices)
		if len(quantities) < n {
			n = len(quantities)
		}
		lines := make([]Line, 0, n)
		var want money.Cents
		for i := 0; i < n; i++ {
			qty := int(quantities[i]%50) + 1
			price := money.Cents(prices[i])
			lines = append(lines, Line{Kind: enum.ItemTypeProduct, ItemID: uuid.New(), UnitPrice: price, Quantity: qty})
			want += price * money.Cents(qty)
		}

		shuffled := make([]Line, len(lines))
		copy(shuffled, lines)
		rand.New(rand.NewSource(seed)).Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		a, errA := ComputeAggregate(lines, 0)
		b, errB := ComputeAggregate(shuffled, 0)
		return errA == nil && errB == nil && a.Subtotal == want && b.Subtotal == want && a.Total == b.Total
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestComputeAggregate_NeverSilentlyNegative(t *testing.T) {
	f := func(price uint16, qty uint8, discount uint32) bool {
		lines := []Line{{Kind: enum.ItemTypeService, ItemID: uuid.New(), UnitPrice: money.Cents(price), Quantity: int(qty%10) + 1}}
		totals, err := ComputeAggregate(lines, money.Cents(discount))
		if totals.Total < 0 {
			return false
		}
		if money.Cents(discount) > totals.Subtotal {
			return errors.Is(err, ErrInvalidDiscount) && len(totals.Warnings) == 1
		}
		return err == nil
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
