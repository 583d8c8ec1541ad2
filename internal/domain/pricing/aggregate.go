// Package pricing computes sale and quotation totals from line items.
package pricing

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
)

var (
	// ErrInvalidDiscount matches every *DiscountError.
	ErrInvalidDiscount = errors.New("invalid discount")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidPrice    = errors.New("unit price must not be negative")
	ErrLineNotFound    = errors.New("line not found")
)

// Warning flags a condition on Totals the caller has to act on.
type Warning string

// WarningTotalClamped means the discount exceeded the subtotal and Total was
// reported as zero instead of a negative amount.
const WarningTotalClamped Warning = "total_clamped_to_zero"

// DiscountError rejects a discount that is negative or larger than the subtotal.
type DiscountError struct {
	Discount money.Cents
	Subtotal money.Cents
}

func (e *DiscountError) Error() string {
	if e.Discount < 0 {
		return fmt.Sprintf("discount %s must not be negative", e.Discount)
	}
	return fmt.Sprintf("discount %s exceeds subtotal %s", e.Discount, e.Subtotal)
}

func (e *DiscountError) Is(target error) bool {
	return target == ErrInvalidDiscount
}

// Item is a catalog entry that can be put on a line.
type Item struct {
	Kind      enum.ItemType
	ID        uuid.UUID
	Name      string
	UnitPrice money.Cents
}

// Line is one product or service with its quantity.
type Line struct {
	Kind      enum.ItemType `json:"type"`
	ItemID    uuid.UUID     `json:"item_id"`
	Name      string        `json:"name"`
	UnitPrice money.Cents   `json:"unit_price"`
	Quantity  int           `json:"quantity"`
	Total     money.Cents   `json:"total"`
}

func (l Line) sameItem(kind enum.ItemType, id uuid.UUID) bool {
	return l.Kind == kind && l.ItemID == id
}

// Totals is the derived state of a set of lines and a discount.
type Totals struct {
	Subtotal money.Cents `json:"subtotal"`
	Discount money.Cents `json:"discount"`
	Total    money.Cents `json:"total"`
	Warnings []Warning   `json:"warnings,omitempty"`
}

// ComputeAggregate sums unitPrice*quantity over lines, ignoring any stored
// line Total. lines is not modified.
//
// A discount above the subtotal yields a *DiscountError together with Totals
// whose Total is clamped to zero and carries WarningTotalClamped; such Totals
// are for display only and must not be persisted.
func ComputeAggregate(lines []Line, discount money.Cents) (Totals, error) {
	lineTotals := make([]money.Cents, len(lines))
	for i, l := range lines {
		if l.Quantity <= 0 {
			return Totals{}, fmt.Errorf("line %d (%s): %w", i, l.Name, ErrInvalidQuantity)
		}
		if l.UnitPrice < 0 {
			return Totals{}, fmt.Errorf("line %d (%s): %w", i, l.Name, ErrInvalidPrice)
		}
		lineTotals[i] = l.UnitPrice.MulQuantity(l.Quantity)
	}
	subtotal := money.Sum(lineTotals...)

	totals := Totals{Subtotal: subtotal, Discount: discount, Total: subtotal - discount}
	if discount < 0 {
		totals.Total = subtotal
		return totals, &DiscountError{Discount: discount, Subtotal: subtotal}
	}
	if discount > subtotal {
		totals.Total = 0
		totals.Warnings = append(totals.Warnings, WarningTotalClamped)
		return totals, &DiscountError{Discount: discount, Subtotal: subtotal}
	}
	return totals, nil
}
