package pricing

import (
	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
)

// Cart is the mutable line list behind a sale or quotation form. Lines keep
// insertion order.
type Cart struct {
	lines    []Line
	discount money.Cents
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddLine adds one unit of item, merging with an existing line for the same
// kind and id.
func (c *Cart) AddLine(item Item) error {
	return c.Add(item, 1)
}

// Add adds quantity units of item.
func (c *Cart) Add(item Item, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if item.UnitPrice < 0 {
		return ErrInvalidPrice
	}

	for i := range c.lines {
		if c.lines[i].sameItem(item.Kind, item.ID) {
			c.lines[i].Quantity += quantity
			c.lines[i].Total = c.lines[i].UnitPrice.MulQuantity(c.lines[i].Quantity)
			return nil
		}
	}

	c.lines = append(c.lines, Line{
		Kind:      item.Kind,
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  quantity,
		Total:     item.UnitPrice.MulQuantity(quantity),
	})
	return nil
}

// SetQuantity overwrites a line's quantity. A quantity of zero or less
// removes the line.
func (c *Cart) SetQuantity(kind enum.ItemType, id uuid.UUID, quantity int) error {
	for i := range c.lines {
		if !c.lines[i].sameItem(kind, id) {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
		c.lines[i].Quantity = quantity
		c.lines[i].Total = c.lines[i].UnitPrice.MulQuantity(quantity)
		return nil
	}
	return ErrLineNotFound
}

func (c *Cart) SetDiscount(discount money.Cents) {
	c.discount = discount
}

func (c *Cart) Discount() money.Cents {
	return c.discount
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Totals aggregates the current lines and discount.
func (c *Cart) Totals() (Totals, error) {
	return ComputeAggregate(c.Lines(), c.discount)
}
