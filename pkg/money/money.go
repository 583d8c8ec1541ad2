// Package money holds monetary amounts as integer centavos and converts them
// to and from the Brazilian display convention (1.234,56).
package money

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Cents is an amount in minor currency units (centavos).
type Cents int64

// Zero is the zero amount.
const Zero Cents = 0

// FromUnits builds an amount from whole reais and centavos.
func FromUnits(reais int64, centavos int64) Cents {
	return Cents(reais*100 + centavos)
}

// FromDecimal rounds d to two places and converts it to centavos.
func FromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Round(2).Shift(2).IntPart())
}

// Decimal returns the amount in reais as an exact decimal.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// MulQuantity returns c multiplied by a line quantity.
func (c Cents) MulQuantity(quantity int) Cents {
	return c * Cents(quantity)
}

// Percent returns ratePercent% of c rounded half away from zero.
func (c Cents) Percent(ratePercent decimal.Decimal) Cents {
	return FromDecimal(c.Decimal().Mul(ratePercent).Div(decimal.NewFromInt(100)))
}

// DivideBy splits c into count equal parts rounded half away from zero.
// It returns zero for count <= 0.
func (c Cents) DivideBy(count int64) Cents {
	if count <= 0 {
		return 0
	}
	return FromDecimal(c.Decimal().Div(decimal.NewFromInt(count)))
}

// IsNegative reports whether c is below zero.
func (c Cents) IsNegative() bool {
	return c < 0
}

// String renders the amount with the pt-BR convention, without symbol.
func (c Cents) String() string {
	return Format(c)
}

// MarshalJSON writes the amount as a JSON number in reais with two places.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.Decimal().StringFixed(2)), nil
}

// UnmarshalJSON accepts a JSON number in reais ("1500.5") or a display
// string ("1.500,50" or "R$ 1.500,50").
func (c *Cents) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := Parse(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return &ParseError{Input: string(data), Reason: "not a number"}
	}
	if !d.Equal(d.Round(2)) {
		return &ParseError{Input: string(data), Reason: "more than two decimal places"}
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return &ParseError{Input: string(data), Reason: "amount too large"}
	}
	*c = FromDecimal(d)
	return nil
}

// Value stores the amount as a bigint column.
func (c Cents) Value() (driver.Value, error) {
	return int64(c), nil
}

// Scan reads a bigint (or numeric text) column holding centavos.
func (c *Cents) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*c = 0
	case int64:
		*c = Cents(v)
	case int32:
		*c = Cents(v)
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("money: scan %q: %w", v, err)
		}
		*c = Cents(n)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("money: scan %q: %w", v, err)
		}
		*c = Cents(n)
	default:
		return fmt.Errorf("money: cannot scan %T into Cents", value)
	}
	return nil
}

// Sum adds all amounts.
func Sum(amounts ...Cents) Cents {
	var total Cents
	for _, a := range amounts {
		total += a
	}
	return total
}
