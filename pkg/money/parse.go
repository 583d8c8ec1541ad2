package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount matches every *ParseError through errors.Is.
var ErrInvalidAmount = errors.New("invalid monetary amount")

// maxAmount bounds parsed input so the centavo count always fits in int64.
var maxAmount = decimal.New(1, 15)

// ParseError reports text that could not be read as an amount.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("money: cannot parse %q: %s", e.Input, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidAmount) true for parse failures.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidAmount
}

// Parse reads a pt-BR amount such as "1.500,00", "R$ 150,5" or "1500".
//
// Dots are thousands separators and must group digits by three; the comma
// is the decimal separator and may be followed by at most two digits. Text
// without a comma is a whole number of reais: "50" is R$ 50,00, never
// R$ 0,50.
func Parse(text string) (Cents, error) {
	fail := func(reason string) (Cents, error) {
		return 0, &ParseError{Input: text, Reason: reason}
	}

	s := strings.TrimSpace(text)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(s[1:])
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, symbol))
	if !neg && strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(s[1:])
	}
	if s == "" {
		return fail("empty amount")
	}

	for _, r := range s {
		if (r < '0' || r > '9') && r != thousandsSep && r != decimalSep {
			return fail(fmt.Sprintf("unexpected character %q", r))
		}
	}

	intPart, fracPart := s, ""
	if i := strings.IndexRune(s, decimalSep); i >= 0 {
		if strings.Count(s, string(decimalSep)) > 1 {
			return fail("more than one decimal separator")
		}
		intPart, fracPart = s[:i], s[i+1:]
		if strings.ContainsRune(fracPart, thousandsSep) {
			return fail("thousands separator after the decimal separator")
		}
		if len(fracPart) > 2 {
			return fail("more than two decimal places")
		}
		if intPart == "" && fracPart == "" {
			return fail("no digits")
		}
	}

	digits, ok := ungroup(intPart)
	if !ok {
		return fail("invalid thousands grouping")
	}
	if digits == "" {
		digits = "0"
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	d, err := decimal.NewFromString(digits + "." + fracPart)
	if err != nil {
		return fail("not a number")
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return fail("amount too large")
	}

	c := FromDecimal(d)
	if neg {
		c = -c
	}
	return c, nil
}

// MustParse is Parse for constants known to be valid; it panics otherwise.
func MustParse(text string) Cents {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

// ungroup strips thousands separators, checking they sit every three digits.
func ungroup(s string) (string, bool) {
	if !strings.ContainsRune(s, thousandsSep) {
		return s, true
	}

	groups := strings.Split(s, string(thousandsSep))
	if len(groups[0]) == 0 || len(groups[0]) > 3 {
		return "", false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return "", false
		}
	}
	return strings.Join(groups, ""), true
}
