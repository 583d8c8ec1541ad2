package money

import (
	"strconv"
	"strings"
)

const (
	thousandsSep = '.'
	decimalSep   = ','
	symbol       = "R$"
)

// Format renders c as "1.234,56": two fraction digits, dot grouping and
// comma decimal separator, no currency symbol.
func Format(c Cents) string {
	v := int64(c)
	neg := v < 0

	// two's complement keeps math.MinInt64 representable
	u := uint64(v)
	if neg {
		u = ^u + 1
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(strconv.FormatUint(u/100, 10)))
	b.WriteByte(decimalSep)
	frac := u % 100
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatUint(frac, 10))
	return b.String()
}

// FormatBRL renders c with the currency symbol, e.g. "R$ 1.234,56".
func FormatBRL(c Cents) string {
	if c < 0 {
		return "-" + symbol + " " + Format(-c)
	}
	return symbol + " " + Format(c)
}

// MaskKeystrokes re-derives the input mask from whatever the user typed so
// far. Every digit counts, the last two are centavos; anything else is
// dropped. An input without digits masks to "".
func MaskKeystrokes(text string) string {
	digits := strings.TrimLeft(DigitsOf(text), "0")
	if digits == "" {
		if strings.ContainsAny(text, "0123456789") {
			return "0" + string(decimalSep) + "00"
		}
		return ""
	}

	for len(digits) < 3 {
		digits = "0" + digits
	}
	intPart := digits[:len(digits)-2]
	fracPart := digits[len(digits)-2:]
	return groupThousands(intPart) + string(decimalSep) + fracPart
}

// DigitsOf keeps only the ASCII digits of text.
func DigitsOf(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(thousandsSep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
