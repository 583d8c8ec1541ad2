package money

import (
	"encoding/json"
	"errors"
	"testing"
	"testing/quick"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   Cents
		want string
	}{
		{0, "0,00"},
		{5, "0,05"},
		{50, "0,50"},
		{15000, "150,00"},
		{150000, "1.500,00"},
		{329990, "3.299,90"},
		{-329990, "-3.299,90"},
		{100000000, "1.000.000,00"},
		{99999999999999, "999.999.999.999,99"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	if got := FormatBRL(319990); got != "R$ 3.199,90" {
		t.Fatalf("FormatBRL = %q", got)
	}
	if got := FormatBRL(-1000); got != "-R$ 10,00" {
		t.Fatalf("FormatBRL negative = %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Cents
	}{
		{"150,00", 15000},
		{"1.500,00", 150000},
		{"R$ 3.199,90", 319990},
		{"R$ 299,90", 29990},
		{"50", 5000},
		{"1500", 150000},
		{"1.500", 150000},
		{"0,5", 50},
		{",75", 75},
		{"10,", 1000},
		{"-12,34", -1234},
		{"  7,00  ", 700},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"abc",
		"12a,00",
		"1,2,3",
		"1,234",
		"150.00",
		"1.50,00",
		"12.3456",
		"1,00.0",
		",",
		"R$",
		"9.999.999.999.999.999,00",
	}

	for _, in := range inputs {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) expected error", in)
			continue
		}
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Parse(%q) error %v does not match ErrInvalidAmount", in, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Input != in {
			t.Errorf("Parse(%q) expected *ParseError carrying the input, got %v", in, err)
		}
	}
}

func TestParse_BareDigitsAreWholeReais(t *testing.T) {
	// "50" typed without a comma means fifty reais, not fifty centavos
	got, err := Parse("50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != FromUnits(50, 0) {
		t.Fatalf("Parse(\"50\") = %s, want 50,00", got)
	}
}

func TestRoundTrip_Property(t *testing.T) {
	const bound = int64(100_000_000_000_000) // 10^12 reais in centavos

	f := func(n int64) bool {
		c := Cents(n % bound)
		parsed, err := Parse(Format(c))
		return err == nil && parsed == c
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 5000}); err != nil {
		t.Fatal(err)
	}
}

func TestMaskKeystrokes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"1", "0,01"},
		{"15", "0,15"},
		{"150", "1,50"},
		{"15000", "150,00"},
		{"150000", "1.500,00"},
		{"0", "0,00"},
		{"00150", "1,50"},
		{"R$ 1.500,00", "1.500,00"},
		{"123456789012345678901234", "1.234.567.890.123.456.789.012,34"},
	}

	for _, tt := range tests {
		if got := MaskKeystrokes(tt.in); got != tt.want {
			t.Errorf("MaskKeystrokes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMaskKeystrokes_TypingSequence(t *testing.T) {
	display := ""
	for _, key := range []string{"1", "5", "0", "0", "0"} {
		display = MaskKeystrokes(DigitsOf(display) + key)
	}
	if display != "150,00" {
		t.Fatalf("display after typing = %q, want 150,00", display)
	}

	amount, err := Parse(display)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if amount != 15000 {
		t.Fatalf("Parse(%q) = %d, want 15000", display, amount)
	}
}

func TestMaskKeystrokes_Idempotent_Property(t *testing.T) {
	f := func(s string) bool {
		once := MaskKeystrokes(s)
		return MaskKeystrokes(DigitsOf(once)) == once
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 5000}); err != nil {
		t.Fatal(err)
	}

	digits := func(n uint64) bool {
		s := decimal.NewFromInt(int64(n >> 1)).String()
		once := MaskKeystrokes(s)
		return MaskKeystrokes(DigitsOf(once)) == once
	}
	if err := quick.Check(digits, nil); err != nil {
		t.Fatal(err)
	}
}

func TestMaskThenParse_MatchesDigitsAsCents(t *testing.T) {
	f := func(n uint32) bool {
		s := decimal.NewFromInt(int64(n)).String()
		got, err := Parse(MaskKeystrokes(s))
		return err == nil && got == Cents(n)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestCentsJSON(t *testing.T) {
	var payload struct {
		Number  Cents  `json:"number"`
		Display Cents  `json:"display"`
		Missing *Cents `json:"missing"`
	}
	body := `{"number": 3199.9, "display": "R$ 1.500,00", "missing": null}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Number != 319990 || payload.Display != 150000 || payload.Missing != nil {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	out, err := json.Marshal(payload.Number)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "3199.90" {
		t.Fatalf("marshal = %s, want 3199.90", out)
	}

	var c Cents
	if err := json.Unmarshal([]byte(`10.005`), &c); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for three decimals, got %v", err)
	}
	if err := json.Unmarshal([]byte(`"abc"`), &c); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for garbage, got %v", err)
	}
}

func TestPercent(t *testing.T) {
	rate := decimal.RequireFromString("5")
	if got := Cents(319990).Percent(rate); got != 16000 {
		t.Fatalf("5%% of 3199,90 = %d, want 16000 (159,995 rounded)", got)
	}
	if got := Cents(0).Percent(rate); got != 0 {
		t.Fatalf("percent of zero = %d", got)
	}
}


func TestDivideBy(t *testing.T) {
	tests := []struct {
		amount Cents
		count  int64
		want   Cents
	}{
		{1000, 3, 333},
		{2000, 3, 667},
		{-2000, 3, -667},
		{5000, 0, 0},
		{5000, -1, 0},
	}
	for _, tt := range tests {
		if got := tt.amount.DivideBy(tt.count); got != tt.want {
			t.Errorf("%d / %d = %d, want %d", tt.amount, tt.count, got, tt.want)
		}
	}
}
