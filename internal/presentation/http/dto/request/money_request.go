package request

import "github.com/sangkips/gestao-api/pkg/money"

// FormatMoneyRequest renders an amount for display
type FormatMoneyRequest struct {
	Amount money.Cents `json:"amount"`
}

// MoneyTextRequest carries raw user input for parsing or masking
type MoneyTextRequest struct {
	Text string `json:"text"`
}
