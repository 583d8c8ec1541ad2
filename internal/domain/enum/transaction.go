package enum

import "database/sql/driver"

// TransactionType is the direction of a financial transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "entrada"
	TransactionTypeExpense TransactionType = "saida"
)

// Built-in ledger categories written by sales and cancellations
const (
	CategorySales            = "Vendas"
	CategoryServices         = "Serviços"
	CategoryCommissionsPaid  = "Comissões Pagas"
	CategoryOtherExpenses    = "Outras Despesas"
	CategoryOtherIncome      = "Outras Receitas"
	CategorySalesReversal    = "Estorno de Vendas"
	ReferenceTypeSale        = "sale"
	ReferenceTypeCommission  = "commission"
	ReferenceTypeSaleReverse = "sale_cancellation"
)

var transactionCategories = map[TransactionType][]string{
	TransactionTypeIncome: {
		CategorySales,
		CategoryServices,
		"Comissões Recebidas",
		"Juros Recebidos",
		CategoryOtherIncome,
	},
	TransactionTypeExpense: {
		"Fornecedores",
		"Salários",
		CategoryCommissionsPaid,
		"Aluguel",
		"Energia Elétrica",
		"Telefone/Internet",
		"Combustível",
		"Manutenção",
		"Marketing",
		"Impostos",
		CategorySalesReversal,
		CategoryOtherExpenses,
	},
}

// ParseTransactionType validates s against the known types
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return t, nil
	}
	return "", &InvalidValueError{Type: "transaction type", Value: s}
}

// Categories returns the categories a transaction of this type may use
func (t TransactionType) Categories() []string {
	out := make([]string, len(transactionCategories[t]))
	copy(out, transactionCategories[t])
	return out
}

// HasCategory reports whether category belongs to this type
func (t TransactionType) HasCategory(category string) bool {
	for _, c := range transactionCategories[t] {
		if c == category {
			return true
		}
	}
	return false
}

func (t TransactionType) String() string {
	return string(t)
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	str, err := unmarshalString(data)
	if err != nil {
		return err
	}
	parsed, err := ParseTransactionType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TransactionType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *TransactionType) Scan(value interface{}) error {
	str, err := scanString("TransactionType", value)
	if err != nil {
		return err
	}
	parsed, err := ParseTransactionType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// PaymentMethod is how a sale or transaction was settled
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Dinheiro"
	PaymentMethodCreditCard   PaymentMethod = "Cartão de Crédito"
	PaymentMethodDebitCard    PaymentMethod = "Cartão de Débito"
	PaymentMethodPix          PaymentMethod = "PIX"
	PaymentMethodBankTransfer PaymentMethod = "Transferência Bancária"
	PaymentMethodCheck        PaymentMethod = "Cheque"
	PaymentMethodBoleto       PaymentMethod = "Boleto"
)

// PaymentMethods lists the accepted payment methods
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodCreditCard,
		PaymentMethodDebitCard,
		PaymentMethodPix,
		PaymentMethodBankTransfer,
		PaymentMethodCheck,
		PaymentMethodBoleto,
	}
}

// ParsePaymentMethod validates s against the known methods
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for _, m := range PaymentMethods() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", &InvalidValueError{Type: "payment method", Value: s}
}

func (m PaymentMethod) String() string {
	return string(m)
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	str, err := unmarshalString(data)
	if err != nil {
		return err
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	str, err := scanString("PaymentMethod", value)
	if err != nil {
		return err
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
