package enum

import "database/sql/driver"

// QuotationStatus represents the status of a quotation
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
)

// ParseQuotationStatus validates s against the known statuses
func ParseQuotationStatus(s string) (QuotationStatus, error) {
	switch st := QuotationStatus(s); st {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted, QuotationStatusRejected:
		return st, nil
	}
	return "", &InvalidValueError{Type: "quotation status", Value: s}
}

func (s QuotationStatus) String() string {
	return string(s)
}

func (s *QuotationStatus) UnmarshalJSON(data []byte) error {
	str, err := unmarshalString(data)
	if err != nil {
		return err
	}
	parsed, err := ParseQuotationStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s QuotationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *QuotationStatus) Scan(value interface{}) error {
	str, err := scanString("QuotationStatus", value)
	if err != nil {
		return err
	}
	if str == "" {
		*s = QuotationStatusDraft
		return nil
	}
	parsed, err := ParseQuotationStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SaleStatus represents the status of a sale
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// ParseSaleStatus validates s against the known statuses
func ParseSaleStatus(s string) (SaleStatus, error) {
	switch st := SaleStatus(s); st {
	case SaleStatusCompleted, SaleStatusCancelled:
		return st, nil
	}
	return "", &InvalidValueError{Type: "sale status", Value: s}
}

func (s SaleStatus) String() string {
	return string(s)
}

func (s *SaleStatus) UnmarshalJSON(data []byte) error {
	str, err := unmarshalString(data)
	if err != nil {
		return err
	}
	parsed, err := ParseSaleStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s SaleStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *SaleStatus) Scan(value interface{}) error {
	str, err := scanString("SaleStatus", value)
	if err != nil {
		return err
	}
	parsed, err := ParseSaleStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
