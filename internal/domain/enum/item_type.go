package enum

import "database/sql/driver"

// ItemType distinguishes products from services on a sale or quotation line
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

// ParseItemType validates s against the known item types
func ParseItemType(s string) (ItemType, error) {
	switch t := ItemType(s); t {
	case ItemTypeProduct, ItemTypeService:
		return t, nil
	}
	return "", &InvalidValueError{Type: "item type", Value: s}
}

func (t ItemType) String() string {
	return string(t)
}

func (t *ItemType) UnmarshalJSON(data []byte) error {
	str, err := unmarshalString(data)
	if err != nil {
		return err
	}
	parsed, err := ParseItemType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t ItemType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *ItemType) Scan(value interface{}) error {
	str, err := scanString("ItemType", value)
	if err != nil {
		return err
	}
	parsed, err := ParseItemType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// DocumentType is the kind of tax id a client carries
type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "CPF"
	DocumentTypeCNPJ DocumentType = "CNPJ"
)

// ParseDocumentType validates s; the empty string means no document
func ParseDocumentType(s string) (DocumentType, error) {
	switch t := DocumentType(s); t {
	case "", DocumentTypeCPF, DocumentTypeCNPJ:
		return t, nil
	}
	return "", &InvalidValueError{Type: "document type", Value: s}
}

func (t *DocumentType) UnmarshalJSON(data []byte) error {
	str, err := unmarshalString(data)
	if err != nil {
		return err
	}
	parsed, err := ParseDocumentType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t DocumentType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *DocumentType) Scan(value interface{}) error {
	str, err := scanString("DocumentType", value)
	if err != nil {
		return err
	}
	parsed, err := ParseDocumentType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
