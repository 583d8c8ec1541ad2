// Package enum holds the string-backed status and category types stored in
// the database. Every type rejects unknown values in UnmarshalJSON and Scan
// so a malformed request or row never reaches the domain.
package enum

import (
	"encoding/json"
	"fmt"
)

// InvalidValueError reports a value outside an enum's legal set.
type InvalidValueError struct {
	Type  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Type, e.Value)
}

func unmarshalString(data []byte) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return s, nil
}

func scanString(typeName string, value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("cannot scan %T into %s", value, typeName)
	}
}
