package enum

import "database/sql/driver"

// MaintenanceStatus represents the lifecycle of a maintenance appointment
type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "agendado"
	MaintenanceStatusInProgress MaintenanceStatus = "em_andamento"
	MaintenanceStatusCompleted  MaintenanceStatus = "concluido"
	MaintenanceStatusCanceled   MaintenanceStatus = "cancelado"
)

// ParseMaintenanceStatus validates s against the known statuses
func ParseMaintenanceStatus(s string) (MaintenanceStatus, error) {
	switch st := MaintenanceStatus(s); st {
	case MaintenanceStatusScheduled, MaintenanceStatusInProgress, MaintenanceStatusCompleted, MaintenanceStatusCanceled:
		return st, nil
	}
	return "", &InvalidValueError{Type: "maintenance status", Value: s}
}

func (s MaintenanceStatus) IsValid() bool {
	_, err := ParseMaintenanceStatus(string(s))
	return err == nil
}

func (s MaintenanceStatus) String() string {
	return string(s)
}

func (s *MaintenanceStatus) UnmarshalJSON(data []byte) error {
	str, err := unmarshalString(data)
	if err != nil {
		return err
	}
	parsed, err := ParseMaintenanceStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s MaintenanceStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *MaintenanceStatus) Scan(value interface{}) error {
	str, err := scanString("MaintenanceStatus", value)
	if err != nil {
		return err
	}
	if str == "" {
		*s = MaintenanceStatusScheduled
		return nil
	}
	parsed, err := ParseMaintenanceStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MaintenanceType selects the follow-up interval of a maintenance
type MaintenanceType string

const (
	MaintenanceTypeRefill30   MaintenanceType = "refil_30"
	MaintenanceTypeRefill90   MaintenanceType = "refil_90"
	MaintenanceTypeRefill120  MaintenanceType = "refil_120"
	MaintenanceTypePreventive MaintenanceType = "preventiva"
	MaintenanceTypeCorrective MaintenanceType = "corretiva"
)

// ParseMaintenanceType validates s against the known types
func ParseMaintenanceType(s string) (MaintenanceType, error) {
	switch t := MaintenanceType(s); t {
	case MaintenanceTypeRefill30, MaintenanceTypeRefill90, MaintenanceTypeRefill120,
		MaintenanceTypePreventive, MaintenanceTypeCorrective:
		return t, nil
	}
	return "", &InvalidValueError{Type: "maintenance type", Value: s}
}

func (t MaintenanceType) IsValid() bool {
	_, err := ParseMaintenanceType(string(t))
	return err == nil
}

func (t MaintenanceType) String() string {
	return string(t)
}

func (t *MaintenanceType) UnmarshalJSON(data []byte) error {
	str, err := unmarshalString(data)
	if err != nil {
		return err
	}
	parsed, err := ParseMaintenanceType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t MaintenanceType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *MaintenanceType) Scan(value interface{}) error {
	str, err := scanString("MaintenanceType", value)
	if err != nil {
		return err
	}
	parsed, err := ParseMaintenanceType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
