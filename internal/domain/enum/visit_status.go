package enum

import "database/sql/driver"

// VisitStatus is the outcome of a sales visit
type VisitStatus string

const (
	VisitStatusScheduled           VisitStatus = "scheduled"
	VisitStatusInNegotiation       VisitStatus = "in_negotiation"
	VisitStatusCompletedPurchase   VisitStatus = "completed_purchase"
	VisitStatusCompletedNoPurchase VisitStatus = "completed_no_purchase"
	VisitStatusRescheduled         VisitStatus = "rescheduled"
	VisitStatusAbsent              VisitStatus = "absent"
	VisitStatusThinking            VisitStatus = "thinking"
)

var visitStatusLabels = map[VisitStatus]string{
	VisitStatusScheduled:           "Agendado",
	VisitStatusInNegotiation:       "Em Negociação",
	VisitStatusCompletedPurchase:   "Finalizado - Comprou",
	VisitStatusCompletedNoPurchase: "Finalizado - Não Comprou",
	VisitStatusRescheduled:         "Reagendado",
	VisitStatusAbsent:              "Cliente Ausente",
	VisitStatusThinking:            "Cliente vai Pensar",
}

// VisitStatuses lists every visit status in display order
func VisitStatuses() []VisitStatus {
	return []VisitStatus{
		VisitStatusScheduled,
		VisitStatusInNegotiation,
		VisitStatusCompletedPurchase,
		VisitStatusCompletedNoPurchase,
		VisitStatusRescheduled,
		VisitStatusAbsent,
		VisitStatusThinking,
	}
}

// ParseVisitStatus validates s against the known statuses
func ParseVisitStatus(s string) (VisitStatus, error) {
	st := VisitStatus(s)
	if !st.IsValid() {
		return "", &InvalidValueError{Type: "visit status", Value: s}
	}
	return st, nil
}

func (s VisitStatus) IsValid() bool {
	_, ok := visitStatusLabels[s]
	return ok
}

func (s VisitStatus) String() string {
	return string(s)
}

// Label returns the pt-BR display name
func (s VisitStatus) Label() string {
	return visitStatusLabels[s]
}

func (s *VisitStatus) UnmarshalJSON(data []byte) error {
	str, err := unmarshalString(data)
	if err != nil {
		return err
	}
	parsed, err := ParseVisitStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s VisitStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *VisitStatus) Scan(value interface{}) error {
	str, err := scanString("VisitStatus", value)
	if err != nil {
		return err
	}
	if str == "" {
		*s = VisitStatusScheduled
		return nil
	}
	parsed, err := ParseVisitStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
