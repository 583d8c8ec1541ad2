package schedule

import (
	"time"

	"github.com/sangkips/gestao-api/internal/domain/enum"
)

var maintenanceIntervalDays = map[enum.MaintenanceType]int{
	enum.MaintenanceTypeRefill30:   30,
	enum.MaintenanceTypeRefill90:   90,
	enum.MaintenanceTypeRefill120:  120,
	enum.MaintenanceTypePreventive: 180,
	enum.MaintenanceTypeCorrective: 90,
}

var maintenanceTypeLabels = map[enum.MaintenanceType]string{
	enum.MaintenanceTypeRefill30:   "Troca de Refil (30 dias)",
	enum.MaintenanceTypeRefill90:   "Troca de Refil (90 dias)",
	enum.MaintenanceTypeRefill120:  "Troca de Refil (120 dias)",
	enum.MaintenanceTypePreventive: "Manutenção Preventiva",
	enum.MaintenanceTypeCorrective: "Manutenção Corretiva",
}

// IntervalDays returns the follow-up interval of a maintenance type.
func IntervalDays(t enum.MaintenanceType) (int, error) {
	days, ok := maintenanceIntervalDays[t]
	if !ok {
		return 0, &enum.InvalidValueError{Type: "maintenance type", Value: string(t)}
	}
	return days, nil
}

// NextMaintenanceDue returns completedAt plus the type's interval. The
// offset is a fixed number of 24h periods, so it does not move with
// daylight-saving changes.
func NextMaintenanceDue(t enum.MaintenanceType, completedAt time.Time) (time.Time, error) {
	days, err := IntervalDays(t)
	if err != nil {
		return time.Time{}, err
	}
	return completedAt.Add(time.Duration(days) * 24 * time.Hour), nil
}

// MaintenanceTypeLabel returns the pt-BR display name of t.
func MaintenanceTypeLabel(t enum.MaintenanceType) string {
	return maintenanceTypeLabels[t]
}
