package services

import (
	"time"

	"dispatch-desk/internal/domain"
)

// Style hints for the presentation layer. Hints only: nothing here has a
// behavioral effect on the store.

// OverdueDebt reports whether a debt row should be highlighted: due date
// in the past and a positive balance.
func OverdueDebt(t *domain.Table, row int, now time.Time) bool {
	due, ok := t.Get(row, domain.ColDueDate)
	if !ok || due == "" {
		return false
	}
	d, err := time.Parse(domain.DateLayout, due)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today) && t.Float(row, domain.ColDebtAmount) > 0
}

// StatusColor maps a status cell to a highlight color. The column holds
// either vocabulary (truck statuses, or order statuses written through
// by status propagation); unmapped values get no highlight.
func StatusColor(status string) string {
	switch status {
	case string(domain.TruckFree):
		return "yellow"
	case string(domain.TruckInTransit), string(domain.TruckBusy):
		return "orange"
	case string(domain.TruckUnderRepair):
		return "green"
	}
	return ""
}
