// Package expense holds the pure expense logic: date-range filtering,
// category aggregation and calendar windows.
package expense

import (
	"time"

	"gitlab.com/yelinaung/expense-tracker/internal/models"
)

// InRange reports whether t falls inside r, inclusive on both ends.
// A nil range matches every instant. An inverted range matches nothing.
func InRange(t time.Time, r *models.DateRange) bool {
	if r == nil {
		return true
	}
	if !r.Valid() {
		return false
	}
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// Filter returns the expenses created inside r, preserving input order.
func Filter(expenses []models.Expense, r *models.DateRange) []models.Expense {
	filtered := make([]models.Expense, 0, len(expenses))
	for i := range expenses {
		if InRange(expenses[i].CreatedAt, r) {
			filtered = append(filtered, expenses[i])
		}
	}
	return filtered
}

// Matches reports whether e falls in the scope of a reset request.
func Matches(e models.Expense, req models.ResetRequest) bool {
	if req.Category != nil && e.Category != *req.Category {
		return false
	}
	return InRange(e.CreatedAt, req.Range)
}
