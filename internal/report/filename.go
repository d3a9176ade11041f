package report

import (
	"fmt"

	"gitlab.com/yelinaung/expense-tracker/internal/models"
)

// Filename builds a descriptive download name such as
// "expenses_week_2026-03-16.csv". A nil range yields "<prefix>_all.<ext>".
func Filename(prefix, window string, r *models.DateRange, ext string) string {
	if r == nil || r.Start.IsZero() {
		return fmt.Sprintf("%s_all.%s", prefix, ext)
	}
	if window == "month" {
		return fmt.Sprintf("%s_month_%s.%s", prefix, r.Start.Format("2006-01"), ext)
	}
	return fmt.Sprintf("%s_%s_%s.%s", prefix, window, r.Start.Format("2006-01-02"), ext)
}
