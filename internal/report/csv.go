package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"gitlab.com/yelinaung/expense-tracker/internal/models"
)

// CSVHeader is the first row of every export.
var CSVHeader = []string{"ID", "Date", "Title", "Amount", "Category"}

// GenerateExpensesCSV generates a CSV file from a list of expenses. Dates are
// rendered in loc.
func GenerateExpensesCSV(expenses []models.Expense, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.UTC
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range expenses {
		row := []string{
			expenses[i].ID.String(),
			expenses[i].CreatedAt.In(loc).Format("2006-01-02 15:04:05"),
			expenses[i].Title,
			expenses[i].Amount.StringFixed(models.AmountPlaces),
			string(expenses[i].Category),
		}

		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}
