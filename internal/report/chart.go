// Package report renders expense data as downloadable files.
package report

import (
	"errors"
	"fmt"

	"github.com/go-analyze/charts"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
)

// ErrNoData is returned when there is nothing to render.
var ErrNoData = errors.New("no expenses to chart")

// GenerateCategoryChart creates a pie chart of category totals.
// Returns PNG image as bytes.
func GenerateCategoryChart(totals []models.CategoryTotal, title string) ([]byte, error) {
	if len(totals) == 0 {
		return nil, ErrNoData
	}

	values := make([]float64, 0, len(totals))
	names := make([]string, 0, len(totals))
	for _, ct := range totals {
		names = append(names, string(ct.Category))
		// Float precision is fine for slice angles.
		values = append(values, ct.Total.InexactFloat64())
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: fmt.Sprintf("Expense Breakdown - %s", title),
		}),
		charts.LegendLabelsOptionFunc(names),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf, nil
}
