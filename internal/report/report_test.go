package report

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
)

func TestGenerateCategoryChart(t *testing.T) {
	tests := []struct {
		name        string
		totals      []models.CategoryTotal
		expectError bool
	}{
		{
			name: "multiple categories",
			totals: []models.CategoryTotal{
				{Category: models.CategoryTransport, Total: decimal.RequireFromString("20.00"), Count: 1},
				{Category: models.CategoryFood, Total: decimal.RequireFromString("15.50"), Count: 2},
			},
		},
		{
			name: "single category",
			totals: []models.CategoryTotal{
				{Category: models.CategoryOther, Total: decimal.RequireFromString("100.00"), Count: 1},
			},
		},
		{
			name:        "empty totals",
			totals:      []models.CategoryTotal{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := GenerateCategoryChart(tt.totals, "This Week")
			if tt.expectError {
				require.ErrorIs(t, err, ErrNoData)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, buf)
			// PNG magic bytes.
			require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf[:4])
		})
	}
}

func TestGenerateExpensesCSV(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("7f1f3f0a-1c2b-4d5e-8f90-a1b2c3d4e5f6")
	expenses := []models.Expense{
		{
			ID:        id,
			Title:     "Coffee, large",
			Amount:    decimal.RequireFromString("10.5"),
			Category:  models.CategoryFood,
			CreatedAt: time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        uuid.New(),
			Title:     "Taxi",
			Amount:    decimal.NewFromInt(25),
			Category:  models.CategoryTransport,
			CreatedAt: time.Date(2026, 1, 16, 23, 15, 0, 0, time.UTC),
		},
	}

	t.Run("writes header and rows", func(t *testing.T) {
		data, err := GenerateExpensesCSV(expenses, nil)
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		require.Equal(t, CSVHeader, records[0])
		require.Equal(t, []string{id.String(), "2026-01-15 10:30:00", "Coffee, large", "10.50", "FOOD"}, records[1])
		require.Equal(t, "25.00", records[2][3])
	})

	t.Run("renders dates in the given zone", func(t *testing.T) {
		loc := time.FixedZone("UTC+8", 8*60*60)
		data, err := GenerateExpensesCSV(expenses, loc)
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		require.NoError(t, err)
		require.Equal(t, "2026-01-17 07:15:00", records[2][1])
	})

	t.Run("header only for no expenses", func(t *testing.T) {
		data, err := GenerateExpensesCSV(nil, nil)
		require.NoError(t, err)
		require.Equal(t, "ID,Date,Title,Amount,Category\n", string(data))
	})
}

func TestFilename(t *testing.T) {
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	first := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, "expenses_all.csv", Filename("expenses", "all", nil, "csv"))
	require.Equal(t, "expenses_week_2026-03-16.csv", Filename("expenses", "week", &models.DateRange{Start: monday}, "csv"))
	require.Equal(t, "chart_today_2026-03-16.png", Filename("chart", "today", &models.DateRange{Start: monday}, "png"))
	require.Equal(t, "expenses_month_2026-03.csv", Filename("expenses", "month", &models.DateRange{Start: first}, "csv"))
}
