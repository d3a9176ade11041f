package expense

import (
	"slices"

	"github.com/shopspring/decimal"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
)

// Aggregate groups expenses by category. Only categories with at least one
// expense appear. The result is sorted by total descending; equal totals keep
// the order in which their category was first encountered.
func Aggregate(expenses []models.Expense) []models.CategoryTotal {
	totals := make([]models.CategoryTotal, 0, len(models.Categories))
	index := make(map[models.Category]int, len(models.Categories))

	for i := range expenses {
		e := &expenses[i]
		pos, ok := index[e.Category]
		if !ok {
			pos = len(totals)
			index[e.Category] = pos
			totals = append(totals, models.CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		totals[pos].Total = totals[pos].Total.Add(e.Amount)
		totals[pos].Count++
	}

	slices.SortStableFunc(totals, func(a, b models.CategoryTotal) int {
		return b.Total.Cmp(a.Total)
	})

	return totals
}

// Sum returns the total amount and count across category totals.
func Sum(totals []models.CategoryTotal) (decimal.Decimal, int) {
	sum := decimal.Zero
	count := 0
	for _, t := range totals {
		sum = sum.Add(t.Total)
		count += t.Count
	}
	return sum, count
}

// Share returns part as a percentage of whole, rounded to one decimal place.
// A zero whole yields zero.
func Share(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(decimal.NewFromInt(100)).DivRound(whole, 1)
}
