package expense

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
	"pgregory.net/rapid"
)

func TestInRange(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	r := &models.DateRange{Start: start, End: end}

	tests := []struct {
		name string
		t    time.Time
		r    *models.DateRange
		want bool
	}{
		{"nil range matches", start.AddDate(-10, 0, 0), nil, true},
		{"start is inclusive", start, r, true},
		{"end is inclusive", end, r, true},
		{"inside", start.Add(48 * time.Hour), r, true},
		{"one nanosecond before start", start.Add(-time.Nanosecond), r, false},
		{"one nanosecond after end", end.Add(time.Nanosecond), r, false},
		{"start only bound", end.AddDate(5, 0, 0), &models.DateRange{Start: start}, true},
		{"end only bound excludes later", end.Add(time.Second), &models.DateRange{End: end}, false},
		{"end only bound includes earlier", start.AddDate(-1, 0, 0), &models.DateRange{End: end}, true},
		{"inverted range matches nothing", start, &models.DateRange{Start: end, End: start}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, InRange(tt.t, tt.r))
		})
	}

	t.Run("compares absolute instants across zones", func(t *testing.T) {
		sgt := time.FixedZone("SGT", 8*60*60)
		// 2026-03-01 07:00 SGT is 2026-02-28 23:00 UTC.
		require.False(t, InRange(time.Date(2026, 3, 1, 7, 0, 0, 0, sgt), r))
		require.True(t, InRange(time.Date(2026, 3, 1, 8, 0, 0, 0, sgt), r))
	})
}

func TestInRange_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		at := base.Add(time.Duration(rapid.Int64Range(-1e6, 1e6).Draw(t, "at")) * time.Second)
		s := base.Add(time.Duration(rapid.Int64Range(-1e6, 1e6).Draw(t, "start")) * time.Second)
		e := base.Add(time.Duration(rapid.Int64Range(-1e6, 1e6).Draw(t, "end")) * time.Second)

		if !InRange(at, nil) {
			t.Fatalf("nil range must match %v", at)
		}

		want := !at.Before(s) && !at.After(e)
		if got := InRange(at, &models.DateRange{Start: s, End: e}); got != want {
			t.Fatalf("InRange(%v, [%v, %v]) = %v, want %v", at, s, e, got, want)
		}
	})
}

func TestFilter(t *testing.T) {
	day := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		{Title: "a", Amount: decimal.NewFromInt(1), Category: models.CategoryFood, CreatedAt: day.AddDate(0, 0, -3)},
		{Title: "b", Amount: decimal.NewFromInt(2), Category: models.CategoryFood, CreatedAt: day},
		{Title: "c", Amount: decimal.NewFromInt(3), Category: models.CategoryOther, CreatedAt: day.AddDate(0, 0, 3)},
	}

	t.Run("nil range keeps all", func(t *testing.T) {
		require.Len(t, Filter(expenses, nil), 3)
	})

	t.Run("keeps order of matches", func(t *testing.T) {
		got := Filter(expenses, &models.DateRange{Start: day.AddDate(0, 0, -3), End: day})
		require.Len(t, got, 2)
		require.Equal(t, "a", got[0].Title)
		require.Equal(t, "b", got[1].Title)
	})

	t.Run("empty result is non-nil", func(t *testing.T) {
		got := Filter(expenses, &models.DateRange{Start: day.AddDate(1, 0, 0)})
		require.NotNil(t, got)
		require.Empty(t, got)
	})
}

func TestMatches(t *testing.T) {
	at := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	e := models.Expense{Category: models.CategoryFood, CreatedAt: at}
	food := models.CategoryFood
	transport := models.CategoryTransport

	require.True(t, Matches(e, models.ResetRequest{}))
	require.True(t, Matches(e, models.ResetRequest{Category: &food}))
	require.False(t, Matches(e, models.ResetRequest{Category: &transport}))
	require.True(t, Matches(e, models.ResetRequest{Category: &food, Range: &models.DateRange{Start: at, End: at}}))
	require.False(t, Matches(e, models.ResetRequest{Range: &models.DateRange{End: at.Add(-time.Second)}}))
}
