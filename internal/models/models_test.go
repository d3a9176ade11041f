package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Run("accepts every category in any case", func(t *testing.T) {
		for _, c := range Categories {
			got, err := ParseCategory(string(c))
			require.NoError(t, err)
			require.Equal(t, c, got)
		}

		got, err := ParseCategory("  food ")
		require.NoError(t, err)
		require.Equal(t, CategoryFood, got)
	})

	t.Run("rejects unknown categories", func(t *testing.T) {
		for _, s := range []string{"", "GROCERIES", "food!", "HOUSING"} {
			_, err := ParseCategory(s)
			require.Error(t, err, "input %q", s)
		}
	})
}

func TestDateRange(t *testing.T) {
	jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	jan31 := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		r         DateRange
		valid     bool
		unbounded bool
	}{
		{"empty", DateRange{}, true, true},
		{"start only", DateRange{Start: jan1}, true, false},
		{"end only", DateRange{End: jan31}, true, false},
		{"ordered", DateRange{Start: jan1, End: jan31}, true, false},
		{"single instant", DateRange{Start: jan1, End: jan1}, true, false},
		{"inverted", DateRange{Start: jan31, End: jan1}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.valid, tt.r.Valid())
			require.Equal(t, tt.unbounded, tt.r.Unbounded())
		})
	}
}

func TestResetRequest_FullWipe(t *testing.T) {
	food := CategoryFood
	jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.True(t, ResetRequest{}.FullWipe())
	require.True(t, ResetRequest{Range: &DateRange{}}.FullWipe())
	require.False(t, ResetRequest{Category: &food}.FullWipe())
	require.False(t, ResetRequest{Range: &DateRange{Start: jan1}}.FullWipe())
}
