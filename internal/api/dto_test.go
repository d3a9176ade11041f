package api

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
)

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)

	tests := []struct {
		name     string
		in       string
		endOfDay bool
		want     time.Time
		wantErr  bool
	}{
		{"empty", "", false, time.Time{}, false},
		{"blank", "   ", true, time.Time{}, false},
		{"calendar day start", "2026-01-31", false, time.Date(2026, 1, 31, 0, 0, 0, 0, loc), false},
		{"calendar day end", "2026-01-31", true, time.Date(2026, 1, 31, 23, 59, 59, 999999999, loc), false},
		{"rfc3339 keeps instant", "2026-01-31T10:00:00Z", true, time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC), false},
		{"rfc3339 offset", "2026-01-31T10:00:00+02:00", false, time.Date(2026, 1, 31, 8, 0, 0, 0, time.UTC), false},
		{"garbage", "31/01/2026", false, time.Time{}, true},
		{"zero instant", "0001-01-01T00:00:00Z", true, time.Time{}, true},
		{"zero instant with offset", "0001-01-01T02:00:00+02:00", false, time.Time{}, true},
		{"impossible day", "2026-02-30", false, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.in, loc, tt.endOfDay)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDecodeResetRequest(t *testing.T) {
	t.Run("half-open ranges", func(t *testing.T) {
		req, err := decodeResetRequest(strings.NewReader(`{"endDate":"2026-01-31"}`), time.UTC)
		require.NoError(t, err)
		require.NotNil(t, req.Range)
		require.True(t, req.Range.Start.IsZero())
		require.False(t, req.Range.End.IsZero())
		require.Nil(t, req.Category)
	})

	t.Run("category is normalized", func(t *testing.T) {
		req, err := decodeResetRequest(strings.NewReader(`{"category":" entertainment "}`), time.UTC)
		require.NoError(t, err)
		require.Nil(t, req.Range)
		require.Equal(t, models.CategoryEntertainment, *req.Category)
	})

	t.Run("empty strings mean absent", func(t *testing.T) {
		req, err := decodeResetRequest(strings.NewReader(`{"startDate":"","endDate":"","category":""}`), time.UTC)
		require.NoError(t, err)
		require.True(t, req.FullWipe())
	})
}

func FuzzDecodeResetRequest(f *testing.F) {
	f.Add(`{}`)
	f.Add(`{"startDate":"2026-01-01","endDate":"2026-01-31","category":"FOOD"}`)
	f.Add(`{"startDate":"2026-01-01T00:00:00Z"}`)
	f.Add(`{"endDate":"2026-13-01"}`)
	f.Add(`not json`)

	f.Fuzz(func(t *testing.T, body string) {
		req, err := decodeResetRequest(strings.NewReader(body), time.UTC)
		if err != nil {
			return
		}
		if req.Range != nil {
			require.True(t, req.Range.Valid())
			require.False(t, req.Range.Unbounded())
		}
		if req.Category != nil {
			require.True(t, req.Category.Valid())
		}
	})
}

func FuzzDecodeCreateExpense(f *testing.F) {
	f.Add(`{"title":"Lunch","amount":12.5,"category":"FOOD"}`)
	f.Add(`{"title":"Lunch","amount":"1e3","category":"FOOD"}`)
	f.Add(`{"amount":null}`)

	f.Fuzz(func(t *testing.T, body string) {
		_, err := decodeCreateExpense(strings.NewReader(body))
		if err != nil {
			require.ErrorContains(t, err, "invalid")
		}
	})
}
