package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gitlab.com/yelinaung/expense-tracker/internal/expense"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
	"gitlab.com/yelinaung/expense-tracker/internal/service"
)

const dateLayout = "2006-01-02"

type expenseResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    string    `json:"userId"`
}

func toExpenseResponse(e models.Expense) expenseResponse {
	return expenseResponse{
		ID:        e.ID.String(),
		Title:     e.Title,
		Amount:    e.Amount.StringFixed(models.AmountPlaces),
		Category:  string(e.Category),
		CreatedAt: e.CreatedAt.UTC(),
		UserID:    e.UserID.String(),
	}
}

func toExpenseResponses(expenses []models.Expense) []expenseResponse {
	out := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out
}

type categoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Count    int    `json:"count"`
	Share    string `json:"share"`
}

type dashboardResponse struct {
	Window string                  `json:"window"`
	Start  *time.Time              `json:"start,omitempty"`
	End    *time.Time              `json:"end,omitempty"`
	Recent []expenseResponse       `json:"recent"`
	Totals []categoryTotalResponse `json:"totals"`
	Total  string                  `json:"total"`
	Count  int                     `json:"count"`
}

func toDashboardResponse(d *service.Dashboard) dashboardResponse {
	resp := dashboardResponse{
		Window: string(d.Window),
		Recent: toExpenseResponses(d.Recent),
		Totals: make([]categoryTotalResponse, 0, len(d.Totals)),
		Total:  d.Total.StringFixed(models.AmountPlaces),
		Count:  d.Count,
	}
	if d.Range != nil {
		start, end := d.Range.Start.UTC(), d.Range.End.UTC()
		resp.Start, resp.End = &start, &end
	}
	for _, ct := range d.Totals {
		resp.Totals = append(resp.Totals, categoryTotalResponse{
			Category: string(ct.Category),
			Total:    ct.Total.StringFixed(models.AmountPlaces),
			Count:    ct.Count,
			Share:    expense.Share(ct.Total, d.Total).StringFixed(1),
		})
	}
	return resp
}

type resetResponse struct {
	DeletedCount int `json:"deletedCount"`
}

type resetPreviewResponse struct {
	Scope      string `json:"scope"`
	MatchCount int    `json:"matchCount"`
	FullWipe   bool   `json:"fullWipe"`
}

type createExpenseRequest struct {
	Title    *string          `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Category *string          `json:"category"`
}

// decodeCreateExpense parses a create body. Missing fields are validation
// failures; value checks are left to the service.
func decodeCreateExpense(body io.Reader) (service.CreateExpenseInput, error) {
	var req createExpenseRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return service.CreateExpenseInput{}, &service.ValidationError{Field: "body", Reason: "must be a JSON object with title, amount and category"}
	}

	switch {
	case req.Title == nil:
		return service.CreateExpenseInput{}, &service.ValidationError{Field: "title", Reason: "is required"}
	case req.Amount == nil:
		return service.CreateExpenseInput{}, &service.ValidationError{Field: "amount", Reason: "is required"}
	case req.Category == nil:
		return service.CreateExpenseInput{}, &service.ValidationError{Field: "category", Reason: "is required"}
	}

	return service.CreateExpenseInput{
		Title:    *req.Title,
		Amount:   *req.Amount,
		Category: *req.Category,
	}, nil
}

type resetRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Category  string `json:"category"`
}

// decodeResetRequest parses a reset body. An empty body is a full wipe.
// Dates accept RFC 3339 instants or YYYY-MM-DD calendar days in loc; a
// calendar endDate covers that whole day.
func decodeResetRequest(body io.Reader, loc *time.Location) (models.ResetRequest, error) {
	var req resetRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return models.ResetRequest{}, &service.ValidationError{Field: "body", Reason: "must be a JSON object"}
	}

	var out models.ResetRequest

	start, err := parseDate(req.StartDate, loc, false)
	if err != nil {
		return models.ResetRequest{}, &service.ValidationError{Field: "startDate", Reason: err.Error()}
	}
	end, err := parseDate(req.EndDate, loc, true)
	if err != nil {
		return models.ResetRequest{}, &service.ValidationError{Field: "endDate", Reason: err.Error()}
	}
	if !start.IsZero() || !end.IsZero() {
		out.Range = &models.DateRange{Start: start, End: end}
		if !out.Range.Valid() {
			return models.ResetRequest{}, &service.ValidationError{Field: "startDate", Reason: "must not be after endDate"}
		}
	}

	if strings.TrimSpace(req.Category) != "" {
		c, err := models.ParseCategory(req.Category)
		if err != nil {
			return models.ResetRequest{}, &service.ValidationError{Field: "category", Reason: err.Error()}
		}
		out.Category = &c
	}

	return out, nil
}

// parseDate returns the zero time for empty input. The zero instant itself
// stands for "no bound", so an explicit date equal to it is rejected.
func parseDate(s string, loc *time.Location, endOfDay bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		day, dayErr := time.ParseInLocation(dateLayout, s, loc)
		if dayErr != nil {
			return time.Time{}, fmt.Errorf("must be RFC 3339 or YYYY-MM-DD, got %q", s)
		}
		t = day
		if endOfDay {
			t = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
	}

	if t.IsZero() {
		return time.Time{}, fmt.Errorf("%q is out of range", s)
	}
	return t, nil
}
