package service

import (
	"context"

	"github.com/shopspring/decimal"
	"gitlab.com/yelinaung/expense-tracker/internal/expense"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
	"go.opentelemetry.io/otel/attribute"
)

// Dashboard is the summary view of one window.
type Dashboard struct {
	Window expense.Window
	Range  *models.DateRange
	Recent []models.Expense
	Totals []models.CategoryTotal
	Total  decimal.Decimal
	Count  int
}

// Dashboard summarizes the caller's expenses within window w.
func (s *Service) Dashboard(ctx context.Context, id Identity, w expense.Window) (*Dashboard, error) {
	ctx, span := s.tracer.Start(ctx, "service.Dashboard")
	defer span.End()
	span.SetAttributes(attribute.String("window", string(w)))

	expenses, r, err := s.WindowExpenses(ctx, id, w)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	totals := expense.Aggregate(expenses)
	total, count := expense.Sum(totals)

	recent := expenses
	if len(recent) > s.recentLimit {
		recent = recent[:s.recentLimit]
	}

	return &Dashboard{
		Window: w,
		Range:  r,
		Recent: recent,
		Totals: totals,
		Total:  total,
		Count:  count,
	}, nil
}

// WindowExpenses returns the caller's expenses inside window w, newest first,
// together with the window's range (nil for all time).
func (s *Service) WindowExpenses(ctx context.Context, id Identity, w expense.Window) ([]models.Expense, *models.DateRange, error) {
	if _, err := expense.ParseWindow(string(w)); err != nil {
		return nil, nil, invalid("window", "must be one of all, today, week, month")
	}

	expenses, err := s.List(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	r := w.Range(s.clock, s.loc)
	return expense.Filter(expenses, r), r, nil
}
