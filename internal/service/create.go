package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gitlab.com/yelinaung/expense-tracker/internal/logger"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

// CreateExpenseInput is the caller-supplied part of a new expense.
type CreateExpenseInput struct {
	Title    string
	Amount   decimal.Decimal
	Category string
}

// validate normalizes the input and returns the first failure.
func (in CreateExpenseInput) validate() (string, models.Category, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return "", "", invalid("title", "must not be empty")
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return "", "", invalid("title", "must be at most 200 characters")
	}

	if !in.Amount.IsPositive() {
		return "", "", invalid("amount", "must be greater than zero")
	}
	if in.Amount.Exponent() < models.MinAmountExponent {
		return "", "", invalid("amount", "must have at most 2 decimal places")
	}
	if in.Amount.Exponent() > models.MaxAmountExponent {
		return "", "", invalid("amount", "is too large")
	}
	if !in.Amount.Equal(in.Amount.Truncate(models.AmountPlaces)) {
		return "", "", invalid("amount", "must have at most 2 decimal places")
	}
	if in.Amount.GreaterThanOrEqual(models.MaxAmount) {
		return "", "", invalid("amount", "is too large")
	}

	category, err := models.ParseCategory(in.Category)
	if err != nil {
		return "", "", invalid("category", "must be one of FOOD, TRANSPORT, UTILITIES, ENTERTAINMENT, OTHER")
	}

	return title, category, nil
}

// Create records a new expense for the caller. CreatedAt is assigned from the
// service clock; nothing is written when validation fails.
func (s *Service) Create(ctx context.Context, id Identity, in CreateExpenseInput) (*models.Expense, error) {
	ctx, span := s.tracer.Start(ctx, "service.Create")
	defer span.End()

	title, category, err := in.validate()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	user, err := s.resolveUser(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	exp := &models.Expense{
		ID:        uuid.New(),
		UserID:    user.ID,
		Title:     title,
		Amount:    in.Amount.Round(models.AmountPlaces),
		Category:  category,
		CreatedAt: s.clock.Now().UTC().Truncate(time.Microsecond),
	}
	if err := s.expenses.Create(ctx, exp); err != nil {
		span.RecordError(err)
		return nil, mapStoreError(err)
	}

	s.created.Add(ctx, 1, metric.WithAttributes(attribute.String("category", string(category))))
	logger.Log.Info().
		Str("user_hash", logger.HashUserID(user.ID)).
		Str("title", logger.SanitizeText(title)).
		Str("category", string(category)).
		Msg("Expense created")

	return exp, nil
}

// List returns all of the caller's expenses, newest first.
func (s *Service) List(ctx context.Context, id Identity) ([]models.Expense, error) {
	ctx, span := s.tracer.Start(ctx, "service.List")
	defer span.End()

	user, err := s.resolveUser(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	expenses, err := s.expenses.ListByUser(ctx, user.ID)
	if err != nil {
		span.RecordError(err)
		return nil, mapStoreError(err)
	}
	return expenses, nil
}

// Get returns one of the caller's expenses. Expenses owned by someone else
// are reported as not found.
func (s *Service) Get(ctx context.Context, id Identity, expenseID uuid.UUID) (*models.Expense, error) {
	ctx, span := s.tracer.Start(ctx, "service.Get")
	defer span.End()

	user, err := s.resolveUser(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	exp, err := s.expenses.GetByID(ctx, user.ID, expenseID)
	if err != nil {
		span.RecordError(err)
		return nil, mapStoreError(err)
	}
	return exp, nil
}
