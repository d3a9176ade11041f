// Package service implements the expense operations on behalf of an
// authenticated identity: create, list, dashboard and reset.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gitlab.com/yelinaung/expense-tracker/internal/expense"
	"gitlab.com/yelinaung/expense-tracker/internal/logger"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
	"gitlab.com/yelinaung/expense-tracker/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "gitlab.com/yelinaung/expense-tracker/internal/service"

// DefaultRecentLimit is how many recent expenses the dashboard shows.
const DefaultRecentLimit = 5

// Identity is the caller as asserted by the upstream auth proxy.
type Identity struct {
	Email string
}

// UserStore resolves identities to user records.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ExpenseStore persists expenses.
type ExpenseStore interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Expense, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
	CountMatching(ctx context.Context, userID uuid.UUID, req models.ResetRequest) (int, error)
	DeleteMatching(ctx context.Context, userID uuid.UUID, req models.ResetRequest) (int, error)
}

// Options tunes a Service. Zero values select defaults.
type Options struct {
	Clock       expense.Clock
	Location    *time.Location
	RecentLimit int
}

// Service coordinates the stores. It holds no per-request state.
type Service struct {
	users       UserStore
	expenses    ExpenseStore
	clock       expense.Clock
	loc         *time.Location
	recentLimit int

	tracer  trace.Tracer
	created metric.Int64Counter
	deleted metric.Int64Counter
}

// New creates a Service.
func New(users UserStore, expenses ExpenseStore, opts Options) *Service {
	s := &Service{
		users:       users,
		expenses:    expenses,
		clock:       opts.Clock,
		loc:         opts.Location,
		recentLimit: opts.RecentLimit,
		tracer:      otel.Tracer(instrumentationName),
	}
	if s.clock == nil {
		s.clock = expense.SystemClock
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.recentLimit <= 0 {
		s.recentLimit = DefaultRecentLimit
	}

	meter := otel.Meter(instrumentationName)
	var err error
	if s.created, err = meter.Int64Counter("expenses.created",
		metric.WithDescription("Number of expenses recorded")); err != nil {
		logger.Log.Warn().Err(err).Msg("Failed to create expenses.created counter")
		s.created, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("expenses.created")
	}
	if s.deleted, err = meter.Int64Counter("expenses.deleted",
		metric.WithDescription("Number of expenses removed by reset")); err != nil {
		logger.Log.Warn().Err(err).Msg("Failed to create expenses.deleted counter")
		s.deleted, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("expenses.deleted")
	}

	return s
}

// Location returns the time zone used for calendar windows and dates.
func (s *Service) Location() *time.Location {
	return s.loc
}

// resolveUser maps an identity to its user record.
func (s *Service) resolveUser(ctx context.Context, id Identity) (*models.User, error) {
	email := strings.TrimSpace(id.Email)
	if email == "" {
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Log.Warn().Str("email_hash", logger.HashEmail(email)).Msg("No user for identity")
			return nil, fmt.Errorf("user %s: %w", logger.HashEmail(email), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user, nil
}

// mapStoreError turns store sentinels into service sentinels.
func mapStoreError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
