package service

import (
	"context"
	"fmt"
	"strings"

	"gitlab.com/yelinaung/expense-tracker/internal/logger"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
	"go.opentelemetry.io/otel/attribute"
)

const scopeDateLayout = "2006-01-02"

// ResetPreview describes what a reset would delete.
type ResetPreview struct {
	Scope      string
	MatchCount int
	FullWipe   bool
}

func validateReset(req models.ResetRequest) error {
	if req.Range != nil && !req.Range.Valid() {
		return invalid("startDate", "must not be after endDate")
	}
	if req.Category != nil && !req.Category.Valid() {
		return invalid("category", "must be one of FOOD, TRANSPORT, UTILITIES, ENTERTAINMENT, OTHER")
	}
	return nil
}

// Reset deletes the caller's expenses inside the request scope and returns the
// number removed. A nil range means all time and a nil category means every
// category. Zero is a valid result.
func (s *Service) Reset(ctx context.Context, id Identity, req models.ResetRequest) (int, error) {
	ctx, span := s.tracer.Start(ctx, "service.Reset")
	defer span.End()
	span.SetAttributes(attribute.Bool("full_wipe", req.FullWipe()))

	if err := validateReset(req); err != nil {
		return 0, err
	}

	user, err := s.resolveUser(ctx, id)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	deleted, err := s.expenses.DeleteMatching(ctx, user.ID, req)
	if err != nil {
		span.RecordError(err)
		logger.Log.Error().Err(err).Str("user_hash", logger.HashUserID(user.ID)).Msg("Failed to reset expenses")
		return 0, mapStoreError(err)
	}

	s.deleted.Add(ctx, int64(deleted))
	span.SetAttributes(attribute.Int("deleted_count", deleted))
	logger.Log.Info().
		Str("user_hash", logger.HashUserID(user.ID)).
		Str("scope", s.describeScope(req)).
		Int("deleted_count", deleted).
		Msg("Expenses reset")

	return deleted, nil
}

// PreviewReset reports the scope and current match count of a reset without
// deleting anything.
func (s *Service) PreviewReset(ctx context.Context, id Identity, req models.ResetRequest) (*ResetPreview, error) {
	ctx, span := s.tracer.Start(ctx, "service.PreviewReset")
	defer span.End()

	if err := validateReset(req); err != nil {
		return nil, err
	}

	user, err := s.resolveUser(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	count, err := s.expenses.CountMatching(ctx, user.ID, req)
	if err != nil {
		span.RecordError(err)
		return nil, mapStoreError(err)
	}

	return &ResetPreview{
		Scope:      s.describeScope(req),
		MatchCount: count,
		FullWipe:   req.FullWipe(),
	}, nil
}

// describeScope renders req for a confirmation prompt, with dates in the
// service time zone.
func (s *Service) describeScope(req models.ResetRequest) string {
	if req.FullWipe() {
		return "all expenses in all categories"
	}

	var b strings.Builder
	if req.Category != nil {
		b.WriteString(string(*req.Category))
		b.WriteString(" expenses")
	} else {
		b.WriteString("expenses in all categories")
	}

	if req.Range == nil {
		return b.String()
	}
	start, end := req.Range.Start, req.Range.End
	switch {
	case !start.IsZero() && !end.IsZero():
		fmt.Fprintf(&b, " from %s to %s", start.In(s.loc).Format(scopeDateLayout), end.In(s.loc).Format(scopeDateLayout))
	case !start.IsZero():
		fmt.Fprintf(&b, " from %s onward", start.In(s.loc).Format(scopeDateLayout))
	case !end.IsZero():
		fmt.Fprintf(&b, " up to %s", end.In(s.loc).Format(scopeDateLayout))
	}
	return b.String()
}
