package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"gitlab.com/yelinaung/expense-tracker/internal/database"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
)

// ExpenseRepository handles expense database operations.
type ExpenseRepository struct {
	db database.DB
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db database.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create adds a new expense. A missing owner yields ErrNotFound.
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO expenses (id, user_id, title, amount, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, expense.ID, expense.UserID, expense.Title, expense.Amount, string(expense.Category), expense.CreatedAt)
	if err != nil {
		if hasCode(err, codeForeignKeyViolation) {
			return fmt.Errorf("failed to create expense: user: %w", ErrNotFound)
		}
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense by ID, scoped to its owner.
func (r *ExpenseRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Expense, error) {
	var exp models.Expense
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, title, amount, category, created_at
		FROM expenses WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&exp.ID, &exp.UserID, &exp.Title, &exp.Amount, &exp.Category, &exp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to get expense: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &exp, nil
}

// ListByUser retrieves all expenses of a user, newest first.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, amount, category, created_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// CountMatching counts the user's expenses inside the scope of req.
func (r *ExpenseRepository) CountMatching(ctx context.Context, userID uuid.UUID, req models.ResetRequest) (int, error) {
	where, args := scopeClause(userID, req)

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM expenses WHERE `+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}

// DeleteMatching deletes the user's expenses inside the scope of req and
// returns how many were removed. The owner check and the delete run in one
// transaction; the count is returned only after commit. Rows inserted after
// the DELETE statement takes its snapshot are not touched.
func (r *ExpenseRepository) DeleteMatching(ctx context.Context, userID uuid.UUID, req models.ResetRequest) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin reset: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var owner uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 FOR SHARE`, userID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("failed to reset expenses: user: %w", ErrNotFound)
		}
		return 0, fmt.Errorf("failed to lock user: %w", err)
	}

	where, args := scopeClause(userID, req)
	tag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE `+where, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expenses: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit reset: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// scopeClause builds the WHERE clause restricting expenses to a user and an
// optional date range and category.
func scopeClause(userID uuid.UUID, req models.ResetRequest) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{userID}

	if req.Range != nil {
		if !req.Range.Start.IsZero() {
			args = append(args, req.Range.Start)
			conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
		}
		if !req.Range.End.IsZero() {
			args = append(args, req.Range.End)
			conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
		}
	}

	if req.Category != nil {
		args = append(args, string(*req.Category))
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

// scanExpenses is a helper to scan expense rows.
func scanExpenses(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
},
) ([]models.Expense, error) {
	expenses := []models.Expense{}
	for rows.Next() {
		var exp models.Expense
		if err := rows.Scan(
			&exp.ID, &exp.UserID, &exp.Title, &exp.Amount, &exp.Category, &exp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}
