package expense

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an expense and its share rows in one transaction
func (r *Repository) Create(ctx context.Context, exp *Expense) (*Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (id, description, amount, category, paid_by, split_type, spent_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, query,
		exp.ID, exp.Description, exp.Amount, exp.Category, exp.PaidBy, exp.SplitType, exp.Date,
	).Scan(&exp.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if err := insertShares(ctx, tx, exp); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense: %w", err)
	}

	return exp, nil
}

// GetByID retrieves an expense with its share list
func (r *Repository) GetByID(ctx context.Context, id string) (*Expense, error) {
	query := `
		SELECT id, description, amount, category, paid_by, split_type, spent_on, created_at
		FROM expenses
		WHERE id = $1
	`

	exp := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&exp.ID,
		&exp.Description,
		&exp.Amount,
		&exp.Category,
		&exp.PaidBy,
		&exp.SplitType,
		&exp.Date,
		&exp.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if err := r.loadShares(ctx, exp); err != nil {
		return nil, err
	}

	return exp, nil
}

// List retrieves all expenses, newest first, with their share lists
func (r *Repository) List(ctx context.Context) ([]*Expense, error) {
	query := `
		SELECT id, description, amount, category, paid_by, split_type, spent_on, created_at
		FROM expenses
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		exp := &Expense{}
		if err := rows.Scan(
			&exp.ID,
			&exp.Description,
			&exp.Amount,
			&exp.Category,
			&exp.PaidBy,
			&exp.SplitType,
			&exp.Date,
			&exp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, exp := range expenses {
		if err := r.loadShares(ctx, exp); err != nil {
			return nil, err
		}
	}

	return expenses, nil
}

// Update rewrites an expense and replaces its share rows in one transaction
func (r *Repository) Update(ctx context.Context, exp *Expense) (*Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE expenses
		SET description = $2, amount = $3, category = $4, paid_by = $5, split_type = $6, spent_on = $7
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, query,
		exp.ID, exp.Description, exp.Amount, exp.Category, exp.PaidBy, exp.SplitType, exp.Date,
	); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM expense_shares WHERE expense_id = $1`, exp.ID); err != nil {
		return nil, fmt.Errorf("failed to clear expense shares: %w", err)
	}
	if err := insertShares(ctx, tx, exp); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense update: %w", err)
	}

	return exp, nil
}

// Delete removes an expense; share rows cascade
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// insertShares writes one row per participating friend, preserving order
func insertShares(ctx context.Context, tx *sql.Tx, exp *Expense) error {
	query := `
		INSERT INTO expense_shares (expense_id, friend_id, custom_value, position)
		VALUES ($1, $2, $3, $4)
	`
	for i, friendID := range exp.Participants {
		var customValue *float64
		if value, ok := exp.CustomSplits[friendID]; ok {
			customValue = &value
		}
		if _, err := tx.ExecContext(ctx, query, exp.ID, friendID, customValue, i); err != nil {
			return fmt.Errorf("failed to create expense share: %w", err)
		}
	}
	return nil
}

// loadShares populates Participants and CustomSplits from the share rows
func (r *Repository) loadShares(ctx context.Context, exp *Expense) error {
	query := `
		SELECT friend_id, custom_value
		FROM expense_shares
		WHERE expense_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, exp.ID)
	if err != nil {
		return fmt.Errorf("failed to load expense shares: %w", err)
	}
	defer rows.Close()

	exp.Participants = nil
	exp.CustomSplits = nil
	for rows.Next() {
		var friendID string
		var customValue *float64
		if err := rows.Scan(&friendID, &customValue); err != nil {
			return fmt.Errorf("failed to scan expense share: %w", err)
		}
		exp.Participants = append(exp.Participants, friendID)
		if customValue != nil {
			if exp.CustomSplits == nil {
				exp.CustomSplits = make(map[string]float64)
			}
			exp.CustomSplits[friendID] = *customValue
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate expense shares: %w", err)
	}

	return nil
}
