package payment

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles payment data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new payment repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new payment
func (r *Repository) Create(ctx context.Context, p *Payment) (*Payment, error) {
	query := `
		INSERT INTO payments (id, from_friend, to_friend, amount, note, paid_on)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query, p.ID, p.From, p.To, p.Amount, p.Note, p.Date).Scan(&p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return p, nil
}

// GetByID retrieves a payment by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Payment, error) {
	query := `
		SELECT id, from_friend, to_friend, amount, note, paid_on, created_at
		FROM payments
		WHERE id = $1
	`

	p := &Payment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.From,
		&p.To,
		&p.Amount,
		&p.Note,
		&p.Date,
		&p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return p, nil
}

// List retrieves all payments, newest first
func (r *Repository) List(ctx context.Context) ([]*Payment, error) {
	query := `
		SELECT id, from_friend, to_friend, amount, note, paid_on, created_at
		FROM payments
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		p := &Payment{}
		if err := rows.Scan(
			&p.ID,
			&p.From,
			&p.To,
			&p.Amount,
			&p.Note,
			&p.Date,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

// Delete removes a payment
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
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
