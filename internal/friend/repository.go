package friend

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles friend data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new friend repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new friend into the database
func (r *Repository) Create(ctx context.Context, id string, req *CreateFriendRequest) (*Friend, error) {
	query := `
		INSERT INTO friends (id, name, color, arrival, departure, days_present)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, color, arrival, departure, days_present, created_at
	`

	friend := &Friend{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.Color, req.Arrival, req.Departure, req.DaysPresent).Scan(
		&friend.ID,
		&friend.Name,
		&friend.Color,
		&friend.Arrival,
		&friend.Departure,
		&friend.DaysPresent,
		&friend.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create friend: %w", err)
	}

	return friend, nil
}

// GetByID retrieves a friend by their ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Friend, error) {
	query := `
		SELECT id, name, color, arrival, departure, days_present, created_at
		FROM friends
		WHERE id = $1
	`

	friend := &Friend{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&friend.ID,
		&friend.Name,
		&friend.Color,
		&friend.Arrival,
		&friend.Departure,
		&friend.DaysPresent,
		&friend.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get friend: %w", err)
	}

	return friend, nil
}

// List retrieves the whole roster ordered by creation time
func (r *Repository) List(ctx context.Context) ([]*Friend, error) {
	query := `
		SELECT id, name, color, arrival, departure, days_present, created_at
		FROM friends
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	var friends []*Friend
	for rows.Next() {
		friend := &Friend{}
		if err := rows.Scan(
			&friend.ID,
			&friend.Name,
			&friend.Color,
			&friend.Arrival,
			&friend.Departure,
			&friend.DaysPresent,
			&friend.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, friend)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}

	return friends, nil
}

// Update modifies an existing friend
func (r *Repository) Update(ctx context.Context, friend *Friend) (*Friend, error) {
	query := `
		UPDATE friends
		SET name = $2, color = $3, arrival = $4, departure = $5, days_present = $6
		WHERE id = $1
		RETURNING id, name, color, arrival, departure, days_present, created_at
	`

	updated := &Friend{}
	err := r.db.QueryRowContext(ctx, query,
		friend.ID, friend.Name, friend.Color, friend.Arrival, friend.Departure, friend.DaysPresent,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Color,
		&updated.Arrival,
		&updated.Departure,
		&updated.DaysPresent,
		&updated.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update friend: %w", err)
	}

	return updated, nil
}

// Delete removes a friend from the roster
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM friends WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete friend: %w", err)
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

// HasActivity reports whether a friend appears on any expense, share or payment
func (r *Repository) HasActivity(ctx context.Context, id string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM expenses WHERE paid_by = $1)
		    OR EXISTS (SELECT 1 FROM expense_shares WHERE friend_id = $1)
		    OR EXISTS (SELECT 1 FROM payments WHERE from_friend = $1 OR to_friend = $1)
	`

	var active bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&active); err != nil {
		return false, fmt.Errorf("failed to check friend activity: %w", err)
	}

	return active, nil
}
