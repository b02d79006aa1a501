package friend

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrFriendNotFound     = errors.New("friend not found")
	ErrNameRequired       = errors.New("friend name is required")
	ErrNegativeDays       = errors.New("days present cannot be negative")
	ErrFriendHasActivity  = errors.New("cannot remove a friend with expenses or payments")
	ErrDepartureBeforeArr = errors.New("departure cannot be before arrival")
)

// Service handles roster business logic
type Service struct {
	repo *Repository
}

// NewService creates a new friend service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a friend to the roster
func (s *Service) Create(ctx context.Context, req *CreateFriendRequest) (*Friend, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.DaysPresent < 0 {
		return nil, ErrNegativeDays
	}
	if req.Arrival != nil && req.Departure != nil && req.Departure.Before(*req.Arrival) {
		return nil, ErrDepartureBeforeArr
	}

	id := fmt.Sprintf("friend-%s", uuid.NewString())
	return s.repo.Create(ctx, id, req)
}

// GetByID retrieves a friend by their ID
func (s *Service) GetByID(ctx context.Context, id string) (*Friend, error) {
	friend, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if friend == nil {
		return nil, ErrFriendNotFound
	}
	return friend, nil
}

// List retrieves the whole roster
func (s *Service) List(ctx context.Context) ([]*Friend, error) {
	return s.repo.List(ctx)
}

// Update edits a friend's details; nil fields are left unchanged
func (s *Service) Update(ctx context.Context, id string, req *UpdateFriendRequest) (*Friend, error) {
	friend, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if friend == nil {
		return nil, ErrFriendNotFound
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrNameRequired
		}
		friend.Name = *req.Name
	}
	if req.Color != nil {
		friend.Color = *req.Color
	}
	if req.Arrival != nil {
		friend.Arrival = req.Arrival
	}
	if req.Departure != nil {
		friend.Departure = req.Departure
	}
	if req.DaysPresent != nil {
		if *req.DaysPresent < 0 {
			return nil, ErrNegativeDays
		}
		friend.DaysPresent = *req.DaysPresent
	}
	if friend.Arrival != nil && friend.Departure != nil && friend.Departure.Before(*friend.Arrival) {
		return nil, ErrDepartureBeforeArr
	}

	return s.repo.Update(ctx, friend)
}

// Delete removes a friend, refusing while any ledger records reference them
func (s *Service) Delete(ctx context.Context, id string) error {
	friend, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if friend == nil {
		return ErrFriendNotFound
	}

	active, err := s.repo.HasActivity(ctx, id)
	if err != nil {
		return err
	}
	if active {
		return ErrFriendHasActivity
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrFriendNotFound
		}
		return err
	}
	return nil
}
