package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dhruvkap/splitit/internal/config"
	"github.com/dhruvkap/splitit/internal/friend"
	"github.com/dhruvkap/splitit/internal/ledger/split"
)

// Common errors
var (
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrUnknownCategory    = errors.New("unknown expense category")
	ErrUnknownPayer       = errors.New("payer is not on the roster")
	ErrUnknownParticipant = errors.New("participant is not on the roster")
	ErrInvalidDate        = errors.New("date must be YYYY-MM-DD")
)

// Service handles expense business logic
type Service struct {
	repo         *Repository
	friendRepo   *friend.Repository
	splitFactory *split.Factory
	trip         *config.Trip
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, friendRepo *friend.Repository, splitFactory *split.Factory, trip *config.Trip) *Service {
	return &Service{
		repo:         repo,
		friendRepo:   friendRepo,
		splitFactory: splitFactory,
		trip:         trip,
	}
}

// Create validates and logs a new expense. The split is resolved once up
// front so malformed splits are rejected at the door instead of surfacing
// later as a broken balance view.
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*Expense, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	exp := &Expense{
		ID:           fmt.Sprintf("exp-%s", uuid.NewString()),
		Description:  req.Description,
		Amount:       req.Amount,
		Category:     req.Category,
		PaidBy:       req.PaidBy,
		SplitType:    split.Policy(req.SplitType),
		Participants: req.Participants,
		CustomSplits: req.CustomSplits,
		Date:         date,
	}

	if err := s.validate(ctx, exp); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, exp)
}

// GetByID retrieves an expense
func (s *Service) GetByID(ctx context.Context, id string) (*Expense, error) {
	exp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, ErrExpenseNotFound
	}
	return exp, nil
}

// List retrieves all expenses, newest first
func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.List(ctx)
}

// Update edits an expense; nil fields are left unchanged. When the split
// type changes the participant list must be resent.
func (s *Service) Update(ctx context.Context, id string, req *UpdateExpenseRequest) (*Expense, error) {
	exp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, ErrExpenseNotFound
	}

	if req.Description != nil {
		exp.Description = *req.Description
	}
	if req.Amount != nil {
		exp.Amount = *req.Amount
	}
	if req.Category != nil {
		exp.Category = *req.Category
	}
	if req.PaidBy != nil {
		exp.PaidBy = *req.PaidBy
	}
	if req.SplitType != nil {
		exp.SplitType = split.Policy(*req.SplitType)
	}
	if req.Participants != nil {
		exp.Participants = req.Participants
	}
	if req.CustomSplits != nil {
		exp.CustomSplits = req.CustomSplits
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		exp.Date = date
	}

	if err := s.validate(ctx, exp); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, exp)
}

// Delete removes an expense
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrExpenseNotFound
		}
		return err
	}
	return nil
}

// ResolveShares computes the per-friend owed amounts for one expense
func (s *Service) ResolveShares(ctx context.Context, exp *Expense) (map[string]float64, error) {
	members := make([]split.Member, 0, len(exp.Participants))
	for _, friendID := range exp.Participants {
		f, err := s.friendRepo.GetByID(ctx, friendID)
		if err != nil {
			return nil, err
		}
		if f == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParticipant, friendID)
		}
		members = append(members, split.Member{ID: f.ID, DaysPresent: f.DaysPresent})
	}

	return s.splitFactory.Create(exp.SplitType).Resolve(exp.Amount, members, exp.CustomSplits)
}

// validate checks the category against the configured taxonomy, the payer
// and participants against the roster, and dry-runs the split resolution
func (s *Service) validate(ctx context.Context, exp *Expense) error {
	if _, ok := s.trip.Category(exp.Category); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, exp.Category)
	}

	payer, err := s.friendRepo.GetByID(ctx, exp.PaidBy)
	if err != nil {
		return err
	}
	if payer == nil {
		return fmt.Errorf("%w: %s", ErrUnknownPayer, exp.PaidBy)
	}

	if _, err := s.ResolveShares(ctx, exp); err != nil {
		return err
	}
	return nil
}
