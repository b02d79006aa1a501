package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dhruvkap/splitit/internal/friend"
)

// Common errors
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrSelfPayment     = errors.New("cannot record a payment to yourself")
	ErrNonPositive     = errors.New("payment amount must be positive")
	ErrUnknownFriend   = errors.New("payment references a friend not on the roster")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
)

// Service handles payment business logic
type Service struct {
	repo       *Repository
	friendRepo *friend.Repository
}

// NewService creates a new payment service with dependencies injected
func NewService(repo *Repository, friendRepo *friend.Repository) *Service {
	return &Service{
		repo:       repo,
		friendRepo: friendRepo,
	}
}

// Create validates and records a settlement payment
func (s *Service) Create(ctx context.Context, req *CreatePaymentRequest) (*Payment, error) {
	if req.From == req.To {
		return nil, ErrSelfPayment
	}
	if req.Amount <= 0 {
		return nil, ErrNonPositive
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	for _, id := range []string{req.From, req.To} {
		f, err := s.friendRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if f == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFriend, id)
		}
	}

	return s.repo.Create(ctx, &Payment{
		ID:     fmt.Sprintf("pay-%s", uuid.NewString()),
		From:   req.From,
		To:     req.To,
		Amount: req.Amount,
		Note:   req.Note,
		Date:   date,
	})
}

// GetByID retrieves a payment
func (s *Service) GetByID(ctx context.Context, id string) (*Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}
	return p, nil
}

// List retrieves all payments, newest first
func (s *Service) List(ctx context.Context) ([]*Payment, error) {
	return s.repo.List(ctx)
}

// Delete removes a payment
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPaymentNotFound
		}
		return err
	}
	return nil
}
