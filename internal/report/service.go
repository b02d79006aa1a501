package report

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/dhruvkap/splitit/internal/config"
	"github.com/dhruvkap/splitit/internal/expense"
	"github.com/dhruvkap/splitit/internal/friend"
	"github.com/dhruvkap/splitit/internal/ledger"
	"github.com/dhruvkap/splitit/internal/payment"
)

// FriendSource supplies the current roster snapshot
type FriendSource interface {
	List(ctx context.Context) ([]*friend.Friend, error)
}

// ExpenseSource supplies the current expense snapshot
type ExpenseSource interface {
	List(ctx context.Context) ([]*expense.Expense, error)
}

// PaymentSource supplies the current payment snapshot
type PaymentSource interface {
	List(ctx context.Context) ([]*payment.Payment, error)
}

// Service derives balances, the settle-up plan and dashboard statistics.
// It holds no ledger state: every call pulls a fresh snapshot from the
// sources and runs the engine over it.
type Service struct {
	friends  FriendSource
	expenses ExpenseSource
	payments PaymentSource
	trip     *config.Trip
}

// NewService creates a new report service with dependencies injected
func NewService(friends FriendSource, expenses ExpenseSource, payments PaymentSource, trip *config.Trip) *Service {
	return &Service{
		friends:  friends,
		expenses: expenses,
		payments: payments,
		trip:     trip,
	}
}

// snapshot loads the three collections and converts them to engine types
func (s *Service) snapshot(ctx context.Context) ([]ledger.Expense, []ledger.Participant, []ledger.Payment, []*friend.Friend, error) {
	friends, err := s.friends.List(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	participants := make([]ledger.Participant, len(friends))
	for i, f := range friends {
		participants[i] = ledger.Participant{ID: f.ID, Name: f.Name, DaysPresent: f.DaysPresent}
	}
	ledgerExpenses := make([]ledger.Expense, len(expenses))
	for i, e := range expenses {
		ledgerExpenses[i] = e.ToLedger()
	}
	ledgerPayments := make([]ledger.Payment, len(payments))
	for i, p := range payments {
		ledgerPayments[i] = p.ToLedger()
	}

	return ledgerExpenses, participants, ledgerPayments, friends, nil
}

// Balances returns every friend's net position in roster order. viewerID
// selects whose point of view the messages are phrased from; empty means
// nobody in particular.
func (s *Service) Balances(ctx context.Context, viewerID string) ([]*BalanceResponse, error) {
	expenses, participants, payments, friends, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := ledger.Balances(expenses, participants, payments)
	if err != nil {
		return nil, err
	}
	recomputations.WithLabelValues("balances").Inc()

	responses := make([]*BalanceResponse, len(friends))
	for i, f := range friends {
		amount := balances[f.ID]
		responses[i] = &BalanceResponse{
			FriendID: f.ID,
			Name:     f.Name,
			Amount:   amount,
			Message:  s.balanceMessage(f, amount, viewerID),
		}
	}

	return responses, nil
}

// SettleUp returns the minimized settlement plan
func (s *Service) SettleUp(ctx context.Context) (*SettleUpResponse, error) {
	expenses, participants, payments, friends, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := ledger.Balances(expenses, participants, payments)
	if err != nil {
		return nil, err
	}
	transactions := ledger.SimplifyDebts(balances)
	recomputations.WithLabelValues("settle_up").Inc()

	names := make(map[string]string, len(friends))
	for _, f := range friends {
		names[f.ID] = f.Name
	}

	resp := &SettleUpResponse{Transactions: make([]*TransactionResponse, len(transactions))}
	for i, tx := range transactions {
		resp.Transactions[i] = &TransactionResponse{
			From:     tx.From,
			FromName: names[tx.From],
			To:       tx.To,
			ToName:   names[tx.To],
			Amount:   tx.Amount,
		}
		resp.Total += tx.Amount
	}
	resp.Settled = len(transactions) == 0

	return resp, nil
}

// Dashboard returns the trip statistics joined with category metadata
func (s *Service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	expenses, participants, _, friends, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	stats := ledger.ComputeStats(expenses, participants)
	recomputations.WithLabelValues("dashboard").Inc()

	names := make(map[string]string, len(friends))
	for _, f := range friends {
		names[f.ID] = f.Name
	}

	resp := &DashboardResponse{
		TripName:       s.trip.Name,
		Currency:       s.trip.Currency,
		CurrencySymbol: s.trip.CurrencySymbol,
		TotalSpent:     stats.TotalSpent,
		ExpenseCount:   stats.ExpenseCount,
		AverageExpense: stats.AverageExpense,
	}

	// Category order follows the configured taxonomy; categories with no
	// spending are omitted. Unknown tags (taxonomy edits after the fact)
	// are appended with bare metadata so money never disappears.
	seen := make(map[string]bool, len(stats.ByCategory))
	for _, category := range s.trip.Categories {
		if total, ok := stats.ByCategory[category.ID]; ok {
			resp.ByCategory = append(resp.ByCategory, CategoryTotal{Category: category, Total: total})
			seen[category.ID] = true
		}
	}
	var orphans []string
	for id := range stats.ByCategory {
		if !seen[id] {
			orphans = append(orphans, id)
		}
	}
	sort.Strings(orphans)
	for _, id := range orphans {
		resp.ByCategory = append(resp.ByCategory, CategoryTotal{
			Category: config.Category{ID: id, Name: id},
			Total:    stats.ByCategory[id],
		})
	}

	for id, total := range stats.PaidBy {
		resp.ByPayer = append(resp.ByPayer, PayerTotal{FriendID: id, Name: names[id], Total: total})
	}
	sort.Slice(resp.ByPayer, func(i, j int) bool {
		if resp.ByPayer[i].Total != resp.ByPayer[j].Total {
			return resp.ByPayer[i].Total > resp.ByPayer[j].Total
		}
		return resp.ByPayer[i].FriendID < resp.ByPayer[j].FriendID
	})

	if stats.TopPayer != "" {
		resp.TopPayer = &PayerTotal{
			FriendID: stats.TopPayer,
			Name:     names[stats.TopPayer],
			Total:    stats.TopPayerAmount,
		}
	}

	return resp, nil
}

// balanceMessage phrases one friend's position, from the viewer's side
// when the viewer is that friend
func (s *Service) balanceMessage(f *friend.Friend, amount float64, viewerID string) string {
	symbol := s.trip.CurrencySymbol
	magnitude := math.Abs(amount)

	if f.ID == viewerID {
		switch {
		case amount > 0.01:
			return fmt.Sprintf("You are owed %s%.2f", symbol, magnitude)
		case amount < -0.01:
			return fmt.Sprintf("You owe %s%.2f", symbol, magnitude)
		default:
			return "You are settled up"
		}
	}

	switch {
	case amount > 0.01:
		return fmt.Sprintf("%s is owed %s%.2f", f.Name, symbol, magnitude)
	case amount < -0.01:
		return fmt.Sprintf("%s owes %s%.2f", f.Name, symbol, magnitude)
	default:
		return fmt.Sprintf("%s is settled up", f.Name)
	}
}
