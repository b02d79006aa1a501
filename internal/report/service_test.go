package report

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/dhruvkap/splitit/internal/config"
	"github.com/dhruvkap/splitit/internal/expense"
	"github.com/dhruvkap/splitit/internal/friend"
	"github.com/dhruvkap/splitit/internal/ledger/split"
	"github.com/dhruvkap/splitit/internal/payment"
)

type fakeFriends struct{ friends []*friend.Friend }

func (f *fakeFriends) List(context.Context) ([]*friend.Friend, error) { return f.friends, nil }

type fakeExpenses struct{ expenses []*expense.Expense }

func (f *fakeExpenses) List(context.Context) ([]*expense.Expense, error) { return f.expenses, nil }

type fakePayments struct{ payments []*payment.Payment }

func (f *fakePayments) List(context.Context) ([]*payment.Payment, error) { return f.payments, nil }

func testService(friends []*friend.Friend, expenses []*expense.Expense, payments []*payment.Payment) *Service {
	trip := config.DefaultTrip()
	trip.Name = "Mumbai Trip 2026"
	return NewService(
		&fakeFriends{friends},
		&fakeExpenses{expenses},
		&fakePayments{payments},
		trip,
	)
}

func tripRoster() []*friend.Friend {
	return []*friend.Friend{
		{ID: "friend-1", Name: "Dhruv", DaysPresent: 2},
		{ID: "friend-2", Name: "Kartik", DaysPresent: 3},
		{ID: "friend-3", Name: "Aryan", DaysPresent: 2},
	}
}

func TestBalancesReport(t *testing.T) {
	expenses := []*expense.Expense{{
		ID: "exp-1", Description: "Airbnb", Amount: 90, Category: "hotel",
		PaidBy: "friend-1", SplitType: split.PolicyEqual,
		Participants: []string{"friend-1", "friend-2", "friend-3"},
		Date:         time.Now(),
	}}
	payments := []*payment.Payment{{
		ID: "pay-1", From: "friend-2", To: "friend-1", Amount: 30, Date: time.Now(),
	}}

	service := testService(tripRoster(), expenses, payments)

	balances, err := service.Balances(context.Background(), "friend-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(balances) != 3 {
		t.Fatalf("got %d balances, want 3", len(balances))
	}

	// Roster order is preserved.
	want := map[string]float64{"friend-1": 30, "friend-2": 0, "friend-3": -30}
	for _, b := range balances {
		if math.Abs(b.Amount-want[b.FriendID]) > 1e-6 {
			t.Errorf("balance for %s = %v, want %v", b.FriendID, b.Amount, want[b.FriendID])
		}
	}

	if balances[0].Message != "Dhruv is owed ₹30.00" {
		t.Errorf("message = %q", balances[0].Message)
	}
	if balances[1].Message != "Kartik is settled up" {
		t.Errorf("message = %q", balances[1].Message)
	}
	// friend-3 is the viewer, so their line is second person.
	if balances[2].Message != "You owe ₹30.00" {
		t.Errorf("message = %q", balances[2].Message)
	}
}

func TestSettleUpReport(t *testing.T) {
	expenses := []*expense.Expense{{
		ID: "exp-1", Description: "Dinner", Amount: 150, Category: "food",
		PaidBy: "friend-1", SplitType: split.PolicyEqual,
		Participants: []string{"friend-1", "friend-2", "friend-3"},
		Date:         time.Now(),
	}}

	service := testService(tripRoster(), expenses, nil)

	plan, err := service.SettleUp(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Settled {
		t.Error("plan reported settled with outstanding debts")
	}
	if len(plan.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(plan.Transactions))
	}
	for _, tx := range plan.Transactions {
		if tx.To != "friend-1" || tx.ToName != "Dhruv" {
			t.Errorf("transaction pays %s (%s), want friend-1 (Dhruv)", tx.To, tx.ToName)
		}
		if math.Abs(tx.Amount-50) > 1e-6 {
			t.Errorf("transaction amount = %v, want 50", tx.Amount)
		}
	}
	if math.Abs(plan.Total-100) > 1e-6 {
		t.Errorf("plan total = %v, want 100", plan.Total)
	}
}

func TestSettleUpReportAllSettled(t *testing.T) {
	service := testService(tripRoster(), nil, nil)

	plan, err := service.SettleUp(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Settled {
		t.Error("empty ledger should report settled")
	}
	if len(plan.Transactions) != 0 {
		t.Errorf("got %d transactions, want 0", len(plan.Transactions))
	}
}

func TestDashboardReport(t *testing.T) {
	now := time.Now()
	expenses := []*expense.Expense{
		{ID: "exp-1", Amount: 300, Category: "hotel", PaidBy: "friend-1",
			SplitType: split.PolicyEqual, Participants: []string{"friend-1", "friend-2"}, Date: now},
		{ID: "exp-2", Amount: 100, Category: "food", PaidBy: "friend-2",
			SplitType: split.PolicyEqual, Participants: []string{"friend-1", "friend-2"}, Date: now},
		{ID: "exp-3", Amount: 60, Category: "snacks", PaidBy: "friend-2",
			SplitType: split.PolicyEqual, Participants: []string{"friend-2"}, Date: now},
	}

	service := testService(tripRoster(), expenses, nil)

	dashboard, err := service.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dashboard.TripName != "Mumbai Trip 2026" {
		t.Errorf("TripName = %q", dashboard.TripName)
	}
	if math.Abs(dashboard.TotalSpent-460) > 1e-6 {
		t.Errorf("TotalSpent = %v, want 460", dashboard.TotalSpent)
	}
	if dashboard.ExpenseCount != 3 {
		t.Errorf("ExpenseCount = %d, want 3", dashboard.ExpenseCount)
	}

	// Taxonomy order first (hotel before food in the default config), then
	// orphan tags with bare metadata.
	if len(dashboard.ByCategory) != 3 {
		t.Fatalf("got %d categories, want 3", len(dashboard.ByCategory))
	}
	if dashboard.ByCategory[0].Category.ID != "hotel" || dashboard.ByCategory[1].Category.ID != "food" {
		t.Errorf("category order = %s, %s", dashboard.ByCategory[0].Category.ID, dashboard.ByCategory[1].Category.ID)
	}
	orphan := dashboard.ByCategory[2]
	if orphan.Category.ID != "snacks" || orphan.Category.Icon != "" {
		t.Errorf("orphan category = %+v", orphan.Category)
	}

	if dashboard.TopPayer == nil || dashboard.TopPayer.FriendID != "friend-1" {
		t.Errorf("TopPayer = %+v, want friend-1", dashboard.TopPayer)
	}
	if dashboard.ByPayer[0].FriendID != "friend-1" || dashboard.ByPayer[0].Name != "Dhruv" {
		t.Errorf("ByPayer[0] = %+v", dashboard.ByPayer[0])
	}
}

func TestDashboardReportEmpty(t *testing.T) {
	service := testService(tripRoster(), nil, nil)

	dashboard, err := service.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dashboard.TotalSpent != 0 || dashboard.ExpenseCount != 0 || dashboard.AverageExpense != 0 {
		t.Errorf("empty dashboard = %+v", dashboard)
	}
	if dashboard.TopPayer != nil {
		t.Errorf("TopPayer = %+v, want nil", dashboard.TopPayer)
	}
}
