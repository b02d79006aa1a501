package ledger

import (
	"math"
	"testing"

	"github.com/dhruvkap/splitit/internal/ledger/split"
)

func TestComputeStats(t *testing.T) {
	expenses := []Expense{
		{ID: "e1", Amount: 120, Category: "food", PaidBy: "dhruv", Policy: split.PolicyEqual,
			Participants: []string{"dhruv", "kartik"}},
		{ID: "e2", Amount: 80, Category: "food", PaidBy: "kartik", Policy: split.PolicyEqual,
			Participants: []string{"dhruv", "kartik"}},
		{ID: "e3", Amount: 300, Category: "hotel", PaidBy: "dhruv", Policy: split.PolicyEqual,
			Participants: []string{"dhruv", "kartik", "aryan"}},
		{ID: "e4", Amount: 40, Category: "transport", PaidBy: "aryan", Policy: split.PolicyEqual,
			Participants: []string{"aryan"}},
	}

	stats := ComputeStats(expenses, roster())

	if math.Abs(stats.TotalSpent-540) > tolerance {
		t.Errorf("TotalSpent = %v, want 540", stats.TotalSpent)
	}
	if stats.ExpenseCount != 4 {
		t.Errorf("ExpenseCount = %d, want 4", stats.ExpenseCount)
	}
	if math.Abs(stats.AverageExpense-135) > tolerance {
		t.Errorf("AverageExpense = %v, want 135", stats.AverageExpense)
	}

	wantCategories := map[string]float64{"food": 200, "hotel": 300, "transport": 40}
	for category, want := range wantCategories {
		if math.Abs(stats.ByCategory[category]-want) > tolerance {
			t.Errorf("ByCategory[%s] = %v, want %v", category, stats.ByCategory[category], want)
		}
	}

	wantPaid := map[string]float64{"dhruv": 420, "kartik": 80, "aryan": 40}
	for id, want := range wantPaid {
		if math.Abs(stats.PaidBy[id]-want) > tolerance {
			t.Errorf("PaidBy[%s] = %v, want %v", id, stats.PaidBy[id], want)
		}
	}

	if stats.TopPayer != "dhruv" {
		t.Errorf("TopPayer = %q, want dhruv", stats.TopPayer)
	}
	if math.Abs(stats.TopPayerAmount-420) > tolerance {
		t.Errorf("TopPayerAmount = %v, want 420", stats.TopPayerAmount)
	}
}

func TestComputeStatsNoExpenses(t *testing.T) {
	stats := ComputeStats(nil, roster())

	if stats.TotalSpent != 0 {
		t.Errorf("TotalSpent = %v, want 0", stats.TotalSpent)
	}
	if stats.ExpenseCount != 0 {
		t.Errorf("ExpenseCount = %d, want 0", stats.ExpenseCount)
	}
	if stats.AverageExpense != 0 {
		t.Errorf("AverageExpense = %v, want 0", stats.AverageExpense)
	}
	if stats.TopPayer != "" {
		t.Errorf("TopPayer = %q, want empty", stats.TopPayer)
	}
	if math.IsNaN(stats.AverageExpense) {
		t.Error("AverageExpense is NaN")
	}
}

func TestComputeStatsTopPayerTieBreak(t *testing.T) {
	expenses := []Expense{
		{ID: "e1", Amount: 50, Category: "food", PaidBy: "zara", Policy: split.PolicyEqual,
			Participants: []string{"zara"}},
		{ID: "e2", Amount: 50, Category: "food", PaidBy: "anil", Policy: split.PolicyEqual,
			Participants: []string{"anil"}},
	}

	// Equal totals: the lexicographically smaller id wins, every run.
	for i := 0; i < 10; i++ {
		stats := ComputeStats(expenses, nil)
		if stats.TopPayer != "anil" {
			t.Fatalf("TopPayer = %q, want anil", stats.TopPayer)
		}
	}
}
