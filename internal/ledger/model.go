// Package ledger is the pure balance-and-settlement engine. It turns a
// snapshot of participants, expenses and settlement payments into net
// balances, a minimized settle-up plan and trip statistics. The package
// holds no state: every function is a plain fold over its inputs and is
// recomputed from scratch whenever the snapshot changes.
package ledger

import (
	"time"

	"github.com/dhruvkap/splitit/internal/ledger/split"
)

// Participant is the roster view the engine needs: a stable id and the
// attendance weight consumed by the BY_DAYS split policy.
type Participant struct {
	ID          string
	Name        string
	DaysPresent float64
}

// Expense is the snapshot of one logged expense.
type Expense struct {
	ID           string
	Amount       float64
	Category     string
	PaidBy       string
	Policy       split.Policy
	Participants []string
	CustomSplits map[string]float64
	Date         time.Time
}

// Payment is a recorded settlement transfer. From is the participant
// reducing their debt, To the one reducing what they are owed.
type Payment struct {
	ID     string
	From   string
	To     string
	Amount float64
}

// Transaction is one recommended settling transfer in the settle-up plan.
type Transaction struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Stats holds the descriptive aggregates shown on the dashboard.
type Stats struct {
	TotalSpent     float64
	ByCategory     map[string]float64
	PaidBy         map[string]float64
	TopPayer       string
	TopPayerAmount float64
	ExpenseCount   int
	AverageExpense float64
}
