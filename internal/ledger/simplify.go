package ledger

import (
	"math"
	"sort"
)

// epsilon absorbs the floating-point drift that accumulates across the
// balance fold. Balances within one cent of zero count as settled.
const epsilon = 0.01

// party is one side of the matching: a participant and the positive
// magnitude they still have to settle.
type party struct {
	id     string
	amount float64
}

// SimplifyDebts reduces a balance map to a short list of settling
// transactions using greedy largest-first matching: debtors and creditors
// are each sorted by outstanding amount and matched with two cursors,
// always transferring min(debtor remaining, creditor remaining).
//
// The greedy matching is not guaranteed to hit the theoretical minimum
// transaction count, but it settles every balance to within epsilon in at
// most len(debtors)+len(creditors)-1 transfers. Emitted amounts are
// rounded to whole cents.
func SimplifyDebts(balances map[string]float64) []Transaction {
	var creditors, debtors []party
	for id, balance := range balances {
		switch {
		case balance > epsilon:
			creditors = append(creditors, party{id: id, amount: balance})
		case balance < -epsilon:
			debtors = append(debtors, party{id: id, amount: -balance})
		}
	}

	sortByOutstanding(creditors)
	sortByOutstanding(debtors)

	transactions := make([]Transaction, 0, len(debtors)+len(creditors))
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		transfer := math.Min(debtor.amount, creditor.amount)
		if transfer > epsilon {
			transactions = append(transactions, Transaction{
				From:   debtor.id,
				To:     creditor.id,
				Amount: roundToCents(transfer),
			})
		}

		debtor.amount -= transfer
		creditor.amount -= transfer

		if debtor.amount < epsilon {
			i++
		}
		if creditor.amount < epsilon {
			j++
		}
	}

	return transactions
}

// sortByOutstanding orders largest amount first, breaking ties on id so
// the plan is deterministic regardless of map iteration order
func sortByOutstanding(parties []party) {
	sort.Slice(parties, func(a, b int) bool {
		if parties[a].amount != parties[b].amount {
			return parties[a].amount > parties[b].amount
		}
		return parties[a].id < parties[b].id
	})
}

// roundToCents rounds a float to 2 decimal places
func roundToCents(value float64) float64 {
	return math.Round(value*100) / 100
}
