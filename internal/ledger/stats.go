package ledger

// ComputeStats derives the dashboard aggregates from the expense list.
// Balances play no part here: the fold only looks at amounts, category
// tags and payer ids. The participants argument mirrors the Balances
// signature; payer ids are reported as-is and name resolution is left to
// the caller.
//
// When two payers are tied for the largest total, the lexicographically
// smaller id wins so the result does not depend on map iteration order.
func ComputeStats(expenses []Expense, participants []Participant) Stats {
	stats := Stats{
		ByCategory:   make(map[string]float64),
		PaidBy:       make(map[string]float64),
		ExpenseCount: len(expenses),
	}

	for _, exp := range expenses {
		stats.TotalSpent += exp.Amount
		stats.ByCategory[exp.Category] += exp.Amount
		stats.PaidBy[exp.PaidBy] += exp.Amount
	}

	for id, paid := range stats.PaidBy {
		if paid > stats.TopPayerAmount ||
			(paid == stats.TopPayerAmount && stats.TopPayer != "" && id < stats.TopPayer) {
			stats.TopPayer = id
			stats.TopPayerAmount = paid
		}
	}

	if stats.ExpenseCount > 0 {
		stats.AverageExpense = stats.TotalSpent / float64(stats.ExpenseCount)
	}

	return stats
}
