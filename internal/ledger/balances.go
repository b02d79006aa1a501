package ledger

import (
	"errors"
	"fmt"

	"github.com/dhruvkap/splitit/internal/ledger/split"
)

// Common errors
var (
	ErrUnknownPayer = errors.New("expense payer is not a known participant")
)

var splitFactory = split.NewFactory()

// ResolveSplit computes each member's owed share of a single expense under
// the expense's split policy. Ids in the expense's participant list that do
// not resolve to a known participant are dropped before resolving; an
// expense left with no resolvable members is a validation error.
func ResolveSplit(exp Expense, participants []Participant) (map[string]float64, error) {
	members := resolveMembers(exp, rosterByID(participants))
	strategy := splitFactory.Create(exp.Policy)
	return strategy.Resolve(exp.Amount, members, exp.CustomSplits)
}

// Balances folds every expense and payment into one net balance per known
// participant. Positive means the participant is owed money, negative means
// they owe. Every participant appears in the result, inactive ones at 0.
//
// Each expense credits its payer with the full amount and debits each
// member with their resolved share; each payment credits From and debits
// To. Addition is commutative, so the processing order never changes the
// final balances.
func Balances(expenses []Expense, participants []Participant, payments []Payment) (map[string]float64, error) {
	roster := rosterByID(participants)

	balances := make(map[string]float64, len(participants))
	for _, p := range participants {
		balances[p.ID] = 0
	}

	for _, exp := range expenses {
		if _, ok := roster[exp.PaidBy]; !ok {
			return nil, fmt.Errorf("expense %s: %w", exp.ID, ErrUnknownPayer)
		}

		members := resolveMembers(exp, roster)
		shares, err := splitFactory.Create(exp.Policy).Resolve(exp.Amount, members, exp.CustomSplits)
		if err != nil {
			return nil, fmt.Errorf("expense %s: %w", exp.ID, err)
		}

		balances[exp.PaidBy] += exp.Amount
		for id, owed := range shares {
			balances[id] -= owed
		}
	}

	for _, pay := range payments {
		// A self-payment nets to zero here, so it needs no special case.
		if _, ok := balances[pay.From]; ok {
			balances[pay.From] += pay.Amount
		}
		if _, ok := balances[pay.To]; ok {
			balances[pay.To] -= pay.Amount
		}
	}

	return balances, nil
}

// rosterByID indexes the roster for membership checks
func rosterByID(participants []Participant) map[string]Participant {
	roster := make(map[string]Participant, len(participants))
	for _, p := range participants {
		roster[p.ID] = p
	}
	return roster
}

// resolveMembers maps the expense's participant ids onto roster entries,
// dropping ids that reference nobody
func resolveMembers(exp Expense, roster map[string]Participant) []split.Member {
	members := make([]split.Member, 0, len(exp.Participants))
	for _, id := range exp.Participants {
		if p, ok := roster[id]; ok {
			members = append(members, split.Member{ID: p.ID, DaysPresent: p.DaysPresent})
		}
	}
	return members
}
