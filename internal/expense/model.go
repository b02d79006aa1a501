package expense

import (
	"time"

	"github.com/dhruvkap/splitit/internal/ledger"
	"github.com/dhruvkap/splitit/internal/ledger/split"
)

// Expense represents one logged trip expense. Participants is the ordered
// list of friends sharing the cost; CustomSplits carries per-friend
// percentage points (custom policy) or exact amounts (exact policy).
type Expense struct {
	ID           string             `json:"id"`
	Description  string             `json:"description"`
	Amount       float64            `json:"amount"`
	Category     string             `json:"category"`
	PaidBy       string             `json:"paid_by"`
	SplitType    split.Policy       `json:"split_type"`
	Participants []string           `json:"participants"`
	CustomSplits map[string]float64 `json:"custom_splits,omitempty"`
	Date         time.Time          `json:"date"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ToLedger converts the stored expense into the engine's snapshot type
func (e *Expense) ToLedger() ledger.Expense {
	return ledger.Expense{
		ID:           e.ID,
		Amount:       e.Amount,
		Category:     e.Category,
		PaidBy:       e.PaidBy,
		Policy:       e.SplitType,
		Participants: e.Participants,
		CustomSplits: e.CustomSplits,
		Date:         e.Date,
	}
}
