package payment

import (
	"time"

	"github.com/dhruvkap/splitit/internal/ledger"
)

// Payment represents a settlement transfer someone actually made: From
// paid To directly, outside any expense, to knock down their debt.
type Payment struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// ToLedger converts the stored payment into the engine's snapshot type
func (p *Payment) ToLedger() ledger.Payment {
	return ledger.Payment{
		ID:     p.ID,
		From:   p.From,
		To:     p.To,
		Amount: p.Amount,
	}
}
