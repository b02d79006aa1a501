package payment

import "time"

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	From   string  `json:"from" validate:"required"`
	To     string  `json:"to" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Note   string  `json:"note,omitempty" validate:"omitempty,max=255"`
	Date   string  `json:"date" validate:"required"` // YYYY-MM-DD
}

// PaymentResponse represents the response for a single payment
type PaymentResponse struct {
	ID        string  `json:"id"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Amount    float64 `json:"amount"`
	Note      string  `json:"note,omitempty"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"created_at"`
}

// ToResponse converts a Payment model to a PaymentResponse DTO
func (p *Payment) ToResponse() *PaymentResponse {
	return &PaymentResponse{
		ID:        p.ID,
		From:      p.From,
		To:        p.To,
		Amount:    p.Amount,
		Note:      p.Note,
		Date:      p.Date.Format("2006-01-02"),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
