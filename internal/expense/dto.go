package expense

import "time"

// CreateExpenseRequest represents the request to log an expense
type CreateExpenseRequest struct {
	Description  string             `json:"description" validate:"required,min=1,max=255"`
	Amount       float64            `json:"amount" validate:"required,gt=0"`
	Category     string             `json:"category" validate:"required"`
	PaidBy       string             `json:"paid_by" validate:"required"`
	SplitType    string             `json:"split_type" validate:"required,oneof=equal by_days custom exact"`
	Participants []string           `json:"participants" validate:"required,min=1"`
	CustomSplits map[string]float64 `json:"custom_splits,omitempty"`
	Date         string             `json:"date" validate:"required"` // YYYY-MM-DD
}

// UpdateExpenseRequest represents the request to edit an expense.
// Split-affecting fields are all-or-nothing: when SplitType is set the
// participant list must be resent.
type UpdateExpenseRequest struct {
	Description  *string            `json:"description,omitempty" validate:"omitempty,min=1,max=255"`
	Amount       *float64           `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category     *string            `json:"category,omitempty"`
	PaidBy       *string            `json:"paid_by,omitempty"`
	SplitType    *string            `json:"split_type,omitempty"`
	Participants []string           `json:"participants,omitempty"`
	CustomSplits map[string]float64 `json:"custom_splits,omitempty"`
	Date         *string            `json:"date,omitempty"`
}

// ExpenseResponse represents the response for a single expense
type ExpenseResponse struct {
	ID           string             `json:"id"`
	Description  string             `json:"description"`
	Amount       float64            `json:"amount"`
	Category     string             `json:"category"`
	PaidBy       string             `json:"paid_by"`
	SplitType    string             `json:"split_type"`
	Participants []string           `json:"participants"`
	CustomSplits map[string]float64 `json:"custom_splits,omitempty"`
	Shares       map[string]float64 `json:"shares,omitempty"`
	Date         string             `json:"date"`
	CreatedAt    string             `json:"created_at"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO.
// shares is the resolved per-friend owed amount; pass nil to omit it.
func (e *Expense) ToResponse(shares map[string]float64) *ExpenseResponse {
	return &ExpenseResponse{
		ID:           e.ID,
		Description:  e.Description,
		Amount:       e.Amount,
		Category:     e.Category,
		PaidBy:       e.PaidBy,
		SplitType:    string(e.SplitType),
		Participants: e.Participants,
		CustomSplits: e.CustomSplits,
		Shares:       shares,
		Date:         e.Date.Format("2006-01-02"),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}
