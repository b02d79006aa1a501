package report

import "github.com/dhruvkap/splitit/internal/config"

// BalanceResponse is one friend's net position. Amount is positive when
// the friend is owed money, negative when they owe.
type BalanceResponse struct {
	FriendID string  `json:"friend_id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Message  string  `json:"message"`
}

// TransactionResponse is one recommended transfer in the settle-up plan
type TransactionResponse struct {
	From     string  `json:"from"`
	FromName string  `json:"from_name"`
	To       string  `json:"to"`
	ToName   string  `json:"to_name"`
	Amount   float64 `json:"amount"`
}

// SettleUpResponse is the full settle-up plan
type SettleUpResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        float64                `json:"total"`
	Settled      bool                   `json:"settled"`
}

// CategoryTotal is one category's slice of the spending pie, joined with
// its display metadata from the trip config
type CategoryTotal struct {
	Category config.Category `json:"category"`
	Total    float64         `json:"total"`
}

// PayerTotal is one friend's total amount fronted
type PayerTotal struct {
	FriendID string  `json:"friend_id"`
	Name     string  `json:"name"`
	Total    float64 `json:"total"`
}

// DashboardResponse is the aggregate view for the dashboard tab
type DashboardResponse struct {
	TripName       string          `json:"trip_name"`
	Currency       string          `json:"currency"`
	CurrencySymbol string          `json:"currency_symbol"`
	TotalSpent     float64         `json:"total_spent"`
	ExpenseCount   int             `json:"expense_count"`
	AverageExpense float64         `json:"average_expense"`
	ByCategory     []CategoryTotal `json:"by_category"`
	ByPayer        []PayerTotal    `json:"by_payer"`
	TopPayer       *PayerTotal     `json:"top_payer,omitempty"`
}
