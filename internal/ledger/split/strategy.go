package split

import "errors"

// Policy identifies how an expense is divided among its participants.
type Policy string

const (
	PolicyEqual  Policy = "equal"
	PolicyByDays Policy = "by_days"
	PolicyCustom Policy = "custom"
	PolicyExact  Policy = "exact"
)

// Member represents one participant in a split. DaysPresent is the
// attendance weight used only by the BY_DAYS policy.
type Member struct {
	ID          string
	DaysPresent float64
}

// Strategy is the interface that all split policies must implement.
// Implementations are stateless and must never mutate their inputs.
type Strategy interface {
	// Resolve computes each member's owed share of the expense amount.
	// custom carries per-member values: percentage points for CUSTOM,
	// exact currency amounts for EXACT. Other policies ignore it.
	Resolve(amount float64, members []Member, custom map[string]float64) (map[string]float64, error)

	// Policy returns the policy tag for this strategy.
	Policy() Policy

	// Validate checks if the inputs are valid for this policy.
	Validate(amount float64, members []Member) error
}

// Factory creates split strategies based on the requested policy
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy implementation for the given policy.
// Unknown tags resolve to the equal strategy, which is also the default
// branch the expense form relies on.
func (f *Factory) Create(policy Policy) Strategy {
	switch policy {
	case PolicyByDays:
		return &ByDaysStrategy{}
	case PolicyCustom:
		return &CustomStrategy{}
	case PolicyExact:
		return &ExactStrategy{}
	default:
		return &EqualStrategy{}
	}
}

// CreateFromString creates a strategy from a raw policy tag (useful for API requests)
func (f *Factory) CreateFromString(policy string) Strategy {
	return f.Create(Policy(policy))
}

var (
	ErrNoMembers         = errors.New("at least one participating member is required")
	ErrNonPositiveAmount = errors.New("expense amount must be positive")
)

// validateCommon covers the checks shared by every policy
func validateCommon(amount float64, members []Member) error {
	if len(members) == 0 {
		return ErrNoMembers
	}
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}
