package split

// =============================================================================
// EXACT SPLIT STRATEGY
// Each member owes the exact currency amount entered for them
// =============================================================================

// ExactStrategy implements the Strategy interface for exact amount splits
type ExactStrategy struct{}

// Policy returns the split policy identifier
func (s *ExactStrategy) Policy() Policy {
	return PolicyExact
}

// Validate checks if the inputs are valid for an exact split
func (s *ExactStrategy) Validate(amount float64, members []Member) error {
	return validateCommon(amount, members)
}

// Resolve takes each member's owed amount directly from the custom values.
// Members without an entry owe 0. No reconciliation against the expense
// amount is performed; the entered amounts are the source of truth.
func (s *ExactStrategy) Resolve(amount float64, members []Member, custom map[string]float64) (map[string]float64, error) {
	if err := s.Validate(amount, members); err != nil {
		return nil, err
	}

	shares := make(map[string]float64, len(members))
	for _, m := range members {
		shares[m.ID] = custom[m.ID]
	}

	return shares, nil
}
