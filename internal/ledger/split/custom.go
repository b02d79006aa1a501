package split

// =============================================================================
// CUSTOM SPLIT STRATEGY
// Divides the expense by per-member percentage points (0-100) of the total
// =============================================================================

// CustomStrategy implements the Strategy interface for percentage-based splits
type CustomStrategy struct{}

// Policy returns the split policy identifier
func (s *CustomStrategy) Policy() Policy {
	return PolicyCustom
}

// Validate checks if the inputs are valid for a custom split
func (s *CustomStrategy) Validate(amount float64, members []Member) error {
	return validateCommon(amount, members)
}

// Resolve computes amount * percentage / 100 for each member. A member
// without an explicit percentage gets an equal percentage share
// (100 / member count) for that member only. Percentages are taken
// literally: if they do not sum to 100 the shares will not sum to the
// amount, and surfacing that is the expense form's job, not the resolver's.
func (s *CustomStrategy) Resolve(amount float64, members []Member, custom map[string]float64) (map[string]float64, error) {
	if err := s.Validate(amount, members); err != nil {
		return nil, err
	}

	equalPercentage := 100 / float64(len(members))
	shares := make(map[string]float64, len(members))
	for _, m := range members {
		percentage, ok := custom[m.ID]
		if !ok {
			percentage = equalPercentage
		}
		shares[m.ID] = amount * percentage / 100
	}

	return shares, nil
}
