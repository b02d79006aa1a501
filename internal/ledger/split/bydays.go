package split

// =============================================================================
// BY_DAYS SPLIT STRATEGY
// Divides the expense proportionally to each member's days present on the
// trip. Someone who stayed 3 of 5 nights owes 3/5 of their group's share.
// =============================================================================

// ByDaysStrategy implements the Strategy interface for attendance-weighted splits
type ByDaysStrategy struct{}

// Policy returns the split policy identifier
func (s *ByDaysStrategy) Policy() Policy {
	return PolicyByDays
}

// Validate checks if the inputs are valid for a by-days split
func (s *ByDaysStrategy) Validate(amount float64, members []Member) error {
	return validateCommon(amount, members)
}

// Resolve weights each member's share by DaysPresent / totalDays. When the
// total attendance is zero the weighting is undefined, so the split falls
// back to an equal division rather than dividing by zero.
func (s *ByDaysStrategy) Resolve(amount float64, members []Member, _ map[string]float64) (map[string]float64, error) {
	if err := s.Validate(amount, members); err != nil {
		return nil, err
	}

	var totalDays float64
	for _, m := range members {
		totalDays += m.DaysPresent
	}
	if totalDays == 0 {
		return (&EqualStrategy{}).Resolve(amount, members, nil)
	}

	shares := make(map[string]float64, len(members))
	for _, m := range members {
		shares[m.ID] = amount * (m.DaysPresent / totalDays)
	}

	return shares, nil
}
