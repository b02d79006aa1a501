package split

// =============================================================================
// EQUAL SPLIT STRATEGY
// Divides the expense uniformly among all participating members
// =============================================================================

// EqualStrategy implements the Strategy interface for equal splits
type EqualStrategy struct{}

// Policy returns the split policy identifier
func (s *EqualStrategy) Policy() Policy {
	return PolicyEqual
}

// Validate checks if the inputs are valid for an equal split
func (s *EqualStrategy) Validate(amount float64, members []Member) error {
	return validateCommon(amount, members)
}

// Resolve divides the total amount evenly among all members. The payer is
// not special-cased: their own share is part of the result and the balance
// aggregator nets it against the full amount they fronted.
func (s *EqualStrategy) Resolve(amount float64, members []Member, _ map[string]float64) (map[string]float64, error) {
	if err := s.Validate(amount, members); err != nil {
		return nil, err
	}

	perMember := amount / float64(len(members))
	shares := make(map[string]float64, len(members))
	for _, m := range members {
		shares[m.ID] = perMember
	}

	return shares, nil
}
