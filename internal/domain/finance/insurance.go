package finance

// MaturityValue computes the maturity amount of an endowment policy:
// total premiums paid over the term grown by the flat annual return rate.
func MaturityValue(annualPremium float64, termYears int, annualRatePct float64) (float64, error) {
	if annualPremium <= 0 {
		return 0, invalidInputf("premium must be positive, got %v", annualPremium)
	}
	if termYears <= 0 {
		return 0, invalidInputf("term must be at least one year, got %d", termYears)
	}
	if annualRatePct < 0 {
		return 0, invalidInputf("annual rate must not be negative, got %v", annualRatePct)
	}

	return annualPremium * float64(termYears) * (1 + annualRatePct/100), nil
}
