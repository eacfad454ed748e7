package finance

import "math"

// LoanTerms describes an amortized loan.
type LoanTerms struct {
	Principal     float64
	AnnualRatePct float64
	TermMonths    int
}

// AmortizationResult holds the fixed monthly payment and the derived totals.
type AmortizationResult struct {
	MonthlyPayment float64
	TotalPaid      float64
	TotalInterest  float64
}

// ScheduleEntry is one month of an amortization schedule.
type ScheduleEntry struct {
	Month     int
	Payment   float64
	Interest  float64
	Principal float64
	Remaining float64
}

func (t LoanTerms) validate() error {
	if t.Principal <= 0 {
		return invalidInputf("principal must be positive, got %v", t.Principal)
	}
	if t.AnnualRatePct < 0 {
		return invalidInputf("annual rate must not be negative, got %v", t.AnnualRatePct)
	}
	if t.TermMonths <= 0 {
		return invalidInputf("term must be at least one month, got %d", t.TermMonths)
	}
	return nil
}

// monthlyRate converts the annual percentage rate to a monthly fraction.
func (t LoanTerms) monthlyRate() float64 {
	return t.AnnualRatePct / (12 * 100)
}

// Amortize computes the equated monthly installment for the given terms.
// A zero interest rate degenerates to principal divided by term, which keeps
// the annuity formula free of a division by zero.
func Amortize(terms LoanTerms) (AmortizationResult, error) {
	if err := terms.validate(); err != nil {
		return AmortizationResult{}, err
	}

	var payment float64
	i := terms.monthlyRate()
	n := float64(terms.TermMonths)

	if i == 0 {
		payment = terms.Principal / n
	} else {
		payment = terms.Principal * i * math.Pow(1+i, n) / (math.Pow(1+i, n) - 1)
	}

	totalPaid := payment * n
	return AmortizationResult{
		MonthlyPayment: payment,
		TotalPaid:      totalPaid,
		TotalInterest:  totalPaid - terms.Principal,
	}, nil
}

// AmortizationSchedule expands the loan into its month-by-month repayment
// rows. The final row absorbs accumulated floating point drift so the
// remaining balance lands on exactly zero.
func AmortizationSchedule(terms LoanTerms) ([]ScheduleEntry, error) {
	result, err := Amortize(terms)
	if err != nil {
		return nil, err
	}

	i := terms.monthlyRate()
	remaining := terms.Principal
	schedule := make([]ScheduleEntry, 0, terms.TermMonths)

	for month := 1; month <= terms.TermMonths; month++ {
		interest := remaining * i
		principal := result.MonthlyPayment - interest
		if month == terms.TermMonths {
			principal = remaining
		}
		remaining -= principal
		if remaining < 0 {
			remaining = 0
		}
		schedule = append(schedule, ScheduleEntry{
			Month:     month,
			Payment:   result.MonthlyPayment,
			Interest:  interest,
			Principal: principal,
			Remaining: remaining,
		})
	}

	return schedule, nil
}
