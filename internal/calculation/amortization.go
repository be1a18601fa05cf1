package calculation

import (
	"github.com/shopspring/decimal"
)

// LoanTermYears is the amortization term for every scenario. The loan is
// always a 30-year fixed mortgage regardless of the projection horizon.
const LoanTermYears = 30

// MonthlyMortgagePayment returns the fixed monthly payment that fully
// amortizes principal over termYears*12 equal payments at the given annual
// rate, using the standard level-payment formula
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// with r the monthly rate and n the number of payments. A zero rate makes
// the formula degenerate (division by zero), so that case is an explicit
// branch returning principal/n.
func MonthlyMortgagePayment(principal, annualRate decimal.Decimal, termYears int) (decimal.Decimal, error) {
	if termYears <= 0 {
		return decimal.Zero, &ComputationError{Op: "amortization", Reason: "term must be at least one year"}
	}
	if principal.IsNegative() {
		return decimal.Zero, &ComputationError{Op: "amortization", Reason: "principal cannot be negative"}
	}
	if annualRate.IsNegative() {
		return decimal.Zero, &ComputationError{Op: "amortization", Reason: "rate cannot be negative"}
	}

	n := decimal.NewFromInt(int64(termYears) * 12)
	if annualRate.IsZero() {
		return principal.Div(n), nil
	}

	monthlyRate := annualRate.Div(decimal.NewFromInt(12))
	compound := one.Add(monthlyRate).Pow(n)
	return principal.Mul(monthlyRate).Mul(compound).Div(compound.Sub(one)), nil
}
