package calculation

import (
	"github.com/shopspring/decimal"
)

// FindBreakEvenYear scans the rent and own cash-flow arrays (both carrying
// the year-0 snapshot at index 0) for the first index where cumulative
// owner outlay is no greater than cumulative rent. The index equals the
// calendar year, except that a crossing at index 0 is reported as year 1:
// year 0 is a setup snapshot, not a lived year. Returns nil when owning
// never catches up within the horizon.
func FindBreakEvenYear(rentCF, ownCF []decimal.Decimal) *int {
	n := len(rentCF)
	if len(ownCF) < n {
		n = len(ownCF)
	}

	cumRent := decimal.Zero
	cumOwn := decimal.Zero
	for i := 0; i < n; i++ {
		cumRent = cumRent.Add(rentCF[i])
		cumOwn = cumOwn.Add(ownCF[i])
		if cumOwn.LessThanOrEqual(cumRent) {
			year := i
			if year == 0 {
				year = 1
			}
			return &year
		}
	}
	return nil
}
