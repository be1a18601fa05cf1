package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

// simulate produces the year-by-year trajectory for one validated scenario.
//
// The principal/interest split is a deliberate annual approximation: each
// year's interest is the prior balance times the annual rate, and the
// remainder of the annual payment reduces principal. A month-by-month
// amortization schedule would give slightly different numbers; the annual
// approximation is the contract, so changing it is a behavior change.
func (ce *CalculationEngine) simulate(p *domain.ScenarioParameters) (*domain.ScenarioResult, error) {
	downPayment := p.HomePrice.Mul(p.DownPaymentPct)
	closingCost := p.HomePrice.Mul(p.ClosingCostBuy)
	loan := p.HomePrice.Sub(downPayment)

	payment, err := MonthlyMortgagePayment(loan, p.MortgageRateAnnual, LoanTermYears)
	if err != nil {
		return nil, err
	}
	annualMortgage := payment.Mul(twelve)

	rentFactor := one.Add(p.RentGrowth)
	priceFactor := one.Add(p.HomePriceGrowth)
	investFactor := one.Add(p.InvestmentReturn)

	homeValue := p.HomePrice
	balance := loan
	// The renter starts with the cash the owner sank into the purchase.
	portfolio := downPayment.Add(closingCost)

	records := make([]domain.YearlyRecord, 0, p.Years)

	for y := 1; y <= p.Years; y++ {
		growth := rentFactor.Pow(decimal.NewFromInt(int64(y - 1)))
		monthlyRent := p.MonthlyRent.Mul(growth)
		rentCash := monthlyRent.Mul(twelve)

		// Tax and maintenance are assessed on the value carried in from the
		// prior year; appreciation lands after the year's costs.
		ownCash := annualMortgage.
			Add(p.PropertyTaxRate.Mul(homeValue)).
			Add(p.MaintenanceRate.Mul(homeValue)).
			Add(p.InsurancePerYear)

		homeValue = homeValue.Mul(priceFactor)

		interest := balance.Mul(p.MortgageRateAnnual)
		if interest.IsNegative() {
			interest = decimal.Zero
		}
		principalPaid := annualMortgage.Sub(interest)
		if principalPaid.IsNegative() {
			principalPaid = decimal.Zero
		}
		balance = balance.Sub(principalPaid)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		equity := homeValue.Sub(balance)

		// The renter only banks a savings contribution in years when owning
		// costs more per month; the existing portfolio compounds either way.
		monthlyDiff := ownCash.Div(twelve).Sub(monthlyRent)
		annualSavings := monthlyDiff.Mul(twelve)
		if annualSavings.IsNegative() {
			annualSavings = decimal.Zero
		}
		portfolio = portfolio.Mul(investFactor).Add(annualSavings)

		records = append(records, domain.YearlyRecord{
			Year:            y,
			RentCash:        rentCash,
			OwnCash:         ownCash,
			HomeValue:       homeValue,
			Equity:          equity,
			RenterPortfolio: portfolio,
		})
	}

	final := records[len(records)-1]
	netProceeds := final.Equity.Sub(p.SellingCost.Mul(final.HomeValue))

	// Cash-flow arrays carry an explicit year-0 entry: nothing for the
	// renter, the purchase cash for the owner. The sale is modeled in the
	// terminal year only, as a credit against that year's owner outlay.
	rentCF := make([]decimal.Decimal, 0, p.Years+1)
	ownCF := make([]decimal.Decimal, 0, p.Years+1)
	equitySeries := make([]decimal.Decimal, 0, p.Years)
	savingsSeries := make([]decimal.Decimal, 0, p.Years)
	priceSeries := make([]decimal.Decimal, 0, p.Years)

	rentCF = append(rentCF, decimal.Zero)
	ownCF = append(ownCF, downPayment.Add(closingCost))
	var ownAnnualSum decimal.Decimal
	for _, rec := range records {
		rentCF = append(rentCF, rec.RentCash)
		ownCF = append(ownCF, rec.OwnCash)
		ownAnnualSum = ownAnnualSum.Add(rec.OwnCash)
		equitySeries = append(equitySeries, rec.Equity)
		savingsSeries = append(savingsSeries, rec.RenterPortfolio)
		priceSeries = append(priceSeries, rec.HomeValue)
	}
	ownCF[len(ownCF)-1] = ownCF[len(ownCF)-1].Sub(netProceeds)

	totalRentPaid := sum(rentCF)
	totalOwnPaid := sum(ownCF)

	totalRentCashSpent := totalRentPaid
	totalOwnCashSpent := downPayment.Add(closingCost).Add(ownAnnualSum)
	ownerNetWorth := netProceeds
	renterNetWorth := portfolio

	result := &domain.ScenarioResult{
		TotalRentPaid:       totalRentPaid,
		TotalOwnPaid:        totalOwnPaid,
		TotalRentCashSpent:  totalRentCashSpent,
		TotalOwnCashSpent:   totalOwnCashSpent,
		RenterNetWorth:      renterNetWorth,
		OwnerNetWorth:       ownerNetWorth,
		TotalRentTrueCost:   totalRentCashSpent.Sub(renterNetWorth),
		TotalOwnTrueCost:    totalOwnCashSpent.Sub(ownerNetWorth),
		WealthAdvantage:     ownerNetWorth.Sub(renterNetWorth),
		BreakEvenYear:       FindBreakEvenYear(rentCF, ownCF),
		RentSeries:          rentCF,
		OwnSeries:           ownCF,
		EquitySeries:        equitySeries,
		RenterSavingsSeries: savingsSeries,
		PriceSeries:         priceSeries,
		Records:             records,
		NetProceeds:         netProceeds,
		DownPayment:         downPayment,
		ClosingCost:         closingCost,
	}

	if p.DiscountRate != nil && !p.DiscountRate.IsZero() {
		rentNPV := netPresentValue(rentCF, *p.DiscountRate)
		ownNPV := netPresentValue(ownCF, *p.DiscountRate)
		result.RentNPV = &rentNPV
		result.OwnNPV = &ownNPV
	}

	return result, nil
}

// netPresentValue discounts every cash-flow entry except index 0; year 0 is
// already present-day money.
func netPresentValue(cashFlows []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	factor := one.Add(rate)
	for t := 1; t < len(cashFlows); t++ {
		discount := factor.Pow(decimal.NewFromInt(int64(t)))
		total = total.Add(cashFlows[t].Div(discount))
	}
	return total
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
