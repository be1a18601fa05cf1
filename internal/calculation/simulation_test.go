package calculation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

// workedExample is a hand-verifiable single-year scenario: every rate and
// cost except the mortgage is zero, so each output can be checked on paper.
func workedExample() domain.ScenarioParameters {
	return domain.ScenarioParameters{
		HomePrice:          decimal.NewFromInt(300000),
		MonthlyRent:        decimal.NewFromInt(1500),
		DownPaymentPct:     decimal.NewFromFloat(0.20),
		MortgageRateAnnual: decimal.NewFromFloat(0.06),
		Years:              1,
	}
}

func realisticScenario() domain.ScenarioParameters {
	return domain.ScenarioParameters{
		HomePrice:          decimal.NewFromInt(450000),
		MonthlyRent:        decimal.NewFromInt(1900),
		DownPaymentPct:     decimal.NewFromFloat(0.20),
		MortgageRateAnnual: decimal.NewFromFloat(0.068),
		PropertyTaxRate:    decimal.NewFromFloat(0.012),
		MaintenanceRate:    decimal.NewFromFloat(0.01),
		HomePriceGrowth:    decimal.NewFromFloat(0.025),
		RentGrowth:         decimal.NewFromFloat(0.03),
		InvestmentReturn:   decimal.NewFromFloat(0.04),
		ClosingCostBuy:     decimal.NewFromFloat(0.03),
		SellingCost:        decimal.NewFromFloat(0.06),
		InsurancePerYear:   decimal.NewFromInt(1200),
		Years:              10,
	}
}

func TestComputeScenarioWorkedExample(t *testing.T) {
	engine := NewCalculationEngine()
	params := workedExample()

	result, err := engine.ComputeScenario(&params)
	require.NoError(t, err)

	// Loan of 240000 at 6% over 30 years.
	payment, err := MonthlyMortgagePayment(decimal.NewFromInt(240000), decimal.NewFromFloat(0.06), LoanTermYears)
	require.NoError(t, err)
	assert.InDelta(t, 1438.92, payment.InexactFloat64(), 0.01)

	annualMortgage := payment.Mul(decimal.NewFromInt(12))
	assert.InDelta(t, 17267.06, annualMortgage.InexactFloat64(), 0.01)
	assert.True(t, result.OwnSeries[1].Add(result.NetProceeds).Equal(annualMortgage),
		"final own cash flow should be annual mortgage minus sale proceeds")

	// Interest 14400 on the full balance; the rest pays principal.
	assert.InDelta(t, 62867.06, result.EquitySeries[0].InexactFloat64(), 0.01)
	assert.InDelta(t, 62867.06, result.NetProceeds.InexactFloat64(), 0.01)

	assert.True(t, result.TotalRentPaid.Equal(decimal.NewFromInt(18000)), "rent total, got %s", result.TotalRentPaid)
	// The mortgage division error cancels out of the legacy own total.
	assert.True(t, result.TotalOwnPaid.Equal(decimal.NewFromInt(14400)), "own total, got %s", result.TotalOwnPaid)

	assert.InDelta(t, 77267.06, result.TotalOwnCashSpent.InexactFloat64(), 0.01)

	// Owning costs less per month than rent, so the renter banks nothing
	// beyond the seed portfolio.
	assert.True(t, result.RenterNetWorth.Equal(decimal.NewFromInt(60000)), "renter net worth, got %s", result.RenterNetWorth)
	assert.InDelta(t, 2867.06, result.WealthAdvantage.InexactFloat64(), 0.01)

	require.NotNil(t, result.BreakEvenYear)
	assert.Equal(t, 1, *result.BreakEvenYear)
}

func TestComputeScenarioSeriesLengths(t *testing.T) {
	engine := NewCalculationEngine()
	params := realisticScenario()

	result, err := engine.ComputeScenario(&params)
	require.NoError(t, err)

	assert.Len(t, result.RentSeries, params.Years+1)
	assert.Len(t, result.OwnSeries, params.Years+1)
	assert.Len(t, result.EquitySeries, params.Years)
	assert.Len(t, result.RenterSavingsSeries, params.Years)
	assert.Len(t, result.PriceSeries, params.Years)
	assert.Len(t, result.Records, params.Years)

	assert.True(t, result.RentSeries[0].IsZero(), "renter has no year-0 outlay")
	assert.True(t, result.OwnSeries[0].Equal(result.DownPayment.Add(result.ClosingCost)),
		"owner's year-0 outlay is down payment plus closing cost")
}

func TestComputeScenarioNonNegativeSeries(t *testing.T) {
	engine := NewCalculationEngine()
	params := realisticScenario()

	result, err := engine.ComputeScenario(&params)
	require.NoError(t, err)

	for i, equity := range result.EquitySeries {
		assert.False(t, equity.IsNegative(), "equity negative at year %d: %s", i+1, equity)
	}
	for i, portfolio := range result.RenterSavingsSeries {
		assert.False(t, portfolio.IsNegative(), "portfolio negative at year %d: %s", i+1, portfolio)
	}
	for i, price := range result.PriceSeries {
		assert.True(t, price.IsPositive(), "home value not positive at year %d: %s", i+1, price)
	}
}

func TestComputeScenarioIdempotent(t *testing.T) {
	engine := NewCalculationEngine()
	params := realisticScenario()

	first, err := engine.ComputeScenario(&params)
	require.NoError(t, err)
	second, err := engine.ComputeScenario(&params)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON, "identical parameters must give identical results")
}

func TestComputeScenarioNPV(t *testing.T) {
	engine := NewCalculationEngine()
	params := realisticScenario()
	discount := decimal.NewFromFloat(0.03)
	params.DiscountRate = &discount

	result, err := engine.ComputeScenario(&params)
	require.NoError(t, err)

	require.NotNil(t, result.RentNPV)
	require.NotNil(t, result.OwnNPV)
	// Positive cash flows shrink under discounting, and year 0 is excluded.
	assert.True(t, result.RentNPV.LessThan(result.TotalRentPaid),
		"discounted rent %s should be below nominal %s", result.RentNPV, result.TotalRentPaid)

	// Without a discount rate the NPV fields stay unset.
	params.DiscountRate = nil
	plain, err := engine.ComputeScenario(&params)
	require.NoError(t, err)
	assert.Nil(t, plain.RentNPV)
	assert.Nil(t, plain.OwnNPV)
}

func TestComputeScenarioPriceSeriesCompounds(t *testing.T) {
	engine := NewCalculationEngine()
	params := realisticScenario()

	result, err := engine.ComputeScenario(&params)
	require.NoError(t, err)

	growth := decimal.NewFromInt(1).Add(params.HomePriceGrowth)
	expected := params.HomePrice
	for i, price := range result.PriceSeries {
		expected = expected.Mul(growth)
		assert.True(t, price.Equal(expected), "year %d price %s, want %s", i+1, price, expected)
	}
}

func TestComputeScenarioValidation(t *testing.T) {
	engine := NewCalculationEngine()

	cases := []struct {
		name   string
		mutate func(*domain.ScenarioParameters)
		field  string
	}{
		{"zero home price", func(p *domain.ScenarioParameters) { p.HomePrice = decimal.Zero }, "home_price"},
		{"negative rent", func(p *domain.ScenarioParameters) { p.MonthlyRent = decimal.NewFromInt(-10) }, "monthly_rent"},
		{"full down payment", func(p *domain.ScenarioParameters) { p.DownPaymentPct = decimal.NewFromInt(1) }, "down_payment_pct"},
		{"negative down payment", func(p *domain.ScenarioParameters) { p.DownPaymentPct = decimal.NewFromFloat(-0.1) }, "down_payment_pct"},
		{"rate of 100%", func(p *domain.ScenarioParameters) { p.MortgageRateAnnual = decimal.NewFromInt(1) }, "mortgage_rate_annual"},
		{"selling cost of 100%", func(p *domain.ScenarioParameters) { p.SellingCost = decimal.NewFromInt(1) }, "selling_cost"},
		{"negative insurance", func(p *domain.ScenarioParameters) { p.InsurancePerYear = decimal.NewFromInt(-1) }, "insurance_per_year"},
		{"zero years", func(p *domain.ScenarioParameters) { p.Years = 0 }, "years"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := realisticScenario()
			tc.mutate(&params)

			_, err := engine.ComputeScenario(&params)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestComputeScenarioZeroRateMortgage(t *testing.T) {
	engine := NewCalculationEngine()
	params := workedExample()
	params.MortgageRateAnnual = decimal.Zero

	result, err := engine.ComputeScenario(&params)
	require.NoError(t, err)

	// 240000/360 = 666.67/month, 8000/year; all of it pays principal.
	annual := decimal.NewFromInt(240000).Div(decimal.NewFromInt(360)).Mul(decimal.NewFromInt(12))
	assert.True(t, result.Records[0].OwnCash.Equal(annual), "own cash %s, want %s", result.Records[0].OwnCash, annual)
	assert.InDelta(t, 300000-232000, result.EquitySeries[0].InexactFloat64(), 0.01)
}

func TestValidateParametersAccepts(t *testing.T) {
	params := realisticScenario()
	require.NoError(t, ValidateParameters(&params))

	// Zero rate is legal; the amortization branch handles it.
	params.MortgageRateAnnual = decimal.Zero
	require.NoError(t, ValidateParameters(&params))
}

func TestComputationErrorUnreachableAfterValidation(t *testing.T) {
	// Everything validation lets through must simulate cleanly.
	engine := NewCalculationEngine()
	params := realisticScenario()
	params.DownPaymentPct = decimal.NewFromFloat(0.999) // tiny loan

	_, err := engine.ComputeScenario(&params)
	require.NoError(t, err)

	var compErr *ComputationError
	assert.False(t, errors.As(err, &compErr))
}
