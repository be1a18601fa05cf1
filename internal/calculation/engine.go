package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// CalculationEngine runs rent-vs-buy projections. It holds no mutable
// state between calls; every computation is a pure function of the
// supplied parameters.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates an engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ValidateParameters checks a scenario for out-of-domain values. It
// returns a *ValidationError describing the first problem found.
func ValidateParameters(params *domain.ScenarioParameters) error {
	if !params.HomePrice.IsPositive() {
		return &ValidationError{Field: "home_price", Reason: "must be positive"}
	}
	if !params.MonthlyRent.IsPositive() {
		return &ValidationError{Field: "monthly_rent", Reason: "must be positive"}
	}
	if params.DownPaymentPct.IsNegative() || params.DownPaymentPct.GreaterThanOrEqual(one) {
		return &ValidationError{Field: "down_payment_pct", Reason: "must be in [0, 1)"}
	}
	if params.MortgageRateAnnual.IsNegative() || params.MortgageRateAnnual.GreaterThanOrEqual(one) {
		return &ValidationError{Field: "mortgage_rate_annual", Reason: "must be in [0, 1)"}
	}
	if params.SellingCost.IsNegative() || params.SellingCost.GreaterThanOrEqual(one) {
		return &ValidationError{Field: "selling_cost", Reason: "must be in [0, 1)"}
	}
	if params.InsurancePerYear.IsNegative() {
		return &ValidationError{Field: "insurance_per_year", Reason: "cannot be negative"}
	}
	if params.Years < 1 {
		return &ValidationError{Field: "years", Reason: "must be at least 1"}
	}
	return nil
}

// ComputeScenario validates params and produces the full year-by-year
// projection. It is total over the valid parameter domain: once validation
// passes, it cannot fail except for the degenerate amortization cases that
// validation already excludes.
func (ce *CalculationEngine) ComputeScenario(params *domain.ScenarioParameters) (*domain.ScenarioResult, error) {
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}
	result, err := ce.simulate(params)
	if err != nil {
		return nil, err
	}

	ce.Logger.Debugf("scenario computed: horizon=%dy rent_paid=%s own_paid=%s wealth_advantage=%s",
		params.Years, result.TotalRentPaid.StringFixed(2), result.TotalOwnPaid.StringFixed(2),
		result.WealthAdvantage.StringFixed(2))

	return result, nil
}
