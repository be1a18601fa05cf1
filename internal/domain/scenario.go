package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioParameters describes one rent-vs-buy scenario. All rates are
// annual fractions (0.06 = 6%). The struct is treated as immutable by the
// calculation engine; callers own it and it is never written to.
type ScenarioParameters struct {
	HomePrice          decimal.Decimal  `yaml:"home_price" json:"home_price"`
	MonthlyRent        decimal.Decimal  `yaml:"monthly_rent" json:"monthly_rent"`
	DownPaymentPct     decimal.Decimal  `yaml:"down_payment_pct" json:"down_payment_pct"`
	MortgageRateAnnual decimal.Decimal  `yaml:"mortgage_rate_annual" json:"mortgage_rate_annual"`
	PropertyTaxRate    decimal.Decimal  `yaml:"property_tax_rate" json:"property_tax_rate"`
	MaintenanceRate    decimal.Decimal  `yaml:"maintenance_rate" json:"maintenance_rate"`
	HomePriceGrowth    decimal.Decimal  `yaml:"home_price_growth" json:"home_price_growth"`
	RentGrowth         decimal.Decimal  `yaml:"rent_growth" json:"rent_growth"`
	InvestmentReturn   decimal.Decimal  `yaml:"investment_return" json:"investment_return"`
	ClosingCostBuy     decimal.Decimal  `yaml:"closing_cost_buy" json:"closing_cost_buy"`
	SellingCost        decimal.Decimal  `yaml:"selling_cost" json:"selling_cost"`
	InsurancePerYear   decimal.Decimal  `yaml:"insurance_per_year" json:"insurance_per_year"`
	Years              int              `yaml:"years" json:"years"`
	DiscountRate       *decimal.Decimal `yaml:"discount_rate,omitempty" json:"discount_rate,omitempty"`
}

// YearlyRecord is one simulated year of the projection. Records are
// produced once per year, in order, and never mutated afterwards.
type YearlyRecord struct {
	Year            int             `json:"year"`
	RentCash        decimal.Decimal `json:"rent_cash"`
	OwnCash         decimal.Decimal `json:"own_cash"`
	HomeValue       decimal.Decimal `json:"home_value"`
	Equity          decimal.Decimal `json:"equity"`
	RenterPortfolio decimal.Decimal `json:"renter_portfolio"`
}

// ScenarioResult is the complete output of one scenario simulation. The
// field set is the binding contract with display collaborators: the legacy
// totals, the cash-spent/net-worth/true-cost/wealth-advantage metrics,
// the break-even year, and the five parallel series.
//
// RentSeries and OwnSeries are cash-flow arrays of length Years+1 with an
// explicit year-0 entry (0 for the renter, down payment plus closing cost
// for the owner; sale proceeds are subtracted from the final owner entry).
// EquitySeries, RenterSavingsSeries, and PriceSeries have length Years.
type ScenarioResult struct {
	// Legacy totals: straight sums of the cash-flow arrays, so equity is
	// credited only through the sale in the terminal year.
	TotalRentPaid decimal.Decimal `json:"total_rent_paid"`
	TotalOwnPaid  decimal.Decimal `json:"total_own_paid"`

	// Wealth-based comparison. Cash spent carries no equity credit; the
	// true cost of each side is cash spent minus wealth accumulated.
	TotalRentCashSpent decimal.Decimal `json:"total_rent_cash_spent"`
	TotalOwnCashSpent  decimal.Decimal `json:"total_own_cash_spent"`
	RenterNetWorth     decimal.Decimal `json:"renter_net_worth"`
	OwnerNetWorth      decimal.Decimal `json:"owner_net_worth"`
	TotalRentTrueCost  decimal.Decimal `json:"total_rent_true_cost"`
	TotalOwnTrueCost   decimal.Decimal `json:"total_own_true_cost"`
	WealthAdvantage    decimal.Decimal `json:"wealth_advantage"` // positive favors owning

	// BreakEvenYear is the first year owning is cumulatively no more
	// expensive than renting, or nil if that never happens in the horizon.
	BreakEvenYear *int `json:"break_even_year"`

	RentSeries          []decimal.Decimal `json:"rent_series"`
	OwnSeries           []decimal.Decimal `json:"own_series"`
	EquitySeries        []decimal.Decimal `json:"equity_series"`
	RenterSavingsSeries []decimal.Decimal `json:"renter_savings_series"`
	PriceSeries         []decimal.Decimal `json:"price_series"`

	Records []YearlyRecord `json:"yearly_records"`

	NetProceeds decimal.Decimal `json:"net_proceeds"`
	DownPayment decimal.Decimal `json:"down_payment"`
	ClosingCost decimal.Decimal `json:"closing_cost"`

	RentNPV *decimal.Decimal `json:"rent_npv,omitempty"`
	OwnNPV  *decimal.Decimal `json:"own_npv,omitempty"`
}

// MonteCarloResult aggregates many independent scenario runs under
// resampled rates. Individual trial results are not retained.
type MonteCarloResult struct {
	BuyCheaperProbability decimal.Decimal  `json:"buy_cheaper_probability"`
	MedianBreakEvenYear   *decimal.Decimal `json:"median_break_even_year"`
	NumSimulations        int              `json:"num_simulations"`
	Seed                  int64            `json:"seed"`
}

// NamedScenario pairs a scenario with its display name from the input file.
type NamedScenario struct {
	Name       string             `yaml:"name" json:"name"`
	Parameters ScenarioParameters `yaml:"parameters" json:"parameters"`
}

// ScenarioSet is a fully materialized input file: defaults already applied.
type ScenarioSet struct {
	Assumptions Assumptions     `json:"assumptions"`
	Scenarios   []NamedScenario `json:"scenarios"`
}

// ScenarioSummary is one computed scenario prepared for reporting.
type ScenarioSummary struct {
	Name       string             `json:"name"`
	Parameters ScenarioParameters `json:"parameters"`
	Result     *ScenarioResult    `json:"result"`
	Verdict    string             `json:"verdict"`
}

// ScenarioComparison is the report root handed to output formatters.
type ScenarioComparison struct {
	Assumptions Assumptions       `json:"assumptions"`
	Scenarios   []ScenarioSummary `json:"scenarios"`
	MonteCarlo  *MonteCarloResult `json:"monte_carlo,omitempty"`
}
