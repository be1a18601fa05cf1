package domain

import (
	"github.com/shopspring/decimal"
)

// Assumptions holds the fallback values applied to scenario fields the
// input file leaves out. It is an explicit value passed into each call,
// never module-level mutable state, so the engine stays a pure function
// usable concurrently.
type Assumptions struct {
	MortgageRateAnnual decimal.Decimal `yaml:"mortgage_rate_annual" json:"mortgage_rate_annual"`
	PropertyTaxRate    decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate"`
	MaintenanceRate    decimal.Decimal `yaml:"maintenance_rate" json:"maintenance_rate"`
	HomePriceGrowth    decimal.Decimal `yaml:"home_price_growth" json:"home_price_growth"`
	RentGrowth         decimal.Decimal `yaml:"rent_growth" json:"rent_growth"`
	InvestmentReturn   decimal.Decimal `yaml:"investment_return" json:"investment_return"`
	ClosingCostBuy     decimal.Decimal `yaml:"closing_cost_buy" json:"closing_cost_buy"`
	SellingCost        decimal.Decimal `yaml:"selling_cost" json:"selling_cost"`
	InsurancePerYear   decimal.Decimal `yaml:"insurance_per_year" json:"insurance_per_year"`
	Years              int             `yaml:"years" json:"years"`
}

// DefaultAssumptions returns the stock assumption set: a 30-year fixed rate
// near recent market levels, typical carrying costs, and a 10-year horizon.
func DefaultAssumptions() Assumptions {
	return Assumptions{
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
