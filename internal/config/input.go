package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rvbgo/rentvsbuy-calculator/internal/calculation"
	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

// InputParser handles parsing of scenario input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// inputFile mirrors the YAML document. Optional scenario fields are
// pointers so an explicit zero (a legitimate rate) is distinguishable from
// an omitted field, which falls back to the assumption set.
type inputFile struct {
	Assumptions *assumptionsFile `yaml:"assumptions"`
	Scenarios   []scenarioFile   `yaml:"scenarios"`
}

type assumptionsFile struct {
	MortgageRateAnnual *decimal.Decimal `yaml:"mortgage_rate_annual"`
	PropertyTaxRate    *decimal.Decimal `yaml:"property_tax_rate"`
	MaintenanceRate    *decimal.Decimal `yaml:"maintenance_rate"`
	HomePriceGrowth    *decimal.Decimal `yaml:"home_price_growth"`
	RentGrowth         *decimal.Decimal `yaml:"rent_growth"`
	InvestmentReturn   *decimal.Decimal `yaml:"investment_return"`
	ClosingCostBuy     *decimal.Decimal `yaml:"closing_cost_buy"`
	SellingCost        *decimal.Decimal `yaml:"selling_cost"`
	InsurancePerYear   *decimal.Decimal `yaml:"insurance_per_year"`
	Years              *int             `yaml:"years"`
}

type scenarioFile struct {
	Name               string           `yaml:"name"`
	HomePrice          decimal.Decimal  `yaml:"home_price"`
	MonthlyRent        decimal.Decimal  `yaml:"monthly_rent"`
	DownPaymentPct     decimal.Decimal  `yaml:"down_payment_pct"`
	MortgageRateAnnual *decimal.Decimal `yaml:"mortgage_rate_annual"`
	PropertyTaxRate    *decimal.Decimal `yaml:"property_tax_rate"`
	MaintenanceRate    *decimal.Decimal `yaml:"maintenance_rate"`
	HomePriceGrowth    *decimal.Decimal `yaml:"home_price_growth"`
	RentGrowth         *decimal.Decimal `yaml:"rent_growth"`
	InvestmentReturn   *decimal.Decimal `yaml:"investment_return"`
	ClosingCostBuy     *decimal.Decimal `yaml:"closing_cost_buy"`
	SellingCost        *decimal.Decimal `yaml:"selling_cost"`
	InsurancePerYear   *decimal.Decimal `yaml:"insurance_per_year"`
	Years              *int             `yaml:"years"`
	DiscountRate       *decimal.Decimal `yaml:"discount_rate"`
}

// LoadFromFile loads and validates a scenario set from a YAML file,
// applying the default assumptions to any omitted field.
func (ip *InputParser) LoadFromFile(filename string) (*domain.ScenarioSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse materializes a scenario set from raw YAML.
func (ip *InputParser) Parse(data []byte) (*domain.ScenarioSet, error) {
	var file inputFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	assumptions := mergeAssumptions(domain.DefaultAssumptions(), file.Assumptions)

	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}

	set := &domain.ScenarioSet{
		Assumptions: assumptions,
		Scenarios:   make([]domain.NamedScenario, len(file.Scenarios)),
	}
	for i, sc := range file.Scenarios {
		name := sc.Name
		if name == "" {
			name = fmt.Sprintf("scenario %d", i+1)
		}
		params := materialize(sc, assumptions)
		if err := calculation.ValidateParameters(&params); err != nil {
			return nil, fmt.Errorf("scenario %q validation failed: %w", name, err)
		}
		set.Scenarios[i] = domain.NamedScenario{Name: name, Parameters: params}
	}

	return set, nil
}

// mergeAssumptions overlays the file's assumption block on the defaults.
func mergeAssumptions(base domain.Assumptions, file *assumptionsFile) domain.Assumptions {
	if file == nil {
		return base
	}
	if file.MortgageRateAnnual != nil {
		base.MortgageRateAnnual = *file.MortgageRateAnnual
	}
	if file.PropertyTaxRate != nil {
		base.PropertyTaxRate = *file.PropertyTaxRate
	}
	if file.MaintenanceRate != nil {
		base.MaintenanceRate = *file.MaintenanceRate
	}
	if file.HomePriceGrowth != nil {
		base.HomePriceGrowth = *file.HomePriceGrowth
	}
	if file.RentGrowth != nil {
		base.RentGrowth = *file.RentGrowth
	}
	if file.InvestmentReturn != nil {
		base.InvestmentReturn = *file.InvestmentReturn
	}
	if file.ClosingCostBuy != nil {
		base.ClosingCostBuy = *file.ClosingCostBuy
	}
	if file.SellingCost != nil {
		base.SellingCost = *file.SellingCost
	}
	if file.InsurancePerYear != nil {
		base.InsurancePerYear = *file.InsurancePerYear
	}
	if file.Years != nil {
		base.Years = *file.Years
	}
	return base
}

// materialize builds concrete scenario parameters, falling back to the
// assumption set for every omitted optional field.
func materialize(sc scenarioFile, a domain.Assumptions) domain.ScenarioParameters {
	pick := func(v *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
		if v != nil {
			return *v
		}
		return fallback
	}

	params := domain.ScenarioParameters{
		HomePrice:          sc.HomePrice,
		MonthlyRent:        sc.MonthlyRent,
		DownPaymentPct:     sc.DownPaymentPct,
		MortgageRateAnnual: pick(sc.MortgageRateAnnual, a.MortgageRateAnnual),
		PropertyTaxRate:    pick(sc.PropertyTaxRate, a.PropertyTaxRate),
		MaintenanceRate:    pick(sc.MaintenanceRate, a.MaintenanceRate),
		HomePriceGrowth:    pick(sc.HomePriceGrowth, a.HomePriceGrowth),
		RentGrowth:         pick(sc.RentGrowth, a.RentGrowth),
		InvestmentReturn:   pick(sc.InvestmentReturn, a.InvestmentReturn),
		ClosingCostBuy:     pick(sc.ClosingCostBuy, a.ClosingCostBuy),
		SellingCost:        pick(sc.SellingCost, a.SellingCost),
		InsurancePerYear:   pick(sc.InsurancePerYear, a.InsurancePerYear),
		Years:              a.Years,
		DiscountRate:       sc.DiscountRate,
	}
	if sc.Years != nil {
		params.Years = *sc.Years
	}
	return params
}

// CreateExampleConfiguration returns a starter scenario set.
func (ip *InputParser) CreateExampleConfiguration() *domain.ScenarioSet {
	assumptions := domain.DefaultAssumptions()

	starter := domain.ScenarioParameters{
		HomePrice:          decimal.NewFromInt(450000),
		MonthlyRent:        decimal.NewFromInt(1900),
		DownPaymentPct:     decimal.NewFromFloat(0.20),
		MortgageRateAnnual: assumptions.MortgageRateAnnual,
		PropertyTaxRate:    assumptions.PropertyTaxRate,
		MaintenanceRate:    assumptions.MaintenanceRate,
		HomePriceGrowth:    assumptions.HomePriceGrowth,
		RentGrowth:         assumptions.RentGrowth,
		InvestmentReturn:   assumptions.InvestmentReturn,
		ClosingCostBuy:     assumptions.ClosingCostBuy,
		SellingCost:        assumptions.SellingCost,
		InsurancePerYear:   assumptions.InsurancePerYear,
		Years:              assumptions.Years,
	}

	longStay := starter
	longStay.Years = 20

	lowDown := starter
	lowDown.DownPaymentPct = decimal.NewFromFloat(0.05)

	return &domain.ScenarioSet{
		Assumptions: assumptions,
		Scenarios: []domain.NamedScenario{
			{Name: "Baseline 10-year stay", Parameters: starter},
			{Name: "Long 20-year stay", Parameters: longStay},
			{Name: "Low down payment", Parameters: lowDown},
		},
	}
}

// WriteExampleFile marshals the example configuration to YAML at path.
func (ip *InputParser) WriteExampleFile(path string) error {
	set := ip.CreateExampleConfiguration()

	file := inputFile{
		Assumptions: &assumptionsFile{
			MortgageRateAnnual: &set.Assumptions.MortgageRateAnnual,
			PropertyTaxRate:    &set.Assumptions.PropertyTaxRate,
			MaintenanceRate:    &set.Assumptions.MaintenanceRate,
			HomePriceGrowth:    &set.Assumptions.HomePriceGrowth,
			RentGrowth:         &set.Assumptions.RentGrowth,
			InvestmentReturn:   &set.Assumptions.InvestmentReturn,
			ClosingCostBuy:     &set.Assumptions.ClosingCostBuy,
			SellingCost:        &set.Assumptions.SellingCost,
			InsurancePerYear:   &set.Assumptions.InsurancePerYear,
			Years:              &set.Assumptions.Years,
		},
	}
	for i := range set.Scenarios {
		sc := &set.Scenarios[i]
		entry := scenarioFile{
			Name:           sc.Name,
			HomePrice:      sc.Parameters.HomePrice,
			MonthlyRent:    sc.Parameters.MonthlyRent,
			DownPaymentPct: sc.Parameters.DownPaymentPct,
		}
		if sc.Parameters.Years != set.Assumptions.Years {
			years := sc.Parameters.Years
			entry.Years = &years
		}
		file.Scenarios = append(file.Scenarios, entry)
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
