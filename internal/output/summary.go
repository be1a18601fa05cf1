package output

import (
	"fmt"
	"strings"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/rvbgo/rentvsbuy-calculator/pkg/money"
)

// SummarizeScenario renders a deterministic text summary of a computed
// scenario: verdict, break-even sentence, and the key driver rates. It
// reads only fields already present on the result and never recomputes
// anything.
func SummarizeScenario(params *domain.ScenarioParameters, result *domain.ScenarioResult) string {
	years := params.Years

	var verdict string
	if result.TotalRentPaid.LessThan(result.TotalOwnPaid) {
		diff := result.TotalOwnPaid.Sub(result.TotalRentPaid)
		verdict = fmt.Sprintf("Renting is cheaper by %s over %d years.", money.FromDecimal(diff).Format(), years)
	} else {
		diff := result.TotalRentPaid.Sub(result.TotalOwnPaid)
		verdict = fmt.Sprintf("Buying is cheaper by %s over %d years.", money.FromDecimal(diff).Format(), years)
	}

	beText := "No break-even within the chosen horizon."
	if result.BreakEvenYear != nil {
		beText = fmt.Sprintf("Break-even year: %d.", *result.BreakEvenYear)
	}

	drivers := strings.Join([]string{
		"- Mortgage rate: " + money.FormatPercent(params.MortgageRateAnnual),
		"- Rent growth: " + money.FormatPercent(params.RentGrowth),
		"- Home price growth: " + money.FormatPercent(params.HomePriceGrowth),
		"- Property tax: " + money.FormatPercent(params.PropertyTaxRate),
	}, "\n")

	return fmt.Sprintf(`### Decision
%s
%s

### Key drivers
%s

### Notes
Buying generally wins if you stay longer than the break-even point or if rent growth outpaces home appreciation.
Higher mortgage rates or shorter stays make renting more favorable.
`, verdict, beText, drivers)
}
