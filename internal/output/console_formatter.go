package output

import (
	"bytes"
	"fmt"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/rvbgo/rentvsbuy-calculator/pkg/money"
)

// ConsoleFormatter renders a concise plain-text comparison of all
// scenarios.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RENT VS BUY COMPARISON")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Default mortgage rate: %s  rent growth: %s  home price growth: %s\n",
		money.FormatPercent(results.Assumptions.MortgageRateAnnual),
		money.FormatPercent(results.Assumptions.RentGrowth),
		money.FormatPercent(results.Assumptions.HomePriceGrowth),
	)
	fmt.Fprintln(&buf)

	for _, sc := range results.Scenarios {
		r := sc.Result
		fmt.Fprintf(&buf, "%s (%d years)\n", sc.Name, sc.Parameters.Years)
		fmt.Fprintf(&buf, "  Rent paid=%s Own paid=%s (legacy, sale credited)\n",
			money.FromDecimal(r.TotalRentPaid).Format(),
			money.FromDecimal(r.TotalOwnPaid).Format(),
		)
		fmt.Fprintf(&buf, "  Cash spent: rent=%s own=%s\n",
			money.FromDecimal(r.TotalRentCashSpent).Format(),
			money.FromDecimal(r.TotalOwnCashSpent).Format(),
		)
		fmt.Fprintf(&buf, "  Net worth:  renter=%s owner=%s  wealth advantage=%s\n",
			money.FromDecimal(r.RenterNetWorth).Format(),
			money.FromDecimal(r.OwnerNetWorth).Format(),
			money.FromDecimal(r.WealthAdvantage).Format(),
		)
		if r.BreakEvenYear != nil {
			fmt.Fprintf(&buf, "  Break-even year: %d\n", *r.BreakEvenYear)
		} else {
			fmt.Fprintln(&buf, "  No break-even within the horizon")
		}
		if r.RentNPV != nil && r.OwnNPV != nil {
			fmt.Fprintf(&buf, "  NPV: rent=%s own=%s\n",
				money.FromDecimal(*r.RentNPV).Format(),
				money.FromDecimal(*r.OwnNPV).Format(),
			)
		}
		fmt.Fprintln(&buf)
	}

	if mc := results.MonteCarlo; mc != nil {
		fmt.Fprintln(&buf, "MONTE CARLO")
		fmt.Fprintf(&buf, "  Simulations: %d (seed %d)\n", mc.NumSimulations, mc.Seed)
		fmt.Fprintf(&buf, "  P(buying cheaper): %s\n", money.FormatPercent(mc.BuyCheaperProbability))
		if mc.MedianBreakEvenYear != nil {
			fmt.Fprintf(&buf, "  Median break-even year: %s\n", mc.MedianBreakEvenYear.StringFixed(1))
		} else {
			fmt.Fprintln(&buf, "  No trial broke even")
		}
	}

	return buf.Bytes(), nil
}
