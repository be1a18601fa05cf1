package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

// Winner identifies which side of the comparison comes out ahead.
type Winner string

const (
	WinnerBuy  Winner = "buy"
	WinnerRent Winner = "rent"
	WinnerEven Winner = "even"
)

// WealthComparison is the net-wealth framing of a computed scenario: what
// each side spent, what each side holds at the end, and the true cost
// (cash spent minus wealth accumulated) of each path. Lower true cost wins.
type WealthComparison struct {
	RenterCashSpent decimal.Decimal `json:"renter_cash_spent"`
	OwnerCashSpent  decimal.Decimal `json:"owner_cash_spent"`
	RenterNetWorth  decimal.Decimal `json:"renter_net_worth"`
	OwnerNetWorth   decimal.Decimal `json:"owner_net_worth"`
	RenterTrueCost  decimal.Decimal `json:"renter_true_cost"`
	OwnerTrueCost   decimal.Decimal `json:"owner_true_cost"`
	WealthAdvantage decimal.Decimal `json:"wealth_advantage"`
	Winner          Winner          `json:"winner"`
}

// CompareWealth derives the true-cost comparison from an already computed
// result. It reads only the wealth-based fields; the legacy equity-credited
// totals measure something different and are never an input here.
func CompareWealth(result *domain.ScenarioResult) WealthComparison {
	comparison := WealthComparison{
		RenterCashSpent: result.TotalRentCashSpent,
		OwnerCashSpent:  result.TotalOwnCashSpent,
		RenterNetWorth:  result.RenterNetWorth,
		OwnerNetWorth:   result.OwnerNetWorth,
		RenterTrueCost:  result.TotalRentTrueCost,
		OwnerTrueCost:   result.TotalOwnTrueCost,
		WealthAdvantage: result.WealthAdvantage,
	}

	switch {
	case comparison.OwnerTrueCost.LessThan(comparison.RenterTrueCost):
		comparison.Winner = WinnerBuy
	case comparison.RenterTrueCost.LessThan(comparison.OwnerTrueCost):
		comparison.Winner = WinnerRent
	default:
		comparison.Winner = WinnerEven
	}

	return comparison
}
