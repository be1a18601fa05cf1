package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

// CSVFormatter exports the yearly records of every scenario as one flat
// table, one row per scenario-year.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"scenario", "year", "rent_cash", "own_cash", "home_value", "equity", "renter_portfolio"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, scenario := range results.Scenarios {
		for _, rec := range scenario.Result.Records {
			row := []string{
				scenario.Name,
				strconv.Itoa(rec.Year),
				rec.RentCash.StringFixed(2),
				rec.OwnCash.StringFixed(2),
				rec.HomeValue.StringFixed(2),
				rec.Equity.StringFixed(2),
				rec.RenterPortfolio.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
