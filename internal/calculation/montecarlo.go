package calculation

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

// Distribution parameters for the resampled inputs. Means come from the
// base scenario; these are the spreads and clipping bounds.
var (
	mortgageRateStdDev = 0.004
	mortgageRateMin    = 0.02
	mortgageRateMax    = 0.09

	rentGrowthStdDev = 0.01
	rentGrowthMin    = -0.02
	rentGrowthMax    = 0.08

	priceGrowthStdDev = 0.008
	priceGrowthMin    = -0.02
	priceGrowthMax    = 0.07
)

// defaultWorkers bounds the number of concurrent trial simulations.
const defaultWorkers = 10

// MonteCarloEngine estimates the probability that buying wins by
// resampling the mortgage rate, rent growth, and home price growth around
// the base scenario and re-running the simulator for each trial. Each run
// owns an explicit seeded generator, so concurrent calls with different
// seeds never interfere.
type MonteCarloEngine struct {
	Engine  *CalculationEngine
	Sims    int
	Seed    int64 // 0 means derive from the clock
	Workers int
	Logger  Logger
}

// NewMonteCarloEngine creates a Monte Carlo engine around an existing
// calculation engine.
func NewMonteCarloEngine(engine *CalculationEngine, sims int, seed int64) *MonteCarloEngine {
	return &MonteCarloEngine{
		Engine:  engine,
		Sims:    sims,
		Seed:    seed,
		Workers: defaultWorkers,
		Logger:  engine.Logger,
	}
}

// EstimateMonteCarlo is the engine-level entry point: run sims trials
// around base with the given seed and aggregate the outcomes.
func (ce *CalculationEngine) EstimateMonteCarlo(base *domain.ScenarioParameters, sims int, seed int64) (*domain.MonteCarloResult, error) {
	return NewMonteCarloEngine(ce, sims, seed).Run(base)
}

// Run executes all trials and reduces them to a MonteCarloResult. A trial
// counts as a buy win when the legacy totals favor owning
// (TotalOwnPaid <= TotalRentPaid); break-even years are collected from
// trials that have one.
func (mce *MonteCarloEngine) Run(base *domain.ScenarioParameters) (*domain.MonteCarloResult, error) {
	if mce.Sims < 1 {
		return nil, &ValidationError{Field: "sims", Reason: "must be at least 1"}
	}
	if err := ValidateParameters(base); err != nil {
		return nil, err
	}

	seed := mce.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	rateMean := base.MortgageRateAnnual.InexactFloat64()
	rentMean := base.RentGrowth.InexactFloat64()
	priceMean := base.HomePriceGrowth.InexactFloat64()

	// Sample every trial up front from the single seeded generator. The
	// simulations can then run on the pool in any order without changing
	// what a given seed produces.
	trials := make([]domain.ScenarioParameters, mce.Sims)
	for i := range trials {
		trial := *base
		trial.MortgageRateAnnual = sampleClipped(rng, rateMean, mortgageRateStdDev, mortgageRateMin, mortgageRateMax)
		trial.RentGrowth = sampleClipped(rng, rentMean, rentGrowthStdDev, rentGrowthMin, rentGrowthMax)
		trial.HomePriceGrowth = sampleClipped(rng, priceMean, priceGrowthStdDev, priceGrowthMin, priceGrowthMax)
		trials[i] = trial
	}

	type trialOutcome struct {
		buyWin    bool
		breakEven *int
		err       error
	}
	outcomes := make([]trialOutcome, mce.Sims)

	workers := mce.Workers
	if workers < 1 {
		workers = defaultWorkers
	}
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i := 0; i < mce.Sims; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			result, err := mce.Engine.ComputeScenario(&trials[idx])
			if err != nil {
				outcomes[idx] = trialOutcome{err: err}
				return
			}
			outcomes[idx] = trialOutcome{
				buyWin:    result.TotalOwnPaid.LessThanOrEqual(result.TotalRentPaid),
				breakEven: result.BreakEvenYear,
			}
		}(i)
	}
	wg.Wait()

	// Final reduction; no counters are shared across trials.
	wins := 0
	breakEvens := make([]int, 0, mce.Sims)
	for _, outcome := range outcomes {
		if outcome.err != nil {
			// Sampled parameters are clipped into the valid domain, so a
			// trial failure indicates a caller-supplied base problem.
			return nil, outcome.err
		}
		if outcome.buyWin {
			wins++
		}
		if outcome.breakEven != nil {
			breakEvens = append(breakEvens, *outcome.breakEven)
		}
	}

	probability := decimal.NewFromInt(int64(wins)).Div(decimal.NewFromInt(int64(mce.Sims)))
	result := &domain.MonteCarloResult{
		BuyCheaperProbability: probability,
		MedianBreakEvenYear:   medianBreakEven(breakEvens),
		NumSimulations:        mce.Sims,
		Seed:                  seed,
	}

	mce.Logger.Debugf("monte carlo done: sims=%d seed=%d buy_wins=%d", mce.Sims, seed, wins)

	return result, nil
}

// sampleClipped draws one normal sample and clips it into [min, max].
func sampleClipped(rng *rand.Rand, mean, stdDev, min, max float64) decimal.Decimal {
	v := rng.NormFloat64()*stdDev + mean
	if v < min {
		v = min
	} else if v > max {
		v = max
	}
	return decimal.NewFromFloat(v)
}

// medianBreakEven returns the median of the collected break-even years,
// averaging the two middle values for even counts, or nil when no trial
// broke even.
func medianBreakEven(years []int) *decimal.Decimal {
	if len(years) == 0 {
		return nil
	}
	sort.Ints(years)
	mid := len(years) / 2
	var median decimal.Decimal
	if len(years)%2 == 1 {
		median = decimal.NewFromInt(int64(years[mid]))
	} else {
		median = decimal.NewFromInt(int64(years[mid-1] + years[mid])).Div(decimal.NewFromInt(2))
	}
	return &median
}
