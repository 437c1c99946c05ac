package calculation

import (
	"runtime"
	"sync"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

// MonteCarloSimulator runs independent Gaussian-return trials and aggregates
// their terminal values.
type MonteCarloSimulator struct {
	Workers     int
	Seed        uint64
	RetainPaths bool // If true, the full trials x (years+1) matrix is kept on the result
	Logger      Logger
}

// MonteCarloConfig holds configuration for Monte Carlo simulations
type MonteCarloConfig struct {
	// Workers <= 0 uses GOMAXPROCS.
	Workers int
	// Seed 0 draws a fresh seed from the seed provider.
	Seed        uint64
	RetainPaths bool
}

// MonteCarloResult represents the results of a Monte Carlo simulation
type MonteCarloResult struct {
	Parameters domain.SimulationParameters
	Summary    domain.SimulationResult
	// TerminalValues is indexed by trial; statistics never depend on its order.
	TerminalValues []float64
	// Paths is nil unless RetainPaths was set.
	Paths *PathMatrix
}

// NewMonteCarloSimulator creates a new Monte Carlo simulator
func NewMonteCarloSimulator(config MonteCarloConfig) *MonteCarloSimulator {
	if config.Seed == 0 {
		config.Seed = seedFunc()
	}
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &MonteCarloSimulator{
		Workers:     workers,
		Seed:        config.Seed,
		RetainPaths: config.RetainPaths,
		Logger:      NopLogger{},
	}
}

// SetLogger sets the simulator logger. If nil is provided, a no-op logger is used.
func (mcs *MonteCarloSimulator) SetLogger(l Logger) {
	mcs.Logger = loggerOrNop(l)
}

// RunSimulation validates params and executes params.Trials trials.
// An invalid parameter set fails before any trial runs.
func (mcs *MonteCarloSimulator) RunSimulation(params domain.SimulationParameters) (*MonteCarloResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	logger := loggerOrNop(mcs.Logger)

	workers := mcs.Workers
	if workers > params.Trials {
		workers = params.Trials
	}
	if workers < 1 {
		workers = 1
	}

	terminal := make([]float64, params.Trials)
	var paths *PathMatrix
	if mcs.RetainPaths {
		paths = NewPathMatrix(params.Trials, params.Years)
	}

	logger.Debugf("monte carlo: %d trials x %d years on %d workers (seed=%d)", params.Trials, params.Years, workers, mcs.Seed)

	start := nowFunc()

	// Each worker owns a disjoint window of terminal (and of paths), so the
	// writes never interleave and need no lock.
	var wg sync.WaitGroup
	for _, r := range partitionTrials(params.Trials, workers) {
		wg.Add(1)
		go func(r trialRange) {
			defer wg.Done()
			mcs.runTrials(params, r, terminal, paths)
		}(r)
	}
	wg.Wait()

	elapsed := nowFunc().Sub(start)

	stats := Summarize(terminal, params.Percentile)
	summary := domain.SimulationResult{
		WorstCase:     stats.WorstCase,
		Mean:          stats.Mean,
		BestCase:      stats.BestCase,
		ElapsedTimeMs: elapsed.Milliseconds(),
		Median:        stats.Median,
		StdDev:        stats.StdDev,
		Min:           stats.Min,
		Max:           stats.Max,
		Seed:          mcs.Seed,
	}

	logger.Infof("monte carlo: %d trials finished in %dms (worst=%.4f mean=%.4f best=%.4f)",
		params.Trials, summary.ElapsedTimeMs, summary.WorstCase, summary.Mean, summary.BestCase)

	return &MonteCarloResult{
		Parameters:     params,
		Summary:        summary,
		TerminalValues: terminal,
		Paths:          paths,
	}, nil
}

// runTrials executes trials [r.start, r.end), each on its own random stream.
func (mcs *MonteCarloSimulator) runTrials(params domain.SimulationParameters, r trialRange, terminal []float64, paths *PathMatrix) {
	for trial := r.start; trial < r.end; trial++ {
		sampler := NewReturnSampler(params, TrialSource(mcs.Seed, trial))
		if paths != nil {
			path := GenerateTrialPath(params, sampler, paths.Trial(trial))
			terminal[trial] = path[params.Years]
			continue
		}
		terminal[trial] = SimulateTerminalValue(params, sampler)
	}
}

type trialRange struct {
	start, end int
}

// partitionTrials splits [0, trials) into workers contiguous ranges whose
// sizes differ by at most one.
func partitionTrials(trials, workers int) []trialRange {
	per := trials / workers
	remainder := trials % workers

	ranges := make([]trialRange, 0, workers)
	start := 0
	for i := 0; i < workers; i++ {
		size := per
		if i < remainder {
			size++
		}
		ranges = append(ranges, trialRange{start: start, end: start + size})
		start += size
	}
	return ranges
}

// Run executes one simulation with a fresh seed and default parallelism.
func Run(params domain.SimulationParameters) (domain.SimulationResult, error) {
	result, err := NewMonteCarloSimulator(MonteCarloConfig{}).RunSimulation(params)
	if err != nil {
		return domain.SimulationResult{}, err
	}
	return result.Summary, nil
}
