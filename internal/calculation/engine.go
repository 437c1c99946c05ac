package calculation

import (
	"fmt"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

// CalculationEngine orchestrates named scenario simulations
type CalculationEngine struct {
	Workers int
	// Seed 0 draws a fresh seed per scenario. A fixed seed gives every scenario
	// the same random streams, which sharpens scenario comparisons.
	Seed   uint64
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	ce.Logger = loggerOrNop(l)
}

// RunScenario simulates one named parameter set.
func (ce *CalculationEngine) RunScenario(name string, params domain.SimulationParameters) (*domain.ScenarioOutcome, error) {
	sim := NewMonteCarloSimulator(MonteCarloConfig{Workers: ce.Workers, Seed: ce.Seed})
	sim.SetLogger(ce.Logger)

	result, err := sim.RunSimulation(params)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}

	return &domain.ScenarioOutcome{
		Name:       name,
		Parameters: params,
		Result:     result.Summary,
	}, nil
}

// RunScenarios simulates every configured scenario, in configuration order.
// Seed and worker settings from the configuration take precedence over the engine's.
func (ce *CalculationEngine) RunScenarios(config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}

	runner := *ce
	if config.Simulation.Seed != 0 {
		runner.Seed = config.Simulation.Seed
	}
	if config.Simulation.Workers > 0 {
		runner.Workers = config.Simulation.Workers
	}
	runner.Logger = loggerOrNop(ce.Logger)

	comparison := &domain.ScenarioComparison{
		GeneratedAt:       nowFunc(),
		Outcomes:          make([]domain.ScenarioOutcome, 0, len(config.Scenarios)),
		InitialInvestment: config.Simulation.InitialInvestment.InexactFloat64(),
		Currency:          config.Simulation.Currency,
		Assumptions:       config.Simulation.GenerateAssumptions(),
	}

	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		params, err := config.ParametersFor(scenario)
		if err != nil {
			return nil, err
		}

		runner.Logger.Infof("running scenario %q", scenario.Name)
		outcome, err := runner.RunScenario(scenario.Name, params)
		if err != nil {
			return nil, err
		}
		comparison.Outcomes = append(comparison.Outcomes, *outcome)
	}

	return comparison, nil
}
