package domain

import "time"

// SimulationResult is the statistical summary of one run.
type SimulationResult struct {
	WorstCase     float64 `json:"worst_case"`
	Mean          float64 `json:"mean"`
	BestCase      float64 `json:"best_case"`
	ElapsedTimeMs int64   `json:"elapsed_time_ms"`

	// Descriptive statistics of the terminal values beyond the percentile pair.
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`

	// Seed reproduces the run when passed back to the simulator.
	Seed uint64 `json:"seed"`
}

// ScenarioOutcome pairs a named parameter set with its result.
type ScenarioOutcome struct {
	Name       string               `json:"name"`
	Parameters SimulationParameters `json:"parameters"`
	Result     SimulationResult     `json:"result"`
}

// ScenarioComparison is the input to every report formatter.
type ScenarioComparison struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Outcomes    []ScenarioOutcome `json:"outcomes"`
	// InitialInvestment scales normalized outcomes into currency in reports; zero disables it.
	InitialInvestment float64  `json:"initial_investment,omitempty"`
	Currency          string   `json:"currency,omitempty"`
	Assumptions       []string `json:"assumptions,omitempty"`
}

// RunRecord is a persisted simulation run.
type RunRecord struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Parameters SimulationParameters `json:"parameters"`
	Result     SimulationResult     `json:"result"`
	CreatedAt  time.Time            `json:"created_at"`
}
