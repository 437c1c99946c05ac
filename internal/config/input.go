package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data)
}

// Parse decodes and validates a YAML document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateSettings(&config.Simulation); err != nil {
		return fmt.Errorf("simulation settings validation failed: %w", err)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	names := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: scenario name is required", i)
		}
		if names[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate scenario name %q", i, scenario.Name)
		}
		names[scenario.Name] = true

		// Resolving the parameters applies the simulation invariants to the
		// effective (overridden) values.
		if _, err := config.ParametersFor(scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateSettings checks the presentation and execution settings that the
// simulation parameters themselves do not cover.
func (ip *InputParser) validateSettings(settings *domain.SimulationSettings) error {
	if settings.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}
	if settings.InitialInvestment.LessThan(decimal.Zero) {
		return fmt.Errorf("initial investment cannot be negative")
	}
	if settings.InflationRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("inflation rate must be greater than -100%%")
	}
	return nil
}

// CreateExampleConfiguration creates the aggressive vs. conservative comparison:
// 20 years, 100,000 trials, 3.5% inflation, 10th/90th percentiles.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Simulation: domain.SimulationSettings{
			Years:             20,
			Trials:            100000,
			InflationRate:     decimal.NewFromFloat(0.035),
			Percentile:        decimal.NewFromFloat(0.1),
			InitialInvestment: decimal.NewFromInt(100000),
			Currency:          "USD",
		},
		Scenarios: []domain.Scenario{
			{
				Name:       "aggressive",
				MeanReturn: decimal.NewFromFloat(0.094324),
				Volatility: decimal.NewFromFloat(0.15675),
			},
			{
				Name:       "conservative",
				MeanReturn: decimal.NewFromFloat(0.06189),
				Volatility: decimal.NewFromFloat(0.063438),
			},
		},
	}
}

// SaveConfiguration writes config as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
