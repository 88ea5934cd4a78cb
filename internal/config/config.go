// Package config defines the data structures related to configuration and
// includes functions for loading, validating and converting it into
// projection plans.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"
)

// ErrInvalidScenario is returned when a scenario cannot be turned into a plan.
var ErrInvalidScenario = errors.New("invalid scenario")

// Configuration holds all configuration for freedom-forecast.
type Configuration struct {
	Scenarios []Scenario    `yaml:"scenarios"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Scenario is one named investment plan as written in a config file. Rates
// are percentages, as entered by a person; Plan converts them to fractions.
type Scenario struct {
	Name                       string               `yaml:"name"`
	Active                     bool                 `yaml:"active"`
	InitialBalance             float64              `yaml:"initialBalance"`
	AnnualRate                 float64              `yaml:"annualRate"`
	Years                      int                  `yaml:"years"`
	StartingAnnualContribution float64              `yaml:"startingAnnualContribution"`
	ContributionDecrease       ContributionDecrease `yaml:"contributionDecrease,omitempty"`
	ContributionLimitYear      int                  `yaml:"contributionLimitYear,omitempty"`
	CompoundingFrequency       string               `yaml:"compoundingFrequency,omitempty"` // 1, 12, annually, monthly
	NetMonthlyWithdrawal       float64              `yaml:"netMonthlyWithdrawal,omitempty"`
	TaxRate                    float64              `yaml:"taxRate,omitempty"`
	WithdrawalStartYear        int                  `yaml:"withdrawalStartYear,omitempty"`
	WithdrawalInflationRate    float64              `yaml:"withdrawalInflationRate,omitempty"`
}

// ContributionDecrease describes how the annual contribution shrinks each year.
type ContributionDecrease struct {
	Type  string  `yaml:"type,omitempty"` // none, fixed, percent
	Value float64 `yaml:"value,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r,
// e.g. an uploaded file.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// ActiveScenarios returns the scenarios flagged as active, in file order.
func (c *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range c.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}
