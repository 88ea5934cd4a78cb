package config

import (
	"fmt"

	"github.com/iwvelando/freedom-forecast/internal/projection"
	"github.com/iwvelando/freedom-forecast/pkg/constants"
)

// Validate checks the scenario for values the projection cannot accept.
func (s Scenario) Validate() error {
	if s.Years < 1 {
		return fmt.Errorf("%w: scenario %s: years must be at least 1, got %d", ErrInvalidScenario, s.Name, s.Years)
	}
	if s.Years > constants.MaxProjectionYears {
		return fmt.Errorf("%w: scenario %s: years cannot exceed %d, got %d", ErrInvalidScenario, s.Name, constants.MaxProjectionYears, s.Years)
	}

	amounts := []struct {
		field string
		value float64
	}{
		{"initialBalance", s.InitialBalance},
		{"startingAnnualContribution", s.StartingAnnualContribution},
		{"contributionDecrease.value", s.ContributionDecrease.Value},
		{"netMonthlyWithdrawal", s.NetMonthlyWithdrawal},
		{"withdrawalInflationRate", s.WithdrawalInflationRate},
	}
	for _, amount := range amounts {
		if amount.value < 0 {
			return fmt.Errorf("%w: scenario %s: %s cannot be negative, got %g", ErrInvalidScenario, s.Name, amount.field, amount.value)
		}
	}

	if s.ContributionLimitYear < 0 {
		return fmt.Errorf("%w: scenario %s: contributionLimitYear cannot be negative, got %d", ErrInvalidScenario, s.Name, s.ContributionLimitYear)
	}
	if s.WithdrawalStartYear < 0 {
		return fmt.Errorf("%w: scenario %s: withdrawalStartYear cannot be negative, got %d", ErrInvalidScenario, s.Name, s.WithdrawalStartYear)
	}
	if s.TaxRate < 0 || s.TaxRate >= constants.PercentageMultiplier {
		return fmt.Errorf("%w: scenario %s: taxRate must be in [0, 100), got %g", ErrInvalidScenario, s.Name, s.TaxRate)
	}

	return nil
}

// Validate checks that there is at least one active scenario and that every
// active scenario converts into a plan.
func (c *Configuration) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios configured", ErrInvalidScenario)
	}

	active := c.ActiveScenarios()
	if len(active) == 0 {
		return fmt.Errorf("%w: no active scenarios configured", ErrInvalidScenario)
	}

	for _, scenario := range active {
		if _, err := scenario.Plan(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for settings that are accepted but probably unintended.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	seen := make(map[string]bool)

	for _, s := range c.Scenarios {
		if !s.Active {
			continue
		}

		if seen[s.Name] {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' is defined more than once", s.Name))
		}
		seen[s.Name] = true

		if s.Years > 0 && s.ContributionLimitYear > s.Years {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' contribution limit year %d is beyond the %d year horizon",
				s.Name, s.ContributionLimitYear, s.Years))
		}

		if s.Years > 0 && s.NetMonthlyWithdrawal > 0 && s.WithdrawalStartYear >= s.Years {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' withdrawals start after year %d, so none occur within the %d year horizon",
				s.Name, s.WithdrawalStartYear, s.Years))
		}

		mode, err := ParseDecreaseMode(s.ContributionDecrease.Type)
		if err == nil {
			if mode == projection.DecreaseNone && s.ContributionDecrease.Value != 0 {
				warnings = append(warnings, fmt.Sprintf("Scenario '%s' sets a contribution decrease value without a decrease type; it is ignored", s.Name))
			}
			if mode == projection.DecreasePercent && s.ContributionDecrease.Value > constants.PercentageMultiplier {
				warnings = append(warnings, fmt.Sprintf("Scenario '%s' decreases contributions by more than 100%%; they drop to zero after the first year", s.Name))
			}
		}
	}

	return warnings
}
