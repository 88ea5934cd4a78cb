package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/freedom-forecast/internal/projection"
	"github.com/iwvelando/freedom-forecast/pkg/constants"
	"github.com/iwvelando/freedom-forecast/pkg/mathutil"
	"github.com/iwvelando/freedom-forecast/pkg/validation"
)

// Plan validates the scenario and converts it into a projection.Plan. Percent
// rates become fractions; the decrease value stays in percentage points since
// the engine expects it that way.
func (s Scenario) Plan() (projection.Plan, error) {
	if err := s.Validate(); err != nil {
		return projection.Plan{}, err
	}

	mode, err := ParseDecreaseMode(s.ContributionDecrease.Type)
	if err != nil {
		return projection.Plan{}, fmt.Errorf("%w: scenario %s: %v", ErrInvalidScenario, s.Name, err)
	}

	frequency, err := ParseCompoundingFrequency(s.CompoundingFrequency)
	if err != nil {
		return projection.Plan{}, fmt.Errorf("%w: scenario %s: %v", ErrInvalidScenario, s.Name, err)
	}

	return projection.Plan{
		InitialBalance:             s.InitialBalance,
		AnnualRate:                 mathutil.PercentToFraction(s.AnnualRate),
		Years:                      s.Years,
		StartingAnnualContribution: s.StartingAnnualContribution,
		DecreaseMode:               mode,
		DecreaseValue:              s.ContributionDecrease.Value,
		ContributionLimitYear:      s.ContributionLimitYear,
		CompoundingFrequency:       frequency,
		NetMonthlyWithdrawal:       s.NetMonthlyWithdrawal,
		TaxRate:                    mathutil.PercentToFraction(s.TaxRate),
		WithdrawalStartYear:        s.WithdrawalStartYear,
		WithdrawalInflationRate:    mathutil.PercentToFraction(s.WithdrawalInflationRate),
	}, nil
}

// ParseDecreaseMode maps a config decrease type onto the projection enum. An
// empty type means no decrease.
func ParseDecreaseMode(decreaseType string) (projection.DecreaseMode, error) {
	if err := validation.ValidateDecreaseType(decreaseType); err != nil {
		return projection.DecreaseNone, err
	}

	switch strings.ToLower(strings.TrimSpace(decreaseType)) {
	case constants.DecreaseTypeFixed:
		return projection.DecreaseFixed, nil
	case constants.DecreaseTypePercent:
		return projection.DecreasePercent, nil
	default:
		return projection.DecreaseNone, nil
	}
}

// ParseCompoundingFrequency accepts a period count ("1", "12") or a name
// ("annually", "monthly"). An empty value defaults to monthly compounding.
func ParseCompoundingFrequency(frequency string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(frequency)) {
	case "":
		return constants.MonthlyCompounding, nil
	case "annual", "annually", "yearly":
		return constants.AnnualCompounding, nil
	case "monthly":
		return constants.MonthlyCompounding, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(frequency))
	if err != nil {
		return 0, fmt.Errorf("invalid compounding frequency %q", frequency)
	}
	if err := validation.ValidateCompoundingFrequency(n); err != nil {
		return 0, err
	}
	return n, nil
}
