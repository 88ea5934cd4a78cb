// Package projection computes the year-by-year growth and drawdown of an
// investment balance under compounding, decaying contributions and an
// inflation-adjusted after-tax withdrawal phase.
package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/freedom-forecast/pkg/constants"
)

// ErrInvalidPlan is returned when a Plan would produce division by zero or
// an empty projection.
var ErrInvalidPlan = errors.New("invalid plan")

// DecreaseMode selects how the annual contribution shrinks year over year.
type DecreaseMode int

const (
	DecreaseNone    DecreaseMode = iota // contribution stays constant
	DecreaseFixed                       // subtract a fixed currency amount
	DecreasePercent                     // reduce by a percentage of the current amount
)

func (m DecreaseMode) String() string {
	switch m {
	case DecreaseNone:
		return "none"
	case DecreaseFixed:
		return "fixed"
	case DecreasePercent:
		return "percent"
	default:
		return "unknown"
	}
}

// Plan is the immutable input to Project. Rates are fractions (0.07 for 7%)
// except DecreaseValue, which is percentage points in DecreasePercent mode.
type Plan struct {
	InitialBalance             float64
	AnnualRate                 float64
	Years                      int
	StartingAnnualContribution float64
	DecreaseMode               DecreaseMode
	DecreaseValue              float64
	ContributionLimitYear      int // 0 means no limit
	CompoundingFrequency       int // periods per year
	NetMonthlyWithdrawal       float64
	TaxRate                    float64
	WithdrawalStartYear        int // withdrawals begin the year after this one
	WithdrawalInflationRate    float64
}

// YearResult holds the flows and ending balance of one simulated year.
type YearResult struct {
	Year                       int     `json:"year"`
	AnnualContribution         float64 `json:"annualContribution"`
	MonthlyContributionDisplay float64 `json:"monthlyContribution"`
	GrossAnnualWithdrawal      float64 `json:"grossAnnualWithdrawal"`
	GrossMonthlyWithdrawal     float64 `json:"grossMonthlyWithdrawal"`
	EndingBalance              float64 `json:"endingBalance"`
}

// Check reports whether the plan can be projected without dividing by zero.
func (p Plan) Check() error {
	if p.Years < 1 {
		return fmt.Errorf("%w: years must be at least 1, got %d", ErrInvalidPlan, p.Years)
	}
	if p.CompoundingFrequency <= 0 {
		return fmt.Errorf("%w: compounding frequency must be positive, got %d", ErrInvalidPlan, p.CompoundingFrequency)
	}
	if p.TaxRate >= 1 {
		return fmt.Errorf("%w: tax rate must be below 1, got %g", ErrInvalidPlan, p.TaxRate)
	}
	return nil
}

// Project runs the plan and returns one YearResult per year, in year order.
// It either returns all Years rows or an error wrapping ErrInvalidPlan.
func Project(plan Plan) ([]YearResult, error) {
	if err := plan.Check(); err != nil {
		return nil, err
	}

	freq := float64(plan.CompoundingFrequency)
	growth := 1 + plan.AnnualRate/freq

	balance := plan.InitialBalance
	annualContribution := plan.StartingAnnualContribution
	netMonthlyWithdrawal := plan.NetMonthlyWithdrawal

	results := make([]YearResult, 0, plan.Years)
	for y := 1; y <= plan.Years; y++ {
		row := YearResult{Year: y}

		// Flows are fixed before the period loop so the row shows what was simulated.
		var periodContribution float64
		if plan.contributing(y) {
			row.AnnualContribution = annualContribution
			row.MonthlyContributionDisplay = annualContribution / constants.MonthsPerYear
			periodContribution = annualContribution / freq
		}

		var periodWithdrawal float64
		if y > plan.WithdrawalStartYear {
			row.GrossMonthlyWithdrawal = netMonthlyWithdrawal / (1 - plan.TaxRate)
			row.GrossAnnualWithdrawal = row.GrossMonthlyWithdrawal * constants.MonthsPerYear
			periodWithdrawal = row.GrossAnnualWithdrawal / freq
		}

		// Contribute, withdraw, then grow: each period's flow earns that period's growth.
		for p := 0; p < plan.CompoundingFrequency; p++ {
			balance = (balance + periodContribution - periodWithdrawal) * growth
		}
		row.EndingBalance = balance

		if plan.contributing(y + 1) {
			annualContribution = plan.decay(annualContribution)
		}

		// Inflation starts accruing in the start year itself, one year ahead of
		// the first withdrawal.
		if y >= plan.WithdrawalStartYear {
			netMonthlyWithdrawal *= 1 + plan.WithdrawalInflationRate
		}

		results = append(results, row)
	}

	return results, nil
}

func (p Plan) contributing(year int) bool {
	return p.ContributionLimitYear == 0 || year <= p.ContributionLimitYear
}

func (p Plan) decay(contribution float64) float64 {
	switch p.DecreaseMode {
	case DecreaseFixed:
		return math.Max(0, contribution-p.DecreaseValue)
	case DecreasePercent:
		return math.Max(0, contribution*(1-p.DecreaseValue/constants.PercentageMultiplier))
	default:
		return contribution
	}
}
