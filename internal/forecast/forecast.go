// Package forecast defines the data structures related to a given forecast and
// includes functions for computing the forecasts of every active scenario.
package forecast

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/freedom-forecast/internal/config"
	"github.com/iwvelando/freedom-forecast/internal/projection"
	"github.com/iwvelando/freedom-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// ErrBalanceOverflow is returned when a scenario's balance leaves the range
// of float64 and can no longer be reported.
var ErrBalanceOverflow = errors.New("balance overflow")

// Forecast holds the projection of one scenario.
type Forecast struct {
	Name    string                  `json:"name"`
	Plan    projection.Plan         `json:"-"`
	Years   []projection.YearResult `json:"rows"`
	Summary projection.Summary      `json:"summary"`
}

// GetForecast projects every active scenario in configuration order.
func GetForecast(logger *zap.Logger, conf config.Configuration) ([]Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Forecast
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "forecast.GetForecast"),
			)
			continue
		}

		plan, err := scenario.Plan()
		if err != nil {
			return nil, err
		}

		years, err := projection.Project(plan)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		if year := firstNonFiniteYear(years); year > 0 {
			return nil, fmt.Errorf("scenario %s: %w: balance is not finite in year %d", scenario.Name, ErrBalanceOverflow, year)
		}

		result := Forecast{
			Name:    scenario.Name,
			Plan:    plan,
			Years:   years,
			Summary: projection.Summarize(years),
		}

		logger.Debug("scenario projected",
			zap.String("op", "forecast.GetForecast"),
			zap.String("scenario", scenario.Name),
			zap.Int("years", len(years)),
			zap.Float64("annualRatePercent", mathutil.FractionToPercent(plan.AnnualRate)),
			zap.Float64("finalBalance", mathutil.Round(result.Summary.FinalBalance)),
		)
		if result.Summary.DepletionYear > 0 {
			logger.Warn(fmt.Sprintf("scenario %s balance is depleted in year %d", scenario.Name, result.Summary.DepletionYear),
				zap.String("op", "forecast.GetForecast"),
			)
		}

		results = append(results, result)
	}

	return results, nil
}

func firstNonFiniteYear(years []projection.YearResult) int {
	for _, row := range years {
		if math.IsInf(row.EndingBalance, 0) || math.IsNaN(row.EndingBalance) {
			return row.Year
		}
	}
	return 0
}
