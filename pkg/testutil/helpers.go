// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/freedom-forecast/internal/forecast"
	"github.com/iwvelando/freedom-forecast/internal/projection"
)

// FindScenario finds a scenario by name in the results slice.
// Returns a pointer to the forecast if found, nil otherwise.
func FindScenario(results []forecast.Forecast, name string) *forecast.Forecast {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// FindYear returns the row for year in a forecast, or nil when the forecast
// is nil or the year is outside its horizon.
func FindYear(result *forecast.Forecast, year int) *projection.YearResult {
	if result == nil || year < 1 || year > len(result.Years) {
		return nil
	}
	return &result.Years[year-1]
}
