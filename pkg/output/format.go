// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/freedom-forecast/internal/forecast"
	"github.com/iwvelando/freedom-forecast/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Columns are the table headers shared by every output format.
var Columns = []string{
	"Year",
	"Annual Contribution",
	"Monthly Contribution",
	"Annual Withdrawal (Gross)",
	"Monthly Withdrawal (Gross)",
	"End Balance",
}

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []forecast.Forecast) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		_, _ = fmt.Fprintf(w, "--- Results for scenario %s ---\n", result.Name)
		_, _ = fmt.Fprintf(w, "Year | Annual Contribution | Monthly Contribution | Annual Withdrawal (Gross) | Monthly Withdrawal (Gross) | End Balance\n")
		_, _ = fmt.Fprintf(w, "____ | ___________________ | ____________________ | _________________________ | __________________________ | ___________\n")
		for _, year := range result.Years {
			_, _ = p.Fprintf(w, "%4d | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f\n",
				year.Year,
				year.AnnualContribution,
				year.MonthlyContributionDisplay,
				year.GrossAnnualWithdrawal,
				year.GrossMonthlyWithdrawal,
				year.EndingBalance,
			)
		}

		s := result.Summary
		_, _ = fmt.Fprintf(w, "Final balance: %s (peak %s in year %d)\n",
			format.Currency(s.FinalBalance), format.Currency(s.PeakBalance), s.PeakYear)
		_, _ = fmt.Fprintf(w, "Total contributions: %s, total gross withdrawals: %s\n",
			format.Currency(s.TotalContributions), format.Currency(s.TotalGrossWithdrawals))
		if s.DepletionYear > 0 {
			_, _ = fmt.Fprintf(w, "Balance depleted in year %d\n", s.DepletionYear)
		}
		if i < len(results)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

// CsvFormat writes one CSV table with a leading scenario column.
func CsvFormat(w io.Writer, results []forecast.Forecast) error {
	cw := csv.NewWriter(w)
	header := append([]string{"Scenario"}, Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, result := range results {
		for _, year := range result.Years {
			record := []string{
				result.Name,
				strconv.Itoa(year.Year),
				format.Fixed(year.AnnualContribution),
				format.Fixed(year.MonthlyContributionDisplay),
				format.Fixed(year.GrossAnnualWithdrawal),
				format.Fixed(year.GrossMonthlyWithdrawal),
				format.Fixed(year.EndingBalance),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// CsvString returns the CSV rendering as a string.
func CsvString(results []forecast.Forecast) string {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, results); err != nil {
		return ""
	}
	return buf.String()
}

// JSONFormat writes the forecasts as indented JSON. Figures keep full
// precision so consumers can round as they see fit.
func JSONFormat(w io.Writer, results []forecast.Forecast) error {
	if results == nil {
		results = []forecast.Forecast{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
