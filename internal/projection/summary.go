package projection

// Summary aggregates a projection into the headline figures shown next to the
// yearly table.
type Summary struct {
	Years                 int     `json:"years"`
	FinalBalance          float64 `json:"finalBalance"`
	PeakBalance           float64 `json:"peakBalance"`
	PeakYear              int     `json:"peakYear"`
	TotalContributions    float64 `json:"totalContributions"`
	TotalGrossWithdrawals float64 `json:"totalGrossWithdrawals"`
	DepletionYear         int     `json:"depletionYear,omitempty"` // first year ending below zero, 0 if never
}

// Summarize derives a Summary from the rows returned by Project.
func Summarize(results []YearResult) Summary {
	var s Summary
	s.Years = len(results)
	if len(results) == 0 {
		return s
	}

	s.PeakBalance = results[0].EndingBalance
	s.PeakYear = results[0].Year
	for _, r := range results {
		s.TotalContributions += r.AnnualContribution
		s.TotalGrossWithdrawals += r.GrossAnnualWithdrawal
		if r.EndingBalance > s.PeakBalance {
			s.PeakBalance = r.EndingBalance
			s.PeakYear = r.Year
		}
		if s.DepletionYear == 0 && r.EndingBalance < 0 {
			s.DepletionYear = r.Year
		}
	}
	s.FinalBalance = results[len(results)-1].EndingBalance

	return s
}
