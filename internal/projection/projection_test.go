package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

// growthOnly is a plan with no flows: no contributions and a withdrawal start
// far past the horizon.
func growthOnly() Plan {
	return Plan{
		InitialBalance:       1000,
		AnnualRate:           0.10,
		Years:                1,
		CompoundingFrequency: 1,
		WithdrawalStartYear:  100,
	}
}

func TestProjectAnnualGrowth(t *testing.T) {
	results, err := Project(growthOnly())
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 1, results[0].Year)
	assert.InDelta(t, 1100.00, results[0].EndingBalance, tolerance)
	assert.Zero(t, results[0].AnnualContribution)
	assert.Zero(t, results[0].GrossAnnualWithdrawal)
}

func TestProjectMonthlyGrowth(t *testing.T) {
	plan := growthOnly()
	plan.CompoundingFrequency = 12

	results, err := Project(plan)
	require.NoError(t, err)
	require.Len(t, results, 1)

	want := 1000 * math.Pow(1+0.10/12, 12)
	assert.InDelta(t, want, results[0].EndingBalance, 1e-6)
	assert.InDelta(t, 1104.71, results[0].EndingBalance, 0.005)
}

func TestProjectMonthlyContributionsEarnGrowthInSamePeriod(t *testing.T) {
	plan := Plan{
		AnnualRate:                 0.12,
		Years:                      1,
		StartingAnnualContribution: 1200,
		CompoundingFrequency:       12,
		WithdrawalStartYear:        100,
	}

	results, err := Project(plan)
	require.NoError(t, err)

	// 100 deposited at the start of each month, each earning 1% that month.
	want := 100 * 1.01 * (math.Pow(1.01, 12) - 1) / 0.01
	assert.InDelta(t, want, results[0].EndingBalance, 1e-6)
	assert.InDelta(t, 1200.0, results[0].AnnualContribution, tolerance)
	assert.InDelta(t, 100.0, results[0].MonthlyContributionDisplay, tolerance)
}

func TestProjectLength(t *testing.T) {
	for _, years := range []int{1, 2, 10, 60} {
		plan := growthOnly()
		plan.Years = years
		results, err := Project(plan)
		require.NoError(t, err)
		require.Len(t, results, years)
		for i, r := range results {
			assert.Equal(t, i+1, r.Year)
		}
	}
}

func TestProjectContributionLimit(t *testing.T) {
	plan := Plan{
		InitialBalance:             0,
		AnnualRate:                 0.05,
		Years:                      5,
		StartingAnnualContribution: 1200,
		ContributionLimitYear:      2,
		CompoundingFrequency:       12,
		WithdrawalStartYear:        100,
	}

	results, err := Project(plan)
	require.NoError(t, err)

	for _, r := range results[:2] {
		assert.InDelta(t, 1200.0, r.AnnualContribution, tolerance, "year %d", r.Year)
		assert.InDelta(t, 100.0, r.MonthlyContributionDisplay, tolerance, "year %d", r.Year)
	}
	for _, r := range results[2:] {
		assert.Zero(t, r.AnnualContribution, "year %d", r.Year)
		assert.Zero(t, r.MonthlyContributionDisplay, "year %d", r.Year)
	}

	// Past the limit the balance only grows.
	growth := math.Pow(1+0.05/12, 12)
	assert.InDelta(t, results[2].EndingBalance*growth, results[3].EndingBalance, 1e-6)
}

func TestProjectMonthlyDisplayIgnoresFrequency(t *testing.T) {
	plan := Plan{
		Years:                      1,
		StartingAnnualContribution: 6000,
		CompoundingFrequency:       1,
		WithdrawalStartYear:        100,
	}

	results, err := Project(plan)
	require.NoError(t, err)
	assert.InDelta(t, 500.0, results[0].MonthlyContributionDisplay, tolerance)
	assert.InDelta(t, 6000.0, results[0].EndingBalance, tolerance)
}

func TestProjectContributionDecay(t *testing.T) {
	tests := []struct {
		name  string
		mode  DecreaseMode
		value float64
		start float64
		want  []float64
	}{
		{
			name:  "fixed decrease clamps at zero",
			mode:  DecreaseFixed,
			value: 150,
			start: 100,
			want:  []float64{100, 0, 0},
		},
		{
			name:  "fixed decrease",
			mode:  DecreaseFixed,
			value: 250,
			start: 1000,
			want:  []float64{1000, 750, 500},
		},
		{
			name:  "percent decrease",
			mode:  DecreasePercent,
			value: 10,
			start: 1000,
			want:  []float64{1000, 900, 810},
		},
		{
			name:  "percent above one hundred clamps at zero",
			mode:  DecreasePercent,
			value: 150,
			start: 1000,
			want:  []float64{1000, 0, 0},
		},
		{
			name:  "no decrease",
			mode:  DecreaseNone,
			value: 500,
			start: 1000,
			want:  []float64{1000, 1000, 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Plan{
				Years:                      3,
				StartingAnnualContribution: tt.start,
				DecreaseMode:               tt.mode,
				DecreaseValue:              tt.value,
				CompoundingFrequency:       1,
				WithdrawalStartYear:        100,
			}
			results, err := Project(plan)
			require.NoError(t, err)
			for i, want := range tt.want {
				assert.InDelta(t, want, results[i].AnnualContribution, 1e-6, "year %d", i+1)
				assert.GreaterOrEqual(t, results[i].AnnualContribution, 0.0)
			}
		})
	}
}

func TestProjectDecayStopsAtLimit(t *testing.T) {
	// Decay is only applied while the next year still contributes, so the
	// limit year shows the last decayed amount and then drops to zero.
	plan := Plan{
		Years:                      4,
		StartingAnnualContribution: 1000,
		DecreaseMode:               DecreaseFixed,
		DecreaseValue:              100,
		ContributionLimitYear:      2,
		CompoundingFrequency:       1,
		WithdrawalStartYear:        100,
	}

	results, err := Project(plan)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, results[0].AnnualContribution, tolerance)
	assert.InDelta(t, 900.0, results[1].AnnualContribution, tolerance)
	assert.Zero(t, results[2].AnnualContribution)
	assert.Zero(t, results[3].AnnualContribution)
	assert.InDelta(t, 1900.0, results[3].EndingBalance, tolerance)
}

func TestProjectWithdrawalGatingAndInflation(t *testing.T) {
	plan := Plan{
		InitialBalance:          1_000_000,
		AnnualRate:              0,
		Years:                   5,
		CompoundingFrequency:    12,
		NetMonthlyWithdrawal:    1000,
		TaxRate:                 0.20,
		WithdrawalStartYear:     3,
		WithdrawalInflationRate: 0.10,
	}

	results, err := Project(plan)
	require.NoError(t, err)

	for _, r := range results[:3] {
		assert.Zero(t, r.GrossAnnualWithdrawal, "year %d", r.Year)
		assert.Zero(t, r.GrossMonthlyWithdrawal, "year %d", r.Year)
		assert.InDelta(t, 1_000_000.0, r.EndingBalance, tolerance, "year %d", r.Year)
	}

	// Year 4 already carries one year of inflation applied at the end of year 3.
	year4 := results[3]
	assert.InDelta(t, 1100/0.8, year4.GrossMonthlyWithdrawal, 1e-6)
	assert.InDelta(t, 1100/0.8*12, year4.GrossAnnualWithdrawal, 1e-6)
	assert.InDelta(t, 1_000_000-1100/0.8*12, year4.EndingBalance, 1e-6)

	year5 := results[4]
	assert.InDelta(t, 1210/0.8, year5.GrossMonthlyWithdrawal, 1e-6)
}

func TestProjectWithdrawalStartYearZero(t *testing.T) {
	plan := Plan{
		InitialBalance:          10000,
		Years:                   2,
		CompoundingFrequency:    1,
		NetMonthlyWithdrawal:    100,
		WithdrawalStartYear:     0,
		WithdrawalInflationRate: 0.5,
	}

	results, err := Project(plan)
	require.NoError(t, err)

	assert.InDelta(t, 1200.0, results[0].GrossAnnualWithdrawal, tolerance)
	assert.InDelta(t, 1800.0, results[1].GrossAnnualWithdrawal, tolerance)
	assert.InDelta(t, 10000-1200-1800.0, results[1].EndingBalance, tolerance)
}

func TestProjectFlowOrdering(t *testing.T) {
	// Contribution in, withdrawal out, then growth, every period.
	plan := Plan{
		InitialBalance:             1000,
		AnnualRate:                 0.10,
		Years:                      2,
		StartingAnnualContribution: 600,
		DecreaseMode:               DecreasePercent,
		DecreaseValue:              50,
		CompoundingFrequency:       1,
		NetMonthlyWithdrawal:       25,
		WithdrawalStartYear:        1,
	}

	results, err := Project(plan)
	require.NoError(t, err)

	year1 := (1000 + 600.0) * 1.1
	year2 := (year1 + 300 - 300) * 1.1
	assert.InDelta(t, year1, results[0].EndingBalance, 1e-6)
	assert.InDelta(t, 300.0, results[1].AnnualContribution, tolerance)
	assert.InDelta(t, 300.0, results[1].GrossAnnualWithdrawal, tolerance)
	assert.InDelta(t, year2, results[1].EndingBalance, 1e-6)
}

func TestProjectBalanceMayGoNegative(t *testing.T) {
	plan := Plan{
		InitialBalance:       1000,
		Years:                2,
		CompoundingFrequency: 12,
		NetMonthlyWithdrawal: 100,
	}

	results, err := Project(plan)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.InDelta(t, -200.0, results[0].EndingBalance, 1e-6)
	assert.InDelta(t, -1400.0, results[1].EndingBalance, 1e-6)
}

func TestProjectIdempotent(t *testing.T) {
	plan := Plan{
		InitialBalance:             25000,
		AnnualRate:                 0.067,
		Years:                      40,
		StartingAnnualContribution: 15000,
		DecreaseMode:               DecreasePercent,
		DecreaseValue:              3.5,
		ContributionLimitYear:      20,
		CompoundingFrequency:       12,
		NetMonthlyWithdrawal:       4000,
		TaxRate:                    0.22,
		WithdrawalStartYear:        20,
		WithdrawalInflationRate:    0.025,
	}

	first, err := Project(plan)
	require.NoError(t, err)
	second, err := Project(plan)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, math.Float64bits(first[i].EndingBalance), math.Float64bits(second[i].EndingBalance))
	}
	assert.Equal(t, first, second)
}

func TestProjectInvalidPlan(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Plan)
	}{
		{"zero frequency", func(p *Plan) { p.CompoundingFrequency = 0 }},
		{"negative frequency", func(p *Plan) { p.CompoundingFrequency = -12 }},
		{"tax rate of one", func(p *Plan) { p.TaxRate = 1 }},
		{"tax rate above one", func(p *Plan) { p.TaxRate = 1.5 }},
		{"zero years", func(p *Plan) { p.Years = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := growthOnly()
			tt.modify(&plan)
			results, err := Project(plan)
			require.ErrorIs(t, err, ErrInvalidPlan)
			assert.Nil(t, results)
		})
	}
}

func TestDecreaseModeString(t *testing.T) {
	assert.Equal(t, "none", DecreaseNone.String())
	assert.Equal(t, "fixed", DecreaseFixed.String())
	assert.Equal(t, "percent", DecreasePercent.String())
	assert.Equal(t, "unknown", DecreaseMode(42).String())
}

func BenchmarkProjectMonthly(b *testing.B) {
	plan := Plan{
		InitialBalance:             25000,
		AnnualRate:                 0.07,
		Years:                      60,
		StartingAnnualContribution: 12000,
		DecreaseMode:               DecreaseFixed,
		DecreaseValue:              100,
		CompoundingFrequency:       12,
		NetMonthlyWithdrawal:       3000,
		TaxRate:                    0.2,
		WithdrawalStartYear:        30,
		WithdrawalInflationRate:    0.03,
	}

	for i := 0; i < b.N; i++ {
		if _, err := Project(plan); err != nil {
			b.Fatal(err)
		}
	}
}
