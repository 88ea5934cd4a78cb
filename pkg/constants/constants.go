// Package constants provides shared constants for the freedom-forecast application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPlaces is the number of decimals currency is shown with
	DecimalPlaces = 2

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Compounding frequencies, in periods per year
const (
	// AnnualCompounding applies growth once per year
	AnnualCompounding = 1

	// MonthlyCompounding applies growth every month
	MonthlyCompounding = 12

	// MaxProjectionYears bounds the horizon a scenario may request
	MaxProjectionYears = 1000
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Contribution decrease types accepted in configuration files
const (
	DecreaseTypeNone    = "none"
	DecreaseTypeFixed   = "fixed"
	DecreaseTypePercent = "percent"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
