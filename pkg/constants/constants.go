// Package constants provides shared constants for the emi-calc application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyPlaces is the number of decimal places used in exported records
	CurrencyPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Tolerances
const (
	// BalanceTolerance is the outstanding balance at or below which a loan is
	// considered fully repaid.
	BalanceTolerance = 0.001

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Digit grouping styles for currency output
const (
	// GroupingWestern groups digits in thousands (1,234,567.89)
	GroupingWestern = "western"

	// GroupingIndian groups the last three digits then pairs (12,34,567.89)
	GroupingIndian = "indian"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "EMI"

	// DefaultCurrencySymbol is used when the config does not name one
	DefaultCurrencySymbol = "₹"
)
