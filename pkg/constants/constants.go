// Package constants provides shared constants for the mortgage-compare application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// ManYen is the number of yen in one man-yen, the unit loan amounts are entered in
	ManYen = 10000

	// ManYenDisplayPrecision is the number of fractional digits kept when showing man-yen totals
	ManYenDisplayPrecision = 3

	// AppliedRatePrecision is the number of fractional digits shown for the summed rate
	AppliedRatePrecision = 3

	// Over35YearsThreshold is the term, in years, the over-35 surcharge is named for
	Over35YearsThreshold = 35
)

// Lender entry defaults, used whenever a new row is added.
const (
	// DefaultBaseRate is the annual base rate percentage for a new entry
	DefaultBaseRate = 1.5

	// DefaultLoanTerm is the loan term in years for a new entry
	DefaultLoanTerm = 35

	// MinLoanTerm is the shortest term the input surface accepts
	MinLoanTerm = 1

	// MaxLoanTerm is the longest term the input surface accepts
	MaxLoanTerm = 50
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// DefaultLanguage is the BCP 47 tag used for number formatting
	DefaultLanguage = "ja"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default lenders file name
	DefaultConfigFile = "lenders.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
