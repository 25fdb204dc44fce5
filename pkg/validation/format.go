// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"golang.org/x/text/language"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateLanguage parses a BCP 47 tag used for number formatting. An empty
// tag selects the default language.
func ValidateLanguage(tag string) (language.Tag, error) {
	if tag == "" {
		tag = constants.DefaultLanguage
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", tag, err)
	}
	return parsed, nil
}
