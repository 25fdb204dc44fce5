// Package config defines the data structures related to configuration and
// includes functions for loading and validating the lenders file.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/mortgage-compare/internal/comparison"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Configuration holds all configuration for mortgage-compare.
type Configuration struct {
	Lenders []comparison.LoanEntry `yaml:"lenders"`
	Logging LoggingConfig          `yaml:"logging,omitempty"`
	Output  OutputConfig           `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `yaml:"format,omitempty"`   // pretty, csv
	Language string `yaml:"language,omitempty"` // BCP 47 tag for number formatting
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.SetEnvPrefix("MORTGAGE_COMPARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	// AutomaticEnv only answers explicit lookups, so the overridable keys are
	// read back here (e.g. MORTGAGE_COMPARE_LOGGING_LEVEL).
	if level := v.GetString("logging.level"); level != "" {
		configuration.Logging.Level = level
	}
	if format := v.GetString("output.format"); format != "" {
		configuration.Output.Format = format
	}
	return &configuration, nil
}

// Comparison builds the comparison state for the configured lenders.
func (conf *Configuration) Comparison(logger *zap.Logger) *comparison.Comparison {
	return comparison.FromEntries(logger, conf.Lenders)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	if len(conf.Lenders) == 0 {
		warnings = append(warnings, "no lenders configured; a default entry will be used")
	}
	return append(warnings, conf.Comparison(nil).Warnings()...)
}
