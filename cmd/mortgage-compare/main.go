package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/mortgage-compare/internal/config"
	"github.com/iwvelando/mortgage-compare/internal/logging"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/format"
	"github.com/iwvelando/mortgage-compare/pkg/output"
	"github.com/iwvelando/mortgage-compare/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to lenders file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// Initialize logging based on config and CLI override
	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	lang, err := validation.ValidateLanguage(conf.Output.Language)
	if err != nil {
		logger.Fatal("failed to parse output language",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Calculate every lender; a failing lender is reported in its row.
	comparison := conf.Comparison(logger)
	errs := comparison.CalculateAll()
	entries := comparison.Entries()
	for i, err := range errs {
		if err != nil {
			logger.Warn("failed to calculate lender",
				zap.String("op", "main"),
				zap.String("lender", validation.LenderLabel(i, entries[i].Name)),
				zap.Error(err),
			)
		}
	}

	// Handle output.
	rows := output.Rows(entries, errs)
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, rows, format.NewFormatter(lang))
	case constants.OutputFormatCSV:
		if err := output.CsvFormat(os.Stdout, rows); err != nil {
			logger.Fatal("failed to write CSV output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
