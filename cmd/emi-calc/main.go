package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/iwvelando/emi-calc/internal/config"
	"github.com/iwvelando/emi-calc/pkg/constants"
	"github.com/iwvelando/emi-calc/pkg/datetime"
	"github.com/iwvelando/emi-calc/pkg/output"
	"github.com/iwvelando/emi-calc/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	// Logs go to stderr unless a file is configured; stdout carries the schedule.
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		cfg.OutputPaths = []string{loggingConfig.OutputFile}
		cfg.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return cfg.Build()
}

// resolveOutput applies the CLI override and defaults to the output config.
func resolveOutput(outputConfig config.OutputConfig, formatOverride string) (config.OutputConfig, error) {
	if formatOverride != "" {
		outputConfig.Format = formatOverride
	}
	if outputConfig.Format == "" {
		outputConfig.Format = constants.OutputFormatPretty
	}
	if outputConfig.CurrencySymbol == "" {
		outputConfig.CurrencySymbol = constants.DefaultCurrencySymbol
	}

	if err := validation.ValidateOutputFormat(outputConfig.Format); err != nil {
		return outputConfig, err
	}
	if err := validation.ValidateGrouping(outputConfig.Grouping); err != nil {
		return outputConfig, err
	}
	return outputConfig, nil
}

// resolveStartMonth labels schedules from the current month when the config
// names no start month.
func resolveStartMonth(startMonth string, now time.Time) string {
	if startMonth == "" {
		return datetime.CurrentMonth(now)
	}
	return startMonth
}

// run computes every configured loan, comparison and eligibility check and
// writes them to w.
func run(logger *zap.Logger, conf *config.Configuration, outputConfig config.OutputConfig, w io.Writer) error {
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	loans, err := conf.ProcessLoans(logger)
	if err != nil {
		return fmt.Errorf("failed to process loan amortization schedules: %w", err)
	}

	comparisons, err := conf.ProcessComparisons(logger)
	if err != nil {
		return fmt.Errorf("failed to process loan comparisons: %w", err)
	}

	eligibility, err := conf.ProcessEligibility(logger)
	if err != nil {
		return fmt.Errorf("failed to process eligibility checks: %w", err)
	}

	switch outputConfig.Format {
	case constants.OutputFormatCSV:
		for i, loan := range loans {
			if err := output.CsvFormat(w, loan.Name, loan.Result, conf.StartMonth, i == 0); err != nil {
				return fmt.Errorf("failed to write schedule for %s: %w", loan.Name, err)
			}
		}
	default:
		display := output.NewDisplay(outputConfig.CurrencySymbol, outputConfig.Grouping, outputConfig.Locale)
		for _, loan := range loans {
			if err := output.PrettyFormat(w, loan.Name, loan.Result, conf.StartMonth, display); err != nil {
				return fmt.Errorf("failed to write schedule for %s: %w", loan.Name, err)
			}
			_, _ = fmt.Fprintln(w)
		}
		for _, cmp := range comparisons {
			if err := output.ComparisonFormat(w, cmp.First, cmp.Second, cmp.Comparison, display); err != nil {
				return fmt.Errorf("failed to write comparison of %s and %s: %w", cmp.First, cmp.Second, err)
			}
			_, _ = fmt.Fprintln(w)
		}
		for _, result := range eligibility {
			check := result.Check
			if err := output.EligibilityFormat(w, result.Name, check.AnnualRatePercent, check.Tenure(), result.Eligibility, display); err != nil {
				return fmt.Errorf("failed to write eligibility for %s: %w", result.Name, err)
			}
			_, _ = fmt.Fprintln(w)
		}
	}
	return nil
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	conf.StartMonth = resolveStartMonth(conf.StartMonth, time.Now())

	outputConfig, err := resolveOutput(conf.Output, *outputFormatFlag)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if err := run(logger, conf, outputConfig, os.Stdout); err != nil {
		logger.Fatal("failed to compute amortization",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
