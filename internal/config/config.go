// Package config defines the data structures related to configuration and
// includes functions for loading the config and processing its loans.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/emi-calc/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for emi-calc.
type Configuration struct {
	StartMonth  string             `yaml:"startMonth,omitempty"`
	Loans       []Loan             `yaml:"loans"`
	Comparisons []Comparison       `yaml:"comparisons,omitempty"`
	Eligibility []EligibilityCheck `yaml:"eligibility,omitempty"`
	Logging     LoggingConfig      `yaml:"logging,omitempty"`
	Output      OutputConfig       `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format         string `yaml:"format,omitempty"` // pretty, csv
	CurrencySymbol string `yaml:"currencySymbol,omitempty"`
	Grouping       string `yaml:"grouping,omitempty"` // western, indian
	Locale         string `yaml:"locale,omitempty"`   // e.g. en-IN
}

// Comparison names two loans to be compared side by side.
type Comparison struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Keys present in the file may be overridden by EMI_
// prefixed environment variables, e.g. EMI_OUTPUT_FORMAT.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// FindLoan returns the loan with the given name, or nil.
func (conf *Configuration) FindLoan(name string) *Loan {
	for i := range conf.Loans {
		if conf.Loans[i].Name == name {
			return &conf.Loans[i]
		}
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Loans) == 0 {
		warnings = append(warnings, "No loans configured")
	}

	seen := make(map[string]bool, len(conf.Loans))
	for i, loan := range conf.Loans {
		name := loan.DisplayName(i)
		if seen[name] {
			warnings = append(warnings, fmt.Sprintf("Loan name '%s' is used more than once", name))
		}
		seen[name] = true
	}

	for _, cmp := range conf.Comparisons {
		for _, name := range []string{cmp.First, cmp.Second} {
			if conf.FindLoan(name) == nil {
				warnings = append(warnings, fmt.Sprintf("Comparison refers to unknown loan '%s'", name))
			}
		}
	}

	return warnings
}
