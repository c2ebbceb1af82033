// =============================================================================
// Name Sorter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the application configuration.
//
// CONFIGURATION FILE:
//   An optional YAML file (config.yaml) holding global settings. Every key
//   has a default, so the application runs without any file at all.
//
// LOADING ORDER:
//   1. Read and parse the YAML file (skipped when no path is given)
//   2. Apply defaults for unset keys
//   3. Validate the result
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/name-sorter/internal/sorter"
	"github.com/ginjaninja78/name-sorter/internal/types"
)

// Default values for MainConfig.
const (
	DefaultInputFile  = "./unsorted-names-list.txt"
	DefaultOutputFile = "sorted-names-list.txt"
	DefaultLogLevel   = "info"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// FILE SETTINGS
	// =========================================================================

	// InputFile is the file read when no input path is given on the command line.
	// Default: "./unsorted-names-list.txt"
	InputFile string `yaml:"input_file"`

	// OutputFile is the file written when no output path is given on the
	// command line.
	// Default: "sorted-names-list.txt"
	OutputFile string `yaml:"output_file"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogFile is an additional log destination. Logs always go to stderr.
	// Default: "" (stderr only)
	LogFile string `yaml:"log_file"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// PrintSorted logs every sorted name after a run.
	// Default: true
	PrintSorted *bool `yaml:"print_sorted"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// SortStrategy selects how names are sorted.
	// Valid values: "auto", "sequential", "parallel"
	// Default: "auto"
	SortStrategy string `yaml:"sort_strategy"`

	// MaxConcurrency is the number of goroutines used to parse and sort.
	// Default: the number of CPUs
	MaxConcurrency int `yaml:"max_concurrency"`

	// ParallelThreshold is the smallest collection the "auto" strategy sorts
	// in parallel.
	// Default: 4096
	ParallelThreshold int `yaml:"parallel_threshold"`
}

// ShouldPrintSorted reports whether sorted names are logged after a run.
func (c *MainConfig) ShouldPrintSorted() bool {
	return c.PrintSorted == nil || *c.PrintSorted
}

// SorterOptions returns the sorter options described by the configuration.
// The configuration must have been validated.
func (c *MainConfig) SorterOptions() sorter.Options {
	strategy, _ := sorter.ParseStrategy(c.SortStrategy)
	return sorter.Options{
		Strategy:          strategy,
		Workers:           c.MaxConcurrency,
		ParallelThreshold: c.ParallelThreshold,
	}
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	var config MainConfig
	applyMainConfigDefaults(&config)
	return &config
}

// LoadMainConfig loads the main configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the main configuration file. An empty path
//     returns the defaults.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file cannot be read, parsed or validated.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	var config MainConfig

	if configPath != "" {
		// Read the configuration file.
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse the YAML.
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Apply default values.
	applyMainConfigDefaults(&config)

	// Validate the configuration.
	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.InputFile == "" {
		config.InputFile = DefaultInputFile
	}
	if config.OutputFile == "" {
		config.OutputFile = DefaultOutputFile
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))
	if config.SortStrategy == "" {
		config.SortStrategy = string(sorter.StrategyAuto)
	}
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = runtime.NumCPU()
	}
	if config.ParallelThreshold <= 0 {
		config.ParallelThreshold = sorter.DefaultParallelThreshold
	}
	if config.PrintSorted == nil {
		printSorted := true
		config.PrintSorted = &printSorted
	}
}

// validateMainConfig validates the main configuration.
func validateMainConfig(config *MainConfig) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: %w", config.LogLevel, types.ErrInvalidArgument)
	}

	if _, err := sorter.ParseStrategy(config.SortStrategy); err != nil {
		return fmt.Errorf("sort_strategy: %w", err)
	}

	if strings.TrimSpace(config.InputFile) == "" || strings.TrimSpace(config.OutputFile) == "" {
		return fmt.Errorf("input_file and output_file must not be blank: %w", types.ErrInvalidArgument)
	}

	return nil
}
