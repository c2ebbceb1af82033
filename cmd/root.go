// =============================================================================
// Name Sorter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Called with no
// subcommand, the root command sorts a names file.
//
// COBRA CLI STRUCTURE:
//   rootCmd (namesort [input] [output])
//   ├── sortCmd (namesort sort [input] [output])
//   ├── generateCmd (namesort generate <output>)
//   └── versionCmd (namesort version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the configuration file
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/name-sorter/internal/config"
	"github.com/ginjaninja78/name-sorter/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// Empty means built-in defaults.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// appConfig and logger are initialized before any command runs.
var (
	appConfig *config.MainConfig
	logger    *zap.Logger
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "namesort [input] [output]",
	Short: "Name Sorter - Sort a list of names by last, first and middle names",
	Long: `Name Sorter reads a text file with one person's name per line, sorts the
names by last name, then first name, then middle names, and writes them back
out in the same "First Middle... Last" form.

Comparison ignores case and accents, so "zoë" and "Zoe" sort together, and
the result does not depend on the machine's locale.

Example Usage:
  namesort                                   # ./unsorted-names-list.txt -> sorted-names-list.txt
  namesort names.txt sorted.txt              # Explicit input and output
  namesort sort names.txt --strategy parallel
  namesort generate --count 100000 big.txt   # Write a random test file`,

	Args: cobra.MaximumNArgs(2),

	// A failed run prints neither the usage text nor the error; Execute
	// reports the error once.
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadMainConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load main config: %w", err)
		}

		l, err := logging.New(cfg, verbose)
		if err != nil {
			return err
		}

		appConfig, logger = cfg, l
		if cfgFile != "" {
			logger.Debug("Using config file", zap.String("path", cfgFile))
		}
		return nil
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},

	RunE: runSort,
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. Interrupts cancel the running command.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to a YAML configuration file (built-in defaults when empty)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
