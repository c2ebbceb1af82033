// =============================================================================
// Name Sorter - Sort Command
// =============================================================================
//
// This file defines the 'sort' command, which is the main command of the
// application. The root command runs the same pipeline.
//
// COMMAND USAGE:
//   namesort sort [input] [output] [flags]
//
// FLAGS:
//   --strategy : auto, sequential or parallel (overrides sort_strategy)
//   --workers  : Goroutines used to parse and sort (overrides max_concurrency)
//   --quiet    : Don't log the sorted names or print the summary
//
// PROCESSING PIPELINE:
//   1. Resolve the input and output paths (arguments, then configuration)
//   2. Load and parse the names
//   3. Sort them
//   4. Write the output file
//   5. Print the summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/name-sorter/internal/converter"
	"github.com/ginjaninja78/name-sorter/internal/sorter"
	"github.com/ginjaninja78/name-sorter/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// strategyFlag overrides the configured sort strategy when set.
var strategyFlag string

// workersFlag overrides the configured concurrency when positive.
var workersFlag int

// quiet suppresses the sorted names listing and the summary.
var quiet bool

// =============================================================================
// SORT COMMAND DEFINITION
// =============================================================================

// sortCmd represents the 'sort' command.
var sortCmd = &cobra.Command{
	Use:   "sort [input] [output]",
	Short: "Sort a names file by last, first and middle names",
	Long: `The sort command reads one name per line from the input file, sorts the
names and writes them to the output file, replacing it.

Blank lines are skipped. A line with fewer than two words stops the run with
an error naming the line, and the output file is left untouched.

Paths default to input_file and output_file from the configuration.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSort,
}

func init() {
	rootCmd.AddCommand(sortCmd)

	// Flags are registered on both commands so "namesort --strategy parallel"
	// behaves like "namesort sort --strategy parallel".
	for _, c := range []*cobra.Command{rootCmd, sortCmd} {
		c.Flags().StringVar(
			&strategyFlag,
			"strategy",
			"",
			"Sort strategy: auto, sequential or parallel",
		)
		c.Flags().IntVar(
			&workersFlag,
			"workers",
			0,
			"Number of goroutines used to parse and sort (default max_concurrency)",
		)
		c.Flags().BoolVarP(
			&quiet,
			"quiet",
			"q",
			false,
			"Don't list the sorted names or print the summary",
		)
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runSort resolves the paths and options, then runs the name service.
func runSort(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := appConfig.InputFile, appConfig.OutputFile
	if len(args) > 0 {
		inputPath = args[0]
	}
	if len(args) > 1 {
		outputPath = args[1]
	}

	sortOpts := appConfig.SorterOptions()
	if strategyFlag != "" {
		strategy, err := sorter.ParseStrategy(strategyFlag)
		if err != nil {
			return err
		}
		sortOpts.Strategy = strategy
	}
	if workersFlag > 0 {
		sortOpts.Workers = workersFlag
	}

	fm := utils.NewFileManager()
	conv := converter.New(fm, fm, converter.Options{
		Workers:     sortOpts.Workers,
		Sort:        sortOpts,
		PrintSorted: appConfig.ShouldPrintSorted() && !quiet,
	}, logger)

	result := conv.Run(cmd.Context(), inputPath, outputPath)
	if !result.Success {
		return result.Error
	}

	if !quiet {
		printSummary(cmd.OutOrStdout(), result)
	}
	return nil
}

// printSummary writes the run summary.
func printSummary(w io.Writer, result converter.Result) {
	output := result.OutputFile
	if output == "" {
		output = "(not written, no names)"
	}

	fmt.Fprintln(w, "=== Sort Complete ===")
	fmt.Fprintf(w, "Run ID:          %s\n", result.RunID)
	fmt.Fprintf(w, "Input:           %s\n", result.InputFile)
	fmt.Fprintf(w, "Output:          %s\n", output)
	fmt.Fprintf(w, "Lines read:      %d\n", result.Stats.LinesRead)
	fmt.Fprintf(w, "Blank lines:     %d\n", result.Stats.BlankLines)
	fmt.Fprintf(w, "Names sorted:    %d\n", result.Stats.NamesSorted)
	fmt.Fprintf(w, "Time elapsed:    %s\n", result.Stats.ProcessingTime)
}
