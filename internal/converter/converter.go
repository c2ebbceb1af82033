// =============================================================================
// Name Sorter - Converter Module
// =============================================================================
//
// This module wires the name sorting pipeline for a single input file:
//
// PIPELINE:
//   1. Read the input file through the line source
//   2. Drop blank and whitespace-only lines
//   3. Parse every remaining line into a types.Name (concurrently)
//   4. Sort the names
//   5. Format the names and write them through the line sink
//
// ERROR POLICY:
//   Parsing is eager: the first line that fails to parse aborts the run and
//   the returned error names its line number. The core packages never log;
//   this module logs what it does and what fails.
//
// =============================================================================

package converter

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ginjaninja78/name-sorter/internal/nameparser"
	"github.com/ginjaninja78/name-sorter/internal/sorter"
	"github.com/ginjaninja78/name-sorter/internal/types"
	"github.com/ginjaninja78/name-sorter/pkg/utils"
)

// =============================================================================
// COLLABORATORS
// =============================================================================

// LineSource opens a file for line-by-line reading.
type LineSource interface {
	ReadLines(path string) (*utils.LineScanner, error)
}

// LineSink replaces a file with the given lines.
type LineSink interface {
	WriteLines(path string, lines []string) error
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of sorting a single file.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// InputFile is the path that was read.
	InputFile string

	// OutputFile is the path that was written. Empty if the run failed or
	// there was nothing to write.
	OutputFile string

	// Success indicates whether the run completed.
	Success bool

	// Error contains the error if the run failed.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about a run.
type ProcessingStats struct {
	// LinesRead is the number of lines read from the input, blank ones included.
	LinesRead int

	// BlankLines is the number of blank or whitespace-only lines skipped.
	BlankLines int

	// NamesSorted is the number of names parsed, sorted and written.
	NamesSorted int

	// LoadTime, SortTime and SaveTime break ProcessingTime down by stage.
	LoadTime time.Duration
	SortTime time.Duration
	SaveTime time.Duration

	// ProcessingTime is the time taken by the whole run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options controls a Converter.
type Options struct {
	// Workers is the number of goroutines used to parse lines.
	// Values below 1 mean runtime.GOMAXPROCS(0).
	Workers int

	// Sort configures the sorter.
	Sort sorter.Options

	// PrintSorted logs every sorted name at info level after a run.
	PrintSorted bool
}

// Converter loads, sorts and saves names.
type Converter struct {
	source      LineSource
	sink        LineSink
	sorter      *sorter.Sorter
	logger      *zap.Logger
	workers     int
	printSorted bool
}

// New creates a Converter. A nil logger disables logging.
func New(source LineSource, sink LineSink, opts Options, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if opts.Sort.Workers < 1 {
		opts.Sort.Workers = workers
	}
	return &Converter{
		source:      source,
		sink:        sink,
		sorter:      sorter.New(opts.Sort),
		logger:      logger,
		workers:     workers,
		printSorted: opts.PrintSorted,
	}
}

// =============================================================================
// LOADING
// =============================================================================

// numberedLine is a non-blank input line and its 1-based line number.
type numberedLine struct {
	number int
	text   string
}

// Load reads path and parses every non-blank line into a Name, in file
// order. An empty file yields an empty, non-nil slice.
//
// RETURNS:
//   - The parsed names.
//   - An error wrapping utils.ErrNotFound if path does not exist.
//   - An error wrapping a *nameparser.FormatError for the first invalid line.
//   - ctx.Err() if ctx is cancelled first.
func (c *Converter) Load(ctx context.Context, path string) ([]types.Name, error) {
	names, _, err := c.load(ctx, path)
	return names, err
}

func (c *Converter) load(ctx context.Context, path string) ([]types.Name, ProcessingStats, error) {
	var stats ProcessingStats

	lines, err := c.readLines(ctx, path, &stats)
	if err != nil {
		return nil, stats, err
	}

	names := make([]types.Name, len(lines))
	if len(lines) == 0 {
		return names, stats, nil
	}

	// Parse contiguous chunks concurrently; each goroutine owns its range of
	// names, so file order is preserved without any locking. Each chunk keeps
	// its own first error and the lowest failed chunk wins, so the reported
	// line is always the first invalid one in the file.
	workers := min(c.workers, len(lines))
	size := (len(lines) + workers - 1) / workers
	chunks := (len(lines) + size - 1) / size

	errs := make([]error, chunks)
	var failed atomic.Int64
	failed.Store(math.MaxInt64)

	g := new(errgroup.Group)
	for chunk := range chunks {
		lo := chunk * size
		hi := min(lo+size, len(lines))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						errs[chunk] = err
						return nil
					}
				}
				// A lower chunk already failed; nothing here can be reported.
				if failed.Load() < int64(chunk) {
					return nil
				}
				name, err := nameparser.Parse(lines[i].text)
				if err != nil {
					errs[chunk] = fmt.Errorf("%s line %d: %w", path, lines[i].number, err)
					lowerTo(&failed, int64(chunk))
					return nil
				}
				names[i] = name
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, stats, err
		}
	}

	return names, stats, nil
}

// lowerTo stores v in n if v is smaller than the current value.
func lowerTo(n *atomic.Int64, v int64) {
	for {
		cur := n.Load()
		if v >= cur || n.CompareAndSwap(cur, v) {
			return
		}
	}
}

// readLines collects the non-blank lines of path.
func (c *Converter) readLines(ctx context.Context, path string, stats *ProcessingStats) ([]numberedLine, error) {
	ls, err := c.source.ReadLines(path)
	if err != nil {
		return nil, err
	}
	defer ls.Close()

	var lines []numberedLine
	for ls.Next() {
		stats.LinesRead++
		if stats.LinesRead%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		text := ls.Line()
		if nameparser.IsBlank(text) {
			stats.BlankLines++
			continue
		}
		lines = append(lines, numberedLine{number: ls.LineNumber(), text: text})
	}
	if err := ls.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// =============================================================================
// SORTING AND SAVING
// =============================================================================

// Sort orders names in place by last, first and middle names.
func (c *Converter) Sort(names []types.Name) error {
	return c.sorter.SortByName(names)
}

// Save formats names and writes them to path, one per line. When there are
// no names the write is skipped and any existing file is left as it is.
func (c *Converter) Save(ctx context.Context, path string, names []types.Name) error {
	if len(names) == 0 {
		c.logger.Debug("No names to save, skipping file write", zap.String("path", path))
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := nameparser.FormatAll(names)
	if err := c.sink.WriteLines(path, lines); err != nil {
		return fmt.Errorf("failed to save names: %w", err)
	}
	return nil
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run loads inputPath, sorts the names and saves them to outputPath.
//
// RETURNS:
//   - A Result describing the run. Result.Error is set when Success is false.
func (c *Converter) Run(ctx context.Context, inputPath, outputPath string) Result {
	startTime := time.Now()
	result := Result{
		RunID:     uuid.NewString(),
		InputFile: inputPath,
	}
	log := c.logger.With(zap.String("run_id", result.RunID))

	// =========================================================================
	// STEP 1: LOAD
	// =========================================================================

	stepStart := time.Now()
	names, stats, err := c.load(ctx, inputPath)
	result.Stats = stats
	result.Stats.LoadTime = time.Since(stepStart)
	if err != nil {
		result.Error = fmt.Errorf("failed to load names: %w", err)
		log.Error("Load failed", zap.String("input", inputPath), zap.Error(err))
		return result
	}

	log.Info("Loaded names",
		zap.Int("count", len(names)),
		zap.Int("blank_lines", stats.BlankLines),
		zap.String("input", inputPath))

	// =========================================================================
	// STEP 2: SORT
	// =========================================================================

	stepStart = time.Now()
	if err := c.Sort(names); err != nil {
		result.Error = fmt.Errorf("failed to sort names: %w", err)
		log.Error("Sort failed", zap.Error(err))
		return result
	}
	result.Stats.SortTime = time.Since(stepStart)

	log.Debug("Sorted names",
		zap.String("strategy", string(c.sorter.Options().Strategy)),
		zap.Duration("elapsed", result.Stats.SortTime))

	// =========================================================================
	// STEP 3: SAVE
	// =========================================================================

	stepStart = time.Now()
	if err := c.Save(ctx, outputPath, names); err != nil {
		result.Error = err
		log.Error("Save failed", zap.String("output", outputPath), zap.Error(err))
		return result
	}
	result.Stats.SaveTime = time.Since(stepStart)

	if len(names) > 0 {
		result.OutputFile = outputPath
		log.Info("Sorted names saved", zap.String("output", outputPath))
	}

	if c.printSorted && len(names) > 0 && log.Core().Enabled(zap.InfoLevel) {
		log.Info("Sorted names list:")
		for _, n := range names {
			log.Info(DisplayName(n))
		}
	}

	// =========================================================================
	// COMPLETE
	// =========================================================================

	result.Success = true
	result.Stats.NamesSorted = len(names)
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}

// DisplayName renders n as "Last, First Middle" for log output.
func DisplayName(n types.Name) string {
	if n.HasMiddleNames() {
		return n.LastName + ", " + n.FirstName + " " + n.MiddleNames
	}
	return n.LastName + ", " + n.FirstName
}
