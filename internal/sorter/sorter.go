// =============================================================================
// Name Sorter - Sorter Module
// =============================================================================
//
// This module sorts a slice of names in place using the order defined in
// compare.go.
//
// STRATEGIES:
//   - sequential : fold every name once, then one stable sort.
//   - parallel   : split the slice into one contiguous chunk per worker,
//                  fold and stable-sort every chunk concurrently, then merge
//                  neighbouring runs pairwise until a single run is left.
//   - auto       : parallel for slices of at least ParallelThreshold names
//                  when more than one worker is available, sequential below.
//
// ORDER GUARANTEE:
//   Chunks are contiguous, chunk sorts are stable and merges take from the
//   left run on ties, so every strategy yields exactly the order of a
//   sequential stable sort. Names that compare equal keep their input order.
//
// =============================================================================

package sorter

import (
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ginjaninja78/name-sorter/internal/types"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Strategy selects how SortByName does its work.
type Strategy string

const (
	StrategyAuto       Strategy = "auto"
	StrategySequential Strategy = "sequential"
	StrategyParallel   Strategy = "parallel"
)

// DefaultParallelThreshold is the slice length from which the auto strategy
// goes parallel.
const DefaultParallelThreshold = 4096

// ParseStrategy converts a configuration value into a Strategy. The empty
// string selects StrategyAuto.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyAuto:
		return StrategyAuto, nil
	case StrategySequential, StrategyParallel:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown sort strategy %q (want auto, sequential or parallel): %w", s, types.ErrInvalidArgument)
	}
}

// Options controls a Sorter.
type Options struct {
	// Strategy selects sequential, parallel or automatic sorting.
	Strategy Strategy

	// Workers is the maximum number of goroutines used by the parallel
	// strategy. Values below 1 mean runtime.GOMAXPROCS(0).
	Workers int

	// ParallelThreshold is the minimum slice length for which the auto
	// strategy sorts in parallel. Values below 1 mean
	// DefaultParallelThreshold.
	ParallelThreshold int
}

// DefaultOptions returns the options used by the package-level SortByName.
func DefaultOptions() Options {
	return Options{
		Strategy:          StrategyAuto,
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// =============================================================================
// SORTER
// =============================================================================

// Sorter sorts names by last, first and middle names.
// A Sorter holds no mutable state and may be shared.
type Sorter struct {
	opts Options
}

// New creates a Sorter. Zero fields of opts are replaced with defaults.
func New(opts Options) *Sorter {
	def := DefaultOptions()
	if opts.Strategy == "" {
		opts.Strategy = def.Strategy
	}
	if opts.Workers < 1 {
		opts.Workers = def.Workers
	}
	if opts.ParallelThreshold < 1 {
		opts.ParallelThreshold = def.ParallelThreshold
	}
	return &Sorter{opts: opts}
}

// Options returns the effective options of s.
func (s *Sorter) Options() Options {
	return s.opts
}

// SortByName sorts names with the default options.
func SortByName(names []types.Name) error {
	return New(DefaultOptions()).SortByName(names)
}

// SortByName sorts names in place.
//
// RETURNS:
//   - An error wrapping types.ErrInvalidArgument if names is nil.
//     An empty, non-nil slice is already sorted.
func (s *Sorter) SortByName(names []types.Name) error {
	if names == nil {
		return fmt.Errorf("sort names: nil collection: %w", types.ErrInvalidArgument)
	}
	if len(names) < 2 {
		return nil
	}

	entries := make([]entry, len(names))
	for i := range names {
		entries[i].name = names[i]
	}

	var err error
	switch s.resolve(len(names)) {
	case StrategyParallel:
		err = s.sortParallel(entries)
	default:
		sortSequential(entries)
	}
	if err != nil {
		return err
	}

	for i := range entries {
		names[i] = entries[i].name
	}
	return nil
}

// resolve picks the concrete strategy for a slice of length n.
func (s *Sorter) resolve(n int) Strategy {
	switch s.opts.Strategy {
	case StrategySequential, StrategyParallel:
		return s.opts.Strategy
	}
	if n >= s.opts.ParallelThreshold && s.opts.Workers > 1 {
		return StrategyParallel
	}
	return StrategySequential
}

// =============================================================================
// IMPLEMENTATION
// =============================================================================

// entry pairs a name with its folded keys.
type entry struct {
	key  Key
	name types.Name
}

func compareEntries(a, b entry) int {
	return CompareKeys(a.key, b.key)
}

func fillKeys(entries []entry) {
	for i := range entries {
		entries[i].key = KeyOf(entries[i].name)
	}
}

func sortSequential(entries []entry) {
	fillKeys(entries)
	slices.SortStableFunc(entries, compareEntries)
}

// span is a half-open range [lo, hi) of sorted entries.
type span struct {
	lo, hi int
}

func (s *Sorter) sortParallel(entries []entry) error {
	n := len(entries)
	workers := min(s.opts.Workers, n)
	size := (n + workers - 1) / workers

	// STEP 1: fold and sort every chunk concurrently.
	var runs []span
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += size {
		run := span{lo: lo, hi: min(lo+size, n)}
		runs = append(runs, run)
		g.Go(func() error {
			sortSequential(entries[run.lo:run.hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// STEP 2: merge neighbouring runs, ping-ponging between two buffers.
	src, dst := entries, make([]entry, n)
	for len(runs) > 1 {
		merged := make([]span, 0, (len(runs)+1)/2)
		g := new(errgroup.Group)
		g.SetLimit(workers)
		for i := 0; i < len(runs); i += 2 {
			if i+1 == len(runs) {
				// Odd run out: carry it over unchanged.
				last := runs[i]
				copy(dst[last.lo:last.hi], src[last.lo:last.hi])
				merged = append(merged, last)
				continue
			}
			left, right := runs[i], runs[i+1]
			merged = append(merged, span{lo: left.lo, hi: right.hi})
			g.Go(func() error {
				mergeRuns(dst[left.lo:right.hi], src[left.lo:left.hi], src[right.lo:right.hi])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		runs = merged
		src, dst = dst, src
	}

	if &src[0] != &entries[0] {
		copy(entries, src)
	}
	return nil
}

// mergeRuns merges two sorted runs into dst, taking from left on ties.
// len(dst) must equal len(left)+len(right).
func mergeRuns(dst, left, right []entry) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if compareEntries(right[j], left[i]) < 0 {
			dst[k] = right[j]
			j++
		} else {
			dst[k] = left[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
