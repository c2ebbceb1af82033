package sorter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ginjaninja78/name-sorter/internal/namegen"
	"github.com/ginjaninja78/name-sorter/internal/nameparser"
	"github.com/ginjaninja78/name-sorter/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func parseAll(t testing.TB, lines []string) []types.Name {
	t.Helper()
	names := make([]types.Name, len(lines))
	for i, line := range lines {
		n, err := nameparser.Parse(line)
		require.NoError(t, err, line)
		names[i] = n
	}
	return names
}

func assertSorted(t *testing.T, names []types.Name) {
	t.Helper()
	for i := 1; i < len(names); i++ {
		if Compare(names[i-1], names[i]) > 0 {
			t.Fatalf("names[%d]=%+v sorts after names[%d]=%+v", i-1, names[i-1], i, names[i])
		}
	}
}

func allStrategies() map[string]Options {
	return map[string]Options{
		"sequential":      {Strategy: StrategySequential},
		"parallel":        {Strategy: StrategyParallel, Workers: 4},
		"parallel-odd":    {Strategy: StrategyParallel, Workers: 3},
		"auto-parallel":   {Strategy: StrategyAuto, Workers: 4, ParallelThreshold: 2},
		"auto-sequential": {Strategy: StrategyAuto, Workers: 4, ParallelThreshold: 1 << 20},
	}
}

func TestSortByName_Scenario(t *testing.T) {
	input := []string{
		"Janet Parsons",
		"Vaughn Lewis",
		"Adonis Julius Archer",
		"Shelby Nathan Yoder",
	}
	want := []string{
		"Adonis Julius Archer",
		"Vaughn Lewis",
		"Janet Parsons",
		"Shelby Nathan Yoder",
	}

	for name, opts := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			names := parseAll(t, input)
			require.NoError(t, New(opts).SortByName(names))

			if diff := cmp.Diff(want, nameparser.FormatAll(names)); diff != "" {
				t.Errorf("sorted output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortByName_TieBreaks(t *testing.T) {
	names := []types.Name{
		{FirstName: "Amy", MiddleNames: "Rose", LastName: "smith"},
		{FirstName: "bob", LastName: "Smith"},
		{FirstName: "Amy", LastName: "Smith"},
		{FirstName: "Amy", MiddleNames: "Grace", LastName: "SMITH"},
		{FirstName: "Zoë", LastName: "Adams"},
	}
	want := []types.Name{
		{FirstName: "Zoë", LastName: "Adams"},
		{FirstName: "Amy", LastName: "Smith"},
		{FirstName: "Amy", MiddleNames: "Grace", LastName: "SMITH"},
		{FirstName: "Amy", MiddleNames: "Rose", LastName: "smith"},
		{FirstName: "bob", LastName: "Smith"},
	}

	require.NoError(t, SortByName(names))
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("tie-break order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByName_StrategiesAgree(t *testing.T) {
	gen := namegen.New(42, namegen.DefaultMiddleRatio)
	// Pool lines have many exact duplicates and case-only differences once
	// lower-cased, which exercises the stability of chunk merges.
	lines := gen.Lines(5000)
	for i := 0; i < len(lines); i += 7 {
		lines[i] = lowerASCII(lines[i])
	}
	input := parseAll(t, lines)

	reference := append([]types.Name(nil), input...)
	require.NoError(t, New(Options{Strategy: StrategySequential}).SortByName(reference))
	assertSorted(t, reference)

	for name, opts := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			got := append([]types.Name(nil), input...)
			require.NoError(t, New(opts).SortByName(got))
			assertSorted(t, got)

			if diff := cmp.Diff(reference, got); diff != "" {
				t.Errorf("strategy %s disagrees with sequential (-want +got):\n%s", name, diff)
			}
		})
	}
}

func TestSortByName_StableForEqualKeys(t *testing.T) {
	names := []types.Name{
		{FirstName: "JOHN", LastName: "DOE"},
		{FirstName: "Ann", LastName: "Able"},
		{FirstName: "john", LastName: "doe"},
		{FirstName: "John", LastName: "Doe"},
	}

	for name, opts := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			got := append([]types.Name(nil), names...)
			require.NoError(t, New(opts).SortByName(got))
			assert.Equal(t, []types.Name{names[1], names[0], names[2], names[3]}, got)
		})
	}
}

func TestSortByName_AbsentMiddleBeforeMarksOnlyMiddle(t *testing.T) {
	marksOnly := types.Name{FirstName: "Amy", MiddleNames: "\u0301", LastName: "Smith"}
	absent := types.Name{FirstName: "Amy", LastName: "Smith"}

	for name, opts := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			got := []types.Name{marksOnly, absent}
			require.NoError(t, New(opts).SortByName(got))
			assert.Equal(t, []types.Name{absent, marksOnly}, got)
		})
	}
}

func TestSortByName_DoesNotChangeRecords(t *testing.T) {
	input := namegen.New(9, namegen.DefaultMiddleRatio).Names(1000)
	got := append([]types.Name(nil), input...)
	require.NoError(t, New(Options{Strategy: StrategyParallel, Workers: 8}).SortByName(got))

	count := func(names []types.Name) map[types.Name]int {
		m := make(map[types.Name]int, len(names))
		for _, n := range names {
			m[n]++
		}
		return m
	}
	assert.Equal(t, count(input), count(got))
}

func TestSortByName_EdgeCases(t *testing.T) {
	t.Run("nil collection", func(t *testing.T) {
		err := SortByName(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidArgument)
	})

	t.Run("empty collection", func(t *testing.T) {
		assert.NoError(t, SortByName([]types.Name{}))
	})

	t.Run("single record", func(t *testing.T) {
		names := []types.Name{{FirstName: "John", LastName: "Doe"}}
		require.NoError(t, New(Options{Strategy: StrategyParallel}).SortByName(names))
		assert.Equal(t, "Doe", names[0].LastName)
	})

	t.Run("more workers than records", func(t *testing.T) {
		names := []types.Name{
			{FirstName: "B", LastName: "B"},
			{FirstName: "A", LastName: "A"},
			{FirstName: "C", LastName: "C"},
		}
		require.NoError(t, New(Options{Strategy: StrategyParallel, Workers: 64}).SortByName(names))
		assert.Equal(t, []string{"A", "B", "C"}, []string{names[0].LastName, names[1].LastName, names[2].LastName})
	})
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]Strategy{
		"":           StrategyAuto,
		"auto":       StrategyAuto,
		"sequential": StrategySequential,
		"parallel":   StrategyParallel,
	} {
		got, err := ParseStrategy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseStrategy("bogo")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestNew_Defaults(t *testing.T) {
	opts := New(Options{}).Options()
	assert.Equal(t, StrategyAuto, opts.Strategy)
	assert.GreaterOrEqual(t, opts.Workers, 1)
	assert.Equal(t, DefaultParallelThreshold, opts.ParallelThreshold)
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
