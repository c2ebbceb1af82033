// =============================================================================
// Name Sorter - Fixture Generator
// =============================================================================
//
// This module produces random name lines and records for tests, benchmarks
// and the `generate` command. Output is fully determined by the seed.
//
// Two shapes are available:
//   - Line/Lines : realistic names drawn from fixed pools. Duplicate
//                  first+middle combinations across last names are expected.
//   - Names      : records made of random upper-case strings, useful to
//                  stress the comparer with few ties.
//
// =============================================================================

package namegen

import (
	"math/rand/v2"
	"strings"

	"github.com/ginjaninja78/name-sorter/internal/types"
)

var (
	firstNames = []string{
		"Olivia", "Liam", "Charlotte", "Noah", "Amelia", "Oliver",
		"Isla", "Leo", "Ava", "Lucas", "Mia", "Ethan", "Sam", "Bob", "Xi",
	}

	// Some entries hold two tokens on purpose.
	middleNames = []string{
		"Grace", "James", "Rose", "Alexander", "Jane", "Michael",
		"Louise", "Matthew", "Claire", "Thomas", "May", "John M", "Tom Johnson",
	}

	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
		"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Patel", "Chen", "Zhao",
	}
)

// DefaultMiddleRatio is the share of generated names with middle names.
const DefaultMiddleRatio = 0.5

// Generator draws random names. It is not safe for concurrent use.
type Generator struct {
	rnd         *rand.Rand
	middleRatio float64
}

// New creates a Generator seeded with seed. A middleRatio outside [0, 1]
// is replaced with DefaultMiddleRatio.
func New(seed uint64, middleRatio float64) *Generator {
	if middleRatio < 0 || middleRatio > 1 {
		middleRatio = DefaultMiddleRatio
	}
	return &Generator{
		rnd:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		middleRatio: middleRatio,
	}
}

// Line returns one name line drawn from the fixed pools.
func (g *Generator) Line() string {
	first := firstNames[g.rnd.IntN(len(firstNames))]
	last := lastNames[g.rnd.IntN(len(lastNames))]

	if g.rnd.Float64() < g.middleRatio {
		middle := middleNames[g.rnd.IntN(len(middleNames))]
		return first + " " + middle + " " + last
	}
	return first + " " + last
}

// Lines returns n lines from Line.
func (g *Generator) Lines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = g.Line()
	}
	return lines
}

// Names returns n records built from random upper-case strings of three to
// seven letters.
func (g *Generator) Names(n int) []types.Name {
	names := make([]types.Name, n)
	for i := range names {
		names[i] = types.Name{
			FirstName: g.word(),
			LastName:  g.word(),
		}
		if g.rnd.Float64() < g.middleRatio {
			names[i].MiddleNames = g.word()
		}
	}
	return names
}

func (g *Generator) word() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	var b strings.Builder
	size := 3 + g.rnd.IntN(5)
	b.Grow(size)
	for range size {
		b.WriteByte(letters[g.rnd.IntN(len(letters))])
	}
	return b.String()
}
