// =============================================================================
// Name Sorter - Name Comparer
// =============================================================================
//
// This module defines the total order used to sort names.
//
// ORDER:
//   1. Last name
//   2. First name
//   3. Middle names (absent sorts as the empty string, so before any value)
//   4. Middle name presence: absent before present, for middle names that
//      fold to the empty string (combining marks only)
//
// COLLATION:
//   Every key is compared through Fold, which case-folds the string, strips
//   nonspacing marks (accents) and recomposes it. The folded strings are then
//   compared byte by byte, which for UTF-8 is codepoint order. Nothing here
//   depends on the host locale, so the order is the same on every machine.
//
//   Examples:
//     Fold("Smith")    == Fold("SMITH")    == "smith"
//     Fold("Zoë")      == Fold("zoe")      == "zoe"
//     Fold("Ångström") == Fold("angstrom") == "angstrom"
//
// =============================================================================

package sorter

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ginjaninja78/name-sorter/internal/types"
)

// =============================================================================
// COLLATION
// =============================================================================

// foldChains hands out one transform chain per caller: transformers keep
// internal state and must not be shared between goroutines.
var foldChains = sync.Pool{
	New: func() any {
		return transform.Chain(
			cases.Fold(),
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		)
	},
}

// Fold returns the collation key of s: case-folded, without diacritics.
func Fold(s string) string {
	if isASCII(s) {
		return strings.ToLower(s)
	}

	t := foldChains.Get().(transform.Transformer)
	defer foldChains.Put(t)

	folded, _, err := transform.String(t, s)
	if err != nil {
		// Only reachable on invalid UTF-8 the chain refuses; fall back to
		// simple lower-casing so the order stays total.
		return strings.ToLower(s)
	}
	return folded
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// =============================================================================
// COMPARISON
// =============================================================================

// Compare orders a and b by last, first and middle names. It returns a
// negative number when a sorts first, zero when the names are equal under
// Fold, and a positive number otherwise.
func Compare(a, b types.Name) int {
	if c := strings.Compare(Fold(a.LastName), Fold(b.LastName)); c != 0 {
		return c
	}
	if c := strings.Compare(Fold(a.FirstName), Fold(b.FirstName)); c != 0 {
		return c
	}
	if c := strings.Compare(Fold(a.MiddleNames), Fold(b.MiddleNames)); c != 0 {
		return c
	}
	return comparePresence(a.HasMiddleNames(), b.HasMiddleNames())
}

func comparePresence(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

// Less reports whether a sorts strictly before b.
func Less(a, b types.Name) bool {
	return Compare(a, b) < 0
}

// Key holds the folded sort keys of a name, so that sorting folds every
// name once instead of once per comparison.
type Key struct {
	Last      string
	First     string
	Middle    string
	HasMiddle bool
}

// KeyOf folds the three keys of n.
func KeyOf(n types.Name) Key {
	return Key{
		Last:      Fold(n.LastName),
		First:     Fold(n.FirstName),
		Middle:    Fold(n.MiddleNames),
		HasMiddle: n.HasMiddleNames(),
	}
}

// CompareKeys orders two precomputed keys. For any names a and b,
// CompareKeys(KeyOf(a), KeyOf(b)) == Compare(a, b).
func CompareKeys(a, b Key) int {
	if c := strings.Compare(a.Last, b.Last); c != 0 {
		return c
	}
	if c := strings.Compare(a.First, b.First); c != 0 {
		return c
	}
	if c := strings.Compare(a.Middle, b.Middle); c != 0 {
		return c
	}
	return comparePresence(a.HasMiddle, b.HasMiddle)
}
