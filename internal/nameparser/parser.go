// =============================================================================
// Name Sorter - Name Parser Module
// =============================================================================
//
// This module converts a single line of text into a types.Name and back.
//
// LINE FORMAT:
//   <first> [<middle> ...] <last>
//
//   Tokens are separated by any run of whitespace. Leading, trailing and
//   repeated whitespace is discarded, so "  John   Michael  Doe " and
//   "John Michael Doe" parse to the same record.
//
// RULES:
//   - Fewer than two tokens is a FormatError.
//   - The first token is the first name, the last token is the last name.
//   - Everything in between is kept, in order, as the middle names.
//   - Token content is never inspected (apostrophes, hyphens and digits are
//     all accepted as-is).
//
// Both Parse and Format are pure and safe for concurrent use.
//
// =============================================================================

package nameparser

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/name-sorter/internal/types"
)

// =============================================================================
// ERRORS
// =============================================================================

// FormatError is returned by Parse when a line does not hold at least a
// first and a last name.
type FormatError struct {
	// Line is the offending input, exactly as it was passed to Parse.
	Line string

	// Tokens is the number of non-empty whitespace-separated tokens found.
	Tokens int
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid name format: %q: expected at least a first and last name, got %d part(s)",
		e.Line, e.Tokens)
}

// =============================================================================
// PARSING
// =============================================================================

// Parse splits line on whitespace and builds a Name from the tokens.
//
// RETURNS:
//   - The parsed Name.
//   - A *FormatError if the line has fewer than two tokens.
func Parse(line string) (types.Name, error) {
	parts := strings.Fields(line)

	if len(parts) < 2 {
		return types.Name{}, &FormatError{Line: line, Tokens: len(parts)}
	}

	name := types.Name{
		FirstName: parts[0],
		LastName:  parts[len(parts)-1],
	}
	if len(parts) > 2 {
		name.MiddleNames = strings.Join(parts[1:len(parts)-1], " ")
	}

	return name, nil
}

// =============================================================================
// FORMATTING
// =============================================================================

// Format renders a Name as a single line: the non-blank fields in
// first/middle/last order, separated by one space.
//
// RETURNS:
//   - The formatted line.
//   - An error wrapping types.ErrInvalidArgument if name is nil.
func Format(name *types.Name) (string, error) {
	if name == nil {
		return "", fmt.Errorf("format name: nil record: %w", types.ErrInvalidArgument)
	}

	parts := make([]string, 0, 3)
	for _, field := range [...]string{name.FirstName, name.MiddleNames, name.LastName} {
		// Blank fields contribute neither text nor a separator.
		if strings.TrimSpace(field) == "" {
			continue
		}
		parts = append(parts, field)
	}

	return strings.Join(parts, " "), nil
}

// FormatAll formats every name in order.
func FormatAll(names []types.Name) []string {
	lines := make([]string, len(names))
	for i := range names {
		// Format only fails on a nil record, and &names[i] never is.
		lines[i], _ = Format(&names[i])
	}
	return lines
}

// IsBlank reports whether line holds no tokens at all. Blank lines are
// skipped by callers before they reach Parse.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
