// =============================================================================
// Name Sorter - Shared Types
// =============================================================================
//
// This package contains the record type and sentinel errors shared by the
// parser, the sorter and the name service. Keeping them here avoids import
// cycles between:
//   - nameparser
//   - sorter
//   - converter
//
// =============================================================================

package types

import "errors"

// ErrInvalidArgument is returned when a required argument (a record to
// format, a collection to sort, a path) is missing.
var ErrInvalidArgument = errors.New("invalid argument")

// =============================================================================
// NAME RECORD
// =============================================================================

// Name is a parsed personal name.
//
// A Name is a value: it is copied, never shared, and nothing in this module
// modifies one after it has been built.
type Name struct {
	// FirstName is the first token of the line. Never empty after a parse.
	FirstName string

	// MiddleNames holds every token between the first and the last one,
	// joined with single spaces. The empty string means "no middle names".
	MiddleNames string

	// LastName is the last token of the line. Never empty after a parse.
	LastName string
}

// HasMiddleNames reports whether the name carries at least one middle token.
func (n Name) HasMiddleNames() bool {
	return n.MiddleNames != ""
}
