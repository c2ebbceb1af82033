// =============================================================================
// Name Sorter - Main Entry Point
// =============================================================================
//
// USAGE:
//   namesort [input] [output]   - Sort a names file
//   namesort generate <output>  - Write a file of random names
//   namesort version            - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Parsing, sorting, the name service, config and logging
//   - pkg/       : File utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/name-sorter/cmd"
)

func main() {
	cmd.Execute()
}
