// =============================================================================
// Name Sorter - File Manager Utility
// =============================================================================
//
// This module provides the file collaborators of the name sorter:
//   - A line source: ReadLines opens a file and returns a lazy LineScanner
//   - A line sink:   WriteLines replaces a file with the given lines
//   - Directory management
//
// READING:
//   - A missing file fails with ErrNotFound (which also matches fs.ErrNotExist)
//   - Every ReadLines call reopens the file, so a sequence can be restarted
//     from the beginning but not resumed half-way
//   - "\n" and "\r\n" line endings are both accepted
//
// WRITING:
//   - Parent directories are created as needed
//   - Lines are written to a uniquely named temporary file next to the
//     destination, then renamed over it, so readers never observe a
//     half-written file
//   - Every line ends with the platform line terminator
//
// =============================================================================

package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned by ReadLines when the input path does not exist.
var ErrNotFound = errors.New("file not found")

// LineTerminator is the line ending written by WriteLines.
var LineTerminator = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the name sorter.
type FileManager struct {
	// BufSize is the size of the read and write buffers in bytes.
	BufSize int

	// MaxLineSize is the longest line ReadLines accepts, in bytes.
	MaxLineSize int

	// PermFile is the permission of files created by WriteLines.
	PermFile os.FileMode

	// PermDir is the permission of directories created by WriteLines.
	PermDir os.FileMode
}

// NewFileManager creates a FileManager with default buffer sizes and
// permissions.
func NewFileManager() *FileManager {
	return &FileManager{
		BufSize:     64 * 1024,
		MaxLineSize: 1024 * 1024,
		PermFile:    0o644,
		PermDir:     0o755,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates dir and its parents if they don't exist. An empty dir
// or "." is a no-op.
func (fm *FileManager) EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, fm.PermDir); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// LINE SOURCE
// =============================================================================

// ReadLines opens path for line-by-line reading.
//
// RETURNS:
//   - A LineScanner positioned before the first line. The caller must Close it.
//   - An error wrapping ErrNotFound if path does not exist, or
//     os.ErrInvalid if path is blank.
func (fm *FileManager) ReadLines(path string) (*LineScanner, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("read lines: empty path: %w", os.ErrInvalid)
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("input file %s: %w: %w", path, ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("input path %s is a directory: %w", path, os.ErrInvalid)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, fm.BufSize), fm.MaxLineSize)

	return &LineScanner{file: file, scanner: scanner, path: path}, nil
}

// ReadAllLines reads every line of path into memory.
func (fm *FileManager) ReadAllLines(path string) ([]string, error) {
	ls, err := fm.ReadLines(path)
	if err != nil {
		return nil, err
	}
	defer ls.Close()

	var lines []string
	for ls.Next() {
		lines = append(lines, ls.Line())
	}
	return lines, ls.Err()
}

// LineScanner reads a file one line at a time.
//
// USAGE:
//   ls, err := fm.ReadLines(path)
//   if err != nil {
//       return err
//   }
//   defer ls.Close()
//
//   for ls.Next() {
//       line := ls.Line()
//       // Process the line...
//   }
//
//   if err := ls.Err(); err != nil {
//       return err
//   }
type LineScanner struct {
	file       *os.File
	scanner    *bufio.Scanner
	path       string
	lineNumber int
}

// Next advances to the next line. Returns false at the end of the file or
// on a read error.
func (ls *LineScanner) Next() bool {
	if !ls.scanner.Scan() {
		return false
	}
	ls.lineNumber++
	return true
}

// Line returns the current line without its terminator.
func (ls *LineScanner) Line() string {
	return ls.scanner.Text()
}

// LineNumber returns the current line number (1-indexed).
func (ls *LineScanner) LineNumber() int {
	return ls.lineNumber
}

// Err returns the first read error, if any.
func (ls *LineScanner) Err() error {
	if err := ls.scanner.Err(); err != nil {
		return fmt.Errorf("error reading %s after line %d: %w", ls.path, ls.lineNumber, err)
	}
	return nil
}

// Close closes the underlying file.
func (ls *LineScanner) Close() error {
	return ls.file.Close()
}

// =============================================================================
// LINE SINK
// =============================================================================

// WriteLines replaces the file at path with lines, one per line.
//
// RETURNS:
//   - An error if the directory cannot be created or the file cannot be
//     written. On error the previous content of path is left untouched.
func (fm *FileManager) WriteLines(path string, lines []string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("write lines: empty path: %w", os.ErrInvalid)
	}

	dir := filepath.Dir(path)
	if err := fm.EnsureDir(dir); err != nil {
		return err
	}

	tmpPath := TempFileName(path)
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, fm.PermFile)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	// Remove the temporary file on any failure below.
	committed := false
	defer func() {
		if !committed {
			file.Close()
			os.Remove(tmpPath)
		}
	}()

	writer := bufio.NewWriterSize(file, fm.BufSize)
	for _, line := range lines {
		if _, err := writer.WriteString(line); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if _, err := writer.WriteString(LineTerminator); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	if err := replaceFile(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		committed = true
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	committed = true
	return nil
}

// TempFileName returns a hidden, unique sibling path for path.
//
// EXAMPLE:
//   path:   "out/sorted-names-list.txt"
//   output: "out/.sorted-names-list.txt.3f2b...-....tmp"
func TempFileName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
}

// replaceFile renames src over dst. os.Rename already replaces an existing
// destination on every supported platform except when dst is read-only on
// Windows, so the fallback removes dst first.
func replaceFile(src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		if runtime.GOOS != "windows" {
			return err
		}
		if rmErr := os.Remove(dst); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			return err
		}
		return os.Rename(src, dst)
	}
	return nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
