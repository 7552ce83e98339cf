// Package commands provides CLI command handlers for prototools.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/milonpl/prototools/internal/cliutil"
	"github.com/milonpl/prototools/parser"
)

// Writef writes formatted command output; write failures are reported
// on stderr, never returned.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// ValidateOutputPath checks that the output path is safe to write to:
// it must not live inside the prototype directory being scanned (the tool
// never writes back into the source tree), and an existing file triggers
// an overwrite warning.
func ValidateOutputPath(outputPath, protoDir string) error {
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	absDir, err := filepath.Abs(protoDir)
	if err != nil {
		return fmt.Errorf("invalid prototype directory: %w", err)
	}

	// A relative path that does not climb out of absDir means the output
	// would land inside the scanned tree.
	if rel, err := filepath.Rel(absDir, absOutput); err == nil &&
		rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output file %s is inside the prototype directory %s", outputPath, protoDir)
	}

	if _, err := os.Stat(outputPath); err == nil {
		Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}
	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet — safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// OutputLoadStats writes the common load statistics to stderr.
func OutputLoadStats(loaded *parser.LoadResult) {
	Writef(os.Stderr, "Files: %d\n", loaded.FileCount)
	Writef(os.Stderr, "Prototypes: %d\n", loaded.PrototypeCount)
	if loaded.ErrorCount > 0 {
		Writef(os.Stderr, "Load Errors: %d\n", loaded.ErrorCount)
		for _, err := range loaded.Errors {
			Writef(os.Stderr, "  - %v\n", err)
		}
	}
	Writef(os.Stderr, "Load Time: %v\n", loaded.LoadTime)
}
