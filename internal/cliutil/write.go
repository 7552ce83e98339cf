// Package cliutil holds small output helpers shared by the prototools
// commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted command output. Diagnostics are best-effort:
// a failed write is reported on stderr rather than returned, so command
// handlers never branch on printing errors.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
