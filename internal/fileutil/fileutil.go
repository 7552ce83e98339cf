// Package fileutil holds shared file handling constants.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for sanitized prototype
// output files (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600
