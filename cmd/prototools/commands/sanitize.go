package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/milonpl/prototools/internal/fileutil"
	"github.com/milonpl/prototools/parser"
	"github.com/milonpl/prototools/sanitizer"
)

// SanitizeFlags contains flags for the sanitize command
type SanitizeFlags struct {
	Dir     string
	ID      string
	Output  string
	Quiet   bool
	Verbose bool
}

// SetupSanitizeFlags creates and configures a FlagSet for the sanitize command.
// Returns the FlagSet and a SanitizeFlags struct with bound flag variables.
func SetupSanitizeFlags() (*flag.FlagSet, *SanitizeFlags) {
	fs := flag.NewFlagSet("sanitize", flag.ContinueOnError)
	flags := &SanitizeFlags{}

	fs.StringVar(&flags.Dir, "dir", "", "base directory containing entity prototype YAML files (required)")
	fs.StringVar(&flags.ID, "id", "", "id of the prototype to sanitize (required)")
	fs.StringVar(&flags.Output, "o", "output.yml", "output file path")
	fs.StringVar(&flags.Output, "output", "output.yml", "output file path")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose mode: per-file load logging to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: per-file load logging to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: prototools sanitize --dir <path> --id <prototype> [flags]\n\n")
		Writef(fs.Output(), "Remove components and fields already inherited from parent prototypes.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  prototools sanitize --dir Resources/Prototypes --id MobHuman\n")
		Writef(fs.Output(), "  prototools sanitize --dir Resources/Prototypes --id MobHuman -o human.yml\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Prototype sanitized and written\n")
		Writef(fs.Output(), "  1    Prototype not found, inheritance cycle, or I/O failure\n")
	}

	return fs, flags
}

// HandleSanitize executes the sanitize command
func HandleSanitize(args []string) error {
	fs, flags := SetupSanitizeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Dir == "" || flags.ID == "" {
		fs.Usage()
		return fmt.Errorf("sanitize command requires --dir and --id")
	}

	outputPath := filepath.Clean(flags.Output)
	if err := RejectSymlinkOutput(outputPath); err != nil {
		return err
	}
	if err := ValidateOutputPath(outputPath, flags.Dir); err != nil {
		return err
	}

	startTime := time.Now()

	p := parser.New()
	if flags.Verbose {
		p.Logger = parser.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	loaded, err := p.LoadDir(flags.Dir)
	if err != nil {
		return fmt.Errorf("loading prototypes: %w", err)
	}

	if !flags.Quiet {
		Writef(os.Stderr, "Prototype Sanitizer\n")
		Writef(os.Stderr, "===================\n\n")
		OutputLoadStats(loaded)
	}

	s := sanitizer.New(loaded.Store)
	result, err := s.Sanitize(flags.ID)
	if err != nil {
		return fmt.Errorf("sanitizing %q: %w", flags.ID, err)
	}

	// Diagnostic messages go to stderr to keep stdout clean for pipelining.
	if !flags.Quiet {
		Writef(os.Stderr, "\nFound prototype %q\n", flags.ID)
		for _, warning := range result.Warnings {
			Writef(os.Stderr, "Warning: %s\n", warning)
		}
		if len(result.RemovedComponents) > 0 {
			Writef(os.Stderr, "\nRemoving %d redundant component(s):\n", len(result.RemovedComponents))
			for _, ctype := range result.RemovedComponents {
				Writef(os.Stderr, "  - %s\n", ctype)
			}
		} else {
			Writef(os.Stderr, "\nNo redundant components found\n")
		}
		for ctype, fields := range result.StrippedFields {
			Writef(os.Stderr, "Removed redundant fields from %s: %v\n", ctype, fields)
		}
		Writef(os.Stderr, "Total Time: %v\n", time.Since(startTime))
	}

	data, err := parser.MarshalDocuments(result.Document)
	if err != nil {
		return fmt.Errorf("marshaling sanitized prototype: %w", err)
	}
	if err := os.WriteFile(outputPath, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if !flags.Quiet {
		Writef(os.Stderr, "\nOutput written to: %s\n", outputPath)
	}
	return nil
}
