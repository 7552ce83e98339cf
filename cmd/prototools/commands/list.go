package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/milonpl/prototools/parser"
)

// ListFlags contains flags for the list command
type ListFlags struct {
	Dir    string
	Prefix string
	Limit  int
}

// SetupListFlags creates and configures a FlagSet for the list command.
func SetupListFlags() (*flag.FlagSet, *ListFlags) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &ListFlags{}

	fs.StringVar(&flags.Dir, "dir", "", "base directory containing entity prototype YAML files (required)")
	fs.StringVar(&flags.Prefix, "prefix", "", "only list prototype ids with this prefix")
	fs.IntVar(&flags.Limit, "limit", 0, "maximum number of ids to list (0 = all)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: prototools list --dir <path> [flags]\n\n")
		Writef(fs.Output(), "List loaded entity prototype ids and their source files.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  prototools list --dir Resources/Prototypes\n")
		Writef(fs.Output(), "  prototools list --dir Resources/Prototypes --prefix Mob --limit 20\n")
	}

	return fs, flags
}

// HandleList executes the list command
func HandleList(args []string) error {
	fs, flags := SetupListFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Dir == "" {
		fs.Usage()
		return fmt.Errorf("list command requires --dir")
	}

	p := parser.New()
	loaded, err := p.LoadDir(flags.Dir)
	if err != nil {
		return fmt.Errorf("loading prototypes: %w", err)
	}

	OutputLoadStats(loaded)
	Writef(os.Stderr, "\n")

	shown := 0
	for _, id := range loaded.Store.IDs() {
		if flags.Prefix != "" && !strings.HasPrefix(id, flags.Prefix) {
			continue
		}
		if flags.Limit > 0 && shown >= flags.Limit {
			Writef(os.Stdout, "... (truncated at %d)\n", flags.Limit)
			break
		}
		proto, _ := loaded.Store.Get(id)
		Writef(os.Stdout, "%s\t%s\n", id, proto.SourcePath)
		shown++
	}
	return nil
}
