package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/codalotl/lintnames/internal/composenames"
	"github.com/codalotl/lintnames/internal/qualname"
)

// catalogEnv names a JSON catalog file to merge into the built-in names when --catalog is not given.
const catalogEnv = "LINTNAMES_CATALOG"

// In/Out/Err override standard I/O. If nil, defaults are used. Overriding is useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// usageError indicates a user-facing mistake (exit code 2).
type usageError struct {
	message string
}

func (e usageError) Error() string { return e.message }

func usageErrorf(format string, args ...any) error {
	return usageError{message: fmt.Sprintf(format, args...)}
}

// Run runs the CLI with args (typically you'd use os.Args).
//
// It returns a recommended exit code (0, 1, or 2) and an error, if any:
//   - 0 -> err == nil
//   - 1 -> err != nil, but the structure of args is sound.
//   - 2 -> err != nil, args parse error or misuse of flags, etc.
//
// In cases of errors, Run has already written an error message to opts.Err || Stderr.
func Run(args []string, opts *RunOptions) (int, error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	err := dispatch(argv, out, errW)
	if err == nil {
		return 0, nil
	}
	if errors.Is(err, flag.ErrHelp) {
		return 0, nil
	}

	fmt.Fprintf(errW, "Error: %v\n", err)
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(errW, "Run 'lintnames --help' for usage.")
		return 2, err
	}
	return 1, err
}

const rootUsage = `lintnames renders and looks up well-known declaration names used by lint checks.

Usage:
  lintnames ls [--style java|internal] [--catalog FILE] [-v]
  lintnames render [--style java|internal] PACKAGE NAME
  lintnames lookup [--catalog FILE] [-v] NAME

NAME may be nested (ex: CompositionLocal.Key). lookup accepts a qualified name (a.b.C) or an internal class name (a/b/C).
`

func dispatch(argv []string, out, errW io.Writer) error {
	if len(argv) == 0 {
		fmt.Fprint(errW, rootUsage)
		return usageErrorf("missing required subcommand")
	}
	switch argv[0] {
	case "-h", "--help", "help":
		fmt.Fprint(out, rootUsage)
		return nil
	case "ls":
		return runLs(argv[1:], out, errW)
	case "render":
		return runRender(argv[1:], out, errW)
	case "lookup":
		return runLookup(argv[1:], out, errW)
	default:
		return usageErrorf("unknown subcommand: %s", argv[0])
	}
}

// commonFlags are shared by commands that read the catalog.
type commonFlags struct {
	style   string
	catalog string
	verbose bool
}

// newFlagSet returns a FlagSet that reports nothing itself: parse errors are returned to Run, which prints them once, and -h is handled by parseFlags.
func newFlagSet(name string, c *commonFlags, withStyle, withCatalog bool) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if withStyle {
		fs.StringVar(&c.style, "style", qualname.JavaStyle.String(), "rendering style: java or internal")
	}
	if withCatalog {
		fs.StringVar(&c.catalog, "catalog", "", "JSON catalog file merged into the built-in names (default $"+catalogEnv+")")
		fs.BoolVar(&c.verbose, "v", false, "log debug output to stderr")
	}
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string, errW io.Writer) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(errW, "Usage of %s:\n", fs.Name())
			fs.SetOutput(errW)
			fs.PrintDefaults()
			return err
		}
		return usageError{message: err.Error()}
	}
	return nil
}

func (c commonFlags) parsedStyle() (qualname.Style, error) {
	style, ok := qualname.ParseStyle(c.style)
	if !ok {
		return 0, usageErrorf("unknown style %q (want java or internal)", c.style)
	}
	return style, nil
}

func (c commonFlags) logger(errW io.Writer) *slog.Logger {
	if !c.verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(errW, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// loadCatalog returns the built-in catalog, merged with the catalog file named by --catalog or $LINTNAMES_CATALOG.
func (c commonFlags) loadCatalog(logger *slog.Logger) (*composenames.Catalog, error) {
	path := c.catalog
	if path == "" {
		path = strings.TrimSpace(os.Getenv(catalogEnv))
	}
	if path == "" {
		logger.Debug("using built-in catalog")
		return composenames.Default(), nil
	}

	extra, err := composenames.LoadFile(path, logger)
	if err != nil {
		return nil, err
	}
	merged, err := composenames.Default().Merge(extra)
	if err != nil {
		return nil, fmt.Errorf("merge catalog %s: %w", path, err)
	}
	logger.Debug("merged catalog", "path", path, "names", merged.Len())
	return merged, nil
}
