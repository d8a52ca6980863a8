package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/codalotl/lintnames/internal/qualname"
	"github.com/mattn/go-runewidth"
)

func runLs(args []string, out, errW io.Writer) error {
	var c commonFlags
	fs := newFlagSet("ls", &c, true, true)
	if err := parseFlags(fs, args, errW); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return usageErrorf("expected no args, got %d", fs.NArg())
	}
	style, err := c.parsedStyle()
	if err != nil {
		return err
	}

	catalog, err := c.loadCatalog(c.logger(errW))
	if err != nil {
		return err
	}

	rows := [][2]string{}
	for _, n := range catalog.Names() {
		rows = append(rows, [2]string{n.ShortName(), n.Format(style)})
	}
	writeTable(out, rows)
	return nil
}

func runRender(args []string, out, errW io.Writer) error {
	var c commonFlags
	fs := newFlagSet("render", &c, true, false)
	if err := parseFlags(fs, args, errW); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return usageErrorf("expected 2 args, got %d", fs.NArg())
	}
	style, err := c.parsedStyle()
	if err != nil {
		return err
	}

	pkg, err := qualname.ParsePackage(fs.Arg(0))
	if err != nil {
		return usageErrorf("package: %v", err)
	}
	n, err := qualname.ParseName(pkg, fs.Arg(1))
	if err != nil {
		return usageErrorf("name: %v", err)
	}
	fmt.Fprintln(out, n.Format(style))
	return nil
}

func runLookup(args []string, out, errW io.Writer) error {
	var c commonFlags
	fs := newFlagSet("lookup", &c, false, true)
	if err := parseFlags(fs, args, errW); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageErrorf("expected 1 arg, got %d", fs.NArg())
	}
	query := fs.Arg(0)

	logger := c.logger(errW)
	catalog, err := c.loadCatalog(logger)
	if err != nil {
		return err
	}

	var found qualname.Name
	var ok bool
	if strings.Contains(query, "/") {
		found, ok = catalog.LookupInternal(query)
	} else {
		found, ok = catalog.Lookup(query)
	}
	if !ok {
		return fmt.Errorf("%s: not in catalog", query)
	}
	logger.Debug("found", "query", query, "nested", found.IsNested())

	writeTable(out, [][2]string{
		{"short", found.ShortName()},
		{"qualified", found.QualifiedName()},
		{"internal", found.InternalClassName()},
		{"package", found.Package().String()},
	})
	return nil
}

// writeTable writes rows as two columns, padding the first column to its widest cell.
func writeTable(w io.Writer, rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r[0]))
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(r[0], width), r[1])
	}
}
