package composenames

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codalotl/lintnames/internal/qualname"
	"go.uber.org/multierr"
)

// File is the JSON shape of a catalog file.
type File struct {
	Packages []FilePackage `json:"packages"`
}

// FilePackage lists declarations (dotted, possibly nested) in one package.
type FilePackage struct {
	Package string   `json:"package"`
	Names   []string `json:"names"`
}

// LoadFile reads a JSON catalog file at path. See Decode.
func LoadFile(path string, logger *slog.Logger) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Decode(f, logger)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Decode reads a JSON catalog from r and builds a Catalog from it. Unknown JSON fields and anything after the catalog object are errors.
//
// Every malformed package or name is reported: the returned error combines all of them (use multierr.Errors to split it), and each matches qualname.ErrInvalidFormat
// with errors.Is. No Catalog is returned unless every entry is valid. If logger is nil, nothing is logged.
func Decode(r io.Reader, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var file File
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("decode catalog: unexpected data after catalog object")
		}
		return nil, fmt.Errorf("decode catalog: unexpected data after catalog object: %w", err)
	}

	names, err := file.Names()
	if err != nil {
		return nil, err
	}
	c, err := NewCatalog(names...)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded catalog", "packages", len(file.Packages), "names", c.Len())
	return c, nil
}

// Names parses every entry of f. Errors for all malformed entries are combined with multierr.
func (f File) Names() ([]qualname.Name, error) {
	var names []qualname.Name
	var errs error
	for i, fp := range f.Packages {
		pkg, err := qualname.ParsePackage(fp.Package)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("packages[%d]: %w", i, err))
			continue
		}
		for j, dotted := range fp.Names {
			n, err := qualname.ParseName(pkg, dotted)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("packages[%d].names[%d]: %w", i, j, err))
				continue
			}
			names = append(names, n)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return names, nil
}
