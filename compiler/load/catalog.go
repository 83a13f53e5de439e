// Package load reads localization catalogs and discovers them on disk.
package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"
)

// Catalog is a catalog file found during discovery.
type Catalog struct {
	// Table is the file name without its extension, case preserved.
	Table string
	// Path is the location of the catalog file.
	Path string
}

// document is the subset of a catalog the generator cares about.
// Entry values are opaque, only the key set is used.
type document struct {
	Strings json.RawMessage `json:"strings"`
}

// ParseCatalog decodes a catalog and returns the keys of its "strings"
// object in lexicographic order. A document without "strings" has no keys.
func ParseCatalog(r io.Reader) ([]string, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, NewCatalogError("", "malformed JSON", err)
	}
	raw := bytes.TrimSpace(doc.Strings)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []string{}, nil
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, NewCatalogError("", `"strings" is not an object`, err)
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

// LoadCatalog reads the catalog at path and returns its sorted keys.
func LoadCatalog(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewCatalogError(path, "open", err)
	}
	defer f.Close()
	keys, err := ParseCatalog(f)
	if err != nil {
		var ce *CatalogError
		if errors.As(err, &ce) {
			ce.Path = path
		}
		return nil, err
	}
	return keys, nil
}

// LoadKeys is LoadCatalog with the skip-and-warn policy: a catalog that
// cannot be loaded is logged and yields an empty key list, so one bad file
// never blocks generation of the others.
func LoadKeys(path string, logger *slog.Logger) []string {
	keys, err := LoadCatalog(path)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("skipping catalog", "path", path, "error", err)
		return []string{}
	}
	return keys
}
