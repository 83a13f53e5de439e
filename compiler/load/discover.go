package load

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover returns every regular file in dir whose extension is ext,
// sorted by table name. Subdirectories are not searched.
func Discover(dir, ext string) ([]Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newDiscoveryError(ErrNoLocalizationDir, dir, nil)
		}
		return nil, newDiscoveryError(ErrNoLocalizationDir, dir, err)
	}
	if !info.IsDir() {
		return nil, newDiscoveryError(ErrNoLocalizationDir, dir, errors.New("not a directory"))
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newDiscoveryError(ErrNoLocalizationDir, dir, err)
	}
	var catalogs []Catalog
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ext {
			continue
		}
		if !e.Type().IsRegular() {
			// Follow symlinks, skip anything that does not resolve to a file.
			fi, err := os.Stat(filepath.Join(dir, name))
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
		}
		catalogs = append(catalogs, Catalog{
			Table: strings.TrimSuffix(name, ext),
			Path:  filepath.Join(dir, name),
		})
	}
	if len(catalogs) == 0 {
		return nil, newDiscoveryError(ErrNoCatalogs, dir, nil)
	}
	sort.Slice(catalogs, func(i, j int) bool {
		return catalogs[i].Table < catalogs[j].Table
	})
	return catalogs, nil
}

// FindRoot walks up from start until it finds a directory containing
// locDir and returns that directory.
func FindRoot(start, locDir string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if fi, err := os.Stat(filepath.Join(dir, locDir)); err == nil && fi.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", newDiscoveryError(ErrNoLocalizationDir, filepath.Join(start, locDir), nil)
		}
		dir = parent
	}
}
