package gen

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/go-openapi/inflect"
)

// StampLayout is the date layout of the generation timestamp.
const StampLayout = "01/02/06"

// Table is one catalog's keys, sorted and deduplicated.
type Table struct {
	Name string
	Keys []string
}

// NewTable returns a table with keys sorted and deduplicated.
func NewTable(name string, keys []string) *Table {
	k := slices.Clone(keys)
	slices.Sort(k)
	return &Table{Name: name, Keys: slices.Compact(k)}
}

// Document is everything a target needs to render the output file.
type Document struct {
	// Tables in ascending table name order.
	Tables []*TableDoc
	// Total is the number of keys across all tables.
	Total int
	// GeneratedAt is embedded in the banner.
	GeneratedAt time.Time
	// Project is the project name shown in the banner.
	Project string
	// Package is the package name for targets that need one.
	Package string
	// Output is the output path relative to the project root.
	Output string
	// Extension of the source catalogs, e.g. ".xcstrings".
	Extension string
}

// TableDoc is a table prepared for rendering.
type TableDoc struct {
	*Table
	Config   TableConfig
	Sections []Section
	// TypeName is the sanitized table name, unique within the document.
	TypeName string
	// FuncName is the lowercased TypeName, unique within the document.
	FuncName string
}

// Stamp returns the formatted generation date.
func (d *Document) Stamp() string {
	return d.GeneratedAt.Format(StampLayout)
}

// Grouped reports whether the table renders group headers.
func (t *TableDoc) Grouped() bool {
	return len(t.Sections) > 1
}

// NewDocument builds the render input for tables. Table names are sorted,
// every table gets its sections from the matching TableConfig in c.
func NewDocument(c *Config, tables []*Table, now time.Time) *Document {
	sorted := slices.Clone(tables)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	doc := &Document{
		Tables:      make([]*TableDoc, 0, len(sorted)),
		GeneratedAt: now,
		Project:     c.Project,
		Package:     c.Package,
		Output:      c.Output,
		Extension:   c.Extension,
	}
	types, funcs := NewNamer(), NewNamer()
	for _, t := range sorted {
		tc := c.TableConfig(t.Name)
		typ := types.Name(TypeIdentifier(t.Name))
		doc.Tables = append(doc.Tables, &TableDoc{
			Table:    t,
			Config:   tc,
			Sections: Sections(t, tc),
			TypeName: typ,
			FuncName: funcs.Name(strings.ToLower(typ)),
		})
		doc.Total += len(t.Keys)
	}
	return doc
}

// Plural formats a count with its noun, e.g. "1 key" or "3 keys".
func Plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %s", n, inflect.Pluralize(noun))
}
