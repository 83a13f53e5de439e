package gen

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultGroup holds the keys that have no prefix.
const DefaultGroup = "other"

// emptyIdent replaces identifiers that came out empty, e.g. for the empty
// key or a key equal to the stripped prefix.
const emptyIdent = "emptyKey"

// Group is a bucket of keys sharing the prefix before the first '_'.
type Group struct {
	Name string
	Keys []string
}

// Entry is a single constant to emit: its identifier and the raw key it
// resolves to.
type Entry struct {
	Ident string
	Key   string
}

// Section is a run of entries rendered together. Ungrouped tables have a
// single section with an empty name.
type Section struct {
	Name    string
	Entries []Entry
}

// Title returns the header shown above the section, e.g. "Login" for "login"
// and "2Fa" for "2fa".
func (s Section) Title() string {
	return title(cases.Title(language.English), s.Name)
}

// GroupKeys buckets keys by the prefix before their first '_'. Keys without
// '_' go to DefaultGroup. Groups are sorted by name, keys keep their order.
func GroupKeys(keys []string) []Group {
	idx := make(map[string]int)
	var groups []Group
	for _, k := range keys {
		name := DefaultGroup
		if prefix, _, ok := strings.Cut(k, "_"); ok {
			name = prefix
		}
		i, ok := idx[name]
		if !ok {
			i = len(groups)
			idx[name] = i
			groups = append(groups, Group{Name: name})
		}
		groups[i].Keys = append(groups[i].Keys, k)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})
	return groups
}

// Sections returns the table's entries in emission order. Without grouping
// this is catalog order in one section; with grouping one section per
// group. Identifiers are unique across the whole table.
func Sections(t *Table, tc TableConfig) []Section {
	if len(t.Keys) == 0 {
		return nil
	}
	namer := NewNamer()
	entry := func(key string) Entry {
		ident := Identifier(key, tc.StripPrefix)
		if ident == "" {
			ident = emptyIdent
		}
		return Entry{Ident: namer.Name(ident), Key: key}
	}
	if !tc.GroupByPrefix {
		s := Section{Entries: make([]Entry, 0, len(t.Keys))}
		for _, k := range t.Keys {
			s.Entries = append(s.Entries, entry(k))
		}
		return []Section{s}
	}
	byKey := make(map[string][]string, len(t.Keys))
	stripped := make([]string, 0, len(t.Keys))
	for _, k := range t.Keys {
		s := strings.TrimPrefix(k, tc.StripPrefix)
		if _, ok := byKey[s]; !ok {
			stripped = append(stripped, s)
		}
		byKey[s] = append(byKey[s], k)
	}
	groups := GroupKeys(stripped)
	sections := make([]Section, 0, len(groups))
	for _, g := range groups {
		s := Section{Name: g.Name}
		for _, sk := range g.Keys {
			for _, k := range byKey[sk] {
				s.Entries = append(s.Entries, entry(k))
			}
		}
		sections = append(sections, s)
	}
	return sections
}

// Entries flattens Sections.
func Entries(t *Table, tc TableConfig) []Entry {
	var entries []Entry
	for _, s := range Sections(t, tc) {
		entries = append(entries, s.Entries...)
	}
	return entries
}
