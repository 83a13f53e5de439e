package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idents(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Ident)
	}
	return out
}

func TestGroupKeys(t *testing.T) {
	groups := GroupKeys([]string{"login_subtitle", "login_title", "ok", "error_invalid_input", "signup_email"})
	require.Len(t, groups, 4)
	assert.Equal(t, Group{Name: "error", Keys: []string{"error_invalid_input"}}, groups[0])
	assert.Equal(t, Group{Name: "login", Keys: []string{"login_subtitle", "login_title"}}, groups[1])
	assert.Equal(t, Group{Name: DefaultGroup, Keys: []string{"ok"}}, groups[2])
	assert.Equal(t, Group{Name: "signup", Keys: []string{"signup_email"}}, groups[3])

	assert.Empty(t, GroupKeys(nil))
}

func TestSectionTitle(t *testing.T) {
	assert.Equal(t, "Login", Section{Name: "login"}.Title())
	assert.Equal(t, "2Fa", Section{Name: "2fa"}.Title())
	assert.Equal(t, "Other", Section{Name: DefaultGroup}.Title())
}

func TestSections(t *testing.T) {
	t.Run("Grouped", func(t *testing.T) {
		table := NewTable("Auth", []string{"login_title", "login_subtitle", "error_invalid_input"})
		sections := Sections(table, TableConfig{GroupByPrefix: true})
		require.Len(t, sections, 2)
		assert.Equal(t, "error", sections[0].Name)
		assert.Equal(t, "Error", sections[0].Title())
		assert.Equal(t, []string{"errorInvalidInput"}, idents(sections[0].Entries))
		assert.Equal(t, "login", sections[1].Name)
		assert.Equal(t, []string{"loginSubtitle", "loginTitle"}, idents(sections[1].Entries))
	})

	t.Run("Ungrouped keeps sorted order", func(t *testing.T) {
		table := NewTable("Common", []string{"ok", "cancel"})
		sections := Sections(table, TableConfig{})
		require.Len(t, sections, 1)
		assert.Empty(t, sections[0].Name)
		assert.Equal(t, []Entry{{Ident: "cancel", Key: "cancel"}, {Ident: "ok", Key: "ok"}}, sections[0].Entries)
	})

	t.Run("Colliding identifiers get suffixes", func(t *testing.T) {
		table := NewTable("Items", []string{"item_one", "item-one"})
		entries := Entries(table, TableConfig{})
		assert.Equal(t, []Entry{
			{Ident: "itemOne", Key: "item-one"},
			{Ident: "itemOne1", Key: "item_one"},
		}, entries)
	})

	t.Run("Collisions across groups", func(t *testing.T) {
		table := NewTable("T", []string{"a_b", "aB"})
		entries := Entries(table, TableConfig{GroupByPrefix: true})
		require.Len(t, entries, 2)
		assert.ElementsMatch(t, []string{"aB", "aB1"}, idents(entries))
	})

	t.Run("Strip prefix before grouping", func(t *testing.T) {
		table := NewTable("Auth", []string{"auth_login_title", "auth_login_subtitle", "auth_ok"})
		sections := Sections(table, TableConfig{StripPrefix: "auth_", GroupByPrefix: true})
		require.Len(t, sections, 2)
		assert.Equal(t, "login", sections[0].Name)
		assert.Equal(t, []Entry{
			{Ident: "loginSubtitle", Key: "auth_login_subtitle"},
			{Ident: "loginTitle", Key: "auth_login_title"},
		}, sections[0].Entries)
		assert.Equal(t, DefaultGroup, sections[1].Name)
		assert.Equal(t, []Entry{{Ident: "ok", Key: "auth_ok"}}, sections[1].Entries)
	})

	t.Run("Keys equal after stripping stay separate", func(t *testing.T) {
		table := NewTable("T", []string{"p_x", "x"})
		entries := Entries(table, TableConfig{StripPrefix: "p_", GroupByPrefix: true})
		assert.Equal(t, []Entry{{Ident: "x", Key: "p_x"}, {Ident: "x1", Key: "x"}}, entries)
	})

	t.Run("Empty identifiers", func(t *testing.T) {
		table := NewTable("T", []string{"", "emptyKey", "p_"})
		entries := Entries(table, TableConfig{StripPrefix: "p_"})
		assert.Equal(t, []Entry{
			{Ident: "emptyKey", Key: ""},
			{Ident: "emptyKey1", Key: "emptyKey"},
			{Ident: "emptyKey2", Key: "p_"},
		}, entries)
	})

	t.Run("Empty table", func(t *testing.T) {
		assert.Nil(t, Sections(NewTable("Empty", nil), TableConfig{GroupByPrefix: true}))
	})
}

func TestSectionsCount(t *testing.T) {
	keys := []string{"a", "a_b", "a_c", "b_a", "b-a", "c", "", "x_y_z", "x_y"}
	for _, tc := range []TableConfig{{}, {GroupByPrefix: true}, {StripPrefix: "a_", GroupByPrefix: true}} {
		table := NewTable("T", keys)
		entries := Entries(table, tc)
		assert.Len(t, entries, len(table.Keys))
		seen := make(map[string]bool)
		for _, e := range entries {
			assert.False(t, seen[e.Ident], "duplicate identifier %q", e.Ident)
			seen[e.Ident] = true
		}
	}
}
