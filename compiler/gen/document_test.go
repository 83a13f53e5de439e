package gen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	keys := []string{"b", "a", "b", "c"}
	table := NewTable("T", keys)
	assert.Equal(t, []string{"a", "b", "c"}, table.Keys)
	assert.Equal(t, []string{"b", "a", "b", "c"}, keys, "input must not be modified")
}

func TestNewDocument(t *testing.T) {
	now := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	cfg := MustNewConfig(WithTable("Auth", TableConfig{GroupByPrefix: true}))
	tables := []*Table{
		NewTable("Common", []string{"ok", "cancel"}),
		NewTable("Auth", []string{"login_title", "error_invalid_input"}),
		NewTable("Empty", nil),
	}
	doc := NewDocument(cfg, tables, now)

	require.Len(t, doc.Tables, 3)
	assert.Equal(t, "Auth", doc.Tables[0].Name)
	assert.Equal(t, "Common", doc.Tables[1].Name)
	assert.Equal(t, "Empty", doc.Tables[2].Name)
	assert.Equal(t, 4, doc.Total)
	assert.Equal(t, "03/09/24", doc.Stamp())
	assert.Equal(t, DefaultProject, doc.Project)
	assert.Equal(t, DefaultExtension, doc.Extension)

	auth := doc.Tables[0]
	assert.True(t, auth.Config.GroupByPrefix)
	assert.True(t, auth.Grouped())
	assert.Equal(t, "Auth", auth.TypeName)
	assert.Equal(t, "auth", auth.FuncName)

	assert.False(t, doc.Tables[1].Grouped())
	assert.Empty(t, doc.Tables[2].Sections)
	assert.Equal(t, "Common", tables[0].Name, "input order must not change")
}

func TestNewDocumentUniqueNames(t *testing.T) {
	tables := []*Table{
		NewTable("auth", []string{"a"}),
		NewTable("Auth", []string{"b"}),
		NewTable("Au-th", []string{"c"}),
		NewTable("Au_th", []string{"d"}),
	}
	doc := NewDocument(MustNewConfig(), tables, time.Now())
	types := make(map[string]bool)
	funcs := make(map[string]bool)
	for _, td := range doc.Tables {
		assert.False(t, types[td.TypeName], "type %q reused", td.TypeName)
		assert.False(t, funcs[td.FuncName], "func %q reused", td.FuncName)
		types[td.TypeName] = true
		funcs[td.FuncName] = true
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "0 keys", Plural(0, "key"))
	assert.Equal(t, "1 key", Plural(1, "key"))
	assert.Equal(t, "12 keys", Plural(12, "key"))
	assert.Equal(t, "2 localized strings", Plural(2, "localized string"))
	assert.Equal(t, "3 .xcstrings files", Plural(3, ".xcstrings file"))
}
