package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		key    string
		strip  string
		expect string
	}{
		{"error_invalid_input", "", "errorInvalidInput"},
		{"login_title", "", "loginTitle"},
		{"ok", "", "ok"},
		{"cancel", "", "cancel"},
		{"item-one", "", "itemOne"},
		{"item.two.three", "", "itemTwoThree"},
		{"a__b", "", "aB"},
		{"2fa_code", "", "_2faCode"},
		{"item_2fa", "", "item2Fa"},
		{"error_x1y", "", "errorX1Y"},
		{"login_URL", "", "loginUrl"},
		{"\u0301accent", "", "_\u0301accent"},
		{"cafe\u0301_menu", "", "cafe\u0301Menu"},
		{"loginTitle", "", "loginTitle"},
		{"", "", ""},
		{"auth_login_title", "auth_", "loginTitle"},
		{"auth_", "auth_", ""},
		{"login_title", "auth_", "loginTitle"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expect, Identifier(tt.key, tt.strip))
		})
	}
}

func TestIdentifierUnicode(t *testing.T) {
	assert.Equal(t, "grüßeWelt", Identifier("grüße_welt", ""))
	assert.Equal(t, "helloWorld", Identifier("hello world", ""))
}

func TestTypeIdentifier(t *testing.T) {
	tests := map[string]string{
		"Auth":     "Auth",
		"Common":   "Common",
		"my-table": "my_table",
		"1abc":     "_1abc",
		"":         "_",
		"\u0301T":  "_\u0301T",
	}
	for name, expect := range tests {
		assert.Equal(t, expect, TypeIdentifier(name), "table %q", name)
	}
}

func TestNamer(t *testing.T) {
	t.Run("Suffixes duplicates", func(t *testing.T) {
		n := NewNamer()
		assert.Equal(t, "itemOne", n.Name("itemOne"))
		assert.Equal(t, "itemOne1", n.Name("itemOne"))
		assert.Equal(t, "itemOne2", n.Name("itemOne"))
		assert.Equal(t, "other", n.Name("other"))
	})

	t.Run("Reserved names are taken", func(t *testing.T) {
		n := NewNamer("Lookup")
		assert.True(t, n.Taken("Lookup"))
		assert.Equal(t, "Lookup1", n.Name("Lookup"))
	})

	t.Run("Suffix skips names already handed out", func(t *testing.T) {
		n := NewNamer()
		assert.Equal(t, "a1", n.Name("a1"))
		assert.Equal(t, "a", n.Name("a"))
		assert.Equal(t, "a2", n.Name("a"))
	})
}
