package load

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	t.Run("finds catalogs sorted by table", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalog(t, dir, "Common.xcstrings", `{}`)
		writeCatalog(t, dir, "Auth.xcstrings", `{}`)
		writeCatalog(t, dir, "notes.txt", `ignored`)
		require.NoError(t, os.Mkdir(filepath.Join(dir, "Nested.xcstrings"), 0o755))

		catalogs, err := Discover(dir, ".xcstrings")

		require.NoError(t, err)
		require.Len(t, catalogs, 2)
		assert.Equal(t, Catalog{Table: "Auth", Path: filepath.Join(dir, "Auth.xcstrings")}, catalogs[0])
		assert.Equal(t, "Common", catalogs[1].Table)
	})

	t.Run("table name keeps case", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalog(t, dir, "InfoPlist.xcstrings", `{}`)

		catalogs, err := Discover(dir, ".xcstrings")

		require.NoError(t, err)
		assert.Equal(t, "InfoPlist", catalogs[0].Table)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := Discover(filepath.Join(t.TempDir(), "Resources", "Localization"), ".xcstrings")

		require.Error(t, err)
		assert.True(t, IsDiscoveryError(err))
		assert.True(t, errors.Is(err, ErrNoLocalizationDir))
		assert.False(t, errors.Is(err, ErrNoCatalogs))
	})

	t.Run("path is a file", func(t *testing.T) {
		path := writeCatalog(t, t.TempDir(), "Localization", `{}`)

		_, err := Discover(path, ".xcstrings")

		assert.True(t, errors.Is(err, ErrNoLocalizationDir))
	})

	t.Run("no catalogs", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalog(t, dir, "Localizable.strings", `"a" = "b";`)

		_, err := Discover(dir, ".xcstrings")

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoCatalogs))
		assert.Contains(t, err.Error(), dir)
	})
}

func TestFindRoot(t *testing.T) {
	t.Run("walks up to the project root", func(t *testing.T) {
		root := t.TempDir()
		locDir := filepath.Join("Resources", "Localization")
		require.NoError(t, os.MkdirAll(filepath.Join(root, locDir), 0o755))
		start := filepath.Join(root, "Core", "Localization")
		require.NoError(t, os.MkdirAll(start, 0o755))

		got, err := FindRoot(start, locDir)

		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		gotResolved, err := filepath.EvalSymlinks(got)
		require.NoError(t, err)
		assert.Equal(t, want, gotResolved)
	})

	t.Run("start is the root", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "Loc"), 0o755))

		got, err := FindRoot(root, "Loc")

		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := FindRoot(t.TempDir(), "definitely-not-here-locgen")

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoLocalizationDir))
	})
}
