package gen

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Defaults for a project laid out like an Xcode app target.
const (
	DefaultLocalizationDir = "Resources/Localization"
	DefaultExtension       = ".xcstrings"
	DefaultTarget          = "swift"
	DefaultProject         = "example"
	DefaultPackage         = "localization"
)

// ConfigFileNames are looked up in the project root, in this order.
var ConfigFileNames = []string{"locgen.yaml", "locgen.yml", "locgen.toml"}

// TableConfig controls how a single table is emitted.
type TableConfig struct {
	// StripPrefix is removed from keys before identifier synthesis.
	StripPrefix string `yaml:"strip_prefix,omitempty" toml:"strip_prefix,omitempty"`
	// GroupByPrefix sections the table by the key prefix before the first '_'.
	GroupByPrefix bool `yaml:"group_by_prefix,omitempty" toml:"group_by_prefix,omitempty"`
}

// Config holds the generator configuration.
type Config struct {
	// Root is the project root directory.
	Root string
	// LocalizationDir holds the catalogs, relative to Root.
	LocalizationDir string
	// Extension selects catalog files, including the dot.
	Extension string
	// Output is the generated file path, relative to Root. Empty selects the
	// target's default.
	Output string
	// Target names the output language ("swift", "go").
	Target string
	// Project is shown in the Swift banner.
	Project string
	// Package is the Go package name of the go target.
	Package string
	// Workers bounds concurrent catalog loading. Zero means GOMAXPROCS.
	Workers int
	// Tables holds per-table settings keyed by table name.
	Tables map[string]TableConfig
	// Logger receives warnings. Nil means slog.Default().
	Logger *slog.Logger
	// Now is the clock used for the banner timestamp. Nil means time.Now.
	Now func() time.Time
}

// TableConfig returns the settings for the named table.
func (c *Config) TableConfig(name string) TableConfig {
	return c.Tables[name]
}

// LocalizationPath returns the absolute catalog directory.
func (c *Config) LocalizationPath() string {
	return filepath.Join(c.Root, filepath.FromSlash(c.LocalizationDir))
}

// OutputPath returns the absolute output file path.
func (c *Config) OutputPath() string {
	return filepath.Join(c.Root, filepath.FromSlash(c.Output))
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// FileConfig is the on-disk form of the configuration.
type FileConfig struct {
	LocalizationDir string                 `yaml:"localization_dir,omitempty" toml:"localization_dir,omitempty"`
	Extension       string                 `yaml:"extension,omitempty" toml:"extension,omitempty"`
	Output          string                 `yaml:"output,omitempty" toml:"output,omitempty"`
	Target          string                 `yaml:"target,omitempty" toml:"target,omitempty"`
	Project         string                 `yaml:"project,omitempty" toml:"project,omitempty"`
	Package         string                 `yaml:"package,omitempty" toml:"package,omitempty"`
	Workers         int                    `yaml:"workers,omitempty" toml:"workers,omitempty"`
	Tables          map[string]TableConfig `yaml:"tables,omitempty" toml:"tables,omitempty"`
}

// ReadConfigFile decodes a YAML or TOML config file, chosen by extension.
func ReadConfigFile(path string) (*FileConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError("ConfigFile", path, err.Error())
	}
	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(buf))
		dec.KnownFields(true)
		if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
			return nil, NewConfigError("ConfigFile", path, err.Error())
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(buf))
		dec.DisallowUnknownFields()
		if err := dec.Decode(fc); err != nil {
			return nil, NewConfigError("ConfigFile", path, err.Error())
		}
	default:
		return nil, NewConfigError("ConfigFile", path, "unsupported config format; use .yaml, .yml or .toml")
	}
	return fc, nil
}

// FindConfigFile returns the first of ConfigFileNames present in root, or
// the empty string.
func FindConfigFile(root string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(root, name)
		// Anything but "not found" is reported when the file is read.
		if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
			return path
		}
	}
	return ""
}

// Options returns the options equivalent to the file's settings. Zero
// values are skipped so they do not override defaults.
func (fc *FileConfig) Options() []Option {
	var opts []Option
	if fc.LocalizationDir != "" {
		opts = append(opts, WithLocalizationDir(fc.LocalizationDir))
	}
	if fc.Extension != "" {
		opts = append(opts, WithExtension(fc.Extension))
	}
	if fc.Output != "" {
		opts = append(opts, WithOutput(fc.Output))
	}
	if fc.Target != "" {
		opts = append(opts, WithTarget(fc.Target))
	}
	if fc.Project != "" {
		opts = append(opts, WithProject(fc.Project))
	}
	if fc.Package != "" {
		opts = append(opts, WithPackage(fc.Package))
	}
	if fc.Workers != 0 {
		opts = append(opts, WithWorkers(fc.Workers))
	}
	if len(fc.Tables) > 0 {
		opts = append(opts, WithTables(fc.Tables))
	}
	return opts
}
