package gen

import (
	"errors"
	"log/slog"
	"maps"
	"path/filepath"
	"strings"
	"time"
)

// Option configures code generation.
type Option func(*Config) error

// WithRoot sets the project root directory.
func WithRoot(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Root", nil, "root directory cannot be empty")
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return NewConfigError("Root", dir, err.Error())
		}
		c.Root = abs
		return nil
	}
}

// WithLocalizationDir sets the catalog directory, relative to the root.
func WithLocalizationDir(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("LocalizationDir", nil, "localization directory cannot be empty")
		}
		if filepath.IsAbs(dir) {
			return NewConfigError("LocalizationDir", dir, "must be relative to the project root")
		}
		c.LocalizationDir = dir
		return nil
	}
}

// WithExtension sets the catalog file extension. A missing leading dot is added.
func WithExtension(ext string) Option {
	return func(c *Config) error {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			return NewConfigError("Extension", nil, "extension cannot be empty")
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extension = ext
		return nil
	}
}

// WithOutput sets the output file, relative to the root.
func WithOutput(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("Output", nil, "output path cannot be empty")
		}
		if filepath.IsAbs(path) {
			return NewConfigError("Output", path, "must be relative to the project root")
		}
		c.Output = path
		return nil
	}
}

// WithTarget selects the output language by name.
// The target must be registered when the Generator is created.
func WithTarget(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return NewConfigError("Target", nil, "target cannot be empty")
		}
		c.Target = strings.ToLower(name)
		return nil
	}
}

// WithProject sets the project name shown in the banner.
func WithProject(name string) Option {
	return func(c *Config) error {
		c.Project = name
		return nil
	}
}

// WithPackage sets the package name for targets that need one.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithWorkers bounds concurrent catalog loading.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "workers cannot be negative")
		}
		c.Workers = n
		return nil
	}
}

// WithTable sets the configuration of a single table.
func WithTable(name string, tc TableConfig) Option {
	return func(c *Config) error {
		if name == "" {
			return NewConfigError("Tables", nil, "table name cannot be empty")
		}
		if c.Tables == nil {
			c.Tables = make(map[string]TableConfig)
		}
		c.Tables[name] = tc
		return nil
	}
}

// WithTables merges per-table configurations into the config.
func WithTables(tables map[string]TableConfig) Option {
	return func(c *Config) error {
		if c.Tables == nil {
			c.Tables = make(map[string]TableConfig, len(tables))
		}
		maps.Copy(c.Tables, tables)
		return nil
	}
}

// WithLogger sets the logger used for warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}

// WithClock sets the clock used for the generation timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Config) error {
		if now == nil {
			return NewConfigError("Clock", nil, "clock cannot be nil")
		}
		c.Now = now
		return nil
	}
}

// WithConfigFile applies the settings of a YAML or TOML config file.
func WithConfigFile(path string) Option {
	return func(c *Config) error {
		fc, err := ReadConfigFile(path)
		if err != nil {
			return err
		}
		return c.Apply(fc.Options()...)
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DefaultConfig returns a config with the default project layout and the
// current directory as root.
func DefaultConfig() *Config {
	return &Config{
		Root:            ".",
		LocalizationDir: DefaultLocalizationDir,
		Extension:       DefaultExtension,
		Target:          DefaultTarget,
		Project:         DefaultProject,
		Package:         DefaultPackage,
	}
}

// NewConfig creates a config from the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
