package gen

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/locgen/compiler/load"
)

// Generator runs the catalog → document pipeline for one Config.
type Generator struct {
	cfg    *Config
	target Target
}

// Result describes a finished generation run.
type Result struct {
	// Catalogs that were discovered.
	Catalogs []load.Catalog
	// Tables in ascending name order.
	Tables []*Table
	// Total is the number of keys across all tables.
	Total int
	// Output is the absolute path of the generated file.
	Output string
	// Written is false when the file was already up to date.
	Written bool
}

// NewGenerator resolves the configured target and returns a generator.
// An empty Config.Output is replaced by the target's default.
func NewGenerator(c *Config) (*Generator, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if c.Root == "" {
		return nil, NewConfigError("Root", nil, "missing project root")
	}
	if c.LocalizationDir == "" || c.Extension == "" {
		return nil, NewConfigError("LocalizationDir", nil, "missing localization directory or extension")
	}
	t, err := LookupTarget(c.Target)
	if err != nil {
		return nil, err
	}
	if c.Output == "" {
		c.Output = t.DefaultOutput()
	}
	return &Generator{cfg: c, target: t}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() *Config {
	return g.cfg
}

// Target returns the resolved target.
func (g *Generator) Target() Target {
	return g.target
}

// Discover lists the catalogs in the localization directory. It fails
// when the directory is missing or holds no catalogs.
func (g *Generator) Discover() ([]load.Catalog, error) {
	return load.Discover(g.cfg.LocalizationPath(), g.cfg.Extension)
}

// LoadTables reads catalogs concurrently. A catalog that fails to load is
// logged and becomes an empty table. Tables are returned in the order of
// catalogs.
func (g *Generator) LoadTables(ctx context.Context, catalogs []load.Catalog) ([]*Table, error) {
	workers := g.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	tables := make([]*Table, len(catalogs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	logger := g.cfg.logger()
	for i, c := range catalogs {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				tables[i] = NewTable(c.Table, load.LoadKeys(c.Path, logger))
				return nil
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// Document builds the render input for tables using the configured clock.
func (g *Generator) Document(tables []*Table) *Document {
	return NewDocument(g.cfg, tables, g.cfg.now())
}

// Render renders tables with the configured target. It performs no I/O.
func (g *Generator) Render(tables []*Table) ([]byte, error) {
	out, err := g.target.Render(g.Document(tables))
	if err != nil {
		if IsGenerationError(err) {
			return nil, err
		}
		return nil, NewGenerationError(g.target.Name(), "", "render", err)
	}
	return out, nil
}

// Write stores content at the configured output path.
func (g *Generator) Write(content []byte) (bool, error) {
	return WriteFile(g.cfg.OutputPath(), content)
}

// Generate discovers, loads, renders and writes. Discovery failures abort
// before anything is written; the output is only touched once the whole
// document has been rendered.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	catalogs, err := g.Discover()
	if err != nil {
		return nil, err
	}
	tables, err := g.LoadTables(ctx, catalogs)
	if err != nil {
		return nil, err
	}
	content, err := g.Render(tables)
	if err != nil {
		return nil, err
	}
	written, err := g.Write(content)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Catalogs: catalogs,
		Tables:   tables,
		Output:   g.cfg.OutputPath(),
		Written:  written,
	}
	for _, t := range tables {
		res.Total += len(t.Keys)
	}
	return res, nil
}
