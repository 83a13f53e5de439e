// locgen generates a type-safe localization source file from the catalogs
// of a project.
//
//	locgen [generate] [root]
//	locgen watch [root]
//
// Run it from an Xcode build phase:
//
//	cd "$SRCROOT/example" && locgen
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/syssam/locgen/compiler/gen"
	_ "github.com/syssam/locgen/compiler/gen/golang"
	_ "github.com/syssam/locgen/compiler/gen/swift"
	"github.com/syssam/locgen/compiler/load"
	"github.com/syssam/locgen/compiler/watch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// flags holds the parsed command line.
type flags struct {
	root        string
	config      string
	locDir      string
	extension   string
	output      string
	target      string
	packageName string
	workers     int
	verbose     bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// .env is optional; variables may come from the environment directly.
	_ = godotenv.Load()

	var f flags
	app := kingpin.New("locgen", "Generate type-safe localization keys from string catalogs.")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	app.Flag("config", "Config file (default: locgen.yaml, locgen.yml or locgen.toml in the root).").
		Envar("LOCGEN_CONFIG").StringVar(&f.config)
	app.Flag("localization-dir", "Catalog directory relative to the root (default: "+gen.DefaultLocalizationDir+").").
		StringVar(&f.locDir)
	app.Flag("extension", "Catalog file extension.").StringVar(&f.extension)
	app.Flag("output", "Output file relative to the root.").StringVar(&f.output)
	app.Flag("target", "Output language (swift, go).").Envar("LOCGEN_TARGET").StringVar(&f.target)
	app.Flag("package", "Package name for the go target.").StringVar(&f.packageName)
	app.Flag("workers", "Catalogs loaded concurrently (0 = GOMAXPROCS).").IntVar(&f.workers)
	app.Flag("verbose", "Log debug output.").Short('v').BoolVar(&f.verbose)

	generateCmd := app.Command("generate", "Generate the localization file once.").Default()
	generateCmd.Arg("root", "Project root directory.").StringVar(&f.root)
	watchCmd := app.Command("watch", "Generate, then regenerate whenever a catalog changes.")
	watchCmd.Arg("root", "Project root directory.").StringVar(&f.root)

	cmd, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	g, err := newGenerator(f, logger)
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return 1
	}
	if err := generate(ctx, g, stdout); err != nil {
		reportError(stderr, err)
		return 1
	}
	if cmd == watchCmd.FullCommand() {
		cfg := g.Config()
		fmt.Fprintf(stdout, "👀 Watching %s (Ctrl+C to stop)\n", cfg.LocalizationPath())
		w := &watch.Watcher{Dir: cfg.LocalizationPath(), Extension: cfg.Extension, Logger: logger}
		err := w.Run(ctx, func(ctx context.Context) error {
			if err := generate(ctx, g, stdout); err != nil {
				reportError(stderr, err)
				return err
			}
			return nil
		})
		if err != nil {
			fmt.Fprintf(stderr, "❌ %v\n", err)
			return 1
		}
	}
	return 0
}

// newGenerator layers defaults, the config file and command line flags.
func newGenerator(f flags, logger *slog.Logger) (*gen.Generator, error) {
	locDir, err := searchDir(f)
	if err != nil {
		return nil, err
	}
	root, err := resolveRoot(f.root, locDir)
	if err != nil {
		return nil, err
	}
	opts := []gen.Option{gen.WithRoot(root), gen.WithLogger(logger)}
	cfgFile := f.config
	if cfgFile == "" {
		cfgFile = gen.FindConfigFile(root)
	}
	if cfgFile != "" {
		logger.Debug("using config file", "path", cfgFile)
		opts = append(opts, gen.WithConfigFile(cfgFile))
	}
	if f.locDir != "" {
		opts = append(opts, gen.WithLocalizationDir(f.locDir))
	}
	if f.extension != "" {
		opts = append(opts, gen.WithExtension(f.extension))
	}
	if f.output != "" {
		opts = append(opts, gen.WithOutput(f.output))
	}
	if f.target != "" {
		opts = append(opts, gen.WithTarget(f.target))
	}
	if f.packageName != "" {
		opts = append(opts, gen.WithPackage(f.packageName))
	}
	if f.workers != 0 {
		opts = append(opts, gen.WithWorkers(f.workers))
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return gen.NewGenerator(cfg)
}

// searchDir returns the localization directory used to find the project
// root: the flag, else the one named by an explicit config file, else the
// default. A config file found inside the root cannot take part, since the
// root is not known yet.
func searchDir(f flags) (string, error) {
	if f.locDir != "" {
		return f.locDir, nil
	}
	if f.config != "" {
		fc, err := gen.ReadConfigFile(f.config)
		if err != nil {
			return "", err
		}
		if fc.LocalizationDir != "" {
			return fc.LocalizationDir, nil
		}
	}
	return gen.DefaultLocalizationDir, nil
}

// resolveRoot picks the project root: the argument, then LOCGEN_ROOT, then
// the nearest ancestor of the executable or the working directory that
// holds the localization directory. Without a match the working directory
// is used and discovery reports the missing directory.
func resolveRoot(arg, locDir string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if env := os.Getenv("LOCGEN_ROOT"); env != "" {
		return env, nil
	}
	if exe, err := os.Executable(); err == nil {
		if root, err := load.FindRoot(filepath.Dir(exe), locDir); err == nil {
			return root, nil
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if root, err := load.FindRoot(wd, locDir); err == nil {
		return root, nil
	}
	return wd, nil
}

// generate runs one generation and prints its progress.
func generate(ctx context.Context, g *gen.Generator, stdout io.Writer) error {
	cfg := g.Config()
	fmt.Fprintf(stdout, "🔍 Scanning project at: %s\n", cfg.Root)
	catalogs, err := g.Discover()
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "📁 Found %s\n", gen.Plural(len(catalogs), cfg.Extension+" file"))
	tables, err := g.LoadTables(ctx, catalogs)
	if err != nil {
		return err
	}
	total := 0
	for _, t := range tables {
		fmt.Fprintf(stdout, "   📝 %s: %s\n", t.Name, gen.Plural(len(t.Keys), "key"))
		total += len(t.Keys)
	}
	content, err := g.Render(tables)
	if err != nil {
		return err
	}
	written, err := g.Write(content)
	if err != nil {
		return err
	}
	if written {
		fmt.Fprintf(stdout, "✅ Generated: %s\n", cfg.OutputPath())
	} else {
		fmt.Fprintf(stdout, "✅ Up to date: %s\n", cfg.OutputPath())
	}
	fmt.Fprintf(stdout, "   Total: %s\n", gen.Plural(total, "localized string"))
	return nil
}

func reportError(w io.Writer, err error) {
	switch {
	case errors.Is(err, load.ErrNoLocalizationDir):
		fmt.Fprintf(w, "❌ Localization folder not found: %v\n", err)
	case errors.Is(err, load.ErrNoCatalogs):
		fmt.Fprintf(w, "❌ No catalog files found: %v\n", err)
	case gen.IsWriteError(err):
		fmt.Fprintf(w, "❌ Error writing file: %v\n", err)
	default:
		fmt.Fprintf(w, "❌ %v\n", err)
	}
}
