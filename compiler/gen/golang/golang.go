// Package golang renders localization keys as a Go source file.
//
// Every table becomes a string type with typed constants, plus a plain and
// a formatting accessor. Lookups go through the generated Lookup variable,
// which the host application points at its localization runtime:
//
//	localization.Lookup = func(table, key string) string {
//	    return bundle.Localize(table, key)
//	}
//	title := localization.Auth(localization.AuthLoginTitle)
package golang

import (
	"bytes"
	"fmt"
	"go/token"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
	"golang.org/x/tools/imports"

	"github.com/syssam/locgen/compiler/gen"
)

// Name is the target name used in configuration.
const Name = "go"

// DefaultOutput is where the Go file goes unless configured otherwise.
const DefaultOutput = "Core/Localization/localization_gen.go"

// lookupVar is the hook the generated accessors call.
const lookupVar = "Lookup"

func init() {
	gen.Register(Target{})
}

// Target renders Go.
type Target struct{}

// Name implements gen.Target.
func (Target) Name() string { return Name }

// DefaultOutput implements gen.Target.
func (Target) DefaultOutput() string { return DefaultOutput }

// Render implements gen.Target.
func (Target) Render(doc *gen.Document) ([]byte, error) {
	pkg := doc.Package
	if pkg == "" {
		pkg = gen.DefaultPackage
	}
	if !token.IsIdentifier(pkg) {
		return nil, gen.NewGenerationError(Name, "", fmt.Sprintf("invalid package name %q", pkg), nil)
	}
	f := jen.NewFile(pkg)
	f.HeaderComment(fmt.Sprintf("Code generated by locgen on %s. DO NOT EDIT.", doc.Stamp()))
	f.PackageComment(fmt.Sprintf("Package %s holds typed localization keys (total: %s).", pkg, gen.Plural(doc.Total, "key")))

	f.Commentf("%s resolves key in table. Point it at the localization runtime;", lookupVar)
	f.Comment("by default every key resolves to itself.")
	f.Var().Id(lookupVar).Op("=").Func().
		Params(jen.List(jen.Id("table"), jen.Id("key")).String()).String().
		Block(jen.Return(jen.Id("key")))

	names := gen.NewNamer(lookupVar)
	for _, t := range doc.Tables {
		genTable(f, names, t)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, gen.NewGenerationError(Name, "", "render", err)
	}
	out := doc.Output
	if out == "" {
		out = DefaultOutput
	}
	formatted, err := imports.Process(path.Base(out), buf.Bytes(), nil)
	if err != nil {
		return nil, gen.NewGenerationError(Name, "", "format", err)
	}
	return formatted, nil
}

// genTable emits the key type, accessors and constants of one table.
func genTable(f *jen.File, names *gen.Namer, t *gen.TableDoc) {
	base := Exported(t.TypeName)
	typ := names.Name(base + "Key")
	fn := names.Name(base)
	fnf := names.Name(fn + "f")

	f.Line()
	f.Commentf("%s is a key of the %s table.", typ, t.Name)
	f.Type().Id(typ).String()

	f.Commentf("%s returns the localized string for key from the %s table.", fn, t.Name)
	f.Func().Id(fn).Params(jen.Id("key").Id(typ)).String().Block(
		jen.Return(jen.Id(lookupVar).Call(jen.Lit(t.Name), jen.String().Call(jen.Id("key")))),
	)

	f.Commentf("%s formats the localized string for key from the %s table with args.", fnf, t.Name)
	f.Func().Id(fnf).Params(jen.Id("key").Id(typ), jen.Id("args").Op("...").Any()).String().Block(
		jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Id(fn).Call(jen.Id("key")), jen.Id("args").Op("..."))),
	)

	f.Line()
	f.Commentf("%s keys (%s).", t.Name, gen.Plural(len(t.Keys), "key"))
	if len(t.Sections) == 0 {
		f.Comment("No keys found")
		return
	}
	f.Const().DefsFunc(func(g *jen.Group) {
		for i, s := range t.Sections {
			if t.Grouped() {
				if i > 0 {
					g.Line()
				}
				g.Comment(s.Title())
			}
			for _, e := range s.Entries {
				g.Id(names.Name(base + camel(e.Ident))).Id(typ).Op("=").Lit(e.Key)
			}
		}
	})
}

// Exported turns an identifier into an exported Go identifier. Names that
// do not start with an upper case letter get an "X" prefix.
func Exported(name string) string {
	s := camel(name)
	if r, _ := utf8.DecodeRuneInString(s); s == "" || !unicode.IsUpper(r) {
		s = "X" + s
	}
	return s
}

// camel upper camel cases name and drops runes Go does not allow in
// identifiers. Names without separators are already camel case and only get
// their first rune upper cased, so acronyms survive (loginURL -> LoginURL).
// Snake or kebab case names go through strcase.
func camel(name string) string {
	if strings.ContainsAny(name, "_-. ") {
		name = strcase.ToCamel(name)
	} else if r, size := utf8.DecodeRuneInString(name); size > 0 {
		name = string(unicode.ToUpper(r)) + name[size:]
	}
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, name)
}
