// Package swift renders localization keys as a Swift source file: a String
// extension with one accessor pair per table and a Localized namespace of
// static constants.
package swift

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/syssam/locgen/compiler/gen"
)

// Name is the target name used in configuration.
const Name = "swift"

// DefaultOutput is where the Swift file goes unless configured otherwise.
const DefaultOutput = "Core/Localization/String+Localization.swift"

func init() {
	gen.Register(Target{})
}

// Target renders Swift.
type Target struct{}

// Name implements gen.Target.
func (Target) Name() string { return Name }

// DefaultOutput implements gen.Target.
func (Target) DefaultOutput() string { return DefaultOutput }

// Render implements gen.Target.
func (Target) Render(doc *gen.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, newFileView(doc)); err != nil {
		return nil, gen.NewGenerationError(Name, "", "execute template", err)
	}
	return buf.Bytes(), nil
}

type (
	fileView struct {
		FileName string
		Project  string
		Path     string
		Date     string
		Total    int
		Tables   []tableView
	}
	tableView struct {
		Name     string
		Source   string // catalog file name
		Type     string
		Func     string
		Literal  string
		Count    int
		Sections []sectionView
	}
	sectionView struct {
		Header string
		Lines  []lineView
	}
	lineView struct {
		Ident string
		Key   string
	}
)

func newFileView(doc *gen.Document) fileView {
	out := doc.Output
	if out == "" {
		out = DefaultOutput
	}
	fv := fileView{
		FileName: path.Base(out),
		Project:  doc.Project,
		Path:     out,
		Date:     doc.Stamp(),
		Total:    doc.Total,
	}
	for _, t := range doc.Tables {
		tv := tableView{
			Name:    t.Name,
			Source:  t.Name + doc.Extension,
			Type:    Ident(t.TypeName),
			Func:    Ident(t.FuncName),
			Literal: Quote(t.Name),
			Count:   len(t.Keys),
		}
		for _, s := range t.Sections {
			sv := sectionView{Lines: make([]lineView, 0, len(s.Entries))}
			if t.Grouped() {
				sv.Header = s.Title()
			}
			for _, e := range s.Entries {
				sv.Lines = append(sv.Lines, lineView{Ident: Ident(e.Ident), Key: Quote(e.Key)})
			}
			tv.Sections = append(tv.Sections, sv)
		}
		fv.Tables = append(fv.Tables, tv)
	}
	return fv
}

var fileTmpl = template.Must(template.New("swift").
	Funcs(template.FuncMap{"keys": func(n int) string { return gen.Plural(n, "key") }}).
	Parse(fileTemplate))

const fileTemplate = `//
//  {{ .FileName }}
//  {{ .Project }}
//
//  Path: {{ .Path }}
//  Auto-generated on {{ .Date }}
//  ⚠️ DO NOT EDIT MANUALLY - This file is auto-generated by locgen
//

import Foundation

// MARK: - String Localization Extension
extension String {
{{- range $i, $t := .Tables }}
{{- if $i }}
{{ end }}
    /// Returns the string for key from {{ $t.Source }}.
    /// - Parameter key: Localization key
    /// - Returns: The string translated to the current language
    static func {{ $t.Func }}(_ key: String) -> String {
        String(localized: String.LocalizationValue(key), table: {{ $t.Literal }})
    }

    /// Returns the string for key from {{ $t.Source }}, formatted with arguments.
    /// - Parameters:
    ///   - key: Localization key
    ///   - arguments: Values substituted into the format string
    /// - Returns: The translated string with arguments applied
    static func {{ $t.Func }}(_ key: String, _ arguments: CVarArg...) -> String {
        let format = String(localized: String.LocalizationValue(key), table: {{ $t.Literal }})
        return String(format: format, arguments: arguments)
    }
{{- end }}
}

// MARK: - Localized String Keys
/// Namespace for type-safe localization keys
/// Total: {{ keys .Total }}
enum Localized {
{{ range $i, $t := .Tables }}
{{- if $i }}
{{ end }}
    // MARK: - {{ $t.Name }} Keys ({{ keys $t.Count }})
    enum {{ $t.Type }} {
{{- if not $t.Sections }}
        // No keys found
{{- end }}
{{- range $j, $s := $t.Sections }}
{{- if $j }}
{{ end }}
{{- if $s.Header }}
        // {{ $s.Header }}
{{- end }}
{{- range $s.Lines }}
        static let {{ .Ident }} = String.{{ $t.Func }}({{ .Key }})
{{- end }}
{{- end }}
    }
{{- end }}
}
`

// keywords are reserved in Swift and must be escaped with backticks when
// used as identifiers. Type and Protocol are included because nested types
// may not use those names unescaped.
var keywords = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, k := range strings.Fields(`
		associatedtype class deinit enum extension fileprivate func import init
		inout internal let open operator private precedencegroup protocol public
		rethrows static struct subscript typealias var
		break case catch continue default defer do else fallthrough for guard if
		in repeat return throw switch where while
		Any as await false is nil self Self super throws true try
		Type Protocol`) {
		m[k] = struct{}{}
	}
	return m
}()

// Ident escapes a Swift keyword with backticks.
func Ident(name string) string {
	if _, ok := keywords[name]; ok {
		return "`" + name + "`"
	}
	return name
}

// Quote returns s as a Swift string literal.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u{%x}`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
