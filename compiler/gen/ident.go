package gen

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Identifier converts a raw catalog key into a lower camel case identifier.
//
// The key is split on '_' and on any rune that cannot appear in an
// identifier. The first segment is kept as is, every following segment is
// title cased, and the segments are joined:
//
//	error_invalid_input -> errorInvalidInput
//	item-one            -> itemOne
//	ok                  -> ok
//
// Inside a segment a letter following a digit starts a new word, so
// item_2fa becomes item2Fa.
//
// If stripPrefix is set and the key starts with it, the prefix is removed
// first. A result starting with a digit or a combining mark gets a leading
// '_'. The empty key yields the empty identifier.
func Identifier(key, stripPrefix string) string {
	if stripPrefix != "" {
		key = strings.TrimPrefix(key, stripPrefix)
	}
	segments := strings.Split(strings.Map(separator, key), "_")
	caser := cases.Title(language.Und)
	var b strings.Builder
	b.Grow(len(key))
	b.WriteString(segments[0])
	for _, s := range segments[1:] {
		b.WriteString(title(caser, s))
	}
	ident := b.String()
	if !validHead(ident) {
		ident = "_" + ident
	}
	return ident
}

// title title cases every word of s. A word starts at a letter that does
// not follow another letter: "2fa" becomes "2Fa", "a1b" becomes "A1B".
func title(caser cases.Caser, s string) string {
	var b strings.Builder
	b.Grow(len(s))
	start, prevLetter := 0, false
	for i, r := range s {
		letter := unicode.IsLetter(r)
		if letter && !prevLetter && i > start {
			b.WriteString(caser.String(s[start:i]))
			start = i
		}
		prevLetter = letter || (prevLetter && unicode.IsMark(r))
	}
	b.WriteString(caser.String(s[start:]))
	return b.String()
}

// validHead reports whether ident may be used as is: empty, or not
// starting with a digit or a combining mark.
func validHead(ident string) bool {
	if ident == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(ident)
	return !unicode.IsDigit(r) && !unicode.IsMark(r)
}

// separator maps every rune that is not valid inside an identifier to '_'.
func separator(r rune) rune {
	if isIdentRune(r) {
		return r
	}
	return '_'
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// TypeIdentifier sanitizes a table name for use as a type name. Case is
// preserved, invalid runes become '_'.
func TypeIdentifier(name string) string {
	ident := strings.Map(separator, name)
	if ident == "" || !validHead(ident) {
		ident = "_" + ident
	}
	return ident
}

// Namer hands out unique names. A name that was already taken gets a
// numeric suffix: the first duplicate of "name" becomes "name1", the next
// "name2", and so on.
type Namer struct {
	used map[string]struct{}
}

// NewNamer returns a Namer that treats reserved as already taken.
func NewNamer(reserved ...string) *Namer {
	n := &Namer{used: make(map[string]struct{}, len(reserved))}
	for _, r := range reserved {
		n.used[r] = struct{}{}
	}
	return n
}

// Name returns base, or base with the smallest suffix that is still free,
// and marks the result as taken.
func (n *Namer) Name(base string) string {
	name := base
	for i := 1; n.Taken(name); i++ {
		name = base + strconv.Itoa(i)
	}
	n.used[name] = struct{}{}
	return name
}

// Taken reports whether name was handed out or reserved.
func (n *Namer) Taken(name string) bool {
	_, ok := n.used[name]
	return ok
}
