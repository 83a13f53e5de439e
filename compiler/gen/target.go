package gen

import (
	"sort"
	"strings"
	"sync"
)

// Target renders a Document in one output language.
//
// Targets register themselves with Register, usually from an init
// function, and are selected by name through Config.Target:
//
//	import _ "github.com/syssam/locgen/compiler/gen/swift"
//
//	cfg, _ := gen.NewConfig(gen.WithTarget("swift"))
type Target interface {
	// Name returns the target name used in configuration (e.g. "swift").
	Name() string
	// DefaultOutput is the output path used when none is configured,
	// relative to the project root.
	DefaultOutput() string
	// Render returns the complete output file for doc.
	Render(doc *Document) ([]byte, error)
}

var (
	targetsMu sync.RWMutex
	targets   = make(map[string]Target)
)

// Register makes a target available by name. Registering the same name
// twice replaces the earlier target.
func Register(t Target) {
	targetsMu.Lock()
	defer targetsMu.Unlock()
	targets[t.Name()] = t
}

// LookupTarget returns the registered target with the given name.
func LookupTarget(name string) (Target, error) {
	targetsMu.RLock()
	defer targetsMu.RUnlock()
	t, ok := targets[name]
	if !ok {
		return nil, NewConfigError("Target", name, "unknown target; registered: "+strings.Join(targetNames(), ", "))
	}
	return t, nil
}

// Targets returns the names of all registered targets, sorted.
func Targets() []string {
	targetsMu.RLock()
	defer targetsMu.RUnlock()
	return targetNames()
}

func targetNames() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
