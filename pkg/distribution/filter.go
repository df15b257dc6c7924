package distribution

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Filter selects the artifacts taking part in an export pass.
type Filter interface {
	// Name identifies the selection, e.g. to label a bundle group.
	Name() string
	// Accept reports whether the artifact is selected.
	Accept(a Artifact) bool
}

// ReferenceSuffix is appended to a filter name to name its references.
const ReferenceSuffix = "-references"

// Accepts reports whether f accepts a. A nil filter accepts everything.
func Accepts(f Filter, a Artifact) bool {
	return f == nil || f.Accept(a)
}

// =============================================================================
// PersistFilter
// =============================================================================

// MatchMode tells how selection entries are compared to names.
type MatchMode int

const (
	// MatchPrefix selects names starting with an entry.
	MatchPrefix MatchMode = iota
	// MatchExact selects names equal to an entry.
	MatchExact
	// MatchGlob selects names matching an entry as a glob pattern.
	MatchGlob
)

var matchModeNames = map[string]MatchMode{
	"prefix": MatchPrefix,
	"exact":  MatchExact,
	"glob":   MatchGlob,
}

// ParseMatchMode resolves "prefix", "exact" or "glob". An empty string is
// MatchPrefix.
func ParseMatchMode(s string) (MatchMode, error) {
	if s == "" {
		return MatchPrefix, nil
	}
	m, ok := matchModeNames[strings.ToLower(s)]
	if !ok {
		return MatchPrefix, fmt.Errorf("unknown match mode %q (want prefix, exact or glob)", s)
	}
	return m, nil
}

// Selection lists what a [PersistFilter] selects.
type Selection struct {
	// Bundles are bundle ids (or prefixes / patterns, depending on Mode).
	Bundles []string
	// Packages are package names.
	Packages []string
	// JavaPackages are prefixes of operation classes. They are always
	// matched as prefixes.
	JavaPackages []string
	Mode         MatchMode
}

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool {
	return len(s.Bundles) == 0 && len(s.Packages) == 0 && len(s.JavaPackages) == 0
}

type matcher func(candidate string) bool

// PersistFilter selects bundles by id, by the packages that ship them, or by
// the Java package of the operations they register, and everything those
// bundles declare.
//
//   - a bundle is selected by id or package, or when one of its operations is
//   - a component is selected through its bundle, or through its operations
//   - services and extension points follow their component
//   - a contribution follows its component, operations included
//   - an operation is selected by class, or through its component
//   - a package is selected by name, or when it ships a selected bundle
type PersistFilter struct {
	name         string
	bundles      []matcher
	packages     []matcher
	javaPackages []string
}

var _ Filter = (*PersistFilter)(nil)

// NewPersistFilter compiles a selection. It fails on an invalid glob.
func NewPersistFilter(name string, sel Selection) (*PersistFilter, error) {
	bundles, err := compile(sel.Bundles, sel.Mode)
	if err != nil {
		return nil, err
	}
	packages, err := compile(sel.Packages, sel.Mode)
	if err != nil {
		return nil, err
	}
	return &PersistFilter{
		name:         name,
		bundles:      bundles,
		packages:     packages,
		javaPackages: slices.Clone(sel.JavaPackages),
	}, nil
}

func compile(entries []string, mode MatchMode) ([]matcher, error) {
	out := make([]matcher, 0, len(entries))
	for _, e := range entries {
		switch mode {
		case MatchExact:
			out = append(out, func(c string) bool { return c == e })
		case MatchGlob:
			g, err := glob.Compile(e)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", e, err)
			}
			out = append(out, g.Match)
		default:
			out = append(out, func(c string) bool { return strings.HasPrefix(c, e) })
		}
	}
	return out, nil
}

func matchAny(ms []matcher, candidate string) bool {
	for _, m := range ms {
		if m(candidate) {
			return true
		}
	}
	return false
}

// Name implements [Filter].
func (f *PersistFilter) Name() string { return f.name }

// Accept implements [Filter]. Unknown artifact types are accepted.
func (f *PersistFilter) Accept(a Artifact) bool {
	switch a := a.(type) {
	case *Bundle:
		return f.includeBundle(a, true)
	case *Component:
		return f.includeComponent(a, true)
	case *Service:
		return f.includeComponent(a.Component, false)
	case *ExtensionPoint:
		return f.includeComponent(a.Component, false)
	case *Contribution:
		return f.includeComponent(a.Component, true)
	case *Operation:
		return f.includeOperation(a, true)
	case *Package:
		return f.includePackage(a)
	}
	return true
}

func (f *PersistFilter) includeBundle(b *Bundle, checkOps bool) bool {
	if b == nil {
		return false
	}
	if matchAny(f.bundles, b.ID) {
		return true
	}
	for _, p := range b.Packages {
		if matchAny(f.packages, p) {
			return true
		}
	}
	if checkOps {
		for _, c := range b.Components {
			for _, op := range c.Operations {
				if f.includeOperation(op, false) {
					return true
				}
			}
		}
	}
	return false
}

func (f *PersistFilter) includeComponent(c *Component, checkOps bool) bool {
	if c == nil {
		return false
	}
	if f.includeBundle(c.Bundle, false) {
		return true
	}
	if checkOps {
		for _, op := range c.Operations {
			if f.includeOperation(op, false) {
				return true
			}
		}
	}
	return false
}

func (f *PersistFilter) includeOperation(op *Operation, checkComponent bool) bool {
	for _, prefix := range f.javaPackages {
		if strings.HasPrefix(op.OperationClass, prefix) {
			return true
		}
	}
	if checkComponent && op.Component != nil {
		return f.includeComponent(op.Component, false)
	}
	return false
}

func (f *PersistFilter) includePackage(p *Package) bool {
	if matchAny(f.packages, p.Name) {
		return true
	}
	for _, b := range p.Bundles {
		if matchAny(f.bundles, b) {
			return true
		}
	}
	return false
}

// =============================================================================
// ReferenceFilter
// =============================================================================

// ReferenceFilter accepts the bundles, components and extension points that
// the contributions of a previous selection target. The selected artifacts
// themselves are rejected, as are services, contributions, operations and
// packages.
type ReferenceFilter struct {
	name             string
	selected         map[Artifact]bool
	targetComponents map[string]bool
	targetXPs        map[string]bool
}

var _ Filter = (*ReferenceFilter)(nil)

// NewReferenceFilter indexes the contributions of the selected bundles.
// Other selected artifact types are only excluded from the result.
func NewReferenceFilter(name string, selected []Artifact) *ReferenceFilter {
	f := &ReferenceFilter{
		name:             name,
		selected:         make(map[Artifact]bool, len(selected)),
		targetComponents: make(map[string]bool),
		targetXPs:        make(map[string]bool),
	}
	for _, a := range selected {
		f.selected[a] = true
		b, ok := a.(*Bundle)
		if !ok {
			continue
		}
		for _, c := range b.Components {
			for _, contrib := range c.Extensions {
				f.targetXPs[contrib.ExtensionPoint] = true
				f.targetComponents[contrib.TargetComponentName()] = true
			}
		}
	}
	return f
}

// Name implements [Filter].
func (f *ReferenceFilter) Name() string { return f.name }

// Accept implements [Filter].
func (f *ReferenceFilter) Accept(a Artifact) bool {
	if f.selected[a] {
		return false
	}
	switch a := a.(type) {
	case *Bundle:
		return slices.ContainsFunc(a.Components, func(c *Component) bool {
			return f.targetComponents[c.ID]
		})
	case *Component:
		return f.targetComponents[a.ID]
	case *ExtensionPoint:
		return f.targetXPs[a.ID]
	}
	return false
}

// SelectBundles returns the bundles of d accepted by f, as artifacts ready
// for [NewReferenceFilter].
func SelectBundles(d Distribution, f Filter) []Artifact {
	var out []Artifact
	for _, b := range d.Bundles() {
		if Accepts(f, b) {
			out = append(out, b)
		}
	}
	return out
}

// =============================================================================
// Combinators
// =============================================================================

type anyOf struct {
	name    string
	filters []Filter
}

// AnyOf accepts an artifact when at least one of the filters does.
func AnyOf(name string, filters ...Filter) Filter {
	return &anyOf{name: name, filters: filters}
}

func (f *anyOf) Name() string { return f.name }

func (f *anyOf) Accept(a Artifact) bool {
	for _, sub := range f.filters {
		if sub.Accept(a) {
			return true
		}
	}
	return false
}
