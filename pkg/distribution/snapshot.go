package distribution

import (
	"maps"
	"slices"

	"github.com/matzehuels/apidoc/pkg/version"
)

// Distribution is the read-only view the engines consume.
type Distribution interface {
	// Name is the distribution name, e.g. "Nuxeo Platform".
	Name() string
	// Version is the distribution version, possibly empty.
	Version() string

	Bundles() []*Bundle
	Bundle(id string) (*Bundle, bool)
	Packages() []*Package
	Contributions() []*Contribution
	Operations() []*Operation

	// ExtensionPointIDs returns the ids of all declared extension points,
	// sorted. Aliases are not listed.
	ExtensionPointIDs() []string
	// ExtensionPoint resolves an extension point by id, then by alias.
	ExtensionPoint(id string) (*ExtensionPoint, bool)
}

// Snapshot is an immutable in-memory distribution.
type Snapshot struct {
	name     string
	version  string
	bundles  []*Bundle
	packages []*Package

	bundleIndex   map[string]*Bundle
	xps           map[string]*ExtensionPoint
	xpAliases     map[string]*ExtensionPoint
	contributions []*Contribution
	operations    []*Operation
}

var _ Distribution = (*Snapshot)(nil)

// NewSnapshot indexes the given artifacts. It takes ownership of them and
// sets their back references (Component.Bundle, Service.Component, ...).
// The first bundle wins when ids collide.
func NewSnapshot(name, ver string, bundles []*Bundle, packages []*Package) *Snapshot {
	s := &Snapshot{
		name:        name,
		version:     ver,
		bundles:     bundles,
		packages:    packages,
		bundleIndex: make(map[string]*Bundle, len(bundles)),
		xps:         make(map[string]*ExtensionPoint),
		xpAliases:   make(map[string]*ExtensionPoint),
	}
	for _, b := range bundles {
		if _, ok := s.bundleIndex[b.ID]; !ok {
			s.bundleIndex[b.ID] = b
		}
		for _, c := range b.Components {
			s.link(b, c)
		}
	}
	return s
}

func (s *Snapshot) link(b *Bundle, c *Component) {
	c.Bundle = b
	for _, svc := range c.Services {
		svc.Component = c
	}
	for _, xp := range c.ExtensionPoints {
		xp.Component = c
		s.xps[xp.ID] = xp
		for _, alias := range xp.Aliases {
			s.xpAliases[alias] = xp
		}
	}
	for _, contrib := range c.Extensions {
		contrib.Component = c
		s.contributions = append(s.contributions, contrib)
	}
	for _, op := range c.Operations {
		op.Component = c
		s.operations = append(s.operations, op)
	}
}

// Name implements [Distribution].
func (s *Snapshot) Name() string { return s.name }

// Version implements [Distribution].
func (s *Snapshot) Version() string { return s.version }

// Bundles implements [Distribution].
func (s *Snapshot) Bundles() []*Bundle { return slices.Clone(s.bundles) }

// Bundle implements [Distribution].
func (s *Snapshot) Bundle(id string) (*Bundle, bool) {
	b, ok := s.bundleIndex[id]
	return b, ok
}

// Packages implements [Distribution].
func (s *Snapshot) Packages() []*Package { return slices.Clone(s.packages) }

// Contributions implements [Distribution].
func (s *Snapshot) Contributions() []*Contribution { return slices.Clone(s.contributions) }

// Operations implements [Distribution].
func (s *Snapshot) Operations() []*Operation { return slices.Clone(s.operations) }

// ExtensionPointIDs implements [Distribution].
func (s *Snapshot) ExtensionPointIDs() []string {
	return slices.Sorted(maps.Keys(s.xps))
}

// ExtensionPoint implements [Distribution].
func (s *Snapshot) ExtensionPoint(id string) (*ExtensionPoint, bool) {
	if xp, ok := s.xps[id]; ok {
		return xp, true
	}
	xp, ok := s.xpAliases[id]
	return xp, ok
}

// Latest returns the distribution with the greatest version, or nil for an
// empty list. Ties keep the first one.
func Latest(ds []Distribution) Distribution {
	var latest Distribution
	for _, d := range ds {
		if latest == nil || version.Compare(d.Version(), latest.Version()) > 0 {
			latest = d
		}
	}
	return latest
}
