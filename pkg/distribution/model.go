package distribution

import "strings"

// RootBundleID is the pseudo bundle every isolated bundle depends on.
const RootBundleID = "org.nuxeo.runtime.root"

// Artifact is any introspected entity. The concrete types are pointers to
// [Bundle], [Component], [Service], [ExtensionPoint], [Contribution],
// [Operation] and [Package].
type Artifact interface {
	isArtifact()
}

// Bundle is a deployable module, identified by its symbolic name and
// described by Maven coordinates.
type Bundle struct {
	ID                 string       `json:"id"`
	GroupID            string       `json:"groupId"`
	ArtifactID         string       `json:"artifactId"`
	Version            string       `json:"version,omitempty"`
	Requirements       []string     `json:"requirements,omitempty"`
	MinResolutionOrder *int64       `json:"minResolutionOrder,omitempty"`
	Packages           []string     `json:"packages,omitempty"`
	Components         []*Component `json:"components,omitempty"`
}

// Component is a runtime component declared by a bundle.
type Component struct {
	ID              string            `json:"id"`
	Requirements    []string          `json:"requirements,omitempty"`
	ResolutionOrder *int64            `json:"resolutionOrder,omitempty"`
	Services        []*Service        `json:"services,omitempty"`
	ExtensionPoints []*ExtensionPoint `json:"extensionPoints,omitempty"`
	Extensions      []*Contribution   `json:"extensions,omitempty"`
	Operations      []*Operation      `json:"operations,omitempty"`

	Bundle *Bundle `json:"-"`
}

// Service is a service interface provided by a component.
type Service struct {
	ID         string `json:"id"`
	Overridden bool   `json:"overridden,omitempty"`

	Component *Component `json:"-"`
}

// ExtensionPoint is a plug-in slot declared by a component. Its id is
// "<component>--<name>"; aliases are former ids still accepted.
type ExtensionPoint struct {
	ID      string   `json:"id"`
	Aliases []string `json:"aliases,omitempty"`

	Component *Component `json:"-"`
}

// Contribution is data contributed by a component to an extension point.
type Contribution struct {
	ID              string   `json:"id"`
	ExtensionPoint  string   `json:"extensionPoint"`
	TargetComponent string   `json:"targetComponent"`
	Items           []string `json:"items,omitempty"`

	Component *Component `json:"-"`
}

// TargetComponentName returns the target component name without its
// "type:" qualifier, e.g. "service:org.nuxeo.Foo" yields "org.nuxeo.Foo".
func (c *Contribution) TargetComponentName() string {
	if _, name, ok := strings.Cut(c.TargetComponent, ":"); ok {
		return name
	}
	return c.TargetComponent
}

// Operation is an automation operation registered by a component.
type Operation struct {
	ID             string `json:"id"`
	OperationClass string `json:"operationClass"`

	Component *Component `json:"-"`
}

// Package is an installable package shipping a set of bundles.
type Package struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Title   string   `json:"title,omitempty"`
	Version string   `json:"version,omitempty"`
	Bundles []string `json:"bundles,omitempty"`
}

func (*Bundle) isArtifact()         {}
func (*Component) isArtifact()      {}
func (*Service) isArtifact()        {}
func (*ExtensionPoint) isArtifact() {}
func (*Contribution) isArtifact()   {}
func (*Operation) isArtifact()      {}
func (*Package) isArtifact()        {}
