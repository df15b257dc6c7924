package graph

import (
	"fmt"
	"strings"
)

// =============================================================================
// NodeType
// =============================================================================

// NodeType classifies the artifact a node stands for.
type NodeType int

const (
	NodeUndefined NodeType = iota
	NodeBundle
	NodeComponent
	NodeService
	NodeExtensionPoint
	NodeContribution
	NodeOperation
	NodePackage

	nodeTypeCount
)

type nodeTypeInfo struct {
	name   string
	tag    string
	zIndex int
}

// nodeTypes is indexed by NodeType.
var nodeTypes = [nodeTypeCount]nodeTypeInfo{
	NodeUndefined:      {"UNDEFINED", "UNDEFINED", -1},
	NodeBundle:         {"BUNDLE", "NXBundle", 0},
	NodeComponent:      {"COMPONENT", "NXComponent", 1},
	NodeService:        {"SERVICE", "NXService", 2},
	NodeExtensionPoint: {"EXTENSION_POINT", "NXExtensionPoint", 2},
	NodeContribution:   {"CONTRIBUTION", "NXContribution", 3},
	NodeOperation:      {"OPERATION", "NXOperation", 4},
	NodePackage:        {"PACKAGE", "NXPackage", 5},
}

// guessOrder is the prefix priority used by [GuessNodeType].
var guessOrder = []NodeType{
	NodeBundle,
	NodeComponent,
	NodeExtensionPoint,
	NodeService,
	NodeContribution,
	NodeOperation,
	NodePackage,
}

// NodeTypes returns all concrete node types, UNDEFINED excluded.
func NodeTypes() []NodeType {
	return []NodeType{NodeBundle, NodeComponent, NodeService, NodeExtensionPoint, NodeContribution, NodeOperation, NodePackage}
}

func (t NodeType) info() nodeTypeInfo {
	if t < 0 || t >= nodeTypeCount {
		return nodeTypes[NodeUndefined]
	}
	return nodeTypes[t]
}

// String returns the upper-case variant name, e.g. "EXTENSION_POINT".
func (t NodeType) String() string { return t.info().name }

// Tag returns the artifact type tag used to namespace ids, e.g. "NXBundle".
func (t NodeType) Tag() string { return t.info().tag }

// ZIndex returns the display rank used to stack overlapping node types.
func (t NodeType) ZIndex() int { return t.info().zIndex }

// Label returns the capitalized lower-case name, e.g. "Extension_point".
func (t NodeType) Label() string { return label(t.String()) }

// Prefix namespaces id with the type tag: "NXBundle-" + id.
func (t NodeType) Prefix(id string) string {
	return t.Tag() + "-" + id
}

// Unprefix strips the type tag added by [NodeType.Prefix].
// Ids that do not carry the tag are returned unchanged.
func (t NodeType) Unprefix(id string) string {
	if rest, ok := strings.CutPrefix(id, t.Tag()+"-"); ok {
		return rest
	}
	return id
}

// GuessNodeType finds the type whose tag prefixes id, or NodeUndefined.
func GuessNodeType(id string) NodeType {
	for _, t := range guessOrder {
		if strings.HasPrefix(id, t.Tag()+"-") {
			return t
		}
	}
	return NodeUndefined
}

// ParseNodeType resolves a variant name, ignoring case.
// Unknown names yield NodeUndefined and false.
func ParseNodeType(s string) (NodeType, bool) {
	for t := NodeUndefined; t < nodeTypeCount; t++ {
		if strings.EqualFold(nodeTypes[t].name, s) {
			return t, true
		}
	}
	return NodeUndefined, false
}

// MarshalText encodes the variant name.
func (t NodeType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText decodes a variant name. Unknown names decode to NodeUndefined.
func (t *NodeType) UnmarshalText(b []byte) error {
	*t, _ = ParseNodeType(string(b))
	return nil
}

// =============================================================================
// EdgeType
// =============================================================================

// EdgeType classifies the relation an edge stands for.
type EdgeType int

const (
	EdgeUndefined EdgeType = iota
	EdgeContains
	EdgeRequires
	EdgeSoftRequires
	EdgeReferences

	edgeTypeCount
)

type edgeTypeInfo struct {
	name     string
	index    int
	directed bool
}

var edgeTypes = [edgeTypeCount]edgeTypeInfo{
	EdgeUndefined:    {"UNDEFINED", -1, false},
	EdgeContains:     {"CONTAINS", 1, true},
	EdgeRequires:     {"REQUIRES", 2, true},
	EdgeSoftRequires: {"SOFT_REQUIRES", 50, false},
	EdgeReferences:   {"REFERENCES", 100, false},
}

func (t EdgeType) info() edgeTypeInfo {
	if t < 0 || t >= edgeTypeCount {
		return edgeTypes[EdgeUndefined]
	}
	return edgeTypes[t]
}

// String returns the upper-case variant name, e.g. "SOFT_REQUIRES".
func (t EdgeType) String() string { return t.info().name }

// Index returns the fixed precedence index of the relation.
func (t EdgeType) Index() int { return t.info().index }

// Directed reports whether the relation has an orientation.
// Only CONTAINS and REQUIRES are directed.
func (t EdgeType) Directed() bool { return t.info().directed }

// Label returns the capitalized lower-case name, e.g. "Soft_requires".
func (t EdgeType) Label() string { return label(t.String()) }

// ParseEdgeType resolves a variant name, ignoring case.
func ParseEdgeType(s string) (EdgeType, bool) {
	for t := EdgeUndefined; t < edgeTypeCount; t++ {
		if strings.EqualFold(edgeTypes[t].name, s) {
			return t, true
		}
	}
	return EdgeUndefined, false
}

// MarshalText encodes the variant name.
func (t EdgeType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText decodes a variant name. Unknown names decode to EdgeUndefined.
func (t *EdgeType) UnmarshalText(b []byte) error {
	*t, _ = ParseEdgeType(string(b))
	return nil
}

// =============================================================================
// NodeCategory
// =============================================================================

// NodeCategory is the platform layer an artifact belongs to.
type NodeCategory int

const (
	CategoryRuntime NodeCategory = iota
	CategoryCore
	CategoryPlatform
	CategoryStudio

	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryRuntime:  "RUNTIME",
	CategoryCore:     "CORE",
	CategoryPlatform: "PLATFORM",
	CategoryStudio:   "STUDIO",
}

// categoryRules are checked in order against a lower-cased identifier.
// The first substring found wins. Matching is by naming convention only:
// "org.nuxeo.runtime.core" is RUNTIME, never CORE.
var categoryRules = []struct {
	substr   string
	category NodeCategory
}{
	{"runtime", CategoryRuntime},
	{"core", CategoryCore},
	{"platform", CategoryPlatform},
	{"studio", CategoryStudio},
}

// String returns the upper-case variant name.
func (c NodeCategory) String() string {
	if c < 0 || c >= categoryCount {
		return categoryNames[CategoryPlatform]
	}
	return categoryNames[c]
}

// ParseCategory resolves a variant name, ignoring case.
func ParseCategory(s string) (NodeCategory, bool) {
	for c := CategoryRuntime; c < categoryCount; c++ {
		if strings.EqualFold(categoryNames[c], s) {
			return c, true
		}
	}
	return CategoryPlatform, false
}

// MarshalText encodes the variant name.
func (c NodeCategory) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a variant name.
func (c *NodeCategory) UnmarshalText(b []byte) error {
	v, ok := ParseCategory(string(b))
	if !ok {
		return fmt.Errorf("unknown node category %q", b)
	}
	*c = v
	return nil
}

// GuessCategory classifies an identifier by naming convention, defaulting
// to CategoryPlatform.
func GuessCategory(id string) NodeCategory {
	if c, ok := introspect(id); ok {
		return c
	}
	return CategoryPlatform
}

// GuessBundleCategory checks the Maven group id, then the artifact id, then
// the bundle id. The bundle id check falls back to CategoryPlatform.
func GuessBundleCategory(groupID, artifactID, bundleID string) NodeCategory {
	for _, s := range []string{groupID, artifactID} {
		if c, ok := introspect(s); ok {
			return c
		}
	}
	return GuessCategory(bundleID)
}

func introspect(s string) (NodeCategory, bool) {
	lower := strings.ToLower(s)
	for _, r := range categoryRules {
		if strings.Contains(lower, r.substr) {
			return r.category, true
		}
	}
	return CategoryPlatform, false
}

func label(name string) string {
	lower := strings.ToLower(name)
	if lower == "" {
		return ""
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}
