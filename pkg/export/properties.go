package export

import (
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/apidoc/pkg/stats"
)

// PropPretty selects indented JSON output.
const PropPretty = "pretty"

// Properties are string key/value options passed to an exporter.
type Properties map[string]string

// Bool reports whether key is set to "true", ignoring case. Any other value
// is false.
func (p Properties) Bool(key string) bool {
	return strings.EqualFold(strings.TrimSpace(p[key]), "true")
}

// List splits a comma-separated value, dropping blank entries.
func (p Properties) List(key string) []string {
	return stats.SplitList(p[key])
}

// Clone returns a copy of p. The copy of a nil map is nil.
func (p Properties) Clone() Properties {
	return maps.Clone(p)
}

// Keys returns the property names, sorted.
func (p Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}
