// Package stats computes per-contribution statistics over a distribution:
// whether the targeted extension point exists, how many items are
// contributed, and which code style the extension point expects.
package stats

import (
	"cmp"
	"slices"
	"strings"

	"github.com/matzehuels/apidoc/pkg/distribution"
)

// CodeType is the code style a contribution is written in.
type CodeType string

const (
	CodeXML       CodeType = "XML"
	CodeJava      CodeType = "JAVA"
	CodeJavaLike  CodeType = "JAVALIKE"
	CodeScripting CodeType = "SCRIPTING"
)

// CodeTypes lists the code types in report order.
func CodeTypes() []CodeType {
	return []CodeType{CodeXML, CodeJava, CodeJavaLike, CodeScripting}
}

// StudioPrefix starts the id of every contribution generated by Studio.
const StudioPrefix = "studio.extensions"

// Property keys holding comma-separated extension point ids.
const (
	PropJavaTypes      = "javaTypes"
	PropJavaLikeTypes  = "javaLikeTypes"
	PropScriptingTypes = "scriptingTypes"
)

// ContributionStat describes one contribution. Fields are declared in
// alphabetical order of their JSON names.
type ContributionStat struct {
	CodeType                    CodeType `json:"codeType"`
	ExtensionID                 string   `json:"extensionId"`
	FromStudio                  bool     `json:"fromStudio"`
	NumberOfContributions       int64    `json:"numberOfContributions"`
	TargetExtensionPointID      string   `json:"targetExtensionPointId"`
	TargetExtensionPointPresent bool     `json:"targetExtensionPointPresent"`
}

// Classifier holds the extension point ids that expect Java, Java-like and
// scripting contributions. Anything else is XML.
type Classifier struct {
	Java      []string
	JavaLike  []string
	Scripting []string
}

// ClassifierFrom reads the classifier lists from property maps. For each
// key, the first map that defines it wins.
func ClassifierFrom(props ...map[string]string) Classifier {
	lookup := func(key string) []string {
		for _, p := range props {
			if v, ok := p[key]; ok {
				return SplitList(v)
			}
		}
		return nil
	}
	return Classifier{
		Java:      lookup(PropJavaTypes),
		JavaLike:  lookup(PropJavaLikeTypes),
		Scripting: lookup(PropScriptingTypes),
	}
}

// SplitList splits a comma-separated value, dropping blank entries.
func SplitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

type resolved struct {
	java, javaLike, scripting map[string]bool
}

// resolve adds the aliases of every listed extension point known to d.
func (c Classifier) resolve(d distribution.Distribution) resolved {
	expand := func(ids []string) map[string]bool {
		set := make(map[string]bool, len(ids))
		for _, id := range ids {
			set[id] = true
			if xp, ok := d.ExtensionPoint(id); ok {
				for _, alias := range xp.Aliases {
					set[alias] = true
				}
			}
		}
		return set
	}
	return resolved{
		java:      expand(c.Java),
		javaLike:  expand(c.JavaLike),
		scripting: expand(c.Scripting),
	}
}

func (r resolved) classify(xp string) CodeType {
	switch {
	case r.java[xp]:
		return CodeJava
	case r.javaLike[xp]:
		return CodeJavaLike
	case r.scripting[xp]:
		return CodeScripting
	default:
		return CodeXML
	}
}

// Compute returns one stat per contribution accepted by f, ordered by
// contribution id. A nil filter accepts every contribution.
func Compute(d distribution.Distribution, f distribution.Filter, c Classifier) []ContributionStat {
	contribs := d.Contributions()
	slices.SortStableFunc(contribs, func(a, b *distribution.Contribution) int {
		return cmp.Compare(a.ID, b.ID)
	})
	types := c.resolve(d)

	out := make([]ContributionStat, 0, len(contribs))
	for _, contrib := range contribs {
		if !distribution.Accepts(f, contrib) {
			continue
		}
		_, present := d.ExtensionPoint(contrib.ExtensionPoint)
		out = append(out, ContributionStat{
			CodeType:                    types.classify(contrib.ExtensionPoint),
			ExtensionID:                 contrib.ID,
			FromStudio:                  strings.HasPrefix(contrib.ID, StudioPrefix),
			NumberOfContributions:       int64(len(contrib.Items)),
			TargetExtensionPointID:      contrib.ExtensionPoint,
			TargetExtensionPointPresent: present,
		})
	}
	return out
}

// CountByCodeType tallies stats per code type. Every code type is present
// in the result.
func CountByCodeType(stats []ContributionStat) map[CodeType]int {
	counts := make(map[CodeType]int, 4)
	for _, ct := range CodeTypes() {
		counts[ct] = 0
	}
	for _, s := range stats {
		counts[s.CodeType]++
	}
	return counts
}
