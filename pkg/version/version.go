// Package version orders distribution version strings.
//
// Versions follow the "major[.minor[.patch]][-qualifier[number]]" grammar used
// by distribution builds: "11.2", "11.2.3", "11.2-RC10", "11.2.1-SNAPSHOT".
// The ordering is not semver. A plain release outranks every variant sharing
// its prefix: "11.2" sorts after "11.2.0", "11.2.49" and "11.2-RC10".
//
// The empty string stands for an absent version and sorts below everything.
// [Compare] never fails: strings outside the grammar are ordered by their raw
// UTF-16 code units so that any slice can be sorted deterministically.
package version

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf16"
)

// pattern captures major, minor, patch, qualifier and qualifier number.
var pattern = regexp.MustCompile(`(?i)^(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:-(\D+))?(?:(\d+))?$`)

const (
	groupQualifier = 4
	groupNumber    = 5
)

// IsVersion reports whether s matches the version grammar.
// Blank strings are never versions.
func IsVersion(s string) bool {
	return s != "" && pattern.MatchString(s)
}

// Compare returns a negative number when v1 sorts before v2, a positive number
// when it sorts after, and zero when both are equivalent.
//
// Results are not limited to -1, 0 and +1. Two qualifiers with no defined
// relation ("RC" and "foo") yield the difference of their first distinct code
// units, so the magnitude tells an arbitrary difference apart from an ordered
// one. The sign is always antisymmetric.
func Compare(v1, v2 string) int {
	if c, ok := compareAbsent(v1, v2); ok {
		return c
	}
	m1 := pattern.FindStringSubmatch(v1)
	m2 := pattern.FindStringSubmatch(v2)
	if m1 != nil && m2 != nil {
		if c, ok := compareMatches(m1, m2); ok {
			return c
		}
	}
	return compareRaw(v1, v2)
}

// Sort orders versions in place from oldest to latest.
func Sort(versions []string) {
	slices.SortStableFunc(versions, Compare)
}

// Latest returns the greatest version of the list, or "" for an empty list.
func Latest(versions []string) string {
	if len(versions) == 0 {
		return ""
	}
	return slices.MaxFunc(versions, Compare)
}

// compareAbsent handles empty operands. The boolean is false when both
// operands are present.
func compareAbsent(v1, v2 string) (int, bool) {
	switch {
	case v1 == "" && v2 == "":
		return 0, true
	case v1 == "":
		return -1, true
	case v2 == "":
		return 1, true
	}
	return 0, false
}

func compareMatches(m1, m2 []string) (int, bool) {
	qualifiers := false
	for i := 1; i <= groupNumber; i++ {
		if i == groupQualifier {
			continue
		}
		s1, s2 := m1[i], m2[i]
		switch {
		case s1 != "" && s2 != "":
			if c := compareDigits(s1, s2); c != 0 {
				return c, true
			}
			if i == groupNumber {
				return compareQualifiers(m1[groupQualifier], m2[groupQualifier]), true
			}
		case (s1 == "" && s2 == "") || i == groupNumber:
			qualifiers = true
		case s1 == "":
			// The shorter version is the release.
			return 1, true
		default:
			return -1, true
		}
	}
	if qualifiers {
		return compareQualifiers(m1[groupQualifier], m2[groupQualifier]), true
	}
	return 0, false
}

// compareQualifiers ranks a missing qualifier above any present one.
func compareQualifiers(q1, q2 string) int {
	if c, ok := compareAbsent(q1, q2); ok {
		return -c
	}
	return compareRaw(q1, q2)
}

// compareDigits compares two digit runs numerically without size limits.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// compareRaw compares UTF-16 code units and falls back to the length
// difference when one string prefixes the other.
func compareRaw(a, b string) int {
	u1 := utf16.Encode([]rune(a))
	u2 := utf16.Encode([]rune(b))
	for i := range min(len(u1), len(u2)) {
		if u1[i] != u2[i] {
			return int(u1[i]) - int(u2[i])
		}
	}
	return len(u1) - len(u2)
}
