// Package version compares dotted version strings.
//
// Strings that parse as semantic versions are compared with full semver
// semantics (pre-release qualifiers order before the release they qualify).
// Anything else falls back to a lenient segment-by-segment numeric
// comparison where missing segments count as zero and a trailing
// non-numeric qualifier compares after the numeric core.
package version

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare returns -1, 0, or 1 if a is lower than, equal to, or higher
// than b.
func Compare(a, b string) int {
	va, errA := semver.NewVersion(strings.TrimSpace(a))
	vb, errB := semver.NewVersion(strings.TrimSpace(b))
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}
	return compareLenient(a, b)
}

// Newer reports whether candidate is strictly higher than installed.
func Newer(candidate, installed string) bool {
	return Compare(candidate, installed) > 0
}

// Valid reports whether s looks like a version: a non-empty dotted
// numeric core, optionally followed by a qualifier.
func Valid(s string) bool {
	core, _ := splitSuffix(strings.TrimSpace(s))
	if core == "" {
		return false
	}
	for _, seg := range strings.Split(core, ".") {
		if seg == "" {
			return false
		}
		if _, err := strconv.Atoi(seg); err != nil {
			return false
		}
	}
	return true
}

func compareLenient(a, b string) int {
	aCore, aSuffix := splitSuffix(strings.TrimSpace(a))
	bCore, bSuffix := splitSuffix(strings.TrimSpace(b))

	aSegs := strings.Split(aCore, ".")
	bSegs := strings.Split(bCore, ".")

	n := len(aSegs)
	if len(bSegs) > n {
		n = len(bSegs)
	}
	for i := 0; i < n; i++ {
		av := segment(aSegs, i)
		bv := segment(bSegs, i)
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}

	// Numeric cores are equal; a bare qualifier breaks the tie lexically.
	return strings.Compare(aSuffix, bSuffix)
}

// splitSuffix separates the dotted-numeric core from any trailing
// qualifier, e.g. "1.2.0-rc1" -> ("1.2.0", "-rc1").
func splitSuffix(s string) (core, suffix string) {
	for i, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func segment(segs []string, i int) int {
	if i >= len(segs) || segs[i] == "" {
		return 0
	}
	v, err := strconv.Atoi(segs[i])
	if err != nil {
		return 0
	}
	return v
}
