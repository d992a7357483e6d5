package hversion

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// preReleaseCaser folds pre-release tags to lower case before comparison,
// so 'SNAPSHOT' and 'snapshot' rank the same.
var preReleaseCaser = cases.Lower(language.Und)

// Compare ranks a against b, returning Less, Equal or Greater.
func Compare(a, b Version) int {
	return a.Compare(b)
}

// Compare method ranks the version against other under the strict total order:
// epoch first (a missing epoch ranks below any present one), then components
// pairwise up to the length of the shorter sequence, then pre-release (a
// release outranks any of its pre-releases). Build metadata never participates,
// use Equal for identity checks that include it.
func (v Version) Compare(other Version) int {
	switch {
	case v.hasEpoch != other.hasEpoch:
		if other.hasEpoch {
			return Less
		}
		return Greater
	case v.hasEpoch && v.epoch != other.epoch:
		if v.epoch < other.epoch {
			return Less
		}
		return Greater
	}

	// Extra trailing components of the longer version are never examined,
	// '1.2' and '1.2.3' are equal at this step.
	limit := len(v.components)
	if len(other.components) < limit {
		limit = len(other.components)
	}
	for i := 0; i < limit; i++ {
		if cmp := compareComponent(v.components[i], other.components[i]); cmp != Equal {
			return cmp
		}
	}

	switch {
	case !v.hasPre && !other.hasPre:
		return Equal
	case !v.hasPre:
		return Greater
	case !other.hasPre:
		return Less
	}
	return strings.Compare(preReleaseCaser.String(v.preRelease), preReleaseCaser.String(other.preRelease))
}

// compareComponent ranks two tokens at the same position. Numeric pairs
// compare by value, a numeric token always ranks below a non-numeric one
// regardless of magnitude, and everything else compares bytewise.
func compareComponent(a, b string) int {
	an, aerr := strconv.ParseUint(a, 10, 64)
	bn, berr := strconv.ParseUint(b, 10, 64)
	switch {
	case aerr == nil && berr == nil:
		if an < bn {
			return Less
		}
		if an > bn {
			return Greater
		}
		return Equal
	case aerr == nil:
		return Less
	case berr == nil:
		return Greater
	}
	return strings.Compare(a, b)
}
