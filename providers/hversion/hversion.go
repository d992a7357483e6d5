/*
Package hversion provides parsing, ordering and formatting for h-version strings.

An h-version string is a loosely structured version identifier of the shape
'[epoch:]c1.c2...cn[-pre_release][+build_metadata]', covering epoch-prefixed,
semver-like and date/alnum schemes alike. Parsing is total: any input, however
malformed, yields a usable Version.

Usage:

	a := hversion.Parse("1.2.3-alpha+001")
	b := hversion.Parse("1:2.3.4")
	if a.Compare(b) == hversion.Less {
		fmt.Printf("%s < %s\n", a, b)
	}
*/
package hversion

import (
	"strconv"
	"strings"
)

// Ordering verdicts returned by Compare.
const (
	Less    = -1
	Equal   = 0
	Greater = 1
)

// Version represents one parsed version string.
//
// A Version is constructed once by Parse and never mutated afterwards, so
// values can be shared across goroutines without synchronization.
type Version struct {
	value      string
	epoch      uint64
	hasEpoch   bool
	components []string
	preRelease string
	hasPre     bool
	buildMeta  string
	hasMeta    bool
}

// Parse constructs a Version from any raw string. It never fails: segments
// that cannot be recognized resolve to absent fields rather than errors, and
// the component list always holds at least one (possibly empty) token.
func Parse(value string) Version {
	v := Version{value: value}

	// Epoch prefix (e.g. '1:2.3.4'). When there is no colon the whole input
	// doubles as both the epoch candidate and the remainder, so a colon-free
	// numeric input like "12345" yields an epoch AND a component from the
	// same text.
	epochCand, rest := value, value
	if idx := strings.Index(value, ":"); idx >= 0 {
		epochCand, rest = value[:idx], value[idx+1:]
	}
	if epoch, err := strconv.ParseUint(epochCand, 10, 64); err == nil {
		v.epoch = epoch
		v.hasEpoch = true
	}

	// Build metadata suffix (e.g. '+001').
	body := rest
	if idx := strings.Index(rest, "+"); idx >= 0 {
		body = rest[:idx]
		v.buildMeta = rest[idx+1:]
		v.hasMeta = true
	}

	// Pre-release tag (e.g. '-alpha'). Only the first '-' splits, any further
	// hyphens stay inside the tag as literal text.
	main := body
	if idx := strings.Index(body, "-"); idx >= 0 {
		main = body[:idx]
		v.preRelease = body[idx+1:]
		v.hasPre = true
	}

	// Main components. Empty tokens from adjacent delimiters are kept.
	v.components = strings.Split(main, ".")

	return v
}

// Value method returns original unmodified raw value of the version.
func (v Version) Value() string {
	return v.value
}

// Epoch method returns the epoch value and whether an epoch segment was
// recognized in the input.
func (v Version) Epoch() (uint64, bool) {
	return v.epoch, v.hasEpoch
}

// Components method returns the main version tokens in input order.
// The returned slice is never empty.
func (v Version) Components() []string {
	return v.components
}

// PreRelease method returns the pre-release tag and whether one was present.
func (v Version) PreRelease() (string, bool) {
	return v.preRelease, v.hasPre
}

// BuildMetadata method returns the build metadata and whether it was present.
func (v Version) BuildMetadata() (string, bool) {
	return v.buildMeta, v.hasMeta
}

// Equal method reports field-wise equality over epoch, components, pre-release
// and build metadata. This is identity, not rank: two versions differing only
// in build metadata rank as equal under Compare yet are unequal here.
func (v Version) Equal(other Version) bool {
	if v.hasEpoch != other.hasEpoch || (v.hasEpoch && v.epoch != other.epoch) {
		return false
	}
	if len(v.components) != len(other.components) {
		return false
	}
	for i := range v.components {
		if v.components[i] != other.components[i] {
			return false
		}
	}
	if v.hasPre != other.hasPre || v.preRelease != other.preRelease {
		return false
	}
	if v.hasMeta != other.hasMeta || v.buildMeta != other.buildMeta {
		return false
	}
	return true
}
