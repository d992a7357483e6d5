/*
Package verhub provides convinient api for ranking raw version strings and
checking for newer releases across sources.

Usage:

	latest, ok := verhub.Latest([]string{"1.2.3", "1.10.0", "1.10.0-rc"})
	if ok {
		fmt.Println(latest.Value()) // 1.10.0
	}
*/
package verhub

import (
	"sort"

	"github.com/verhub/verhub-core/providers/hversion"
)

// SortStrings parses every raw string and returns the records sorted ascending
// by precedence. The sort is stable, so input order breaks rank ties (e.g.
// versions differing only in build metadata).
func SortStrings(raw []string) []hversion.Version {
	versions := make([]hversion.Version, len(raw))
	for i, s := range raw {
		versions[i] = hversion.Parse(s)
	}
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) == hversion.Less
	})
	return versions
}

// Latest returns the highest-ranked version from the raw list.
// The second return value is false when the list is empty.
func Latest(raw []string) (hversion.Version, bool) {
	if len(raw) == 0 {
		return hversion.Version{}, false
	}
	best := hversion.Parse(raw[0])
	for _, s := range raw[1:] {
		if v := hversion.Parse(s); v.Compare(best) == hversion.Greater {
			best = v
		}
	}
	return best, true
}
