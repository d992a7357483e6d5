package hversion

import (
	"fmt"
	"strconv"
	"strings"
)

// String method renders the canonical form '[epoch:]c1.c2...cn[-pre][+meta]'.
// For inputs already in that exact shape the render reproduces them byte for
// byte.
func (v Version) String() string {
	var b strings.Builder
	if v.hasEpoch {
		b.WriteString(strconv.FormatUint(v.epoch, 10))
		b.WriteByte(':')
	}
	b.WriteString(strings.Join(v.components, "."))
	if v.hasPre {
		b.WriteByte('-')
		b.WriteString(v.preRelease)
	}
	if v.hasMeta {
		b.WriteByte('+')
		b.WriteString(v.buildMeta)
	}
	return b.String()
}

// Describe method renders a fixed-field diagnostic view of the record,
// intended for introspection and tests, not for round-tripping. An absent
// epoch renders as 0, absent pre-release and build metadata render empty.
func (v Version) Describe() string {
	quoted := make([]string, len(v.components))
	for i, c := range v.components {
		quoted[i] = strconv.Quote(c)
	}
	return fmt.Sprintf("epoch:%d components:[%s] pre_release:%s build_metadata:%s",
		v.epoch, strings.Join(quoted, ", "), v.preRelease, v.buildMeta)
}
