package dataset

import "strings"

// truthy holds every string form the source data uses for "yes".
var truthy = map[string]struct{}{
	"true": {},
	"yes":  {},
	"1":    {},
	"y":    {},
}

// ParseLooseBool coerces the loosely-typed boolean representations found in
// the animal listings into a strict boolean. Absent values, "NaN" markers and
// anything unrecognized are false. This is the single coercion point for the
// whole ingestion path; callers must not re-implement truthy-string parsing.
func ParseLooseBool(v string) bool {
	_, ok := truthy[strings.ToLower(strings.TrimSpace(v))]
	return ok
}
