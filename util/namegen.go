package util

import "strconv"

// NameGenerator produces fresh, monotonically numbered names with a fixed
// prefix.  Each pass that introduces names owns its own generator: the counter
// is pass-local state, never shared between passes.
type NameGenerator struct {
	prefix string
	index  int
}

// NewNameGenerator creates a new name generator with the given prefix.
func NewNameGenerator(prefix string) *NameGenerator {
	return &NameGenerator{prefix: prefix}
}

// Generate returns the next fresh name.
func (ng *NameGenerator) Generate() string {
	result := ng.prefix + strconv.Itoa(ng.index)
	ng.index++
	return result
}
