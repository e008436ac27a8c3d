package bptree

// Comparator selects the relation used by RangeSearch.
type Comparator string

const (
	// LessEqual matches keys <= the probe.
	LessEqual Comparator = "<="
	// Equal matches keys equal to the probe.
	Equal Comparator = "=="
	// GreaterEqual matches keys >= the probe.
	GreaterEqual Comparator = ">="
)

// Valid reports whether c is one of the recognized comparators.
func (c Comparator) Valid() bool {
	switch c {
	case LessEqual, Equal, GreaterEqual:
		return true
	default:
		return false
	}
}

// ParseComparator converts a comparator token into a Comparator.
// It reports false for anything other than "<=", "==" or ">=".
func ParseComparator(s string) (Comparator, bool) {
	c := Comparator(s)
	if !c.Valid() {
		return "", false
	}
	return c, true
}
