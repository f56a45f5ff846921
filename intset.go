package fa

// IntSet A set of state ids usable as a memo key.
type IntSet interface {
	Hashable

	// GetArray Returns the members in ascending order.
	GetArray() []int

	Size() int
}

// hashInts Order-independent hash of a set of ints; equal sets always hash equal.
func hashInts(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h += mix(v)
	}
	return h
}

func sameInts(a, b IntSet) bool {
	if a.Size() != b.Size() || a.Hash() != b.Hash() {
		return false
	}
	av, bv := a.GetArray(), b.GetArray()
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}
	return true
}
