package fa

// Hashable A composite key of a memo table. Keys that are Equals must return the same Hash.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

type memoEntry struct {
	key Hashable
	id  int
}

// memo Assigns result states to the composite keys of a construction: state sets in
// the subset construction, state pairs in the product, signatures in Moore refinement.
// Buckets are indexed by the low bits of the key hash and doubled once they average
// more than one entry.
type memo struct {
	buckets [][]memoEntry
	size    int
}

func newMemo(sizeHint int) *memo {
	n := 16
	for n < sizeHint {
		n <<= 1
	}
	return &memo{buckets: make([][]memoEntry, n)}
}

func (m *memo) slot(h uint64) int {
	return int(h & uint64(len(m.buckets)-1))
}

func (m *memo) get(key Hashable) (int, bool) {
	for _, e := range m.buckets[m.slot(key.Hash())] {
		if e.key.Equals(key) {
			return e.id, true
		}
	}
	return 0, false
}

// put Records id for key. key must not be present yet.
func (m *memo) put(key Hashable, id int) {
	i := m.slot(key.Hash())
	m.buckets[i] = append(m.buckets[i], memoEntry{key: key, id: id})
	m.size++
	if m.size > len(m.buckets) {
		m.grow()
	}
}

func (m *memo) grow() {
	old := m.buckets
	m.buckets = make([][]memoEntry, 2*len(old))
	for _, bucket := range old {
		for _, e := range bucket {
			i := m.slot(e.key.Hash())
			m.buckets[i] = append(m.buckets[i], e)
		}
	}
}

// next Returns the id the next new key gets: ids are handed out densely from 0.
func (m *memo) next() int {
	return m.size
}

var _ Hashable = statePair{}

// statePair A state of a product construction.
type statePair struct {
	left, right State
}

func (p statePair) Hash() uint64 {
	return mix(p.left)*31 + mix(p.right)
}

func (p statePair) Equals(other Hashable) bool {
	o, ok := other.(statePair)
	return ok && o == p
}
