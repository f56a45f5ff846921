package fa

// CreateMinimalMoore Returns the minimal complete deterministic automaton accepting the same
// language as a, using Moore's partition refinement. States of the result are numbered in
// the order of the smallest source state of each block.
func CreateMinimalMoore(a *Automaton) *Automaton {
	d := CreateComplete(accessibleDeterministic(a))

	states := d.States()
	symbols := d.Symbols()

	block := make(map[State]int, len(states))
	for _, s := range states {
		if d.IsFinal(s) {
			block[s] = 1
		} else {
			block[s] = 0
		}
	}
	numBlocks := countBlocks(block)

	for {
		next, n := refine(d, states, symbols, block)
		block = next
		if n == numBlocks {
			break
		}
		numBlocks = n
	}

	result := NewAutomaton()
	for _, c := range symbols {
		result.AddSymbol(c)
	}
	for b := 0; b < numBlocks; b++ {
		result.AddState(b)
	}
	copied := make(map[int]bool, numBlocks)
	for _, s := range states {
		b := block[s]
		if !copied[b] {
			// First member of the block acts as its representative.
			copied[b] = true
			for _, c := range symbols {
				for _, to := range d.Successors(s, c) {
					result.AddTransition(b, c, block[to])
				}
			}
		}
		if d.IsInitial(s) {
			result.SetInitial(b)
		}
		if d.IsFinal(s) {
			result.SetFinal(b)
		}
	}
	return result
}

// refine Splits every block of the partition by the blocks the members' successors fall
// into. Block ids are assigned in the order states are scanned.
func refine(d *Automaton, states []State, symbols []Symbol, block map[State]int) (map[State]int, int) {
	ids := newMemo(len(states))
	next := make(map[State]int, len(states))

	for _, s := range states {
		sig := make(signature, 0, len(symbols)+1)
		sig = append(sig, block[s])
		for _, c := range symbols {
			// complete and deterministic: exactly one successor
			sig = append(sig, block[d.Successors(s, c)[0]])
		}
		id, ok := ids.get(sig)
		if !ok {
			id = ids.next()
			ids.put(sig, id)
		}
		next[s] = id
	}
	return next, ids.next()
}

func countBlocks(block map[State]int) int {
	seen := make(map[int]struct{})
	for _, b := range block {
		seen[b] = struct{}{}
	}
	return len(seen)
}

var _ Hashable = signature{}

// signature A state's current block followed by the block of its successor on each symbol.
type signature []int

func (s signature) Hash() uint64 {
	h := uint64(17)
	for _, v := range s {
		h = h*31 + mix(v)
	}
	return h
}

func (s signature) Equals(other Hashable) bool {
	o, ok := other.(signature)
	if !ok || len(o) != len(s) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// CreateMinimalBrzozowski Returns the minimal deterministic automaton accepting the same
// language as a by determinizing its mirror twice. The result only holds accessible
// states, so unlike CreateMinimalMoore it has no sink state.
func CreateMinimalBrzozowski(a *Automaton) *Automaton {
	return accessibleDeterministic(CreateMirror(accessibleDeterministic(CreateMirror(a))))
}

func accessibleDeterministic(a *Automaton) *Automaton {
	d := CreateDeterministic(a)
	d.RemoveNonAccessibleStates()
	return d
}
