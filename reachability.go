package fa

import (
	"github.com/bits-and-blooms/bitset"
)

// adjacency Labels are irrelevant for reachability, so the relation is flattened to a
// plain successor (or predecessor) list per state.
type adjacency map[State][]State

func (a *Automaton) forwardAdjacency() adjacency {
	adj := make(adjacency, len(a.transitions))
	for from, byLabel := range a.transitions {
		for _, dests := range byLabel {
			for to := range dests {
				adj[from] = append(adj[from], to)
			}
		}
	}
	return adj
}

func (a *Automaton) backwardAdjacency() adjacency {
	adj := make(adjacency, len(a.transitions))
	for from, byLabel := range a.transitions {
		for _, dests := range byLabel {
			for to := range dests {
				adj[to] = append(adj[to], from)
			}
		}
	}
	return adj
}

// ordinals Numbers the states densely in ascending id order, so that visited sets stay
// proportional to the number of states whatever the ids are.
func (a *Automaton) ordinals() map[State]uint {
	index := make(map[State]uint, len(a.states))
	for i, s := range a.States() {
		index[s] = uint(i)
	}
	return index
}

// reach Returns every state reachable from seeds in adj. When stop is not nil the search
// returns as soon as stop accepts a visited state.
func reach(index map[State]uint, adj adjacency, seeds []State, stop func(State) bool) (*StateSet, bool) {
	seen := bitset.New(uint(len(index)))
	visited := NewStateSet()
	workList := make([]State, 0, len(seeds))
	visit := func(s State) {
		if !seen.Test(index[s]) {
			seen.Set(index[s])
			visited.Add(s)
			workList = append(workList, s)
		}
	}
	for _, s := range seeds {
		visit(s)
	}

	for len(workList) > 0 {
		state := workList[len(workList)-1]
		workList = workList[:len(workList)-1]

		if stop != nil && stop(state) {
			return visited, true
		}
		for _, next := range adj[state] {
			visit(next)
		}
	}
	return visited, false
}

// IsLanguageEmpty Returns true if no final state is reachable from an initial state.
func (a *Automaton) IsLanguageEmpty() bool {
	initials := a.InitialStates()
	if len(initials) == 0 {
		return true
	}
	for _, s := range initials {
		if a.IsFinal(s) {
			// Accepts the empty word
			return false
		}
	}

	_, found := reach(a.ordinals(), a.forwardAdjacency(), initials, a.IsFinal)
	return !found
}

// AccessibleStates Returns the states reachable from an initial state.
func (a *Automaton) AccessibleStates() *StateSet {
	visited, _ := reach(a.ordinals(), a.forwardAdjacency(), a.InitialStates(), nil)
	return visited
}

// CoAccessibleStates Returns the states from which a final state is reachable.
func (a *Automaton) CoAccessibleStates() *StateSet {
	visited, _ := reach(a.ordinals(), a.backwardAdjacency(), a.FinalStates(), nil)
	return visited
}

// RemoveNonAccessibleStates Deletes every state that no initial state reaches. With no
// initial state at all, every state and transition is removed.
func (a *Automaton) RemoveNonAccessibleStates() {
	a.retain(a.AccessibleStates())
}

// RemoveNonCoAccessibleStates Deletes every state from which no final state is reachable.
func (a *Automaton) RemoveNonCoAccessibleStates() {
	a.retain(a.CoAccessibleStates())
}

func (a *Automaton) retain(keep *StateSet) {
	if keep.IsEmpty() {
		clear(a.states)
		clear(a.transitions)
		return
	}
	for _, s := range a.States() {
		if !keep.Contains(s) {
			a.RemoveState(s)
		}
	}
}
