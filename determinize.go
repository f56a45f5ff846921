package fa

import (
	"errors"
	"fmt"
)

// ErrTooComplex Returned when a bounded construction would exceed its state budget.
var ErrTooComplex = errors.New("automaton too complex to determinize")

// CreateDeterministic Returns a deterministic automaton accepting the same language as a.
// A deterministic input is returned as an independent copy. Worst case complexity:
// exponential in the number of states.
func CreateDeterministic(a *Automaton) *Automaton {
	d, _ := CreateDeterministicLimit(a, 0)
	return d
}

// CreateDeterministicLimit Is CreateDeterministic with a budget: when the subset
// construction needs more than maxStates result states it stops and returns
// ErrTooComplex. maxStates <= 0 means no limit.
func CreateDeterministicLimit(a *Automaton, maxStates int) (*Automaton, error) {
	if a.IsDeterministic() {
		return a.Clone(), nil
	}

	// subset construction
	result := NewAutomaton()
	for _, c := range a.Symbols() {
		result.AddSymbol(c)
	}

	newState := newMemo(a.CountStates())
	worklist := make([]*FrozenIntSet, 0)

	assign := func(set *StateSet) (int, error) {
		if id, ok := newState.get(set); ok {
			return id, nil
		}
		id := newState.next()
		if maxStates > 0 && id >= maxStates {
			return -1, fmt.Errorf("%w: more than %d states", ErrTooComplex, maxStates)
		}
		frozen := set.Freeze(id)
		newState.put(frozen, id)
		worklist = append(worklist, frozen)

		result.AddState(id)
		if a.containsFinal(set) {
			result.SetFinal(id)
		}
		return id, nil
	}

	initial, err := assign(a.initialSet())
	if err != nil {
		return nil, err
	}
	result.SetInitial(initial)

	symbols := a.Symbols()
	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		states := NewStateSet(current.GetArray()...)
		for _, c := range symbols {
			next := a.step(states, c)
			if next.IsEmpty() {
				continue
			}
			dest, err := assign(next)
			if err != nil {
				return nil, err
			}
			result.AddTransition(current.State(), c, dest)
		}
	}

	return result, nil
}
