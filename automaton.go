package fa

import (
	"maps"
	"slices"
)

// Symbol A single input character of an automaton's alphabet.
type Symbol = byte

// State Identifies a state; valid ids are non-negative.
type State = int

// Epsilon The label of a spontaneous transition. It is never a member of an alphabet.
const Epsilon Symbol = 0

// IsPrintable Reports whether c can be an alphabet symbol: a printable, non-whitespace ASCII character.
func IsPrintable(c Symbol) bool {
	return c >= '!' && c <= '~'
}

// Transition A single element (From, Label, To) of the transition relation.
type Transition struct {
	From  State
	Label Symbol
	To    State
}

// Automaton Represents a finite automaton over a finite alphabet of symbols. States are
// caller-chosen non-negative integers and carry a Kind. Several transitions may share the
// same (from, label) pair, which makes the automaton non-deterministic.
//
// An Automaton is created empty and mutated in place by its owner. Every mutator reports
// failure by returning false and leaves the automaton untouched. The zero value is not
// usable; use NewAutomaton. An Automaton is not safe for concurrent mutation.
type Automaton struct {
	alphabet map[Symbol]struct{}

	states map[State]Kind

	// from -> label -> set of destinations
	transitions map[State]map[Symbol]map[State]struct{}
}

func NewAutomaton() *Automaton {
	return &Automaton{
		alphabet:    make(map[Symbol]struct{}),
		states:      make(map[State]Kind),
		transitions: make(map[State]map[Symbol]map[State]struct{}),
	}
}

// IsValid Returns true if both the alphabet and the state set are non-empty.
func (a *Automaton) IsValid() bool {
	return len(a.alphabet) > 0 && len(a.states) > 0
}

// AddSymbol Adds c to the alphabet. Fails if c is not printable or already present.
func (a *Automaton) AddSymbol(c Symbol) bool {
	if !IsPrintable(c) || a.HasSymbol(c) {
		return false
	}
	a.alphabet[c] = struct{}{}
	return true
}

// RemoveSymbol Removes c from the alphabet together with every transition labeled c.
func (a *Automaton) RemoveSymbol(c Symbol) bool {
	if !a.HasSymbol(c) {
		return false
	}
	for from, byLabel := range a.transitions {
		delete(byLabel, c)
		if len(byLabel) == 0 {
			delete(a.transitions, from)
		}
	}
	delete(a.alphabet, c)
	return true
}

func (a *Automaton) HasSymbol(c Symbol) bool {
	_, ok := a.alphabet[c]
	return ok
}

func (a *Automaton) CountSymbols() int {
	return len(a.alphabet)
}

// Symbols Returns the alphabet in ascending order.
func (a *Automaton) Symbols() []Symbol {
	return slices.Sorted(maps.Keys(a.alphabet))
}

// AddState Adds a state with Kind None. Fails if id is negative or already present.
func (a *Automaton) AddState(id State) bool {
	if id < 0 || a.HasState(id) {
		return false
	}
	a.states[id] = None
	return true
}

// RemoveState Removes id and every transition leaving or entering it.
func (a *Automaton) RemoveState(id State) bool {
	if !a.HasState(id) {
		return false
	}
	delete(a.transitions, id)
	for from, byLabel := range a.transitions {
		for label, dests := range byLabel {
			delete(dests, id)
			if len(dests) == 0 {
				delete(byLabel, label)
			}
		}
		if len(byLabel) == 0 {
			delete(a.transitions, from)
		}
	}
	delete(a.states, id)
	return true
}

func (a *Automaton) HasState(id State) bool {
	_, ok := a.states[id]
	return ok
}

func (a *Automaton) CountStates() int {
	return len(a.states)
}

// States Returns every state id in ascending order.
func (a *Automaton) States() []State {
	return slices.Sorted(maps.Keys(a.states))
}

// Kind Returns the classification of id, None for an unknown state.
func (a *Automaton) Kind(id State) Kind {
	return a.states[id]
}

// SetInitial Marks id as initial. Unknown states and states already initial are ignored.
func (a *Automaton) SetInitial(id State) {
	kind, ok := a.states[id]
	if !ok {
		return
	}
	a.states[id] = kind.WithInitial()
}

// SetFinal Marks id as final. Unknown states and states already final are ignored.
func (a *Automaton) SetFinal(id State) {
	kind, ok := a.states[id]
	if !ok {
		return
	}
	a.states[id] = kind.WithFinal()
}

func (a *Automaton) IsInitial(id State) bool {
	return a.states[id].IsInitial()
}

func (a *Automaton) IsFinal(id State) bool {
	return a.states[id].IsFinal()
}

// InitialStates Returns the initial states in ascending order.
func (a *Automaton) InitialStates() []State {
	return a.statesWhere(Kind.IsInitial)
}

// FinalStates Returns the final states in ascending order.
func (a *Automaton) FinalStates() []State {
	return a.statesWhere(Kind.IsFinal)
}

func (a *Automaton) statesWhere(pred func(Kind) bool) []State {
	result := make([]State, 0)
	for _, s := range a.States() {
		if pred(a.states[s]) {
			result = append(result, s)
		}
	}
	return result
}

// setKind overwrites the classification of an existing state. Used by constructions that
// need to clear a flag, which the public mutators never do.
func (a *Automaton) setKind(id State, kind Kind) {
	if _, ok := a.states[id]; ok {
		a.states[id] = kind
	}
}

// AddTransition Adds (from, label, to). Both states must exist and label must be Epsilon
// or an alphabet symbol. Fails on an exact duplicate.
func (a *Automaton) AddTransition(from State, label Symbol, to State) bool {
	if !a.HasState(from) || !a.HasState(to) {
		return false
	}
	if label != Epsilon && !a.HasSymbol(label) {
		return false
	}
	if a.HasTransition(from, label, to) {
		return false
	}

	byLabel, ok := a.transitions[from]
	if !ok {
		byLabel = make(map[Symbol]map[State]struct{})
		a.transitions[from] = byLabel
	}
	dests, ok := byLabel[label]
	if !ok {
		dests = make(map[State]struct{})
		byLabel[label] = dests
	}
	dests[to] = struct{}{}
	return true
}

// RemoveTransition Removes (from, label, to). Returns false if it was not present.
func (a *Automaton) RemoveTransition(from State, label Symbol, to State) bool {
	if !a.HasTransition(from, label, to) {
		return false
	}
	byLabel := a.transitions[from]
	delete(byLabel[label], to)
	if len(byLabel[label]) == 0 {
		delete(byLabel, label)
	}
	if len(byLabel) == 0 {
		delete(a.transitions, from)
	}
	return true
}

func (a *Automaton) HasTransition(from State, label Symbol, to State) bool {
	_, ok := a.transitions[from][label][to]
	return ok
}

// CountTransitions How many (from, label, to) triples this automaton has.
func (a *Automaton) CountTransitions() int {
	count := 0
	for _, byLabel := range a.transitions {
		for _, dests := range byLabel {
			count += len(dests)
		}
	}
	return count
}

// Successors Returns the destinations of from on label in ascending order.
func (a *Automaton) Successors(from State, label Symbol) []State {
	return slices.Sorted(maps.Keys(a.transitions[from][label]))
}

// Transitions Returns every transition sorted by source, then label, then destination.
func (a *Automaton) Transitions() []Transition {
	result := make([]Transition, 0, a.CountTransitions())
	for _, from := range slices.Sorted(maps.Keys(a.transitions)) {
		byLabel := a.transitions[from]
		for _, label := range slices.Sorted(maps.Keys(byLabel)) {
			for _, to := range slices.Sorted(maps.Keys(byLabel[label])) {
				result = append(result, Transition{From: from, Label: label, To: to})
			}
		}
	}
	return result
}

// HasEpsilonTransition Returns true if at least one transition is labeled Epsilon.
func (a *Automaton) HasEpsilonTransition() bool {
	for _, byLabel := range a.transitions {
		if len(byLabel[Epsilon]) > 0 {
			return true
		}
	}
	return false
}

// IsDeterministic Returns true if there is exactly one initial state, no epsilon transition,
// and no (state, symbol) pair with more than one destination.
func (a *Automaton) IsDeterministic() bool {
	if a.HasEpsilonTransition() {
		return false
	}
	if len(a.InitialStates()) != 1 {
		return false
	}
	for _, byLabel := range a.transitions {
		for _, dests := range byLabel {
			if len(dests) > 1 {
				return false
			}
		}
	}
	return true
}

// IsComplete Returns true if every state has at least one outgoing transition for every
// alphabet symbol.
func (a *Automaton) IsComplete() bool {
	for s := range a.states {
		for c := range a.alphabet {
			if len(a.transitions[s][c]) == 0 {
				return false
			}
		}
	}
	return true
}

// Clone Returns a deep copy that shares no mutable state with a.
func (a *Automaton) Clone() *Automaton {
	b := NewAutomaton()
	maps.Copy(b.alphabet, a.alphabet)
	maps.Copy(b.states, a.states)
	for from, byLabel := range a.transitions {
		copied := make(map[Symbol]map[State]struct{}, len(byLabel))
		for label, dests := range byLabel {
			copied[label] = maps.Clone(dests)
		}
		b.transitions[from] = copied
	}
	return b
}

// nextFreeState Returns the smallest non-negative id not used by a.
func (a *Automaton) nextFreeState() State {
	s := 0
	for a.HasState(s) {
		s++
	}
	return s
}
