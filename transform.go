package fa

import (
	"maps"
)

// CreateComplete Returns a complete automaton accepting the same language as a. Missing
// transitions are redirected to one fresh sink state, which loops on every symbol and is
// neither initial nor final. A complete input is returned as an independent copy.
func CreateComplete(a *Automaton) *Automaton {
	result := a.Clone()
	if a.IsComplete() {
		return result
	}

	sink := result.nextFreeState()
	result.AddState(sink)

	symbols := result.Symbols()
	for _, s := range result.States() {
		for _, c := range symbols {
			if len(result.transitions[s][c]) == 0 {
				result.AddTransition(s, c, sink)
			}
		}
	}
	return result
}

// CreateComplement Returns an automaton accepting every word over a's alphabet that a
// rejects. The input is made deterministic and complete first, then finality is flipped.
func CreateComplement(a *Automaton) *Automaton {
	result := CreateComplete(CreateDeterministic(a))
	for _, s := range result.States() {
		result.setKind(s, result.Kind(s).Complement())
	}
	return result
}

// CreateMirror Returns an automaton accepting the reversal of a's language: every
// transition is reversed and initial and final flags are swapped.
func CreateMirror(a *Automaton) *Automaton {
	result := NewAutomaton()
	maps.Copy(result.alphabet, a.alphabet)

	for s, kind := range a.states {
		result.states[s] = kind.Mirror()
	}
	for _, t := range a.Transitions() {
		result.AddTransition(t.To, t.Label, t.From)
	}
	return result
}

// CreateIntersection Returns the synchronized product of lhs and rhs restricted to the
// pairs reachable from their initial states. The alphabet is the intersection of both
// alphabets. Each side is expected to be deterministic; when a side has several
// successors the smallest one is followed.
func CreateIntersection(lhs, rhs *Automaton) *Automaton {
	result := NewAutomaton()
	for c := range lhs.alphabet {
		if rhs.HasSymbol(c) {
			result.AddSymbol(c)
		}
	}

	lhsInitial := lhs.InitialStates()
	rhsInitial := rhs.InitialStates()
	if len(lhsInitial) == 0 || len(rhsInitial) == 0 {
		return result
	}

	translate := newMemo(lhs.CountStates() + rhs.CountStates())
	queue := make([]statePair, 0)

	assign := func(p statePair) int {
		if id, ok := translate.get(p); ok {
			return id
		}
		id := translate.next()
		translate.put(p, id)
		queue = append(queue, p)

		result.AddState(id)
		if lhs.IsFinal(p.left) && rhs.IsFinal(p.right) {
			result.SetFinal(id)
		}
		return id
	}

	result.SetInitial(assign(statePair{left: lhsInitial[0], right: rhsInitial[0]}))

	symbols := result.Symbols()
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		from, _ := translate.get(current)

		for _, c := range symbols {
			left := lhs.Successors(current.left, c)
			if len(left) == 0 {
				continue
			}
			right := rhs.Successors(current.right, c)
			if len(right) == 0 {
				continue
			}
			to := assign(statePair{left: left[0], right: right[0]})
			result.AddTransition(from, c, to)
		}
	}
	return result
}

// HasEmptyIntersectionWith Returns true if no word is accepted by both a and other.
// Both sides are determinized first, as the product construction requires.
func (a *Automaton) HasEmptyIntersectionWith(other *Automaton) bool {
	return CreateIntersection(CreateDeterministic(a), CreateDeterministic(other)).IsLanguageEmpty()
}

// IsIncludedIn Returns true if every word a accepts is accepted by other. other is
// complemented over the union of both alphabets, so a word using a symbol other does not
// know counts as rejected by other.
func (a *Automaton) IsIncludedIn(other *Automaton) bool {
	return CreateIntersection(CreateDeterministic(a), CreateComplement(widen(other, a))).IsLanguageEmpty()
}

// IsEquivalentTo Returns true if a and other accept the same language.
func (a *Automaton) IsEquivalentTo(other *Automaton) bool {
	return a.IsIncludedIn(other) && other.IsIncludedIn(a)
}

// widen Returns a copy of a whose alphabet also holds every symbol of b.
func widen(a, b *Automaton) *Automaton {
	result := a.Clone()
	for c := range b.alphabet {
		result.AddSymbol(c)
	}
	return result
}
