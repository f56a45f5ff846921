package fa

// TransitionsOf Returns the states reachable from any member of states by exactly one
// transition labeled label. The result is empty when label is not in the alphabet, so
// epsilon edges are never followed here.
func (a *Automaton) TransitionsOf(states *StateSet, label Symbol) *StateSet {
	result := NewStateSet()
	if !a.HasSymbol(label) {
		return result
	}
	for from := range states.All() {
		for to := range a.transitions[from][label] {
			result.Add(to)
		}
	}
	return result
}

// EpsilonClosure Returns states together with every state reachable from them through
// epsilon transitions only.
func (a *Automaton) EpsilonClosure(states *StateSet) *StateSet {
	closure := NewStateSet()
	closure.AddAll(states)

	workList := states.GetArray()
	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		for to := range a.transitions[s][Epsilon] {
			if !closure.Contains(to) {
				closure.Add(to)
				workList = append(workList, to)
			}
		}
	}
	return closure
}

// initialSet Returns the epsilon closure of the initial states.
func (a *Automaton) initialSet() *StateSet {
	return a.EpsilonClosure(NewStateSet(a.InitialStates()...))
}

// step Moves states by label and closes the result under epsilon transitions.
func (a *Automaton) step(states *StateSet, label Symbol) *StateSet {
	return a.EpsilonClosure(a.TransitionsOf(states, label))
}

// ReadString Returns the set of states reached after reading word from the initial states.
// Epsilon transitions are followed before the first symbol and after each one; an
// automaton without epsilon transitions is simply stepped symbol by symbol.
func (a *Automaton) ReadString(word string) *StateSet {
	current := a.initialSet()
	for i := 0; i < len(word); i++ {
		if current.IsEmpty() {
			break
		}
		current = a.step(current, word[i])
	}
	return current
}

// Match Returns true if reading word ends in at least one final state.
func (a *Automaton) Match(word string) bool {
	return a.containsFinal(a.ReadString(word))
}

func (a *Automaton) containsFinal(states *StateSet) bool {
	for s := range states.All() {
		if a.IsFinal(s) {
			return true
		}
	}
	return false
}

// Run Returns true if a accepts s.
func Run(a *Automaton, s string) bool {
	return a.Match(s)
}
