package fa

// Automata Factory for small, common automata over a given alphabet. The alphabet is a
// string of symbols; characters that are not printable are skipped.
type Automata struct {
}

var defaultAutomata = &Automata{}

func withAlphabet(alphabet string) *Automaton {
	a := NewAutomaton()
	for i := 0; i < len(alphabet); i++ {
		a.AddSymbol(alphabet[i])
	}
	return a
}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (*Automata) MakeEmpty(alphabet string) *Automaton {
	a := withAlphabet(alphabet)
	a.AddState(0)
	a.SetInitial(0)
	return a
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabet string) *Automaton {
	a := withAlphabet(alphabet)
	a.AddState(0)
	a.SetInitial(0)
	a.SetFinal(0)
	return a
}

// MakeAnyString
// Returns a new (deterministic, complete) automaton that accepts all strings.
func (*Automata) MakeAnyString(alphabet string) *Automaton {
	a := defaultAutomata.MakeEmptyString(alphabet)
	for _, c := range a.Symbols() {
		a.AddTransition(0, c, 0)
	}
	return a
}

// MakeString
// Returns a new (deterministic) automaton that accepts exactly word. Symbols of word are
// added to the alphabet when missing.
func (*Automata) MakeString(alphabet, word string) *Automaton {
	a := withAlphabet(alphabet + word)
	a.AddState(0)
	a.SetInitial(0)
	for i := 0; i < len(word); i++ {
		a.AddState(i + 1)
		a.AddTransition(i, word[i], i+1)
	}
	a.SetFinal(len(word))
	return a
}

// MakeEndsWith
// Returns a new (deterministic, complete) automaton accepting the strings ending in c.
func (*Automata) MakeEndsWith(alphabet string, c Symbol) *Automaton {
	a := withAlphabet(alphabet)
	a.AddSymbol(c)
	a.AddState(0)
	a.AddState(1)
	a.SetInitial(0)
	a.SetFinal(1)
	for _, s := range a.States() {
		for _, d := range a.Symbols() {
			if d == c {
				a.AddTransition(s, d, 1)
			} else {
				a.AddTransition(s, d, 0)
			}
		}
	}
	return a
}

func MakeEmpty(alphabet string) *Automaton {
	return defaultAutomata.MakeEmpty(alphabet)
}

func MakeEmptyString(alphabet string) *Automaton {
	return defaultAutomata.MakeEmptyString(alphabet)
}

func MakeAnyString(alphabet string) *Automaton {
	return defaultAutomata.MakeAnyString(alphabet)
}

func MakeString(alphabet, word string) *Automaton {
	return defaultAutomata.MakeString(alphabet, word)
}

func MakeEndsWith(alphabet string, c Symbol) *Automaton {
	return defaultAutomata.MakeEndsWith(alphabet, c)
}
