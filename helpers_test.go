package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestAutomaton builds an automaton over alphabet with the given states, initial and
// final states, and transitions.
func newTestAutomaton(t *testing.T, alphabet string, states, initial, final []State, transitions ...Transition) *Automaton {
	t.Helper()
	a := NewAutomaton()
	for i := 0; i < len(alphabet); i++ {
		assert.True(t, a.AddSymbol(alphabet[i]))
	}
	for _, s := range states {
		assert.True(t, a.AddState(s))
	}
	for _, s := range initial {
		a.SetInitial(s)
	}
	for _, s := range final {
		a.SetFinal(s)
	}
	for _, tr := range transitions {
		assert.True(t, a.AddTransition(tr.From, tr.Label, tr.To))
	}
	return a
}

func tr(from State, label Symbol, to State) Transition {
	return Transition{From: from, Label: label, To: to}
}

// words Returns every word over alphabet of length at most n.
func words(alphabet string, n int) []string {
	result := []string{""}
	layer := []string{""}
	for i := 0; i < n; i++ {
		next := make([]string, 0, len(layer)*len(alphabet))
		for _, w := range layer {
			for j := 0; j < len(alphabet); j++ {
				next = append(next, w+string(alphabet[j]))
			}
		}
		result = append(result, next...)
		layer = next
	}
	return result
}

// assertSameLanguage checks a and b agree on every word of length at most n.
func assertSameLanguage(t *testing.T, a, b *Automaton, alphabet string, n int) {
	t.Helper()
	for _, w := range words(alphabet, n) {
		assert.Equalf(t, a.Match(w), b.Match(w), "word %q", w)
	}
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
