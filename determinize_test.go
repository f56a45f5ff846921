package fa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nthToLastA accepts the words over {a,b} whose n-th letter from the end is a. Its
// minimal DFA has 2^n states.
func nthToLastA(t *testing.T, n int) *Automaton {
	t.Helper()
	states := make([]State, n+1)
	for i := range states {
		states[i] = i
	}
	a := newTestAutomaton(t, "ab", states, []State{0}, []State{n}, tr(0, 'a', 0), tr(0, 'b', 0), tr(0, 'a', 1))
	for i := 1; i < n; i++ {
		a.AddTransition(i, 'a', i+1)
		a.AddTransition(i, 'b', i+1)
	}
	return a
}

func TestCreateDeterministic(t *testing.T) {
	t.Run("already deterministic", func(t *testing.T) {
		a := newTestAutomaton(t, "a", []State{1, 2}, []State{1}, []State{2}, tr(1, 'a', 2))
		d := CreateDeterministic(a)
		assert.Equal(t, a.States(), d.States())
		assert.Equal(t, a.Transitions(), d.Transitions())

		d.RemoveState(2)
		assert.True(t, a.HasState(2))
	})

	t.Run("subset construction", func(t *testing.T) {
		a := nthToLastA(t, 2)
		require.False(t, a.IsDeterministic())

		d := CreateDeterministic(a)
		assert.True(t, d.IsDeterministic())
		assert.Equal(t, 4, d.CountStates())
		assert.Equal(t, []State{0}, d.InitialStates())
		assert.Equal(t, a.Symbols(), d.Symbols())
		assertSameLanguage(t, a, d, "ab", 7)

		// {0} is 0, {0,1} is reached first on a
		assert.True(t, d.HasTransition(0, 'a', 1))
		assert.True(t, d.HasTransition(0, 'b', 0))
	})

	t.Run("several initial states", func(t *testing.T) {
		a := newTestAutomaton(t, "ab", []State{0, 1, 2}, []State{0, 1}, []State{2},
			tr(0, 'a', 2), tr(1, 'b', 2))
		d := CreateDeterministic(a)
		assert.True(t, d.IsDeterministic())
		assert.True(t, d.Match("a"))
		assert.True(t, d.Match("b"))
		assert.False(t, d.Match(""))
		assert.False(t, d.Match("ab"))
	})

	t.Run("no initial state", func(t *testing.T) {
		a := newTestAutomaton(t, "a", []State{0, 1}, nil, []State{1}, tr(0, 'a', 1))
		d := CreateDeterministic(a)
		assert.True(t, d.IsDeterministic())
		assert.Equal(t, 1, d.CountStates())
		assert.True(t, d.IsLanguageEmpty())
	})

	t.Run("initial final", func(t *testing.T) {
		a := newTestAutomaton(t, "a", []State{0, 1}, []State{0, 1}, []State{1}, tr(0, 'a', 0))
		d := CreateDeterministic(a)
		assert.True(t, d.IsFinal(0))
		assert.True(t, d.IsInitial(0))
		assertSameLanguage(t, a, d, "a", 4)
	})

	t.Run("epsilon", func(t *testing.T) {
		a := newTestAutomaton(t, "ab", []State{0, 1, 2}, []State{0}, []State{2},
			tr(0, 'a', 0), tr(0, Epsilon, 1), tr(1, 'b', 1), tr(1, Epsilon, 2))
		d := CreateDeterministic(a)
		assert.True(t, d.IsDeterministic())
		assert.False(t, d.HasEpsilonTransition())
		assertSameLanguage(t, a, d, "ab", 6)
		assert.True(t, d.Match(""))
		assert.True(t, d.Match("aabb"))
		assert.False(t, d.Match("aba"))
	})

	t.Run("source untouched", func(t *testing.T) {
		a := nthToLastA(t, 3)
		before := a.Transitions()
		CreateDeterministic(a)
		assert.Equal(t, before, a.Transitions())
		assert.Equal(t, 4, a.CountStates())
	})

	t.Run("reproducible numbering", func(t *testing.T) {
		a := nthToLastA(t, 3)
		assert.Equal(t, CreateDeterministic(a).Transitions(), CreateDeterministic(a).Transitions())
	})
}

func TestCreateDeterministicLimit(t *testing.T) {
	a := nthToLastA(t, 4)

	d, err := CreateDeterministicLimit(a, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, d.CountStates())

	_, err = CreateDeterministicLimit(a, 15)
	assert.True(t, errors.Is(err, ErrTooComplex))

	d, err = CreateDeterministicLimit(a, 0)
	require.NoError(t, err)
	assertSameLanguage(t, a, d, "ab", 7)
}
