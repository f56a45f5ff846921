package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutomaton_TransitionsOf(t *testing.T) {
	a := newTestAutomaton(t, "ab", []State{1, 2, 3, 4}, []State{1}, []State{4},
		tr(1, 'a', 2), tr(1, 'a', 3), tr(2, 'a', 4), tr(3, 'b', 4), tr(1, Epsilon, 4))

	assert.Equal(t, []int{2, 3}, a.TransitionsOf(NewStateSet(1), 'a').GetArray())
	assert.Equal(t, []int{4}, a.TransitionsOf(NewStateSet(2, 3), 'a').GetArray())
	assert.Equal(t, []int{4}, a.TransitionsOf(NewStateSet(2, 3), 'b').GetArray())
	assert.True(t, a.TransitionsOf(NewStateSet(4), 'a').IsEmpty())
	assert.True(t, a.TransitionsOf(NewStateSet(1), 'c').IsEmpty())
	assert.True(t, a.TransitionsOf(NewStateSet(1), Epsilon).IsEmpty())
	assert.True(t, a.TransitionsOf(NewStateSet(), 'a').IsEmpty())
}

func TestAutomaton_ReadString(t *testing.T) {
	t.Run("single path", func(t *testing.T) {
		a := newTestAutomaton(t, "ab", []State{1, 2, 3}, []State{1}, []State{3},
			tr(1, 'a', 2), tr(1, 'b', 3), tr(2, 'a', 2), tr(2, 'b', 3))
		assert.Equal(t, []int{3}, a.ReadString("ab").GetArray())
		assert.Equal(t, []int{1}, a.ReadString("").GetArray())
	})

	t.Run("two final states", func(t *testing.T) {
		a := newTestAutomaton(t, "ab", []State{1, 2, 3, 4, 5}, []State{1}, []State{3, 5},
			tr(1, 'a', 2), tr(1, 'b', 3), tr(2, 'a', 2), tr(2, 'b', 3), tr(1, 'a', 4), tr(4, 'b', 5))
		assert.Equal(t, []int{3, 5}, a.ReadString("ab").GetArray())
	})

	t.Run("non final result", func(t *testing.T) {
		a := newTestAutomaton(t, "abc", []State{1, 2, 3, 4, 5}, []State{1}, []State{3, 5},
			tr(1, 'c', 2), tr(1, 'b', 3), tr(2, 'a', 2), tr(2, 'b', 3), tr(1, 'a', 4), tr(4, 'b', 5))
		assert.Equal(t, []int{2}, a.ReadString("c").GetArray())
	})

	t.Run("no transition", func(t *testing.T) {
		a := newTestAutomaton(t, "abc", []State{1, 2}, []State{1}, []State{2}, tr(1, 'a', 2))
		assert.True(t, a.ReadString("c").IsEmpty())
		assert.True(t, a.ReadString("ab").IsEmpty())
		assert.True(t, a.ReadString("z").IsEmpty())
	})

	t.Run("no initial state", func(t *testing.T) {
		a := newTestAutomaton(t, "a", []State{1}, nil, []State{1}, tr(1, 'a', 1))
		assert.True(t, a.ReadString("").IsEmpty())
		assert.False(t, a.Match("a"))
	})

	t.Run("epsilon closure", func(t *testing.T) {
		a := newTestAutomaton(t, "ab", []State{0, 1, 2, 3}, []State{0}, []State{3},
			tr(0, Epsilon, 1), tr(1, 'a', 2), tr(2, Epsilon, 3), tr(3, Epsilon, 1))
		assert.Equal(t, []int{0, 1}, a.ReadString("").GetArray())
		assert.Equal(t, []int{1, 2, 3}, a.ReadString("a").GetArray())
		assert.Equal(t, []int{1, 2, 3}, a.ReadString("aa").GetArray())
		assert.True(t, a.ReadString("b").IsEmpty())
	})
}

func TestAutomaton_Match(t *testing.T) {
	t.Run("one transition", func(t *testing.T) {
		a := newTestAutomaton(t, "a", []State{1, 2}, []State{1}, []State{2}, tr(1, 'a', 2))
		assert.True(t, a.Match("a"))
		assert.False(t, a.Match(""))
		assert.False(t, a.Match("aa"))
		assert.False(t, a.IsLanguageEmpty())
		assert.True(t, Run(a, "a"))
	})

	t.Run("initial and final", func(t *testing.T) {
		a := newTestAutomaton(t, "a", []State{0}, []State{0}, []State{0})
		assert.True(t, a.Match(""))
		assert.False(t, a.Match("a"))
	})

	t.Run("non deterministic", func(t *testing.T) {
		// words over {a,b} whose second to last letter is a
		a := newTestAutomaton(t, "ab", []State{0, 1, 2}, []State{0}, []State{2},
			tr(0, 'a', 0), tr(0, 'b', 0), tr(0, 'a', 1), tr(1, 'a', 2), tr(1, 'b', 2))
		for _, w := range words("ab", 5) {
			want := len(w) >= 2 && w[len(w)-2] == 'a'
			assert.Equalf(t, want, a.Match(w), "word %q", w)
		}
	})

	t.Run("epsilon", func(t *testing.T) {
		// a* followed by b*, with an epsilon between the two loops
		a := newTestAutomaton(t, "ab", []State{0, 1}, []State{0}, []State{1},
			tr(0, 'a', 0), tr(0, Epsilon, 1), tr(1, 'b', 1))
		assert.True(t, a.Match(""))
		assert.True(t, a.Match("aab"))
		assert.True(t, a.Match("bb"))
		assert.False(t, a.Match("ba"))
	})
}
