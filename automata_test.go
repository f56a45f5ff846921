package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutomata(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		a := MakeEmpty("ab")
		assert.True(t, a.IsDeterministic())
		assert.True(t, a.IsLanguageEmpty())
		assert.Equal(t, []Symbol{'a', 'b'}, a.Symbols())
	})

	t.Run("empty string", func(t *testing.T) {
		a := MakeEmptyString("ab")
		assert.True(t, a.Match(""))
		assert.False(t, a.Match("a"))
	})

	t.Run("any string", func(t *testing.T) {
		a := MakeAnyString("ab")
		assert.True(t, a.IsComplete())
		for _, w := range words("ab", 4) {
			assert.True(t, a.Match(w))
		}
		assert.False(t, a.Match("c"))
	})

	t.Run("string", func(t *testing.T) {
		a := MakeString("a", "abc")
		assert.Equal(t, []Symbol{'a', 'b', 'c'}, a.Symbols())
		assert.Equal(t, 4, a.CountStates())
		assert.True(t, a.IsDeterministic())
		for _, w := range words("abc", 4) {
			assert.Equalf(t, w == "abc", a.Match(w), "word %q", w)
		}
	})

	t.Run("ends with", func(t *testing.T) {
		a := MakeEndsWith("a", 'b')
		assert.True(t, a.IsComplete())
		assert.True(t, a.IsDeterministic())
		for _, w := range words("ab", 4) {
			assert.Equalf(t, len(w) > 0 && w[len(w)-1] == 'b', a.Match(w), "word %q", w)
		}
	})

	t.Run("non printable alphabet symbols are skipped", func(t *testing.T) {
		a := MakeAnyString("a b\n")
		assert.Equal(t, []Symbol{'a', 'b'}, a.Symbols())
	})
}
