package fa

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		a    *Automaton
	}{
		{"ends_with_a", MakeEndsWith("ab", 'a')},
		{"epsilon_unreachable", newTestAutomaton(t, "ab", []State{0, 1, 2}, []State{0}, []State{1},
			tr(0, 'a', 0), tr(0, 'a', 1), tr(0, Epsilon, 1), tr(2, 'b', 1))},
		{"empty", NewAutomaton()},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Format(&buf, tt.a))
			g.Assert(t, tt.name, buf.Bytes())
			assert.Equal(t, buf.String(), tt.a.String())
		})
	}
}
