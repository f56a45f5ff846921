package fa

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Format Writes a human readable dump of a to w: the alphabet, the initial and final
// states, then the outgoing transitions of every state grouped by label. States that no
// initial state reaches are flagged as unreachable.
func Format(w io.Writer, a *Automaton) error {
	bw := bufio.NewWriter(w)

	symbols := make([]string, 0, a.CountSymbols())
	for _, c := range a.Symbols() {
		symbols = append(symbols, string(c))
	}
	fmt.Fprintf(bw, "Alphabet: {%s}\n", strings.Join(symbols, " "))
	fmt.Fprintf(bw, "Initial states: %s\n", NewStateSet(a.InitialStates()...))
	fmt.Fprintf(bw, "Final states: %s\n", NewStateSet(a.FinalStates()...))
	fmt.Fprintln(bw, "Transitions:")

	accessible := a.AccessibleStates()
	for _, s := range a.States() {
		if accessible.Contains(s) {
			fmt.Fprintf(bw, "  state %d:\n", s)
		} else {
			fmt.Fprintf(bw, "  state %d (unreachable):\n", s)
		}
		labels := append(a.Symbols(), Epsilon)
		for _, c := range labels {
			dests := a.Successors(s, c)
			if len(dests) == 0 {
				continue
			}
			fmt.Fprintf(bw, "    %s -> %s\n", labelString(c), NewStateSet(dests...))
		}
	}
	return bw.Flush()
}

func labelString(c Symbol) string {
	if c == Epsilon {
		return "eps"
	}
	return string(c)
}

func (a *Automaton) String() string {
	var sb strings.Builder
	_ = Format(&sb, a)
	return sb.String()
}
