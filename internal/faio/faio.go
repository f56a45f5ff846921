// Package faio reads and writes automaton definition files in YAML.
//
// A definition lists the alphabet as a string, the states with their initial and final
// flags, and the transitions. An empty transition label denotes an epsilon transition.
//
//	alphabet: "ab"
//	states:
//	  - {id: 0, initial: true}
//	  - {id: 1, final: true}
//	transitions:
//	  - {from: 0, label: "a", to: 1}
package faio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/geange/fa"
)

var (
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrInvalidState  = errors.New("invalid state")
	ErrUnknownState  = errors.New("unknown state")
	ErrDuplicate     = errors.New("duplicate definition")
)

// Definition The YAML document of one automaton.
type Definition struct {
	Alphabet    string          `yaml:"alphabet"`
	States      []StateDef      `yaml:"states"`
	Transitions []TransitionDef `yaml:"transitions,omitempty"`
}

type StateDef struct {
	ID      int  `yaml:"id"`
	Initial bool `yaml:"initial,omitempty"`
	Final   bool `yaml:"final,omitempty"`
}

type TransitionDef struct {
	From  int    `yaml:"from"`
	Label string `yaml:"label"`
	To    int    `yaml:"to"`
}

// Load Reads the definition stored at path.
func Load(path string) (*fa.Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Decode Parses one YAML definition and builds the automaton it describes.
func Decode(r io.Reader) (*fa.Automaton, error) {
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	return def.Build()
}

// Build Applies the definition to a fresh automaton. Every element the automaton rejects
// is reported with the reason it was rejected.
func (d *Definition) Build() (*fa.Automaton, error) {
	a := fa.NewAutomaton()

	for i := 0; i < len(d.Alphabet); i++ {
		c := d.Alphabet[i]
		if a.HasSymbol(c) {
			return nil, fmt.Errorf("symbol %q: %w", c, ErrDuplicate)
		}
		if !a.AddSymbol(c) {
			return nil, fmt.Errorf("symbol %q: %w", c, ErrInvalidSymbol)
		}
	}

	for _, s := range d.States {
		if s.ID < 0 {
			return nil, fmt.Errorf("state %d: %w", s.ID, ErrInvalidState)
		}
		if !a.AddState(s.ID) {
			return nil, fmt.Errorf("state %d: %w", s.ID, ErrDuplicate)
		}
		if s.Initial {
			a.SetInitial(s.ID)
		}
		if s.Final {
			a.SetFinal(s.ID)
		}
	}

	for _, t := range d.Transitions {
		label, err := parseLabel(t.Label)
		if err != nil {
			return nil, err
		}
		switch {
		case !a.HasState(t.From):
			return nil, fmt.Errorf("transition from %d: %w", t.From, ErrUnknownState)
		case !a.HasState(t.To):
			return nil, fmt.Errorf("transition to %d: %w", t.To, ErrUnknownState)
		case label != fa.Epsilon && !a.HasSymbol(label):
			return nil, fmt.Errorf("transition label %q not in alphabet: %w", t.Label, ErrInvalidSymbol)
		}
		if !a.AddTransition(t.From, label, t.To) {
			return nil, fmt.Errorf("transition (%d, %q, %d): %w", t.From, t.Label, t.To, ErrDuplicate)
		}
	}
	return a, nil
}

func parseLabel(label string) (fa.Symbol, error) {
	switch len(label) {
	case 0:
		return fa.Epsilon, nil
	case 1:
		return label[0], nil
	}
	return 0, fmt.Errorf("label %q: %w", label, ErrInvalidSymbol)
}

// FromAutomaton Returns the definition of a, with states and transitions in ascending order.
func FromAutomaton(a *fa.Automaton) *Definition {
	def := &Definition{
		Alphabet: string(a.Symbols()),
		States:   make([]StateDef, 0, a.CountStates()),
	}
	for _, s := range a.States() {
		def.States = append(def.States, StateDef{
			ID:      s,
			Initial: a.IsInitial(s),
			Final:   a.IsFinal(s),
		})
	}
	for _, t := range a.Transitions() {
		label := ""
		if t.Label != fa.Epsilon {
			label = string(t.Label)
		}
		def.Transitions = append(def.Transitions, TransitionDef{From: t.From, Label: label, To: t.To})
	}
	return def
}

// Encode Writes the YAML definition of a to w.
func Encode(w io.Writer, a *fa.Automaton) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(FromAutomaton(a)); err != nil {
		return fmt.Errorf("encode definition: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
