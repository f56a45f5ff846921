package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/geange/fa"
	"github.com/geange/fa/internal/config"
	"github.com/geange/fa/internal/faio"
)

// NewShowCommand creates the show command.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print an automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(args[0])
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), a)
		},
	}
}

// NewInfoCommand creates the info command.
func NewInfoCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print the structural properties of an automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(args[0])
			if err != nil {
				return err
			}
			return writeInfo(cmd.OutOrStdout(), a)
		},
	}
}

func writeInfo(w io.Writer, a *fa.Automaton) error {
	_, err := fmt.Fprintf(w,
		"symbols: %d\nstates: %d\ntransitions: %d\nvalid: %t\ndeterministic: %t\ncomplete: %t\nepsilon: %t\nempty: %t\n",
		a.CountSymbols(), a.CountStates(), a.CountTransitions(),
		a.IsValid(), a.IsDeterministic(), a.IsComplete(), a.HasEpsilonTransition(), a.IsLanguageEmpty())
	return err
}

// NewMatchCommand creates the match command.
func NewMatchCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match <file> <word>...",
		Short: "Report whether each word is accepted",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(args[0])
			if err != nil {
				return err
			}
			for _, word := range args[1:] {
				verdict := "rejected"
				if a.Match(word) {
					verdict = "accepted"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%q: %s\n", word, verdict); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

type transformCommand struct {
	use   string
	short string
	apply func(opts *RootOptions, a *fa.Automaton) (*fa.Automaton, error)
}

var transformCommands = []transformCommand{
	{
		use:   "determinize",
		short: "Print an equivalent deterministic automaton",
		apply: func(opts *RootOptions, a *fa.Automaton) (*fa.Automaton, error) {
			return opts.determinize(a)
		},
	},
	{
		use:   "complete",
		short: "Print an equivalent complete automaton",
		apply: func(_ *RootOptions, a *fa.Automaton) (*fa.Automaton, error) {
			return fa.CreateComplete(a), nil
		},
	},
	{
		use:   "complement",
		short: "Print an automaton accepting the complement language",
		apply: func(opts *RootOptions, a *fa.Automaton) (*fa.Automaton, error) {
			d, err := opts.determinize(a)
			if err != nil {
				return nil, err
			}
			return fa.CreateComplement(d), nil
		},
	},
	{
		use:   "mirror",
		short: "Print an automaton accepting the reversed language",
		apply: func(_ *RootOptions, a *fa.Automaton) (*fa.Automaton, error) {
			return fa.CreateMirror(a), nil
		},
	},
	{
		use:   "minimize",
		short: "Print the minimal deterministic automaton",
		apply: func(opts *RootOptions, a *fa.Automaton) (*fa.Automaton, error) {
			d, err := opts.determinize(a)
			if err != nil {
				return nil, err
			}
			if opts.cfg.Minimizer == config.MinimizerBrzozowski {
				return fa.CreateMinimalBrzozowski(d), nil
			}
			return fa.CreateMinimalMoore(d), nil
		},
	},
	{
		use:   "prune",
		short: "Remove states that lie on no initial to final path",
		apply: func(_ *RootOptions, a *fa.Automaton) (*fa.Automaton, error) {
			result := a.Clone()
			result.RemoveNonAccessibleStates()
			result.RemoveNonCoAccessibleStates()
			return result, nil
		},
	},
}

func newTransformCommand(opts *RootOptions, tc transformCommand) *cobra.Command {
	return &cobra.Command{
		Use:   tc.use + " <file>",
		Short: tc.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			result, err := tc.apply(opts, a)
			if err != nil {
				return err
			}
			opts.logger.Debug("transformed automaton",
				"command", tc.use,
				"states_in", a.CountStates(),
				"states_out", result.CountStates(),
				"elapsed", time.Since(start))
			return opts.write(cmd.OutOrStdout(), result)
		},
	}
}

// NewIntersectCommand creates the intersect command.
func NewIntersectCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "intersect <file> <file>",
		Short: "Print the product automaton of two automata",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// the product follows a single successor per side
			lhs, rhs, err := opts.loadDeterministicPair(args)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), fa.CreateIntersection(lhs, rhs))
		},
	}
}

// NewIncludeCommand creates the include command.
func NewIncludeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "include <file> <file>",
		Short: "Report whether the first language is included in the second",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lhs, rhs, err := opts.loadDeterministicPair(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), lhs.IsIncludedIn(rhs))
			return err
		},
	}
}

// NewEquivalentCommand creates the equivalent command.
func NewEquivalentCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "equivalent <file> <file>",
		Short: "Report whether two automata accept the same language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lhs, rhs, err := opts.loadDeterministicPair(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), lhs.IsEquivalentTo(rhs))
			return err
		},
	}
}

func (o *RootOptions) load(path string) (*fa.Automaton, error) {
	a, err := faio.Load(path)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("loaded automaton",
		"path", path,
		"states", a.CountStates(),
		"transitions", a.CountTransitions())
	if !a.IsValid() {
		o.logger.Warn("automaton has an empty alphabet or no states", "path", path)
	}
	return a, nil
}

func (o *RootOptions) loadPair(args []string) (*fa.Automaton, *fa.Automaton, error) {
	lhs, err := o.load(args[0])
	if err != nil {
		return nil, nil, err
	}
	rhs, err := o.load(args[1])
	if err != nil {
		return nil, nil, err
	}
	return lhs, rhs, nil
}

// loadDeterministicPair Loads both operands and determinizes them within the state
// budget.
func (o *RootOptions) loadDeterministicPair(args []string) (*fa.Automaton, *fa.Automaton, error) {
	lhs, rhs, err := o.loadPair(args)
	if err != nil {
		return nil, nil, err
	}
	if lhs, err = o.determinize(lhs); err != nil {
		return nil, nil, err
	}
	if rhs, err = o.determinize(rhs); err != nil {
		return nil, nil, err
	}
	return lhs, rhs, nil
}

func (o *RootOptions) determinize(a *fa.Automaton) (*fa.Automaton, error) {
	d, err := fa.CreateDeterministicLimit(a, o.cfg.MaxStates)
	if err != nil {
		o.logger.Error("determinization aborted", "error", err, "max_states", o.cfg.MaxStates)
		return nil, err
	}
	return d, nil
}

func (o *RootOptions) write(w io.Writer, a *fa.Automaton) error {
	if o.cfg.Output == config.OutputYAML {
		return faio.Encode(w, a)
	}
	return fa.Format(w, a)
}
