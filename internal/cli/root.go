package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/geange/fa/internal/config"
	"github.com/geange/fa/internal/logging"
)

// RootOptions holds global flags for all commands, merged over the config file.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	MaxStates  int
	Minimizer  string
	Output     string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCommand creates the root command of fatool.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fatool",
		Short: "fatool - finite automaton toolkit",
		Long: `Inspect and transform finite automata described in YAML files.

Automata can be determinized, completed, complemented, mirrored, minimized,
pruned, intersected and compared by language inclusion.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().IntVar(&opts.MaxStates, "max-states", 0, "state budget for determinization, 0 for none")
	cmd.PersistentFlags().StringVar(&opts.Minimizer, "minimizer", config.MinimizerMoore, "minimization algorithm (moore|brzozowski)")
	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", config.OutputText, "output format (text|yaml)")

	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewMatchCommand(opts))
	for _, tc := range transformCommands {
		cmd.AddCommand(newTransformCommand(opts, tc))
	}
	cmd.AddCommand(NewIntersectCommand(opts))
	cmd.AddCommand(NewIncludeCommand(opts))
	cmd.AddCommand(NewEquivalentCommand(opts))

	return cmd
}

// setup loads the config file and lets explicitly set flags override it.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if flags.Changed("max-states") {
		cfg.MaxStates = o.MaxStates
	}
	if flags.Changed("minimizer") {
		cfg.Minimizer = o.Minimizer
	}
	if flags.Changed("output") {
		cfg.Output = o.Output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	o.cfg = cfg
	o.logger = logging.New(cmd.ErrOrStderr(), level)
	return nil
}
