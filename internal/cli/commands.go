package cli

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/bashglob/internal/version"
	"github.com/arthur-debert/bashglob/pkg/bashglob"
	"github.com/arthur-debert/bashglob/pkg/config"
	"github.com/arthur-debert/bashglob/pkg/errors"
	"github.com/arthur-debert/bashglob/pkg/logging"
)

// ErrNoMatch signals exit status 1 without an error message, the grep
// convention for "ran fine, nothing matched".
var ErrNoMatch = stderrors.New("no match")

// optionFlags collects the per-invocation flag values shared by the
// match and filter commands.
type optionFlags struct {
	dotglob    bool
	extglob    bool
	failglob   bool
	globstar   bool
	nocaseglob bool
	nullglob   bool
	strict     bool
	cwd        string
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.dotglob, "dot", false, "Wildcards match leading dots")
	cmd.Flags().BoolVar(&f.extglob, "extglob", false, "Enable extended glob operators (inferred from the pattern when omitted)")
	cmd.Flags().BoolVar(&f.failglob, "failglob", false, "Treat failed expansion as an error")
	cmd.Flags().BoolVar(&f.globstar, "globstar", false, "** matches recursively (inferred from the pattern when omitted)")
	cmd.Flags().BoolVar(&f.nocaseglob, "nocase", false, "Case-insensitive matching")
	cmd.Flags().BoolVar(&f.nullglob, "nullglob", false, "Unmatched pattern expands to nothing")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Fail on shell-reported errors instead of treating them as non-matches")
	cmd.Flags().StringVar(&f.cwd, "cwd", "", "Working directory for the bash process")
}

// options layers the flags over the configuration defaults. Flags only
// ever switch toggles on; a config default cannot be unset per
// invocation.
func (f *optionFlags) options(cfg *config.Config) *bashglob.MatchOptions {
	opts := cfg.Options()
	opts.Dotglob = opts.Dotglob || f.dotglob
	opts.Extglob = opts.Extglob || f.extglob
	opts.Failglob = opts.Failglob || f.failglob
	opts.Globstar = opts.Globstar || f.globstar
	opts.Nocaseglob = opts.Nocaseglob || f.nocaseglob
	opts.Nullglob = opts.Nullglob || f.nullglob
	opts.StrictErrors = opts.StrictErrors || f.strict
	if f.cwd != "" {
		opts.Cwd = f.cwd
	}
	return opts
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "bashglob",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newFilterCmd())

	return rootCmd
}

func newMatchCmd() *cobra.Command {
	var (
		flags optionFlags
		quiet bool
	)

	cmd := &cobra.Command{
		Use:     "match <pattern> <string>...",
		Short:   MsgMatchShort,
		Long:    MsgMatchLong,
		Example: MsgMatchExample,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load("")
			if err != nil {
				return err
			}

			pattern := args[0]
			opts := flags.options(cfg)

			anyMatched := false
			for _, subject := range args[1:] {
				ok, err := bashglob.MatchContext(cmd.Context(), subject, pattern, opts)
				if err != nil {
					return err
				}
				if ok {
					anyMatched = true
				}
				if !quiet {
					if ok {
						fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styled(matchStyle, "match"), subject)
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styled(noMatchStyle, "no match"), subject)
					}
				}
			}

			if !anyMatched {
				return ErrNoMatch
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress output, report via exit status only")

	return cmd
}

func newFilterCmd() *cobra.Command {
	var flags optionFlags

	cmd := &cobra.Command{
		Use:     "filter <pattern> [strings...]",
		Short:   MsgFilterShort,
		Long:    MsgFilterLong,
		Example: MsgFilterExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load("")
			if err != nil {
				return err
			}

			pattern := args[0]
			opts := flags.options(cfg)

			subjects := args[1:]
			if len(subjects) == 0 {
				subjects, err = readLines(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, "failed to read stdin")
				}
			}

			matched, err := bashglob.MatchAllContext(cmd.Context(), subjects, pattern, opts)
			if err != nil {
				return err
			}

			for _, s := range matched {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}

			if len(matched) == 0 {
				return ErrNoMatch
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
