package main

import (
	"errors"
	"slices"

	"github.com/bjaus/tinyfmt"
	"github.com/bjaus/tinyfmt/internal/logging"
	"github.com/bjaus/tinyfmt/internal/values"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errValuesWithArgs = errors.New("arguments cannot be combined with --values")

type options struct {
	verbosity int
	values    string
	noNewline bool
}

// NewRootCmd builds the tinyfmt command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "tinyfmt FORMAT [ARG...]",
		Short: "Format arguments with a printf-style format string",
		Long: `tinyfmt renders its arguments through a C printf-style format string.

Arguments that look like integers, floats or booleans are passed as such;
everything else is a string. With --values, records are read from a YAML or
JSON list and each record is printed on its own line.`,
		Args: cobra.MinimumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(opts.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// Flags end at the format string so that arguments such as -5 reach it.
	cmd.Flags().SetInterspersed(false)
	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	cmd.Flags().StringVar(&opts.values, "values", "", "read records from a YAML or JSON file (- for stdin)")
	cmd.Flags().BoolVarP(&opts.noNewline, "no-newline", "n", false, "do not print the trailing newline")

	cmd.AddCommand(newCheckCmd(), newVersionCmd())
	return cmd
}

func runFormat(cmd *cobra.Command, opts *options, args []string) error {
	format, words := args[0], args[1:]
	logger := logging.Get("format")
	sink := tinyfmt.NewSink(cmd.OutOrStdout())

	if opts.values != "" {
		if len(words) > 0 {
			return errValuesWithArgs
		}
		records, err := values.LoadFile(opts.values)
		if err != nil {
			return err
		}
		logger.Debug().Str("file", opts.values).Int("records", len(records)).Msg("Loaded values")
		if err := tinyfmt.WriteIter(sink, format, slices.Values(records)); err != nil {
			return report(cmd.ErrOrStderr(), format, err)
		}
		return nil
	}

	vals := values.Parse(words)
	logger.Debug().Int("args", len(vals)).Msg("Formatting")
	if err := tinyfmt.Write(sink, format, vals...); err != nil {
		return report(cmd.ErrOrStderr(), format, err)
	}
	if opts.noNewline {
		return nil
	}
	return sink.WriteByte('\n')
}
