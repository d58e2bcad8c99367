package main

import (
	"github.com/bjaus/tinyfmt"
	"github.com/bjaus/tinyfmt/internal/logging"
	"github.com/bjaus/tinyfmt/internal/values"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FORMAT [ARG...]",
		Short: "Validate a format string against arguments without printing it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := args[0]
			vals := values.Parse(args[1:])
			if err := tinyfmt.Validate(format, vals...); err != nil {
				logging.Get("check").Info().Err(err).Str("format", format).Msg("Format check failed")
				return report(cmd.OutOrStdout(), format, err)
			}
			return tinyfmt.Write(cmd.OutOrStdout(), "ok: %d argument(s)\n", len(vals))
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
