package main

import (
	"github.com/bjaus/tinyfmt"
	"github.com/spf13/cobra"
)

// Set by the linker at release time.
var (
	version = "dev"
	commit  = "none"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tinyfmt.Write(cmd.OutOrStdout(), "tinyfmt version %s (commit: %s)\n", version, commit)
		},
	}
}
