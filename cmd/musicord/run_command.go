package main

import (
	"github.com/spf13/cobra"

	"musicord/internal/daemonrun"
)

func newRunCommand(ctx *commandContext, logLevel *string, jsonLogs *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the presence daemon in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts := daemonrun.Options{}
			if logLevel != nil {
				opts.LogLevel = *logLevel
			}
			if jsonLogs != nil {
				opts.JSONLogs = *jsonLogs
			}
			return daemonrun.Run(cmd.Context(), cfg, opts)
		},
	}
}
