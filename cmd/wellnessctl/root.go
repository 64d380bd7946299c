package main

import (
	"encoding/json"
	"io"

	"github.com/blaisecz/wellness-monitor/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "wellnessctl",
		Short:        "Analyse recorded sensor data and manage the wellness monitor",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newAnalyzeCmd(opts),
		newReplayCmd(),
		newSeedCmd(opts),
		newLangfuseCheckCmd(opts),
	)
	return cmd
}

// consoleLogger logs to stderr so command output on stdout stays parseable.
func (o *rootOptions) consoleLogger() *zap.Logger {
	log, err := logger.NewLogger(o.logLevel, "console", "wellnessctl")
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
