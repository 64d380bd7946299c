package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/wellness-monitor/internal/config"
	"github.com/blaisecz/wellness-monitor/internal/langfuse"
	"github.com/spf13/cobra"
)

func newLangfuseCheckCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "langfuse-check",
		Short: "Send a test trace to the configured Langfuse project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			lfCfg := langfuse.Config{
				BaseURL:     cfg.LangfuseBaseURL,
				PublicKey:   cfg.LangfusePublicKey,
				SecretKey:   cfg.LangfuseSecretKey,
				Environment: cfg.LangfuseEnv,
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Base URL:    %s\n", lfCfg.BaseURL)
			fmt.Fprintf(out, "Public Key:  %s\n", maskKey(lfCfg.PublicKey))
			fmt.Fprintf(out, "Secret Key:  %s\n", maskKey(lfCfg.SecretKey))
			fmt.Fprintf(out, "Environment: %s\n", lfCfg.Environment)

			client := langfuse.NewClient(lfCfg, root.consoleLogger())
			if !client.IsEnabled() {
				return errors.New("langfuse is not configured: set LANGFUSE_BASE_URL, LANGFUSE_PUBLIC_KEY and LANGFUSE_SECRET_KEY")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
				DeviceID: "wellnessctl",
				Name:     "connectivity-check",
				Input:    map[string]any{"time": time.Now().UTC().Format(time.RFC3339)},
				Output:   map[string]any{"status": "ok"},
				Tags:     []string{"check"},
			})
			if err != nil {
				return fmt.Errorf("create trace: %w", err)
			}

			fmt.Fprintf(out, "Trace created: %s\n", traceID)
			return nil
		},
	}
}

func maskKey(key string) string {
	switch {
	case key == "":
		return "(empty)"
	case len(key) < 8:
		return "***"
	default:
		return key[:8] + "..."
	}
}
