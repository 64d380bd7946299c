package main

import (
	"fmt"

	"github.com/blaisecz/wellness-monitor/internal/sensors"
	"github.com/blaisecz/wellness-monitor/internal/wellness"
	"github.com/spf13/cobra"
)

func newReplayCmd() *cobra.Command {
	var file, thresholdsPath string

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Print every reading of a recording with its state, then the sleep analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			thresholds, err := wellness.LoadThresholds(thresholdsPath)
			if err != nil {
				return err
			}

			records, err := sensors.NewFileSource(file).Load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintf(out, "no readings in %s\n", file)
				return nil
			}

			readings := wellness.NormalizeAll(records)
			for i, r := range readings {
				ts := r.Timestamp
				if ts == "" {
					ts = "-"
				}
				fmt.Fprintf(out, "[%4d] %-19s HR=%5.1f Lux=%7.1f Motion=%-3s -> %s\n",
					i+1, ts, r.HR, r.Lux, r.Motion, wellness.Classify(r))
			}

			fmt.Fprintln(out)
			return printJSON(out, wellness.NewEngine(wellness.WithThresholds(thresholds)).AnalyzeSleep(readings))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "demo_sleep_data.json", "recording to replay")
	cmd.Flags().StringVar(&thresholdsPath, "thresholds", "", "YAML file recalibrating the engine thresholds")
	return cmd
}
