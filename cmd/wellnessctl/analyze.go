package main

import (
	"errors"
	"fmt"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/sensors"
	"github.com/blaisecz/wellness-monitor/internal/service"
	"github.com/blaisecz/wellness-monitor/internal/wellness"
	"github.com/blaisecz/wellness-monitor/pkg/metrics"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	var file, thresholdsPath string

	cmd := &cobra.Command{
		Use:       "analyze <sleep|sedentary|stress|burnout|complete>",
		Short:     "Run one analysis over a sensor data file and print the result as JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"sleep", "sedentary", "stress", "burnout", "complete"},
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, ok := service.ParseAnalysis(args[0])
			if !ok {
				return fmt.Errorf("unknown analysis %q", args[0])
			}

			thresholds, err := wellness.LoadThresholds(thresholdsPath)
			if err != nil {
				return err
			}

			svc := service.NewWellnessService(
				wellness.NewEngine(wellness.WithThresholds(thresholds)),
				nil,
				nil,
				sensors.NewFileSource(file),
				nil,
				metrics.NewManager(),
				root.consoleLogger(),
			)

			result, err := svc.SourceAnalysis(cmd.Context(), analysis)
			if errors.Is(err, domain.ErrNoSensorData) {
				return printJSON(cmd.OutOrStdout(), domain.NoDataResponse{Error: err.Error()})
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "sensor_data.json", "sensor data file (JSON, JSON array or JSON lines)")
	cmd.Flags().StringVar(&thresholdsPath, "thresholds", "", "YAML file recalibrating the engine thresholds")
	return cmd
}
