package main

import (
	"fmt"

	"github.com/blaisecz/wellness-monitor/internal/config"
	"github.com/blaisecz/wellness-monitor/internal/seed"
	"github.com/spf13/cobra"
)

func newSeedCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the demo devices and a synthetic day of readings in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := root.consoleLogger()

			db, err := config.NewDatabase(cfg, log)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			if err := seed.Run(cmd.Context(), db, log); err != nil {
				return err
			}

			for _, d := range seed.Devices {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", d.ID, d.Name, d.Timezone)
			}
			return nil
		},
	}
}
