package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective widget configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "threshold_time:     %v\n", cfg.ThresholdTime)
			fmt.Fprintf(out, "threshold_distance: %v\n", cfg.ThresholdDistance)
			fmt.Fprintf(out, "item_height:        %v\n", cfg.ItemHeight)
			fmt.Fprintf(out, "anchor_top:         %v\n", cfg.AnchorTop)
			fmt.Fprintf(out, "item_duration:      %v\n", cfg.ItemDuration)
			fmt.Fprintf(out, "min_duration:       %v\n", cfg.MinDuration)
			fmt.Fprintf(out, "fixed_duration:     %v\n", cfg.FixedDuration)
			fmt.Fprintf(out, "list_duration:      %v\n", cfg.ListDuration)
			fmt.Fprintf(out, "easing:             %s\n", cfg.Easing)
			fmt.Fprintf(out, "debug:              %v\n", cfg.Debug)
			return nil
		},
	}
}
