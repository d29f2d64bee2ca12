package commands

import (
	"github.com/spf13/cobra"

	"github.com/teqfw/snapwheel"
)

var (
	configPath string
	debug      bool
	cfg        snapwheel.Config
)

// Execute runs the snapreplay root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "snapreplay",
		Short:        "Replay gesture scripts against a snapping picker",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if debug {
				c.Debug = true
			}
			cfg = c
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/snapwheel/snapwheel.*)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "trace scroller state transitions on stderr")

	root.AddCommand(runCmd(), configCmd())
	return root
}
