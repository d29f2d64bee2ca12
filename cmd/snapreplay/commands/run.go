package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teqfw/snapwheel"
)

func runCmd() *cobra.Command {
	var (
		items     []string
		initValue string
		tps       int
		maxFrames int
		height    float64
		only      []string
	)
	cmd := &cobra.Command{
		Use:   "run <script.json>",
		Short: "Replay a gesture script and print gestures and selections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseKinds(only)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			runner, err := snapwheel.LoadTestScript(data)
			if err != nil {
				return err
			}
			w, err := snapwheel.NewWidget(cfg, snapwheel.Rect{Width: 320, Height: height})
			if err != nil {
				return err
			}
			list := make([]snapwheel.Item, len(items))
			for i, k := range items {
				list[i] = snapwheel.Item{Key: k, Label: k}
			}
			if err := w.Scroller.SetItems(list); err != nil {
				return err
			}
			if initValue != "" {
				if err := w.Scroller.SetInitValue(initValue); err != nil {
					return err
				}
			}

			res, err := snapwheel.Replay(w, runner, tps, maxFrames)
			printResult(cmd.OutOrStdout(), res, filter)
			return err
		},
	}
	cmd.Flags().StringSliceVar(&items, "items", []string{"one", "two", "three", "four", "five"}, "item keys, top to bottom")
	cmd.Flags().StringVar(&initValue, "init", "", "key selected before the script starts")
	cmd.Flags().IntVar(&tps, "tps", 60, "simulated frames per second")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 3600, "give up after this many frames")
	cmd.Flags().Float64Var(&height, "height", 480, "viewport height; contacts must start inside it")
	cmd.Flags().StringSliceVar(&only, "gestures", nil, "print only these gesture kinds (e.g. swipe-up,end)")
	return cmd
}

// parseKinds turns gesture names into a filter set. An empty list selects
// every kind.
func parseKinds(names []string) (map[snapwheel.GestureKind]bool, error) {
	if len(names) == 0 {
		return nil, nil
	}
	set := make(map[snapwheel.GestureKind]bool, len(names))
	for _, n := range names {
		k, err := snapwheel.ParseGestureKind(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		set[k] = true
	}
	return set, nil
}

func printResult(out io.Writer, res snapwheel.ReplayResult, filter map[snapwheel.GestureKind]bool) {
	swipes := 0
	for _, g := range res.Gestures {
		if g.Kind.IsSwipe() {
			swipes++
		}
		if filter != nil && !filter[g.Kind] {
			continue
		}
		if g.HasEnd {
			fmt.Fprintf(out, "gesture %-11s (%.0f,%.0f) -> (%.0f,%.0f) in %v\n",
				g.Kind, g.Start.X, g.Start.Y, g.End.X, g.End.Y, g.Elapsed())
			continue
		}
		fmt.Fprintf(out, "gesture %-11s (%.0f,%.0f)\n", g.Kind, g.Start.X, g.Start.Y)
	}
	for _, s := range res.Selections {
		if !s.OK {
			fmt.Fprintf(out, "select  frame %-4d none\n", s.Frame)
			continue
		}
		fmt.Fprintf(out, "select  frame %-4d %v\n", s.Frame, s.Key)
	}
	key := "none"
	if res.Final.Selected {
		key = fmt.Sprint(res.Final.SelectedKey)
	}
	fmt.Fprintf(out, "final   frames=%d swipes=%d offset=%.1f selected=%s phase=%s\n",
		res.Frames, swipes, res.Final.OffsetTop, key, res.Final.Phase)
}
