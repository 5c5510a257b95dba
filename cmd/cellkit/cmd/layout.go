package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// Fixed readings keep layout output reproducible.
var layoutSources = Sources{
	Heap:      func() (uint64, uint64) { return 48 << 20, 128 << 20 },
	FrameTime: func() float64 { return 4 },
}

func newLayoutCommand(opts *rootOptions) *cobra.Command {
	var (
		width  int
		height int
		frames int
		tree   bool
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the dashboard layout and one rendered frame",
		Long: `Layout renders the dashboard into an in-memory buffer of the given size
and prints the layout tree followed by the buffer, without opening the
terminal screen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("--width and --height must be positive")
			}
			if frames < 1 {
				return fmt.Errorf("--frames must be at least 1")
			}
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			var ropts []core.Option
			if cfg.MaxDepth > 0 {
				ropts = append(ropts, core.WithMaxDepth(cfg.MaxDepth))
			}
			r := core.NewRenderer[Msg](ropts...)
			dash := NewDashboard(cfg, layoutSources)
			buf := rendering.NewBuffer(width, height)
			for i := 0; i < frames; i++ {
				buf.Clear()
				node, err := r.Frame(buf, dash.Root)
				if err != nil {
					return err
				}
				for _, m := range r.Messages() {
					dash.Update(m)
				}
				if i == frames-1 && tree {
					fmt.Fprint(cmd.OutOrStdout(), node.String())
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), buf.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 60, "frame width in cells")
	cmd.Flags().IntVar(&height, "height", 20, "frame height in cells")
	cmd.Flags().IntVar(&frames, "frames", 1, "frames to render before printing")
	cmd.Flags().BoolVar(&tree, "tree", true, "print the layout tree")
	return cmd
}
