package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/engine"
	"github.com/go-drift/cellkit/pkg/errors"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// quitKeys stop the dashboard.
var quitKeys = []string{"q", "esc", "ctrl-c"}

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the dashboard in the terminal",
		Long: `Run opens the terminal screen and redraws the dashboard on every tick
and key press until q, Esc or Ctrl-C is pressed.

Logs go to the file named by log.file (default cellkit.log).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return fmt.Errorf("run needs a terminal on stdout; use \"cellkit layout\" to print a frame instead")
			}
			return runDashboard(cmd, opts)
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runDashboard(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.resolve()
	if err != nil {
		return err
	}

	logger, closeLog := newFileLogger(cfg)
	defer closeLog()
	errors.SetHandler(errors.NewLogHandler(logger, cfg.Verbose))
	defer errors.SetHandler(nil)
	logger.Info("starting", zap.String("version", Version), zap.String("config", cfg.Path))

	screen, err := rendering.NewScreen()
	if err != nil {
		return err
	}

	var ropts []core.Option
	if cfg.MaxDepth > 0 {
		ropts = append(ropts, core.WithMaxDepth(cfg.MaxDepth))
	}
	var loop *engine.Loop[Msg]
	dash := NewDashboard(cfg, Sources{
		Heap: heapStats,
		FrameTime: func() float64 {
			last, _ := loop.Trace().Last()
			return last.FrameMs
		},
	})
	loop = engine.New[Msg](screen, dash.Root, engine.Options{
		Tick:     cfg.Tick,
		Logger:   logger,
		Renderer: ropts,
	})
	loop.OnMessage(dash.Update)
	for _, key := range quitKeys {
		loop.BindKey(key, loop.Quit)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = loop.Run(ctx)

	timeline := loop.Trace().Snapshot()
	logger.Info("stopped",
		zap.Int("frames", len(timeline.Samples)),
		zap.Int("slow_frames", timeline.DroppedFrames),
		zap.Int("failed_frames", timeline.FailedFrames),
	)
	return err
}
