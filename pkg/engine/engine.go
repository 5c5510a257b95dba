// Package engine drives a renderer against a terminal screen: it polls
// input, runs queued callbacks and renders a frame per tick or event.
package engine

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/errors"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// ErrRunning is returned by Run when the loop is already running.
var ErrRunning = stderrors.New("engine: loop already running")

// Options configures a [Loop].
type Options struct {
	// Tick redraws on a timer. Zero redraws only on events.
	Tick time.Duration
	// TraceCapacity is the number of frame samples kept; zero means 240.
	TraceCapacity int
	// TraceThreshold marks slower frames as dropped; zero means 50ms.
	TraceThreshold time.Duration
	Logger         *zap.Logger
	// Renderer options, such as core.WithMaxDepth.
	Renderer []core.Option
}

// Loop drives a renderer against a terminal screen. Frames are rendered on
// the goroutine that called Run; dispatched callbacks, key bindings and
// message delivery run there too, so they may touch the application model
// without locking.
type Loop[M any] struct {
	screen   *rendering.Screen
	root     core.RootFunc[M]
	renderer *core.Renderer[M]
	logger   *zap.Logger
	tick     time.Duration
	trace    *FrameTraceBuffer

	dispatchMu    sync.Mutex
	dispatchQueue []func()

	bindings  map[string]func()
	onMessage func(M)
	onError   func(error)

	// panics counts callbacks that panicked since the last trace sample.
	panics int

	quit     chan struct{}
	quitOnce sync.Once
	running  atomic.Bool
}

// New returns a loop rendering root onto screen. The loop owns the screen
// and closes it when Run returns.
func New[M any](screen *rendering.Screen, root core.RootFunc[M], opts Options) *Loop[M] {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ropts := append([]core.Option{core.WithLogger(logger)}, opts.Renderer...)
	return &Loop[M]{
		screen:   screen,
		root:     root,
		renderer: core.NewRenderer[M](ropts...),
		logger:   logger,
		tick:     opts.Tick,
		trace:    NewFrameTraceBuffer(opts.TraceCapacity, opts.TraceThreshold),
		bindings: make(map[string]func()),
		quit:     make(chan struct{}),
	}
}

// OnMessage sets the function receiving messages sent by components during
// draw. It must be called before Run.
func (l *Loop[M]) OnMessage(fn func(M)) {
	l.onMessage = fn
}

// OnError sets the function receiving failed frames. Failed frames are
// always logged. It must be called before Run.
func (l *Loop[M]) OnError(fn func(error)) {
	l.onError = fn
}

// BindKey runs action when key is pressed. Printable keys are named by
// their rune ("q", "+"); others by their lower-cased tcell name ("esc",
// "ctrl-c", "enter"). It must be called before Run.
func (l *Loop[M]) BindKey(key string, action func()) {
	l.bindings[strings.ToLower(key)] = action
}

// Dispatch schedules callback to run on the loop goroutine before the next
// frame. Safe to call from any goroutine.
func (l *Loop[M]) Dispatch(callback func()) {
	if callback == nil {
		return
	}
	l.dispatchMu.Lock()
	l.dispatchQueue = append(l.dispatchQueue, callback)
	l.dispatchMu.Unlock()
	// A full event queue already guarantees a wakeup.
	_ = l.screen.TCell().PostEvent(tcell.NewEventInterrupt(nil))
}

// Quit stops the loop. Safe to call more than once and from any goroutine.
func (l *Loop[M]) Quit() {
	l.quitOnce.Do(func() { close(l.quit) })
}

// Trace returns the frame trace buffer.
func (l *Loop[M]) Trace() *FrameTraceBuffer {
	return l.trace
}

// Renderer returns the loop's renderer. It must only be used from
// callbacks running on the loop goroutine.
func (l *Loop[M]) Renderer() *core.Renderer[M] {
	return l.renderer
}

// Run renders an initial frame and then one frame per tick or terminal
// event until ctx is done or Quit is called. The screen is closed on
// return.
func (l *Loop[M]) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)

	g.Go(func() error {
		ts := l.screen.TCell()
		for {
			// PollEvent returns nil once the screen is finalized.
			ev := ts.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer l.screen.Close()
		defer cancel()
		return l.loop(ctx, events)
	})
	return g.Wait()
}

func (l *Loop[M]) loop(ctx context.Context, events <-chan tcell.Event) error {
	var ticks <-chan time.Time
	if l.tick > 0 {
		ticker := time.NewTicker(l.tick)
		defer ticker.Stop()
		ticks = ticker.C
	}

	l.logger.Debug("loop started", zap.Duration("tick", l.tick))
	l.frame()
	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop stopped", zap.Error(ctx.Err()))
			return nil
		case <-l.quit:
			l.logger.Debug("loop quit")
			return nil
		case <-ticks:
		case ev := <-events:
			l.handle(ev)
		}
		select {
		case <-l.quit:
			return nil
		default:
		}
		l.frame()
	}
}

func (l *Loop[M]) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		l.screen.Sync()
	case *tcell.EventKey:
		name := KeyName(ev)
		if action, ok := l.bindings[name]; ok {
			l.invoke("engine.BindKey", action)
		}
	}
}

// KeyName returns the name a key event is bound under by [Loop.BindKey].
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		name := string(ev.Rune())
		if ev.Modifiers()&tcell.ModAlt != 0 {
			name = "alt+" + name
		}
		return name
	}
	if name, ok := tcell.KeyNames[ev.Key()]; ok {
		return strings.ToLower(name)
	}
	return ""
}

func (l *Loop[M]) drainDispatchQueue() []func() {
	l.dispatchMu.Lock()
	callbacks := l.dispatchQueue
	l.dispatchQueue = nil
	l.dispatchMu.Unlock()
	return callbacks
}

// invoke runs fn, reporting and counting a panic instead of letting it
// end the loop.
func (l *Loop[M]) invoke(op string, fn func()) {
	defer errors.RecoverFunc(op, func(*errors.PanicError) { l.panics++ })
	fn()
}

// frame drains the dispatch queue, renders one frame, shows it and
// delivers the messages it produced.
func (l *Loop[M]) frame() {
	start := time.Now()
	callbacks := l.drainDispatchQueue()
	for _, cb := range callbacks {
		l.invoke("engine.Dispatch", cb)
	}
	dispatch := time.Since(start)

	l.screen.Clear()
	if _, err := l.renderer.Frame(l.screen, l.root); err != nil {
		l.logger.Warn("frame failed", zap.Error(err))
		if l.onError != nil {
			l.onError(err)
		}
	}

	showStart := time.Now()
	if err := l.screen.Show(); err != nil {
		l.logger.Warn("show failed", zap.Error(err))
	}
	show := time.Since(showStart)

	msgs := l.renderer.Messages()
	if l.onMessage != nil {
		for _, m := range msgs {
			m := m
			l.invoke("engine.OnMessage", func() { l.onMessage(m) })
		}
	}

	sample := newFrameSample(l.renderer.Stats(), dispatch, show, len(callbacks), len(msgs))
	sample.Counts.Panics = l.panics
	l.panics = 0
	l.trace.Add(sample, time.Since(start))
}
