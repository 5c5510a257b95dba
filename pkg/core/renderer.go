package core

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/go-drift/cellkit/pkg/errors"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
)

var errNestedFrame = errors.New("frame already in progress")

// DefaultMaxDepth bounds the build and layout recursion of a frame.
const DefaultMaxDepth = 256

// RootFunc builds the component tree of a frame.
type RootFunc[M any] func(ctx *BuildContext) Component[M]

// FrameStats describes the work done by one frame.
type FrameStats struct {
	Frame     uint64
	Build     time.Duration
	Layout    time.Duration
	Draw      time.Duration
	Nodes     int
	Live      int
	Created   int
	Reclaimed int
	Failed    bool
}

// Total returns the time spent in all three phases.
func (s FrameStats) Total() time.Duration {
	return s.Build + s.Layout + s.Draw
}

type options struct {
	logger   *zap.Logger
	maxDepth int
}

// Option configures a Renderer.
type Option func(*options)

// WithLogger sets the logger used for frame diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxDepth sets the maximum depth of the key path and of the layout
// tree. Zero or less disables the check.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// Renderer owns the state store and drives frames through build, layout
// and draw. It is not safe for concurrent use; updates from other
// goroutines must be funneled to the goroutine calling Frame.
type Renderer[M any] struct {
	store    *Store
	logger   *zap.Logger
	maxDepth int

	frame    uint64
	inFrame  bool
	messages []M
	last     FrameStats
}

// NewRenderer creates a renderer with an empty state store.
func NewRenderer[M any](opts ...Option) *Renderer[M] {
	o := options{logger: zap.NewNop(), maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer[M]{
		store:    NewStore(),
		logger:   o.logger,
		maxDepth: o.maxDepth,
	}
}

// Store returns the renderer's state store for inspection.
func (r *Renderer[M]) Store() *Store {
	return r.store
}

// Stats returns the statistics of the last frame.
func (r *Renderer[M]) Stats() FrameStats {
	return r.last
}

// Messages returns and clears the messages sent since the last call.
func (r *Renderer[M]) Messages() []M {
	msgs := r.messages
	r.messages = nil
	return msgs
}

// Frame renders one frame of the tree returned by root onto frame and
// returns the layout tree.
//
// A failed build aborts the frame before layout: states created by the
// aborted pass are dropped and no previously live state is reclaimed.
// Panics in layout or draw are recovered and returned after the state
// sweep has already happened. Messages sent by a failed draw are dropped.
//
// Calling Frame while a frame is in progress panics with a build error.
func (r *Renderer[M]) Frame(frame rendering.Frame, root RootFunc[M]) (*layout.Node, error) {
	if r.inFrame {
		panic(&errors.Error{
			Op:   "core.Renderer.Frame",
			Kind: errors.KindBuild,
			Err:  errNestedFrame,
		})
	}
	r.inFrame = true
	defer func() { r.inFrame = false }()

	r.frame++
	stats := FrameStats{Frame: r.frame}
	defer func() { r.last = stats }()

	r.store.begin(r.frame)

	// Build.
	start := time.Now()
	bs := newScope()
	ctx := &BuildContext{store: r.store, maxDepth: r.maxDepth, scope: bs}
	var tree Component[M]
	err := r.run("core.Renderer.build", errors.KindBuild, func() {
		tree = root(ctx)
	})
	bs.close()
	if err != nil {
		r.store.rollback()
		stats.Build = time.Since(start)
		stats.Live = r.store.Len()
		stats.Failed = true
		r.logger.Debug("frame aborted", zap.Uint64("frame", r.frame), zap.Error(err))
		return nil, err
	}
	r.store.sweep()
	stats.Build = time.Since(start)
	stats.Live = r.store.Len()
	stats.Created = r.store.created
	stats.Reclaimed = r.store.reclaimed

	// Layout.
	start = time.Now()
	var size layout.Size
	if frame != nil {
		size = frame.Size()
	}
	node := layout.NewNode()
	node.SetDepthLimit(r.maxDepth)
	err = r.run("core.Renderer.layout", errors.KindLayout, func() {
		LayoutChild(tree, layout.Loose(size), node)
	})
	stats.Layout = time.Since(start)
	stats.Nodes = node.Count()
	if err != nil {
		stats.Failed = true
		return node, err
	}

	// Draw.
	start = time.Now()
	ds := newScope()
	sc := &StateContext[M]{store: r.store, outbox: &r.messages, scope: ds}
	queued := len(r.messages)
	dc := &DrawContext{
		region: node.Rect().Intersect(layout.Rect{Width: size.Width, Height: size.Height}),
		node:   node,
		style:  rendering.DefaultStyle,
		scope:  ds,
	}
	if frame != nil {
		err = r.run("core.Renderer.draw", errors.KindDraw, func() {
			DrawChild(tree, sc, dc, frame)
		})
	}
	ds.close()
	stats.Draw = time.Since(start)
	if err != nil {
		clear(r.messages[queued:])
		r.messages = r.messages[:queued]
		stats.Failed = true
		return node, err
	}

	r.logger.Debug("frame",
		zap.Uint64("frame", r.frame),
		zap.Int("nodes", stats.Nodes),
		zap.Int("live", stats.Live),
		zap.Int("created", stats.Created),
		zap.Int("reclaimed", stats.Reclaimed),
		zap.Duration("elapsed", stats.Total()),
	)
	return node, nil
}

// run calls fn and converts a panic into an error.
func (r *Renderer[M]) run(op string, kind errors.ErrorKind, fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = r.recovered(op, kind, v)
		}
	}()
	fn()
	return nil
}

func (r *Renderer[M]) recovered(op string, kind errors.ErrorKind, v any) error {
	var e *errors.Error
	switch x := v.(type) {
	case *errors.IdentityCollisionError:
		e = &errors.Error{
			Op:       op,
			Kind:     errors.KindCollision,
			Identity: x.Identity,
			Err:      x,
		}
	case *errors.Error:
		e = x
		if e.Op == "" {
			e.Op = op
		}
	default:
		p := &errors.PanicError{
			Op:         op,
			Value:      v,
			StackTrace: errors.CaptureStack(),
			Timestamp:  time.Now(),
		}
		errors.ReportPanic(p)
		return &errors.Error{
			Op:         op,
			Kind:       kind,
			Frame:      r.frame,
			Err:        p,
			StackTrace: p.StackTrace,
			Timestamp:  p.Timestamp,
		}
	}
	e.Frame = r.frame
	errors.Report(e)
	return e
}

// String describes the renderer for logs.
func (r *Renderer[M]) String() string {
	return fmt.Sprintf("Renderer(frame %d, %d live states)", r.frame, r.store.Len())
}
