package core

import (
	"fmt"

	"github.com/go-drift/cellkit/pkg/errors"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
)

var errEmptyKey = errors.New("empty key")

// scope is shared by a context and everything derived from it. The
// renderer closes it when the phase that handed the context out returns.
type scope struct {
	open bool
}

func newScope() *scope {
	return &scope{open: true}
}

func (s *scope) check() {
	if s == nil || !s.open {
		panic(errors.ErrContextClosed)
	}
}

func (s *scope) close() {
	if s != nil {
		s.open = false
	}
}

// BuildContext is handed to build functions. It carries the identity path
// of the subtree being built and grants access to the state store.
// It must not be retained after the build call returns.
type BuildContext struct {
	store    *Store
	path     []Key
	depth    int
	maxDepth int
	scope    *scope
}

// Child returns a context for the subtree named key. An empty key panics
// with a build error since it would share the parent's identities.
func (c *BuildContext) Child(key Key) *BuildContext {
	c.scope.check()
	if key == "" {
		panic(&errors.Error{
			Op:       "core.BuildContext.Child",
			Kind:     errors.KindBuild,
			Identity: string(makeIdentity(c.path, "")),
			Err:      errEmptyKey,
		})
	}
	if c.maxDepth > 0 && c.depth+1 > c.maxDepth {
		panic(&errors.Error{
			Op:       "core.BuildContext.Child",
			Kind:     errors.KindDepth,
			Identity: string(makeIdentity(c.path, "")),
			Err:      fmt.Errorf("depth %d exceeds limit %d", c.depth+1, c.maxDepth),
		})
	}
	path := make([]Key, len(c.path), len(c.path)+1)
	copy(path, c.path)
	return &BuildContext{
		store:    c.store,
		path:     append(path, key),
		depth:    c.depth + 1,
		maxDepth: c.maxDepth,
		scope:    c.scope,
	}
}

// Identity returns the identity a state claimed with tag would get here.
func (c *BuildContext) Identity(tag string) Identity {
	c.scope.check()
	return makeIdentity(c.path, tag)
}

// Path returns a copy of the key path from the root.
func (c *BuildContext) Path() []Key {
	c.scope.check()
	return append([]Key(nil), c.path...)
}

// Depth returns the number of keys in the path.
func (c *BuildContext) Depth() int {
	return c.depth
}

// Frame returns the number of the frame being built.
func (c *BuildContext) Frame() uint64 {
	c.scope.check()
	return c.store.frame
}

func (c *BuildContext) stateStore() *Store {
	c.scope.check()
	return c.store
}

// StateContext is handed to layout-time and draw-time code that reads
// component state. It also queues messages for the application.
type StateContext[M any] struct {
	store  *Store
	outbox *[]M
	scope  *scope
}

// Send queues msg; the renderer hands queued messages out after the frame.
func (c *StateContext[M]) Send(msg M) {
	c.scope.check()
	*c.outbox = append(*c.outbox, msg)
}

func (c *StateContext[M]) stateStore() *Store {
	c.scope.check()
	return c.store
}

// DrawContext carries the region a component may paint into, in frame
// coordinates, the component's layout node and the style inherited from its
// ancestors.
type DrawContext struct {
	region layout.Rect
	node   *layout.Node
	style  rendering.Style
	scope  *scope
}

// NodeRect returns the rect the component was laid out into, relative to
// its parent.
func (c *DrawContext) NodeRect() layout.Rect {
	c.scope.check()
	if c.node == nil {
		return layout.Rect{}
	}
	return c.node.Rect()
}

// ChildCount returns the number of children laid out under the component.
func (c *DrawContext) ChildCount() int {
	c.scope.check()
	if c.node == nil {
		return 0
	}
	return c.node.Len()
}

// Child returns the context for the i-th child of the component's node.
func (c *DrawContext) Child(i int) *DrawContext {
	c.scope.check()
	var child *layout.Node
	if c.node != nil {
		child = c.node.Child(i)
	}
	return c.ForChild(child)
}

// Region returns the component's region in frame coordinates.
func (c *DrawContext) Region() layout.Rect {
	c.scope.check()
	return c.region
}

// Size returns the size of the region.
func (c *DrawContext) Size() layout.Size {
	c.scope.check()
	return c.region.Size()
}

// Style returns the inherited style.
func (c *DrawContext) Style() rendering.Style {
	c.scope.check()
	return c.style
}

// Empty reports whether the region has no area.
func (c *DrawContext) Empty() bool {
	c.scope.check()
	return c.region.Empty()
}

// ForChild returns the context for the child laid out into node: the
// node's rect placed inside this region and clipped to it.
func (c *DrawContext) ForChild(node *layout.Node) *DrawContext {
	c.scope.check()
	region := layout.Rect{X: c.region.X, Y: c.region.Y}
	if node != nil {
		region = node.Rect().Translate(c.region.X, c.region.Y).Intersect(c.region)
	}
	return &DrawContext{region: region, node: node, style: c.style, scope: c.scope}
}

// WithStyle returns a context whose style is s merged over the inherited one.
func (c *DrawContext) WithStyle(s rendering.Style) *DrawContext {
	c.scope.check()
	return &DrawContext{region: c.region, node: c.node, style: s.Merge(c.style), scope: c.scope}
}

// Inset returns a context for the region shrunk by in.
func (c *DrawContext) Inset(in layout.Insets) *DrawContext {
	c.scope.check()
	return &DrawContext{region: c.region.Deflate(in), node: c.node, style: c.style, scope: c.scope}
}

// Fill paints the region with r in the inherited style.
func (c *DrawContext) Fill(frame rendering.Frame, r rune) {
	c.Paint(frame, rendering.Fill{Rune: r, Style: c.style})
}

// Paint paints p clipped to the region.
func (c *DrawContext) Paint(frame rendering.Frame, p rendering.Primitive) {
	c.scope.check()
	rendering.Paint(frame, c.region, p)
}

// Text paints s on the first row of the region in the inherited style and
// returns the number of cells written.
func (c *DrawContext) Text(frame rendering.Frame, s string) int {
	c.scope.check()
	if c.region.Empty() {
		return 0
	}
	return rendering.DrawText(rendering.Clip(frame, c.region), c.region.X, c.region.Y, c.region.Width, s, c.style)
}
