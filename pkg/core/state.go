package core

import (
	"fmt"
	"sync"
)

// Initer is implemented by states that need setup after creation.
// InitState runs once, right after the init function, in the build pass that
// first claims the identity.
type Initer interface {
	InitState()
}

// Disposer is implemented by states that hold resources. Dispose runs once
// when the state is reclaimed.
type Disposer interface {
	Dispose()
}

// State is a handle to a component state of type S held by the store.
// It is a plain value: copying it is free and it keeps nothing alive.
// A handle whose state has been reclaimed resolves to nil.
type State[S any] struct {
	index int
	gen   uint32
}

// Valid reports whether the handle was issued by UseState.
func (s State[S]) Valid() bool {
	return s.gen != 0
}

// Get resolves the handle through an open context. It returns nil when the
// state has been reclaimed.
func (s State[S]) Get(scope Scope) *S {
	if !s.Valid() {
		return nil
	}
	v, ok := scope.stateStore().resolve(s.index, s.gen)
	if !ok {
		return nil
	}
	p, _ := v.(*S)
	return p
}

// Scope is a context that can resolve state handles. It is implemented by
// *BuildContext and *StateContext.
type Scope interface {
	stateStore() *Store
}

// UseState fetches the state stored under ctx's identity path and tag,
// creating it with init when the identity is not live. A nil init creates
// the zero value.
//
// Claiming an identity twice in one build pass panics with an
// *errors.IdentityCollisionError; the renderer turns that into a failed
// frame.
func UseState[S any](ctx *BuildContext, tag string, init func() S) State[S] {
	ctx.scope.check()
	id := ctx.Identity(tag)
	idx, gen, err := ctx.store.claim(id, fmt.Sprintf("%T", (*S)(nil)),
		func(v any) bool {
			_, ok := v.(*S)
			return ok
		},
		func() any {
			var v S
			if init != nil {
				v = init()
			}
			p := &v
			if i, ok := any(p).(Initer); ok {
				i.InitState()
			}
			return p
		})
	if err != nil {
		panic(err)
	}
	return State[S]{index: idx, gen: gen}
}

// stateBase is satisfied by any struct that embeds StateBase.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase gives a component state disposal hooks. The store disposes a
// state when its identity is not claimed in a frame.
//
//	type feedState struct {
//	    core.StateBase
//	    rows []string
//	}
type StateBase struct {
	mu       sync.Mutex
	cleanups []func()
	disposed bool
}

// OnDispose queues cleanup to run when the state is reclaimed and returns a
// function that removes it again. On a disposed state cleanup runs at once.
func (s *StateBase) OnDispose(cleanup func()) (cancel func()) {
	if cleanup == nil {
		return func() {}
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		cleanup()
		return func() {}
	}
	i := len(s.cleanups)
	s.cleanups = append(s.cleanups, cleanup)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if i < len(s.cleanups) {
			s.cleanups[i] = nil
		}
	}
}

// RunDisposers runs the queued cleanups once, newest first. The lock is not
// held while they run.
func (s *StateBase) RunDisposers() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	cleanups := s.cleanups
	s.cleanups = nil
	s.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		if cleanups[i] != nil {
			cleanups[i]()
		}
	}
}

// Dispose runs the queued cleanups. States overriding it must call
// s.StateBase.Dispose().
func (s *StateBase) Dispose() {
	s.RunDisposers()
}

// InitState does nothing; states override it to set up after creation.
func (s *StateBase) InitState() {}

// IsDisposed reports whether the store has reclaimed the state.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// UseController creates a resource owned by the state and disposes it with
// the state.
//
// Example:
//
//	func (s *feedState) InitState() {
//	    s.ticker = core.UseController(s, newTicker)
//	}
func UseController[C Disposer](s stateBase, create func() C) C {
	base := s.state()
	controller := create()
	base.OnDispose(controller.Dispose)
	return controller
}
