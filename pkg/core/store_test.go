package core

import (
	"testing"

	"github.com/go-drift/cellkit/pkg/errors"
)

type intBox struct{ n int }

type disposable struct {
	StateBase
	name string
}

func claimInt(s *Store, id Identity, n int) (int, uint32, error) {
	return s.claim(id, "*core.intBox",
		func(v any) bool { _, ok := v.(*intBox); return ok },
		func() any { return &intBox{n: n} })
}

func claimDisposable(s *Store, id Identity) (int, uint32, error) {
	return s.claim(id, "*core.disposable",
		func(v any) bool { _, ok := v.(*disposable); return ok },
		func() any { return &disposable{name: string(id)} })
}

func TestStoreClaimReusesState(t *testing.T) {
	s := NewStore()
	s.begin(1)
	idx, gen, err := claimInt(s, "a#x", 1)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	first, _ := s.resolve(idx, gen)

	s.begin(2)
	idx2, gen2, err := claimInt(s, "a#x", 99)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if idx2 != idx || gen2 != gen {
		t.Errorf("handle = (%d,%d), want (%d,%d)", idx2, gen2, idx, gen)
	}
	second, _ := s.resolve(idx2, gen2)
	if first != second {
		t.Error("same identity should yield the same state instance")
	}
	if got := second.(*intBox).n; got != 1 {
		t.Errorf("n = %d, want 1 (init must not rerun)", got)
	}
}

func TestStoreCollision(t *testing.T) {
	s := NewStore()
	s.begin(7)
	if _, _, err := claimInt(s, "p#x", 0); err != nil {
		t.Fatalf("claim: %v", err)
	}
	_, _, err := claimInt(s, "p#x", 0)
	var coll *errors.IdentityCollisionError
	if !errors.As(err, &coll) {
		t.Fatalf("err = %v, want *IdentityCollisionError", err)
	}
	if coll.Identity != "p#x" || coll.Frame != 7 {
		t.Errorf("collision = %+v", coll)
	}
}

func TestStoreSweepReclaimsAndBumpsGeneration(t *testing.T) {
	s := NewStore()
	s.begin(1)
	idx, gen, _ := claimDisposable(s, "a#x")
	v, _ := s.resolve(idx, gen)
	state := v.(*disposable)
	if n := s.sweep(); n != 0 {
		t.Errorf("sweep after claim reclaimed %d", n)
	}

	s.begin(2)
	if n := s.sweep(); n != 1 {
		t.Errorf("sweep = %d, want 1", n)
	}
	if !state.IsDisposed() {
		t.Error("reclaimed state should be disposed")
	}
	if _, ok := s.resolve(idx, gen); ok {
		t.Error("stale handle must not resolve")
	}
	if s.Len() != 0 || s.Has("a#x") {
		t.Errorf("Len = %d, Has = %v after sweep", s.Len(), s.Has("a#x"))
	}

	// The freed slot is reused with a newer generation.
	s.begin(3)
	idx2, gen2, _ := claimInt(s, "b#y", 0)
	if idx2 != idx {
		t.Errorf("slot = %d, want reused %d", idx2, idx)
	}
	if gen2 <= gen {
		t.Errorf("generation = %d, want > %d", gen2, gen)
	}
	if _, ok := s.resolve(idx, gen); ok {
		t.Error("stale handle resolved to the new occupant")
	}
}

func TestStoreTypeChangeDisplacesOccupant(t *testing.T) {
	s := NewStore()
	s.begin(1)
	idx, gen, _ := claimDisposable(s, "a#x")
	v, _ := s.resolve(idx, gen)
	old := v.(*disposable)

	s.begin(2)
	nidx, ngen, err := claimInt(s, "a#x", 5)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if old.IsDisposed() {
		t.Error("displaced state disposed before the sweep")
	}
	s.sweep()
	if !old.IsDisposed() {
		t.Error("displaced state should be disposed by the sweep")
	}
	nv, ok := s.resolve(nidx, ngen)
	if !ok || nv.(*intBox).n != 5 {
		t.Errorf("new occupant = %v, %v", nv, ok)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestStoreRollback(t *testing.T) {
	s := NewStore()
	s.begin(1)
	idx, gen, _ := claimDisposable(s, "keep#x")
	claimDisposable(s, "swap#x")
	s.sweep()

	s.begin(2)
	claimDisposable(s, "keep#x")
	nidx, ngen, _ := claimDisposable(s, "fresh#x")
	fv, _ := s.resolve(nidx, ngen)
	fresh := fv.(*disposable)
	claimInt(s, "swap#x", 1)
	s.rollback()

	if !fresh.IsDisposed() {
		t.Error("state created by the aborted frame should be dropped")
	}
	if _, ok := s.resolve(idx, gen); !ok {
		t.Error("previously live state was lost")
	}
	if !s.Has("swap#x") {
		t.Fatal("displaced occupant should be restored")
	}
	s.begin(3)
	sidx, sgen, err := claimDisposable(s, "swap#x")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	sv, _ := s.resolve(sidx, sgen)
	if sv.(*disposable).IsDisposed() {
		t.Error("restored occupant is disposed")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func claimPanicking(s *Store, id Identity) {
	defer func() { recover() }()
	s.claim(id, "*core.intBox",
		func(v any) bool { _, ok := v.(*intBox); return ok },
		func() any { panic("init failed") })
}

func TestStorePanickingInitTakesNoSlot(t *testing.T) {
	s := NewStore()
	for frame := uint64(1); frame <= 50; frame++ {
		s.begin(frame)
		claimPanicking(s, "p#x")
		s.rollback()
	}
	if s.Slots() != 0 || s.Len() != 0 {
		t.Errorf("slots = %d, live = %d; want 0, 0", s.Slots(), s.Len())
	}
}

func TestStorePanickingInitRestoresDisplaced(t *testing.T) {
	s := NewStore()
	s.begin(1)
	idx, gen, err := claimDisposable(s, "p#x")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}

	s.begin(2)
	claimPanicking(s, "p#x")
	s.rollback()

	if !s.Has("p#x") || s.Slots() != 1 {
		t.Fatalf("has = %v, slots = %d; want the occupant back in its only slot", s.Has("p#x"), s.Slots())
	}
	if _, ok := s.resolve(idx, gen); !ok {
		t.Error("handle to the displaced occupant no longer resolves")
	}
}

type panickyState struct{}

func (*panickyState) Dispose() { panic("boom") }

func TestStoreDisposePanicIsContained(t *testing.T) {
	var panics []*errors.PanicError
	errors.SetHandler(&recordingHandler{onPanic: func(p *errors.PanicError) { panics = append(panics, p) }})
	t.Cleanup(func() { errors.SetHandler(nil) })

	s := NewStore()
	s.begin(1)
	s.claim("p#x", "*core.panickyState",
		func(v any) bool { _, ok := v.(*panickyState); return ok },
		func() any { return &panickyState{} })
	s.begin(2)
	if n := s.sweep(); n != 1 {
		t.Errorf("sweep = %d, want 1", n)
	}
	if len(panics) != 1 || panics[0].Op != "core.Store.reclaim" {
		t.Errorf("panics = %v", panics)
	}
}

type recordingHandler struct {
	onError     func(*errors.Error)
	onPanic     func(*errors.PanicError)
	onViolation func(*errors.ConstraintViolation)
}

func (h *recordingHandler) HandleError(err *errors.Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *recordingHandler) HandleViolation(v *errors.ConstraintViolation) {
	if h.onViolation != nil {
		h.onViolation(v)
	}
}
