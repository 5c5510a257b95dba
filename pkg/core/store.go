package core

import (
	"fmt"

	"github.com/go-drift/cellkit/pkg/errors"
)

// Store is the arena holding component state across frames.
//
// It is owned by a Renderer and only reached through contexts. Slots are
// addressed by index and generation; freeing a slot bumps its generation,
// so handles to reclaimed state never resolve again.
type Store struct {
	slots []slot
	free  []int
	index map[Identity]int
	frame uint64

	created   int
	reclaimed int
}

type slot struct {
	id        Identity
	value     any
	gen       uint32
	live      bool
	displaced bool
	created   uint64
	claimed   uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: make(map[Identity]int)}
}

// Slots returns the number of slots allocated, live or free.
func (s *Store) Slots() int {
	return len(s.slots)
}

// Len returns the number of live states.
func (s *Store) Len() int {
	return len(s.index)
}

// Has reports whether a live state exists for id.
func (s *Store) Has(id Identity) bool {
	_, ok := s.index[id]
	return ok
}

// Identities returns the identities of all live states, in slot order.
func (s *Store) Identities() []Identity {
	ids := make([]Identity, 0, len(s.index))
	for i := range s.slots {
		if s.slots[i].live && !s.slots[i].displaced {
			ids = append(ids, s.slots[i].id)
		}
	}
	return ids
}

// Frame returns the number of the frame currently or last built.
func (s *Store) Frame() uint64 {
	return s.frame
}

func (s *Store) begin(frame uint64) {
	s.frame = frame
	s.created = 0
	s.reclaimed = 0
}

// claim resolves id for the current frame. The state is created when id is
// free or held by a value that does not match; a mismatched occupant is
// displaced and reclaimed by the next sweep.
func (s *Store) claim(id Identity, typeName string, matches func(any) bool, create func() any) (int, uint32, error) {
	if idx, ok := s.index[id]; ok {
		sl := &s.slots[idx]
		if sl.claimed == s.frame {
			return 0, 0, &errors.IdentityCollisionError{
				Identity: string(id),
				Frame:    s.frame,
				First:    fmt.Sprintf("%T", sl.value),
				Second:   typeName,
			}
		}
		if matches(sl.value) {
			sl.claimed = s.frame
			return idx, sl.gen, nil
		}
		sl.displaced = true
		delete(s.index, id)
	}

	// Create before taking a slot: a panicking init must not strand one.
	value := create()

	var idx int
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		idx = len(s.slots) - 1
	}
	sl := &s.slots[idx]
	sl.id = id
	sl.value = value
	sl.gen++
	sl.live = true
	sl.displaced = false
	sl.created = s.frame
	sl.claimed = s.frame
	s.index[id] = idx
	s.created++
	return idx, sl.gen, nil
}

func (s *Store) resolve(idx int, gen uint32) (any, bool) {
	if idx < 0 || idx >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[idx]
	if !sl.live || sl.gen != gen {
		return nil, false
	}
	return sl.value, true
}

// sweep reclaims every state not claimed in the current frame, displaced
// occupants included.
func (s *Store) sweep() int {
	n := 0
	for i := range s.slots {
		if s.slots[i].live && s.slots[i].claimed != s.frame {
			s.reclaim(i)
			n++
		}
	}
	return n
}

// rollback undoes the claims of an aborted frame: states it created are
// dropped and occupants it displaced are restored.
func (s *Store) rollback() {
	for i := range s.slots {
		if s.slots[i].live && !s.slots[i].displaced && s.slots[i].created == s.frame {
			s.reclaim(i)
		}
	}
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.live && sl.displaced {
			sl.displaced = false
			s.index[sl.id] = i
		}
	}
	s.created = 0
	s.reclaimed = 0
}

func (s *Store) reclaim(idx int) {
	sl := &s.slots[idx]
	if !sl.live {
		return
	}
	value := sl.value
	if cur, ok := s.index[sl.id]; ok && cur == idx {
		delete(s.index, sl.id)
	}
	sl.id = ""
	sl.value = nil
	sl.live = false
	sl.displaced = false
	sl.gen++
	s.free = append(s.free, idx)
	s.reclaimed++

	if d, ok := value.(Disposer); ok {
		func() {
			defer errors.Recover("core.Store.reclaim")
			d.Dispose()
		}()
	}
}
