package engine

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/cellkit/pkg/core"
)

func TestFrameTraceBufferWraps(t *testing.T) {
	b := NewFrameTraceBuffer(3, 10*time.Millisecond)
	for i := 1; i <= 5; i++ {
		b.Add(FrameSample{Frame: uint64(i)}, time.Duration(i)*4*time.Millisecond)
	}

	timeline := b.Snapshot()
	var frames []uint64
	for _, s := range timeline.Samples {
		frames = append(frames, s.Frame)
	}
	if diff := cmp.Diff([]uint64{3, 4, 5}, frames); diff != "" {
		t.Errorf("frames (-want +got):\n%s", diff)
	}
	if last, ok := b.Last(); !ok || last.Frame != 5 {
		t.Errorf("Last() = %v, %v; want frame 5", last.Frame, ok)
	}
	// 12, 16 and 20ms exceed the threshold.
	if timeline.DroppedFrames != 3 {
		t.Errorf("dropped = %d, want 3", timeline.DroppedFrames)
	}
	if timeline.ThresholdMs != 10 {
		t.Errorf("threshold = %v, want 10", timeline.ThresholdMs)
	}
}

func TestFrameTraceBufferDefaults(t *testing.T) {
	b := NewFrameTraceBuffer(0, 0)
	if b.Capacity() != frameTraceSamplesDefault {
		t.Errorf("capacity = %d", b.Capacity())
	}
	if b.Threshold() != defaultFrameTraceThreshold {
		t.Errorf("threshold = %v", b.Threshold())
	}
	if _, ok := b.Last(); ok {
		t.Error("Last() on empty buffer reported a sample")
	}
	if s := b.Snapshot(); len(s.Samples) != 0 || s.ThresholdMs != 50 {
		t.Errorf("empty snapshot = %+v", s)
	}
}

func TestNewFrameSample(t *testing.T) {
	stats := core.FrameStats{
		Frame:   7,
		Build:   time.Millisecond,
		Layout:  2 * time.Millisecond,
		Draw:    3 * time.Millisecond,
		Nodes:   4,
		Live:    2,
		Created: 1,
		Failed:  true,
	}
	s := newFrameSample(stats, time.Millisecond, time.Millisecond, 2, 5)
	s.Timestamp = 0

	want := FrameSample{
		Frame:   7,
		FrameMs: 8,
		Phases:  FramePhaseTimings{DispatchMs: 1, BuildMs: 1, LayoutMs: 2, DrawMs: 3, ShowMs: 1},
		Counts:  FrameCounts{Dispatched: 2, Nodes: 4, Live: 2, Created: 1, Messages: 5},
		Failed:  true,
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("sample (-want +got):\n%s", diff)
	}
}
