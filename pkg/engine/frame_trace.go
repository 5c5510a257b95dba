package engine

import (
	"sync"
	"time"

	"github.com/go-drift/cellkit/pkg/core"
)

const (
	frameTraceSamplesDefault   = 240
	defaultFrameTraceThreshold = 50 * time.Millisecond
)

// FramePhaseTimings captures time spent in each frame phase (ms).
type FramePhaseTimings struct {
	DispatchMs float64 `json:"dispatchMs"`
	BuildMs    float64 `json:"buildMs"`
	LayoutMs   float64 `json:"layoutMs"`
	DrawMs     float64 `json:"drawMs"`
	ShowMs     float64 `json:"showMs"`
}

// FrameCounts captures per-frame workload indicators.
type FrameCounts struct {
	Dispatched int `json:"dispatched"`
	Nodes      int `json:"nodes"`
	Live       int `json:"live"`
	Created    int `json:"created"`
	Reclaimed  int `json:"reclaimed"`
	Messages   int `json:"messages"`
	// Panics counts dispatched callbacks, key actions and message
	// handlers that panicked.
	Panics int `json:"panics,omitempty"`
}

// FrameSample is a single frame trace sample.
type FrameSample struct {
	Frame     uint64            `json:"frame"`
	Timestamp int64             `json:"ts"`
	FrameMs   float64           `json:"frameMs"`
	Phases    FramePhaseTimings `json:"phases"`
	Counts    FrameCounts       `json:"counts"`
	Failed    bool              `json:"failed,omitempty"`
}

// FrameTimeline is a chronological view of the trace buffer.
type FrameTimeline struct {
	Samples       []FrameSample `json:"samples"`
	DroppedFrames int           `json:"droppedFrames"`
	FailedFrames  int           `json:"failedFrames"`
	ThresholdMs   float64       `json:"thresholdMs"`
}

// FrameTraceBuffer stores recent frame samples in a ring buffer.
type FrameTraceBuffer struct {
	mu        sync.RWMutex
	samples   []FrameSample
	index     int
	count     int
	dropped   int
	failed    int
	threshold time.Duration
}

// NewFrameTraceBuffer creates a new frame trace buffer.
func NewFrameTraceBuffer(capacity int, threshold time.Duration) *FrameTraceBuffer {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultFrameTraceThreshold
	}
	return &FrameTraceBuffer{
		samples:   make([]FrameSample, capacity),
		threshold: threshold,
	}
}

// Capacity returns the buffer capacity.
func (b *FrameTraceBuffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

// Threshold returns the slow frame threshold.
func (b *FrameTraceBuffer) Threshold() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.threshold
}

// Add records a frame sample and updates the dropped and failed counts.
func (b *FrameTraceBuffer) Add(sample FrameSample, frameDuration time.Duration) {
	b.mu.Lock()
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
	if frameDuration > b.threshold {
		b.dropped++
	}
	if sample.Failed {
		b.failed++
	}
	b.mu.Unlock()
}

// Len returns the number of samples held.
func (b *FrameTraceBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Last returns the most recent sample.
func (b *FrameTraceBuffer) Last() (FrameSample, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.count == 0 {
		return FrameSample{}, false
	}
	return b.samples[(b.index+len(b.samples)-1)%len(b.samples)], true
}

// Snapshot returns a chronological copy of samples and stats.
func (b *FrameTraceBuffer) Snapshot() FrameTimeline {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return FrameTimeline{ThresholdMs: durationToMillis(b.threshold)}
	}

	result := make([]FrameSample, b.count)
	if b.count < len(b.samples) {
		copy(result, b.samples[:b.count])
	} else {
		copy(result, b.samples[b.index:])
		copy(result[len(b.samples)-b.index:], b.samples[:b.index])
	}

	return FrameTimeline{
		Samples:       result,
		DroppedFrames: b.dropped,
		FailedFrames:  b.failed,
		ThresholdMs:   durationToMillis(b.threshold),
	}
}

func newFrameSample(stats core.FrameStats, dispatch, show time.Duration, dispatched, messages int) FrameSample {
	return FrameSample{
		Frame:     stats.Frame,
		Timestamp: time.Now().UnixMilli(),
		FrameMs:   durationToMillis(dispatch + stats.Total() + show),
		Phases: FramePhaseTimings{
			DispatchMs: durationToMillis(dispatch),
			BuildMs:    durationToMillis(stats.Build),
			LayoutMs:   durationToMillis(stats.Layout),
			DrawMs:     durationToMillis(stats.Draw),
			ShowMs:     durationToMillis(show),
		},
		Counts: FrameCounts{
			Dispatched: dispatched,
			Nodes:      stats.Nodes,
			Live:       stats.Live,
			Created:    stats.Created,
			Reclaimed:  stats.Reclaimed,
			Messages:   messages,
		},
		Failed: stats.Failed,
	}
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
