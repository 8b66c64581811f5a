package game

// Handle identifies a scheduled tick. The zero Handle is never issued.
type Handle uint64

// Scheduler runs tick callbacks on the host's frame cadence.
type Scheduler interface {
	// RequestTick schedules fn for the next frame. While a tick is pending,
	// further requests return the pending handle and do not schedule again.
	RequestTick(fn func()) Handle
	// CancelTick drops the pending tick if h identifies it.
	// Unknown or stale handles are ignored.
	CancelTick(h Handle)
}

// FrameScheduler holds at most one pending tick and runs it when the host
// signals a display frame. Hosts call Frame once per refresh (raylib after
// vsync, the terminal loop on its ticker); tests call it to step by hand.
type FrameScheduler struct {
	last    Handle
	pending Handle
	fn      func()
}

// NewFrameScheduler creates an idle scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// RequestTick implements Scheduler.
func (s *FrameScheduler) RequestTick(fn func()) Handle {
	if s.pending != 0 {
		return s.pending
	}
	s.last++
	s.pending = s.last
	s.fn = fn
	return s.pending
}

// CancelTick implements Scheduler.
func (s *FrameScheduler) CancelTick(h Handle) {
	if h == 0 || h != s.pending {
		return
	}
	s.pending = 0
	s.fn = nil
}

// Pending reports whether a tick is scheduled.
func (s *FrameScheduler) Pending() bool {
	return s.pending != 0
}

// Frame runs the pending tick, if any. The callback may request the next
// tick. Returns whether a tick ran.
func (s *FrameScheduler) Frame() bool {
	if s.pending == 0 {
		return false
	}
	fn := s.fn
	s.pending = 0
	s.fn = nil
	fn()
	return true
}

// Step runs up to n frames and returns how many ticks ran.
func (s *FrameScheduler) Step(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		if !s.Frame() {
			break
		}
		ran++
	}
	return ran
}
