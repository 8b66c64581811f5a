package game

import "testing"

func TestFrameSchedulerNoDoubleScheduling(t *testing.T) {
	s := NewFrameScheduler()
	calls := 0
	fn := func() { calls++ }

	h1 := s.RequestTick(fn)
	h2 := s.RequestTick(fn)
	if h1 == 0 {
		t.Fatal("expected a non-zero handle")
	}
	if h1 != h2 {
		t.Errorf("second request while pending should return %d, got %d", h1, h2)
	}

	if !s.Frame() {
		t.Fatal("expected pending tick to run")
	}
	if s.Frame() {
		t.Error("second frame ran without a new request")
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	s := NewFrameScheduler()
	ran := false
	h := s.RequestTick(func() { ran = true })

	s.CancelTick(h)
	if s.Pending() {
		t.Fatal("tick still pending after cancel")
	}
	if s.Frame() || ran {
		t.Error("cancelled tick ran")
	}

	// Cancelling again, or cancelling the zero handle, is a no-op.
	s.CancelTick(h)
	s.CancelTick(0)
}

func TestFrameSchedulerStaleHandle(t *testing.T) {
	s := NewFrameScheduler()
	old := s.RequestTick(func() {})
	s.Frame()

	ran := false
	s.RequestTick(func() { ran = true })
	s.CancelTick(old)
	if !s.Pending() {
		t.Fatal("stale handle cancelled the current tick")
	}
	s.Frame()
	if !ran {
		t.Error("current tick did not run")
	}
}

func TestFrameSchedulerRescheduleFromCallback(t *testing.T) {
	s := NewFrameScheduler()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			s.RequestTick(tick)
		}
	}
	s.RequestTick(tick)

	if ran := s.Step(10); ran != 3 {
		t.Errorf("expected 3 ticks, got %d", ran)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
	if s.Pending() {
		t.Error("expected no pending tick")
	}
}
