package telemetry

import (
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func withClock(pc *PerfCollector, c *fakeClock) {
	pc.now = c.now
}

func TestPerfCollector_PhaseTiming(t *testing.T) {
	clock := newFakeClock()
	pc := NewPerfCollector(10)
	withClock(pc, clock)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseAdvance)
		clock.advance(100 * time.Microsecond)
		pc.StartPhase(PhaseLinks)
		clock.advance(300 * time.Microsecond)
		pc.StartPhase(PhaseDraw)
		clock.advance(600 * time.Microsecond)
		pc.EndTick()
		clock.advance(15 * time.Millisecond)
	}

	stats := pc.Stats()
	if stats.AvgTickDuration != time.Millisecond {
		t.Errorf("expected 1ms ticks, got %v", stats.AvgTickDuration)
	}
	if stats.PhaseAvg[PhaseLinks] != 300*time.Microsecond {
		t.Errorf("expected 300us links phase, got %v", stats.PhaseAvg[PhaseLinks])
	}

	want := [numPhases]float64{10, 30, 60}
	for ph, pct := range want {
		if got := stats.PhasePct[ph]; got < pct-0.001 || got > pct+0.001 {
			t.Errorf("%s: expected %.0f%%, got %.3f%%", Phase(ph), pct, got)
		}
	}

	if stats.FrameDuration != 16*time.Millisecond {
		t.Errorf("expected 16ms frames, got %v", stats.FrameDuration)
	}
	if stats.FPS < 62 || stats.FPS > 63 {
		t.Errorf("expected ~62.5 FPS, got %v", stats.FPS)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	clock := newFakeClock()
	pc := NewPerfCollector(3)
	withClock(pc, clock)

	durations := []time.Duration{10, 10, 10, 40, 40, 40}
	for _, d := range durations {
		pc.StartTick()
		pc.StartPhase(PhaseAdvance)
		clock.advance(d * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration != 40*time.Microsecond {
		t.Errorf("expected window to hold only the last 3 ticks, avg %v", stats.AvgTickDuration)
	}
	if stats.MinTickDuration != 40*time.Microsecond || stats.MaxTickDuration != 40*time.Microsecond {
		t.Errorf("unexpected min/max %v/%v", stats.MinTickDuration, stats.MaxTickDuration)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()
	if stats.AvgTickDuration != 0 || stats.FPS != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseAdvance.String() != "advance" || PhaseDraw.String() != "draw" {
		t.Error("unexpected phase names")
	}
	if Phase(42).String() != "unknown" {
		t.Error("expected unknown for out-of-range phase")
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	var s PerfStats
	s.AvgTickDuration = 250 * time.Microsecond
	s.PhasePct[PhaseLinks] = 42
	row := s.ToCSV(600)
	if row.WindowEnd != 600 || row.AvgTickUS != 250 || row.LinksPct != 42 {
		t.Errorf("unexpected CSV row %+v", row)
	}
}
