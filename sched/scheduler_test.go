package sched

import (
	"testing"

	"deskos/fb"
	"deskos/interp"
	"deskos/window"
)

func newRunningWindow(t *testing.T, screen *fb.Screen, x, y int, source string) *window.Window {
	t.Helper()
	w := window.New(screen, x, y)
	w.Mode = window.Running
	w.Interp = interp.New(source)
	return w
}

func TestChooseSkipsBlockedAndCompleted(t *testing.T) {
	screen := fb.NewSimulationScreen()
	blocked := newRunningWindow(t, screen, 0, 1, interp.ProgramAverage)
	blocked.Interp.Tick(blocked) // LET sum = 0
	blocked.Interp.Tick(blocked) // LET count = 0
	blocked.Interp.Tick(blocked) // PRINT "Enter a number:"
	blocked.Interp.Tick(blocked) // INPUT n -> AwaitInput

	done := newRunningWindow(t, screen, 1, 1, interp.ProgramHello)
	done.Interp.Tick(done) // PRINT
	done.Interp.Tick(done) // END -> Finished

	idle := window.New(screen, 2, 1) // Listing, not runnable

	runner := newRunningWindow(t, screen, 3, 1, interp.ProgramNums)

	windows := []*window.Window{blocked, done, idle, runner}
	s := New()

	chosen := s.Tick(windows)
	if chosen != 3 {
		t.Fatalf("expected only runnable window (index 3) chosen, got %d", chosen)
	}
}

func TestChoosePrefersLowestVruntimeThenLowestIndex(t *testing.T) {
	screen := fb.NewSimulationScreen()
	a := newRunningWindow(t, screen, 0, 1, interp.ProgramNums)
	b := newRunningWindow(t, screen, 1, 1, interp.ProgramNums)
	a.Vruntime = 5
	b.Vruntime = 5

	winner, n := pickWinner([]*window.Window{a, b})
	if n != 2 || winner != 0 {
		t.Fatalf("expected tie broken toward index 0, got winner=%d n=%d", winner, n)
	}

	a.Vruntime = 10
	b.Vruntime = 3
	winner, n = pickWinner([]*window.Window{a, b})
	if n != 2 || winner != 1 {
		t.Fatalf("expected lower-vruntime window 1 to win, got winner=%d n=%d", winner, n)
	}
}

func TestSliceIsNonPreemptiveForItsDuration(t *testing.T) {
	screen := fb.NewSimulationScreen()
	a := newRunningWindow(t, screen, 0, 1, interp.ProgramNums)
	b := newRunningWindow(t, screen, 1, 1, interp.ProgramNums)
	// Only 'a' is runnable at first tick; SCHED_LATENCY/1 ticks are granted.
	s := New()

	first := s.Tick([]*window.Window{a})
	if first != 0 {
		t.Fatalf("expected window 0 chosen, got %d", first)
	}
	if s.runningCountdown != SchedLatency-1 {
		t.Fatalf("expected full slice granted for n=1, got countdown %d", s.runningCountdown)
	}

	// 'b' becomes runnable mid-slice; it must not preempt 'a'.
	_ = b
	windows := []*window.Window{a, b}
	for i := 0; i < 3; i++ {
		chosen := s.Tick(windows)
		if chosen != 0 {
			t.Fatalf("tick %d: expected slice holder (0) to keep running, got %d", i, chosen)
		}
	}
}

func TestMinRunnableVruntimeIsZeroWhenNoneRunnable(t *testing.T) {
	screen := fb.NewSimulationScreen()
	idle := window.New(screen, 0, 1)
	if got := MinRunnableVruntime([]*window.Window{idle}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestRepairFairnessResetsToMinimum(t *testing.T) {
	screen := fb.NewSimulationScreen()
	a := newRunningWindow(t, screen, 0, 1, interp.ProgramNums)
	b := newRunningWindow(t, screen, 1, 1, interp.ProgramNums)
	a.Vruntime = 20
	b.Vruntime = 4

	unblocked := newRunningWindow(t, screen, 2, 1, interp.ProgramAverage)
	unblocked.Vruntime = 999

	windows := []*window.Window{a, b, unblocked}
	RepairFairness(unblocked, windows)
	if unblocked.Vruntime != 4 {
		t.Fatalf("expected vruntime repaired to min runnable (4), got %d", unblocked.Vruntime)
	}
}

// TestRepairFairnessExcludesTheWindowBeingRepaired covers the case where
// ProvideInput has already marked the window runnable again before repair
// runs, and its stale pre-unblock vruntime happens to be the lowest of any
// window: that stale value must not be picked as its own repair target.
func TestRepairFairnessExcludesTheWindowBeingRepaired(t *testing.T) {
	screen := fb.NewSimulationScreen()
	a := newRunningWindow(t, screen, 0, 1, interp.ProgramNums)
	b := newRunningWindow(t, screen, 1, 1, interp.ProgramNums)
	a.Vruntime = 20
	b.Vruntime = 12

	unblocked := newRunningWindow(t, screen, 2, 1, interp.ProgramAverage)
	unblocked.Vruntime = 1 // stale, lower than every other runnable window

	windows := []*window.Window{a, b, unblocked}
	RepairFairness(unblocked, windows)
	if unblocked.Vruntime != 12 {
		t.Fatalf("expected vruntime repaired to min of the OTHER runnable windows (12), got %d", unblocked.Vruntime)
	}
}
