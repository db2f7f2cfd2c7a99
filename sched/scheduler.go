// Package sched implements the desktop's fair-share process scheduler: a
// single-threaded, cooperative, CFS-style chooser over the four windows'
// interpreters. It is stateless with respect to window contents — it only
// tracks which window currently holds the CPU slice and how many ticks
// remain on it.
package sched

import (
	"deskos/interp"
	"deskos/window"
)

// SchedLatency is the length, in ticks, of one full scheduling round
// shared evenly among all runnable programs.
const SchedLatency = 48

// Scheduler chooses which window's interpreter runs on each tick,
// favoring whichever runnable program has accumulated the least vruntime.
type Scheduler struct {
	currentProcess   int
	runningCountdown uint
	hasCurrent       bool
}

// New returns a scheduler with no process selected yet.
func New() *Scheduler {
	return &Scheduler{}
}

// Choose picks the window to run this tick, or -1 if none is runnable.
// It does not tick the interpreter or mutate vruntime; Tick does that
// with the returned index.
func (s *Scheduler) Choose(windows []*window.Window) int {
	if s.runningCountdown > 0 {
		s.runningCountdown--
		if s.hasCurrent && windows[s.currentProcess].Runnable() {
			return s.currentProcess
		}
		return -1
	}

	winner, n := pickWinner(windows)
	if n == 0 {
		s.hasCurrent = false
		return -1
	}

	s.currentProcess = winner
	s.hasCurrent = true
	s.runningCountdown = uint(SchedLatency/n) - 1
	return winner
}

// pickWinner scans every window, returning the runnable one with the
// smallest vruntime (ties broken by lowest index) and the runnable count.
func pickWinner(windows []*window.Window) (winner, n int) {
	winner = -1
	best := uint(0)
	for i, w := range windows {
		if !w.Runnable() {
			continue
		}
		n++
		if winner == -1 || w.Vruntime < best {
			winner = i
			best = w.Vruntime
		}
	}
	return winner, n
}

// Tick runs the full per-tick algorithm from §4.3: choose a window, tick
// its interpreter once with the window as output sink, account its
// vruntime, and react to the tick's result. It returns the chosen
// window's index, or -1 if no program ran this tick.
func (s *Scheduler) Tick(windows []*window.Window) int {
	chosen := s.Choose(windows)
	if chosen < 0 {
		return -1
	}

	w := windows[chosen]
	result := w.Interp.Tick(w)
	w.Vruntime++

	if result == interp.AwaitInput {
		w.BeginAwaitInput()
	}
	return chosen
}

// RepairFairness resets window w's vruntime to the minimum w held among
// currently runnable windows *before* w itself became runnable again, per
// the unblock-fairness rule in §4.3. Call this after a successful
// ProvideInput, regardless of whether ProvideInput has already flipped w
// back to runnable: w is excluded from its own scan, so its stale
// pre-unblock vruntime can never be picked as "the minimum".
func RepairFairness(w *window.Window, windows []*window.Window) {
	w.Vruntime = MinRunnableVruntimeExcluding(w, windows)
}

// MinRunnableVruntime returns the smallest vruntime among currently
// runnable windows, or zero if none are runnable. Used to repair fairness
// when a blocked program receives its input line.
func MinRunnableVruntime(windows []*window.Window) uint {
	return MinRunnableVruntimeExcluding(nil, windows)
}

// MinRunnableVruntimeExcluding returns the smallest vruntime among
// currently runnable windows other than exclude, or zero if none are
// runnable. Passing a nil exclude considers every runnable window.
func MinRunnableVruntimeExcluding(exclude *window.Window, windows []*window.Window) uint {
	min := uint(0)
	found := false
	for _, w := range windows {
		if w == exclude || !w.Runnable() {
			continue
		}
		if !found || w.Vruntime < min {
			min = w.Vruntime
			found = true
		}
	}
	return min
}
