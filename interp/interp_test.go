package interp

import "testing"

type captureSink struct{ lines []string }

func (c *captureSink) Print(b []byte) { c.lines = append(c.lines, string(b)) }

func runToCompletion(t *testing.T, in *Interp, sink *captureSink, inputs []string, maxTicks int) {
	t.Helper()
	inputIdx := 0
	for i := 0; i < maxTicks; i++ {
		if in.Completed() {
			return
		}
		res := in.Tick(sink)
		switch res {
		case Finished:
			return
		case AwaitInput:
			if inputIdx >= len(inputs) {
				t.Fatalf("program awaits input but none left")
			}
			if err := in.ProvideInput(inputs[inputIdx]); err != nil {
				t.Fatalf("provide_input: %v", err)
			}
			inputIdx++
		}
	}
	t.Fatalf("program did not complete within %d ticks", maxTicks)
}

func TestHelloPrintsGreetingAndCompletes(t *testing.T) {
	in := New(ProgramHello)
	sink := &captureSink{}
	runToCompletion(t, in, sink, nil, 10)
	if len(sink.lines) != 1 || sink.lines[0] != "Hello, world!" {
		t.Fatalf("expected [\"Hello, world!\"], got %v", sink.lines)
	}
	if !in.Completed() {
		t.Fatalf("expected completed")
	}
}

func TestAverageComputesMean(t *testing.T) {
	in := New(ProgramAverage)
	sink := &captureSink{}
	runToCompletion(t, in, sink, []string{"5", "7", "quit"}, 50)
	last := sink.lines[len(sink.lines)-1]
	if last != "6" {
		t.Fatalf("expected average 6, got %q", last)
	}
}

func TestPiOneTermPrintsFour(t *testing.T) {
	in := New(ProgramPi)
	sink := &captureSink{}
	runToCompletion(t, in, sink, []string{"1"}, 50)
	last := sink.lines[len(sink.lines)-1]
	if last != "4" {
		t.Fatalf("expected 4, got %q", last)
	}
}

func TestPiTwoTermsPrintsTwoThirds(t *testing.T) {
	in := New(ProgramPi)
	sink := &captureSink{}
	runToCompletion(t, in, sink, []string{"2"}, 50)
	last := sink.lines[len(sink.lines)-1]
	if last != "2.666666666666667" {
		t.Fatalf("expected 2.666..., got %q", last)
	}
}

func TestBlockedOnInputUntilProvided(t *testing.T) {
	in := New(ProgramAverage)
	sink := &captureSink{}
	// First four ticks: LET sum, LET count, PRINT prompt, then INPUT blocks.
	for i := 0; i < 4; i++ {
		in.Tick(sink)
	}
	if !in.BlockedOnInput() {
		t.Fatalf("expected blocked on input")
	}
	if err := in.ProvideInput("3"); err != nil {
		t.Fatalf("provide_input: %v", err)
	}
	if in.BlockedOnInput() {
		t.Fatalf("expected unblocked after provide_input")
	}
}

func TestNumsCountsToTen(t *testing.T) {
	in := New(ProgramNums)
	sink := &captureSink{}
	runToCompletion(t, in, sink, nil, 100)
	if len(sink.lines) != 10 || sink.lines[9] != "10" {
		t.Fatalf("expected 10 lines ending in 10, got %v", sink.lines)
	}
}
