// Package interp is the embedded bytecode-ish interpreter the desktop
// runs programs under. The core depends on it only through the
// tick/feed-input contract in spec §6; this package supplies a small
// concrete language, "deskbasic", sufficient to run the four
// preinstalled programs.
package interp

import (
	"errors"
	"strconv"
	"strings"
)

// OutputSink is the capability an interpreter prints through during a
// tick: "has a method that accepts a byte slice and writes a line."
// Implemented by window.Window, held for the duration of one Tick call —
// not an inheritance relationship.
type OutputSink interface {
	Print(line []byte)
}

// TickResult is the closed tagged union a tick resolves to.
type TickResult int

const (
	Continuing TickResult = iota
	Finished
	AwaitInput
)

// RuntimeError is an error type carrying a message. Tick itself returns
// no error: a GOTO or IF to an undefined label prints a message through
// the sink and finishes the program, and division by zero evaluates to 0.
type RuntimeError struct{ Msg string }

func (e *RuntimeError) Error() string { return e.Msg }

// value is deskbasic's single dynamically-typed value: either a number
// or a string. INPUT decides the tag based on whether the captured text
// parses as a number.
type value struct {
	isStr bool
	num   float64
	str   string
}

func numVal(f float64) value { return value{num: f} }
func strVal(s string) value  { return value{isStr: true, str: s} }

func (v value) equalTo(other value, op string) bool {
	if v.isStr || other.isStr {
		a, b := v.asString(), other.asString()
		switch op {
		case "=":
			return a == b
		case "!=":
			return a != b
		default:
			return false
		}
	}
	switch op {
	case "=":
		return v.num == other.num
	case "!=":
		return v.num != other.num
	case "<":
		return v.num < other.num
	case ">":
		return v.num > other.num
	case "<=":
		return v.num <= other.num
	case ">=":
		return v.num >= other.num
	}
	return false
}

func (v value) asString() string {
	if v.isStr {
		return v.str
	}
	return formatNumber(v.num)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Interp is one running instance of a deskbasic program.
type Interp struct {
	prog *program
	env  map[string]value

	pc int

	blocked    bool
	pendingVar string
	completed  bool
	parseErr   error
}

// New parses source and constructs a fresh interpreter instance. A parse
// failure is not returned as an error: it is surfaced on the first Tick
// as a Finished result after printing the error, matching spec §7
// ("errors ... recovered locally ... state machine remains in its
// current mode").
func New(source string) *Interp {
	prog, err := parseProgram(source)
	return &Interp{
		prog:     prog,
		env:      make(map[string]value),
		parseErr: err,
	}
}

// Tick executes one unit of program progress: until the end of the
// current statement for most statement kinds, or to the point of
// blocking for INPUT.
func (in *Interp) Tick(sink OutputSink) TickResult {
	if in.completed {
		return Finished
	}
	if in.parseErr != nil {
		sink.Print([]byte(in.parseErr.Error()))
		in.completed = true
		return Finished
	}
	if in.blocked {
		// Runnable-ness is gated on BlockedOnInput by the scheduler; a
		// Tick should not be issued while blocked, but stay inert if it is.
		return AwaitInput
	}
	if in.pc >= len(in.prog.stmts) {
		in.completed = true
		return Finished
	}

	switch st := in.prog.stmts[in.pc].(type) {
	case printStmt:
		var parts []string
		for _, e := range st.args {
			parts = append(parts, e.eval(in.env).asString())
		}
		sink.Print([]byte(strings.Join(parts, " ")))
		in.pc++
		return Continuing

	case letStmt:
		in.env[st.name] = st.expr.eval(in.env)
		in.pc++
		return Continuing

	case inputStmt:
		in.blocked = true
		in.pendingVar = st.name
		return AwaitInput

	case gotoStmt:
		target, ok := in.prog.labels[st.label]
		if !ok {
			sink.Print([]byte("undefined label " + st.label))
			in.completed = true
			return Finished
		}
		in.pc = target
		return Continuing

	case ifStmt:
		left := st.left.eval(in.env)
		right := st.right.eval(in.env)
		if left.equalTo(right, st.op) {
			target, ok := in.prog.labels[st.label]
			if !ok {
				sink.Print([]byte("undefined label " + st.label))
				in.completed = true
				return Finished
			}
			in.pc = target
		} else {
			in.pc++
		}
		return Continuing

	case endStmt:
		in.completed = true
		return Finished
	}

	in.completed = true
	return Finished
}

// ProvideInput resumes a program blocked on INPUT. The captured text is
// stored as a number if it parses as one, otherwise as a raw string —
// this lets a deskbasic program compare the same INPUT both against a
// sentinel word (e.g. "quit") and use it arithmetically.
func (in *Interp) ProvideInput(s string) error {
	if !in.blocked {
		return errors.New("interp: not awaiting input")
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		in.env[in.pendingVar] = numVal(f)
	} else {
		in.env[in.pendingVar] = strVal(s)
	}
	in.blocked = false
	in.pendingVar = ""
	in.pc++
	return nil
}

// BlockedOnInput reports whether the program is waiting for provide_input.
func (in *Interp) BlockedOnInput() bool { return in.blocked }

// Completed reports whether the program has finished (normally or via error).
func (in *Interp) Completed() bool { return in.completed }
