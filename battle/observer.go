package battle

import (
	"fmt"
	"io"

	"github.com/nstehr/battlesim/army"
	"github.com/nstehr/battlesim/model"
)

// Signal is an Observer's answer to a render call: either keep going or
// stop the loop after the current tick completes.
type Signal int

const (
	Continue Signal = iota
	Quit
)

// Observer is the hook external renderers plug into. The core never
// inspects observer internals; it only calls Init once and Render at each
// notification point.
type Observer interface {
	Init()
	Render(m *model.Map, a, b *army.Army, events []Event) Signal
}

// HeadlessObserver is a zero-cost no-op implementation, the default for
// batch/plot runs where no human is watching.
type HeadlessObserver struct{}

func (HeadlessObserver) Init() {}

func (HeadlessObserver) Render(m *model.Map, a, b *army.Army, events []Event) Signal {
	return Continue
}

// TerminalObserver prints a compact summary line and event log to an
// io.Writer at every Render call, standing in for a human-facing terminal
// view. Render is called before and after each tick, so lines are numbered
// by render call, not by battle tick.
type TerminalObserver struct {
	Out  io.Writer
	tick int
}

func (t *TerminalObserver) Init() {
	fmt.Fprintln(t.Out, "battle started")
}

func (t *TerminalObserver) Render(m *model.Map, a, b *army.Army, events []Event) Signal {
	fmt.Fprintf(t.Out, "render %d: army %d=%d living, army %d=%d living\n",
		t.tick, a.ID, len(a.Living()), b.ID, len(b.Living()))
	for _, e := range events {
		fmt.Fprintf(t.Out, "  [%s] %s\n", e.Kind, e.Detail)
	}
	t.tick++
	return Continue
}
