// Package battle drives the tick loop: it owns the map and the two armies,
// alternates their Fight calls in a fixed initiative order, and notifies an
// Observer at each tick boundary.
package battle

import (
	"log/slog"
	"math/rand"

	"github.com/nstehr/battlesim/army"
	"github.com/nstehr/battlesim/model"
)

// Outcome is the battle's terminal result.
type Outcome struct {
	Winner    string // "A", "B", or "" for a draw
	Ticks     int
	Cancelled bool
}

// Battle owns the map, both armies, the shared PRNG stream, and the
// observer hook. No field here is ever touched by a strategic module.
type Battle struct {
	Map      *model.Map
	A, B     *army.Army
	Rng      *rand.Rand
	Observer Observer

	tick int
	prev stateSnapshot
}

// New constructs a Battle. If observer is nil, HeadlessObserver is used.
func New(m *model.Map, a, b *army.Army, rng *rand.Rand, observer Observer) *Battle {
	if observer == nil {
		observer = HeadlessObserver{}
	}
	return &Battle{Map: m, A: a, B: b, Rng: rng, Observer: observer}
}

// Run executes ticks until either army is empty, the optional tick cap is
// reached, or the observer signals Quit. maxTicks <= 0 means no cap.
func (b *Battle) Run(maxTicks int) (Outcome, error) {
	b.Observer.Init()
	b.prev = takeSnapshot(b.A, b.B)

	for {
		if b.terminal(maxTicks) {
			break
		}

		cancelled, err := b.Tick()
		if err != nil {
			return Outcome{Ticks: b.tick}, err
		}
		if cancelled {
			return Outcome{Ticks: b.tick, Cancelled: true}, nil
		}
	}

	return b.outcome(), nil
}

// Tick performs exactly one tick in strict order: notify the observer of
// pre-tick state, run side A's fight, then side B's, increment the tick
// counter, and notify the observer of post-tick state. Returns true if the
// observer requested cancellation at either notification; the tick still
// runs to completion first.
func (b *Battle) Tick() (cancelled bool, err error) {
	quit := b.Observer.Render(b.Map, b.A, b.B, nil) == Quit

	b.A.Fight(b.Rng, b.Map, b.B)
	b.B.Fight(b.Rng, b.Map, b.A)

	if err := b.checkInvariants(); err != nil {
		b.Observer.Render(b.Map, b.A, b.B, nil)
		return false, err
	}

	b.tick++

	cur := takeSnapshot(b.A, b.B)
	events := detectEvents(b.tick, b.prev, cur)
	b.prev = cur

	if len(events) > 0 {
		slog.Debug("tick events", "tick", b.tick, "count", len(events))
	}

	if sig := b.Observer.Render(b.Map, b.A, b.B, events); sig == Quit || quit {
		return true, nil
	}
	return false, nil
}

// terminal evaluates the battle's termination predicate.
func (b *Battle) terminal(maxTicks int) bool {
	if b.A.IsEmpty() || b.B.IsEmpty() {
		return true
	}
	if maxTicks > 0 && b.tick >= maxTicks {
		return true
	}
	return false
}

// outcome classifies the finished battle: A wins, B wins, or a draw (tick
// cap reached with both non-empty, or both empty simultaneously).
func (b *Battle) outcome() Outcome {
	aEmpty, bEmpty := b.A.IsEmpty(), b.B.IsEmpty()
	switch {
	case aEmpty && bEmpty:
		return Outcome{Ticks: b.tick}
	case bEmpty:
		return Outcome{Winner: "A", Ticks: b.tick}
	case aEmpty:
		return Outcome{Winner: "B", Ticks: b.tick}
	default:
		return Outcome{Ticks: b.tick}
	}
}

// checkInvariants enforces the quantified invariants that must hold after
// any tick: hp bounds, non-negative cooldowns, in-bounds positions, and
// correct army membership. A violation is fatal per the error taxonomy.
func (b *Battle) checkInvariants() error {
	for _, side := range []*army.Army{b.A, b.B} {
		for _, u := range side.Units {
			if u.HP < 0 || u.HP > u.MaxHP {
				return &InvariantBreachError{Reason: "unit hp out of [0, max_hp] range"}
			}
			if u.Cooldown < 0 {
				return &InvariantBreachError{Reason: "unit cooldown went negative"}
			}
			if u.ArmyID != side.ID {
				return &InvariantBreachError{Reason: "unit army back-reference does not match holding army"}
			}
			if u.IsAlive() && !b.Map.InBounds(u.Position) {
				return &InvariantBreachError{Reason: "living unit outside map bounds"}
			}
		}
	}
	return nil
}
