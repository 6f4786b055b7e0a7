package battle

import "fmt"

// InvalidScenarioError means the loader produced an army or map that
// violates an invariant (out-of-bounds unit, overlapping initial placement,
// unknown letter). It is fatal before the first tick.
type InvalidScenarioError struct {
	Reason string
}

func (e *InvalidScenarioError) Error() string {
	return fmt.Sprintf("invalid scenario: %s", e.Reason)
}

// InvariantBreachError means a post-condition of a stage was violated (hp
// negative after application, a unit belongs to no army). It is fatal; the
// battle aborts after one final observer Render call, which is given the
// state as it stands when the breach is detected. No earlier valid state
// is kept.
type InvariantBreachError struct {
	Reason string
}

func (e *InvariantBreachError) Error() string {
	return fmt.Sprintf("invariant breach: %s", e.Reason)
}
