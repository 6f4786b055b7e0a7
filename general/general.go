// Package general provides the pluggable strategic-module contract used by
// Army.Fight to select targets, plus the reference implementations.
package general

import (
	"fmt"
	"sort"

	"github.com/nstehr/battlesim/model"
)

// UnitLister is the read-only view a strategic module gets of an army: its
// own side or the opponent. It deliberately exposes nothing that would let
// a module mutate state, matching the capability contract's read-only
// guarantee.
type UnitLister interface {
	Living() []*model.Unit
}

// StrategicModule is the one-method polymorphism surface: given the map, the
// caller's own army and the opposing army, return a target assignment for
// the caller's own units. Implementations are not bound to an army; both
// sides are passed to every GetTargets call.
type StrategicModule interface {
	// GetTargets is called exactly once per tick per side. self is the
	// calling army's living units (read-only); enemy is the opposing
	// army's living units (read-only). The returned map is unit ID ->
	// target unit ID; a unit absent from the map idles this tick.
	GetTargets(m *model.Map, self, enemy UnitLister) map[int]int
}

// Constructor builds a fresh StrategicModule instance, used by the registry
// so the CLI can look up a named module.
type Constructor func() StrategicModule

var registry = map[string]Constructor{
	"reactive":   func() StrategicModule { return NewReactive() },
	"aggressive": func() StrategicModule { return NewAggressive() },
	"rolebased":  func() StrategicModule { return NewRoleBased() },
	"tactical":   func() StrategicModule { return NewTactical() },
}

// Register adds (or replaces) a named constructor. Used by callers wiring a
// custom module, such as ScriptedGeneral built from an expr source file.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// New looks up a strategic module by its registry name.
func New(name string) (StrategicModule, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategic module %q", name)
	}
	return ctor(), nil
}

// nearestLiving returns the living unit in candidates closest to pos by
// squared distance, optionally bounded by maxDist (use -1 for unbounded).
// Ties resolve to first-found order, matching the living-units iteration.
func nearestLiving(pos model.Vec2, candidates []*model.Unit, maxDist float64) *model.Unit {
	var best *model.Unit
	bestD := maxDist * maxDist
	unbounded := maxDist < 0
	for _, c := range candidates {
		if !c.IsAlive() {
			continue
		}
		d := model.DistSquared(pos, c.Position)
		if unbounded {
			if best == nil || d < bestD {
				best, bestD = c, d
			}
			continue
		}
		if d <= bestD && (best == nil || d < bestD) {
			best, bestD = c, d
		}
	}
	return best
}

// byKind filters units by kind.
func byKind(units []*model.Unit, k model.Kind) []*model.Unit {
	out := make([]*model.Unit, 0, len(units))
	for _, u := range units {
		if u.Kind == k {
			out = append(out, u)
		}
	}
	return out
}

// sortByID gives a deterministic, reproducible iteration order over a unit
// slice wherever the caller's own ordering isn't already stable.
func sortByID(units []*model.Unit) []*model.Unit {
	sorted := make([]*model.Unit, len(units))
	copy(sorted, units)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return sorted
}
