package army

import (
	"math/rand"

	"github.com/nstehr/battlesim/model"
)

// Fight performs one side's three-stage tick: cooldown decay, target
// assignment via the army's strategic module, and action resolution against
// the opposing army. rng is the battle's single PRNG stream, threaded down
// so every stochastic draw in this tick is reproducible from a seed.
func (a *Army) Fight(rng *rand.Rand, m *model.Map, enemyArmy *Army) {
	// Stage 1: cooldown decay. Every unit, alive or not, decrements; dead
	// units' cooldowns are never read again so this is harmless.
	for _, u := range a.Units {
		if u.Cooldown > 0 {
			u.Cooldown--
		}
	}

	// Stage 2: target assignment. The strategic module's return is unit ID
	// -> target ID; a duplicate unit key means last write wins.
	targetIDs := a.Strategy.GetTargets(m, a, enemyArmy)

	// Stage 3: translate each pair into an Action, then apply the whole
	// list in order so a later attacker sees earlier attackers' hp effects.
	allies := a.Living()
	enemies := enemyArmy.Living()

	// Iterate a.Units (not the target map) so translation order is fixed
	// by army composition order, not Go's randomized map iteration —
	// required for the determinism law to hold byte-for-byte.
	var actions []*model.Action
	for _, unit := range a.Units {
		if !unit.IsAlive() {
			continue
		}
		targetID, ok := targetIDs[unit.ID]
		if !ok {
			continue
		}
		target := findTarget(targetID, allies, enemies)
		if target == nil || !target.IsAlive() {
			continue // ActionDropped: target no longer exists or already dead.
		}
		if action := translate(m, unit, target, allies, enemies); action != nil {
			actions = append(actions, action)
		}
	}

	for _, action := range actions {
		apply(rng, m, a, enemyArmy, action)
	}
}

// findTarget resolves a target unit ID against either the caller's own
// living units (Monk heal) or the enemy's living units (everything else).
func findTarget(id int, allies, enemies []*model.Unit) *model.Unit {
	if u := findByID(allies, id); u != nil {
		return u
	}
	return findByID(enemies, id)
}

// findByID returns the unit with the given ID from units, or nil.
func findByID(units []*model.Unit, id int) *model.Unit {
	for _, u := range units {
		if u.ID == id {
			return u
		}
	}
	return nil
}
