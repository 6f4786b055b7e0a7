package army

import (
	"math"
	"math/rand"

	"github.com/nstehr/battlesim/model"
)

// translate turns one (unit, target) pair into an Action, or nil if nothing
// should happen this tick. allies is the caller's own living units (used
// for collision checks and to resolve a Monk's ally-heal target); enemies
// is the opposing army's living units.
func translate(m *model.Map, unit, target *model.Unit, allies, enemies []*model.Unit) *model.Action {
	reach := unit.Reach(target)
	d2 := model.DistSquared(unit.Position, target.Position)

	if d2 <= reach*reach {
		return translateInReach(unit, target, allies)
	}
	return translateMove(m, unit, target, allies, enemies)
}

// translateInReach builds the in-range Action for a (unit, target) pair,
// per the priority order: Monk heal/convert, else Attack, else nothing.
func translateInReach(unit, target *model.Unit, allies []*model.Unit) *model.Action {
	targetIsAlly := isMember(target, allies)

	if unit.Kind == model.MonkKind {
		if targetIsAlly {
			if target.ID == unit.ID {
				return nil
			}
			return &model.Action{Kind: model.HealAction, Attacker: unit, Target: target}
		}
		if unit.Cooldown <= 0 {
			return &model.Action{Kind: model.ConversionAction, Attacker: unit, Target: target}
		}
		return nil
	}

	if !targetIsAlly && unit.Cooldown <= 0 {
		return &model.Action{Kind: model.AttackAction, Attacker: unit, Target: target}
	}
	return nil
}

// translateMove attempts to close the distance to target, trying the direct
// heading then +1 and -1 radian alternates if collision vetoes each.
func translateMove(m *model.Map, unit, target *model.Unit, allies, enemies []*model.Unit) *model.Action {
	if unit.Speed <= 0 {
		return nil
	}
	toTarget := target.Position.Sub(unit.Position)
	if toTarget.LengthSquared() == 0 {
		return nil
	}
	dist := math.Sqrt(toTarget.LengthSquared())
	dir := toTarget.Scale(1 / dist)

	for _, theta := range []float64{0, 1, -1} {
		heading := dir
		if theta != 0 {
			heading = dir.Rotated(theta)
		}
		candidate := unit.Position.Add(heading.Scale(unit.Speed))
		candidate = m.Clamp(candidate)
		if !wouldCollide(m, unit, candidate, allies, enemies) {
			return &model.Action{Kind: model.MoveAction, Attacker: unit, NewPosition: candidate}
		}
	}
	return nil
}

// isMember reports whether u is present (by ID) in units.
func isMember(u *model.Unit, units []*model.Unit) bool {
	for _, o := range units {
		if o.ID == u.ID {
			return true
		}
	}
	return false
}

// apply mutates state for one already-translated Action. rng is the
// battle's single PRNG stream; Pikeman miss and Crossbowman dodge rolls
// both draw from it, in this fixed order, so tests can pin exact outcomes.
func apply(rng *rand.Rand, m *model.Map, a *Army, enemyArmy *Army, action *model.Action) {
	switch action.Kind {
	case model.MoveAction:
		action.Attacker.Position = m.Clamp(action.NewPosition)

	case model.AttackAction:
		applyAttack(rng, enemyArmy, action)

	case model.HealAction:
		applyHeal(action)

	case model.ConversionAction:
		applyConversion(a, enemyArmy, action)
	}
}

func applyHeal(action *model.Action) {
	monk, ally := action.Attacker, action.Target
	ally.HP = minInt(ally.MaxHP, ally.HP+monk.Attack)
}

func applyAttack(rng *rand.Rand, enemyArmy *Army, action *model.Action) {
	attacker, target := action.Attacker, action.Target

	// ActionDropped: the target died earlier in this resolution pass.
	// Cooldown still consumes; no damage is applied.
	if !target.IsAlive() {
		attacker.Cooldown = attacker.ReloadTime
		return
	}

	effectiveAttack := attacker.Attack
	bonus := attacker.ComputeBonus(target)

	dodged := false
	if attacker.Kind == model.CrossbowmanKind {
		dodged = crossbowmanDodgeRoll(rng, target)
	}
	if attacker.Kind == model.PikemanKind && pikemanMissRoll(rng) {
		// A miss zeroes this attack's whole damage contribution, bonus included.
		effectiveAttack, bonus = 0, 0
	}

	attacker.Cooldown = attacker.ReloadTime

	if dodged {
		// No hp change, no last_attacker update on the target, but the
		// attacker still records having acted against it.
		attacker.LastAttacked = idPtr(target.ID)
	} else {
		damage := effectiveAttack + bonus - target.Armor
		if damage < 0 {
			damage = 0
		}
		target.HP = maxInt(0, target.HP-damage)
		attacker.LastAttacked = idPtr(target.ID)
		target.LastAttacker = idPtr(attacker.ID)
	}

	if attacker.Kind == model.ElephantKind {
		trample(enemyArmy, attacker)
	}
}

// trample applies the Elephant's area-of-effect damage to every living
// enemy within 0.25 of the Elephant's current position, including the
// directly attacked target. It fires even when the primary attack dodged.
func trample(enemyArmy *Army, elephant *model.Unit) {
	const trampleRadius = 0.25
	for _, e := range enemyArmy.Living() {
		if model.DistSquared(elephant.Position, e.Position) <= trampleRadius*trampleRadius {
			e.HP = maxInt(0, e.HP-elephant.Attack)
		}
	}
}

// crossbowmanDodgeRoll draws from rng and reports whether the target dodges
// a Crossbowman's attack this resolution.
func crossbowmanDodgeRoll(rng *rand.Rand, target *model.Unit) bool {
	baseMiss := 0.08
	speedFactor := 0.015 * maxFloat(0, target.Speed-1)
	dodge := minFloat(0.20, baseMiss+speedFactor)
	return rng.Float64() < dodge
}

// pikemanMissRoll draws from rng and reports a flat 16% independent miss.
func pikemanMissRoll(rng *rand.Rand) bool {
	return rng.Float64() < 0.16
}

func applyConversion(selfArmy, enemyArmy *Army, action *model.Action) {
	monk, enemy := action.Attacker, action.Target
	enemyArmy.Remove(enemy.ID)
	enemy.ArmyID = selfArmy.ID
	selfArmy.Add(enemy)
	monk.Cooldown = monk.ReloadTime
	enemy.ClearCrossArmyMemory()
}

func idPtr(id int) *int {
	return &id
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
