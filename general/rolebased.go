package general

import "github.com/nstehr/battlesim/model"

// RoleBased is the ColonelArchBtw module: per-kind heuristics pick a
// preferred target type, falling back to last_attacker then the nearest
// living enemy when the preferred kind isn't present.
type RoleBased struct{}

// NewRoleBased constructs a RoleBased strategic module.
func NewRoleBased() *RoleBased {
	return &RoleBased{}
}

func (r *RoleBased) GetTargets(m *model.Map, self, enemy UnitLister) map[int]int {
	enemies := enemy.Living()
	ownUnits := self.Living()
	targets := make(map[int]int)

	for _, u := range ownUnits {
		var preferred *model.Unit

		switch u.Kind {
		case model.CrossbowmanKind:
			preferred = nearestLiving(u.Position, byKind(enemies, model.PikemanKind), -1)
		case model.PikemanKind:
			preferred = nearestLiving(u.Position, byKind(enemies, model.KnightKind), -1)
		case model.KnightKind:
			preferred = nearestLiving(u.Position, enemies, -1)
			if attacker := lastAttackerUnit(u, enemies); attacker != nil && attacker.Kind == model.PikemanKind {
				if cb := nearestLiving(u.Position, byKind(enemies, model.CrossbowmanKind), -1); cb != nil {
					preferred = cb
				}
			}
		case model.ElephantKind:
			ownCrossbowmen := byKind(ownUnits, model.CrossbowmanKind)
			if anyWithin(u.Position, ownCrossbowmen, 3) {
				preferred = nearestLiving(u.Position, byKind(enemies, model.CrossbowmanKind), -1)
			}
			if preferred == nil {
				preferred = nearestLiving(u.Position, enemies, -1)
			}
		case model.MonkKind:
			preferred = monkPreference(u, ownUnits, enemies)
		}

		if preferred == nil {
			preferred = lastAttackerUnit(u, enemies)
		}
		if preferred == nil {
			preferred = nearestLiving(u.Position, enemies, -1)
		}
		if preferred != nil {
			targets[u.ID] = preferred.ID
		}
	}
	return targets
}

// monkPreference implements the Monk-specific priority chain: re-engage a
// still-reloading last target, else heal the nearest wounded ally, else
// convert the nearest enemy Monk or Elephant, else attack the nearest enemy.
func monkPreference(monk *model.Unit, ownUnits, enemies []*model.Unit) *model.Unit {
	if monk.Cooldown > monk.ReloadTime/2 && monk.LastAttacked != nil {
		if t := findByID(enemies, *monk.LastAttacked); t != nil && t.IsAlive() {
			return t
		}
	}
	if ally := nearestWoundedAlly(monk, ownUnits, -1); ally != nil {
		return ally
	}
	convertible := append(byKind(enemies, model.MonkKind), byKind(enemies, model.ElephantKind)...)
	if t := nearestLiving(monk.Position, convertible, -1); t != nil {
		return t
	}
	return nearestLiving(monk.Position, enemies, -1)
}

// lastAttackerUnit resolves a unit's LastAttacker handle against a living
// candidate list, returning nil if the attacker is dead or unset.
func lastAttackerUnit(u *model.Unit, candidates []*model.Unit) *model.Unit {
	if u.LastAttacker == nil {
		return nil
	}
	return findByID(candidates, *u.LastAttacker)
}

// anyWithin reports whether any unit in units lies within dist of pos.
func anyWithin(pos model.Vec2, units []*model.Unit, dist float64) bool {
	d2 := dist * dist
	for _, u := range units {
		if u.IsAlive() && model.DistSquared(pos, u.Position) <= d2 {
			return true
		}
	}
	return false
}
