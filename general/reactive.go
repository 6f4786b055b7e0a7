package general

import "github.com/nstehr/battlesim/model"

// Reactive is the CaptainBraindead module: units retaliate against whoever
// last struck them, falling back to the nearest living enemy within line of
// sight. Monks on cooldown prefer the nearest wounded ally instead.
type Reactive struct{}

// NewReactive constructs a Reactive strategic module.
func NewReactive() *Reactive {
	return &Reactive{}
}

func (r *Reactive) GetTargets(m *model.Map, self, enemy UnitLister) map[int]int {
	enemies := enemy.Living()
	targets := make(map[int]int)

	for _, u := range self.Living() {
		if u.Kind == model.MonkKind && u.Cooldown > 0 {
			if ally := nearestWoundedAlly(u, self.Living(), u.LineOfSight); ally != nil {
				targets[u.ID] = ally.ID
				continue
			}
		}

		if u.LastAttacker != nil {
			if attacker := findByID(enemies, *u.LastAttacker); attacker != nil {
				targets[u.ID] = attacker.ID
				continue
			}
		}

		if t := nearestLiving(u.Position, enemies, u.LineOfSight); t != nil {
			targets[u.ID] = t.ID
		}
	}
	return targets
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

// nearestWoundedAlly returns the closest living ally (other than self) whose
// hp is below max and within maxDist, or nil if none. maxDist < 0 means
// unbounded.
func nearestWoundedAlly(self *model.Unit, allies []*model.Unit, maxDist float64) *model.Unit {
	var best *model.Unit
	bestD := maxDist * maxDist
	unbounded := maxDist < 0
	for _, a := range allies {
		if a.ID == self.ID || !a.IsAlive() || a.HP >= a.MaxHP {
			continue
		}
		d := model.DistSquared(self.Position, a.Position)
		if unbounded {
			if best == nil || d < bestD {
				best, bestD = a, d
			}
			continue
		}
		if d <= bestD && (best == nil || d < bestD) {
			best, bestD = a, d
		}
	}
	return best
}
