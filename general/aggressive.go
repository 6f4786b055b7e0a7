package general

import "github.com/nstehr/battlesim/model"

// Aggressive is the MajorDaft module: every unit, Monks included, always
// pairs with the globally nearest living enemy regardless of line of sight.
// It never requests a heal.
type Aggressive struct{}

// NewAggressive constructs an Aggressive strategic module.
func NewAggressive() *Aggressive {
	return &Aggressive{}
}

func (a *Aggressive) GetTargets(m *model.Map, self, enemy UnitLister) map[int]int {
	enemies := enemy.Living()
	targets := make(map[int]int)
	for _, u := range self.Living() {
		if t := nearestLiving(u.Position, enemies, -1); t != nil {
			targets[u.ID] = t.ID
		}
	}
	return targets
}
