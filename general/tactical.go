package general

import (
	"math"

	"github.com/nstehr/battlesim/model"
)

// deploymentThreshold is the nearest-enemy distance below which Tactical
// flips from the maneuver phase to the engage phase, permanently.
const deploymentThreshold = 8.0

// Tactical is the GeneralClever module: a two-phase controller. While the
// nearest enemy is farther than deploymentThreshold it holds Crossbowmen
// back in a maneuver phase; once an enemy closes inside that distance it
// switches permanently to an engage phase that scores every (unit, enemy)
// pair by effective damage, focus fire, and proximity.
type Tactical struct {
	deployed bool
}

// NewTactical constructs a Tactical strategic module, starting undeployed.
func NewTactical() *Tactical {
	return &Tactical{}
}

func (t *Tactical) GetTargets(m *model.Map, self, enemy UnitLister) map[int]int {
	own := self.Living()
	enemies := enemy.Living()
	targets := make(map[int]int)
	if len(own) == 0 || len(enemies) == 0 {
		return targets
	}

	if !t.deployed && nearestEnemyDistance(own, enemies) > deploymentThreshold {
		for _, u := range own {
			if u.Kind == model.CrossbowmanKind {
				continue
			}
			if best := bestScoredTarget(u, enemies); best != nil {
				targets[u.ID] = best.ID
			}
		}
		return targets
	}

	t.deployed = true
	for _, u := range own {
		if best := bestScoredTarget(u, enemies); best != nil {
			targets[u.ID] = best.ID
		}
	}
	return targets
}

// nearestEnemyDistance is the smallest distance between any own unit and any
// enemy unit.
func nearestEnemyDistance(own, enemies []*model.Unit) float64 {
	min := math.Inf(1)
	for _, u := range own {
		for _, e := range enemies {
			d := math.Sqrt(model.DistSquared(u.Position, e.Position))
			if d < min {
				min = d
			}
		}
	}
	return min
}

// bestScoredTarget returns the enemy maximizing targetScore against unit.
func bestScoredTarget(unit *model.Unit, enemies []*model.Unit) *model.Unit {
	var best *model.Unit
	bestScore := math.Inf(-1)
	for _, e := range enemies {
		score := targetScore(unit, e)
		if score > bestScore {
			bestScore, best = score, e
		}
	}
	return best
}

// targetScore implements the tactical scoring function: effective damage
// over distance, boosted for low-hp targets and close ones.
func targetScore(unit, target *model.Unit) float64 {
	bonus := unit.ComputeBonus(target)
	effectiveDamage := unit.Attack + bonus - target.Armor
	if effectiveDamage < 1 {
		effectiveDamage = 1
	}
	distance := math.Sqrt(model.DistSquared(unit.Position, target.Position))

	score := float64(effectiveDamage) / (distance + 1)

	hpRatio := float64(target.HP) / float64(target.MaxHP)
	switch {
	case hpRatio < 0.5:
		score *= 1.8
	case hpRatio < 0.75:
		score *= 1.3
	}

	proximity := 5 - distance
	if proximity < 0 {
		proximity = 0
	}
	score *= 1 + proximity*0.05

	return score
}
