package general

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nstehr/battlesim/model"
)

// TargetEnv is the read-only evaluation environment exposed to a
// ScriptedGeneral's scoring expression for one (unit, candidate) pair.
type TargetEnv struct {
	Distance        float64
	EffectiveDamage float64
	TargetHPRatio   float64
	AttackerKind    string
	TargetKind      string
}

// ScriptedGeneral scores every (own unit, enemy) pair with a compiled expr
// program and picks the argmax per unit; the expression is compiled once and
// evaluated per pair. A pair whose evaluation fails is skipped; if no pair
// produced a score and at least one failed, the unit falls back to the
// nearest enemy within line of sight rather than panicking.
type ScriptedGeneral struct {
	src     string
	program *vm.Program
}

// NewScripted compiles src as a float-valued scoring expression over
// TargetEnv and returns a ready-to-use strategic module.
func NewScripted(src string) (*ScriptedGeneral, error) {
	program, err := expr.Compile(src, expr.Env(TargetEnv{}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("compile scripted general: %w", err)
	}
	return &ScriptedGeneral{src: src, program: program}, nil
}

func (s *ScriptedGeneral) GetTargets(m *model.Map, self, enemy UnitLister) map[int]int {
	enemies := enemy.Living()
	targets := make(map[int]int)

	for _, u := range self.Living() {
		best := s.bestTarget(u, enemies)
		if best != nil {
			targets[u.ID] = best.ID
		}
	}
	return targets
}

func (s *ScriptedGeneral) bestTarget(unit *model.Unit, enemies []*model.Unit) *model.Unit {
	var best *model.Unit
	bestScore := math.Inf(-1)
	sawError := false

	for _, e := range enemies {
		env := TargetEnv{
			Distance:        math.Sqrt(model.DistSquared(unit.Position, e.Position)),
			EffectiveDamage: float64(effectiveDamage(unit, e)),
			TargetHPRatio:   float64(e.HP) / float64(e.MaxHP),
			AttackerKind:    unit.Kind.String(),
			TargetKind:      e.Kind.String(),
		}
		result, err := expr.Run(s.program, env)
		if err != nil {
			slog.Warn("scripted general eval error", "error", err, "unit", unit.ID)
			sawError = true
			continue
		}
		score, ok := result.(float64)
		if !ok {
			sawError = true
			continue
		}
		if score > bestScore {
			bestScore, best = score, e
		}
	}

	if best == nil && sawError {
		return nearestLiving(unit.Position, enemies, unit.LineOfSight)
	}
	return best
}

func effectiveDamage(attacker, target *model.Unit) int {
	dmg := attacker.Attack + attacker.ComputeBonus(target) - target.Armor
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}
