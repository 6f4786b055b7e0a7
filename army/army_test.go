package army

import (
	"math/rand"
	"testing"

	"github.com/nstehr/battlesim/general"
	"github.com/nstehr/battlesim/model"
)

func newTestMap() *model.Map {
	return &model.Map{Width: 10, Height: 10}
}

func TestArmyAddStampsArmyID(t *testing.T) {
	a := New(7, must(general.New("aggressive")))
	u := model.NewUnit(1, model.KnightKind, 0, model.Vec2{})
	a.Add(u)
	if u.ArmyID != 7 {
		t.Errorf("u.ArmyID = %d, want 7", u.ArmyID)
	}
}

func TestArmyAddRejectsDuplicateID(t *testing.T) {
	a := New(0, must(general.New("aggressive")))
	u := model.NewUnit(1, model.KnightKind, 0, model.Vec2{})
	a.Add(u)
	a.Add(u)
	if len(a.Units) != 1 {
		t.Errorf("len(Units) = %d, want 1 after adding the same unit twice", len(a.Units))
	}
}

func TestArmyLivingFiltersDead(t *testing.T) {
	a := New(0, must(general.New("aggressive")))
	alive := model.NewUnit(1, model.KnightKind, 0, model.Vec2{})
	dead := model.NewUnit(2, model.KnightKind, 0, model.Vec2{})
	dead.HP = 0
	a.Add(alive)
	a.Add(dead)

	living := a.Living()
	if len(living) != 1 || living[0].ID != alive.ID {
		t.Errorf("Living() = %v, want only unit %d", idsOf(living), alive.ID)
	}
}

func TestArmyIsEmpty(t *testing.T) {
	a := New(0, must(general.New("aggressive")))
	if !a.IsEmpty() {
		t.Error("freshly created army should be empty")
	}
	u := model.NewUnit(1, model.KnightKind, 0, model.Vec2{})
	a.Add(u)
	if a.IsEmpty() {
		t.Error("army with a living unit should not be empty")
	}
	u.HP = 0
	if !a.IsEmpty() {
		t.Error("army with only dead units should be empty")
	}
}

func TestFightLoneKnightDuelClosesDistance(t *testing.T) {
	m := &model.Map{Width: 10, Height: 10}
	a := New(0, must(general.New("aggressive")))
	b := New(1, must(general.New("aggressive")))

	ka := model.NewUnit(1, model.KnightKind, 0, model.Vec2{X: 1, Y: 5})
	kb := model.NewUnit(2, model.KnightKind, 1, model.Vec2{X: 8, Y: 5})
	a.Add(ka)
	b.Add(kb)

	rng := rand.New(rand.NewSource(1))
	for tick := 0; tick < 4; tick++ {
		a.Fight(rng, m, b)
		b.Fight(rng, m, a)
	}

	d2 := model.DistSquared(ka.Position, kb.Position)
	reach := ka.Reach(kb)
	if d2 > reach*reach {
		t.Errorf("after 4 ticks Knights should be adjacent, distance^2=%v reach^2=%v", d2, reach*reach)
	}
}

func TestFightPikemanKillsKnightWithBonus(t *testing.T) {
	m := &model.Map{Width: 10, Height: 10}
	a := New(0, must(general.New("aggressive")))
	b := New(1, must(general.New("aggressive")))

	pikeman := model.NewUnit(1, model.PikemanKind, 0, model.Vec2{X: 5, Y: 5})
	knight := model.NewUnit(2, model.KnightKind, 1, model.Vec2{X: 5, Y: 5.5})
	a.Add(pikeman)
	b.Add(knight)

	rng := rand.New(rand.NewSource(42))
	won := false
	for tick := 0; tick < 15; tick++ {
		a.Fight(rng, m, b)
		if b.IsEmpty() {
			won = true
			break
		}
		b.Fight(rng, m, a)
		if a.IsEmpty() {
			break
		}
	}
	if !won || !pikeman.IsAlive() {
		t.Errorf("expected Pikeman to survive and kill the Knight within 15 ticks; Knight hp=%d pikeman alive=%v", knight.HP, pikeman.IsAlive())
	}
}

func TestApplyConversionMovesUnitBetweenArmies(t *testing.T) {
	a := New(0, must(general.New("aggressive")))
	b := New(1, must(general.New("aggressive")))

	monk := model.NewUnit(1, model.MonkKind, 0, model.Vec2{X: 0, Y: 0})
	elephant := model.NewUnit(2, model.ElephantKind, 1, model.Vec2{X: 1, Y: 0})
	elephant.LastAttacker = idPtr(99)
	a.Add(monk)
	b.Add(elephant)

	action := &model.Action{Kind: model.ConversionAction, Attacker: monk, Target: elephant}
	applyConversion(a, b, action)

	if elephant.ArmyID != a.ID {
		t.Errorf("converted unit ArmyID = %d, want %d", elephant.ArmyID, a.ID)
	}
	if b.Find(elephant.ID) != nil {
		t.Error("converted unit should be removed from the old army")
	}
	if a.Find(elephant.ID) == nil {
		t.Error("converted unit should be present in the new army")
	}
	if elephant.LastAttacker != nil {
		t.Error("converted unit's last_attacker should be cleared")
	}
	if monk.Cooldown != monk.ReloadTime {
		t.Errorf("converting Monk's cooldown = %d, want %d", monk.Cooldown, monk.ReloadTime)
	}
}

func TestTrampleDamagesAllNearbyEnemies(t *testing.T) {
	m := &model.Map{Width: 10, Height: 10}
	elephantArmy := New(0, must(general.New("aggressive")))
	pikemenArmy := New(1, must(general.New("aggressive")))

	elephant := model.NewUnit(1, model.ElephantKind, 0, model.Vec2{X: 5, Y: 5})
	elephantArmy.Add(elephant)

	offsets := []model.Vec2{{X: 0.2, Y: 0}, {X: -0.2, Y: 0}, {X: 0, Y: 0.2}, {X: 0, Y: -0.2}}
	pikemen := make([]*model.Unit, len(offsets))
	for i, off := range offsets {
		p := model.NewUnit(10+i, model.PikemanKind, 1, elephant.Position.Add(off))
		pikemenArmy.Add(p)
		pikemen[i] = p
	}

	rng := rand.New(rand.NewSource(7))
	action := &model.Action{Kind: model.AttackAction, Attacker: elephant, Target: pikemen[0]}
	apply(rng, m, elephantArmy, pikemenArmy, action)

	for i, p := range pikemen {
		wantLoss := elephant.Attack
		if i == 0 {
			direct := elephant.Attack + elephant.ComputeBonus(p) - p.Armor
			if direct < 0 {
				direct = 0
			}
			wantLoss += direct
		}
		gotLoss := p.MaxHP - p.HP
		if gotLoss != wantLoss {
			t.Errorf("pikeman %d lost %d hp, want exactly %d", i, gotLoss, wantLoss)
		}
	}
}

func TestMoveClampsToMapBounds(t *testing.T) {
	m := &model.Map{Width: 80, Height: 40}
	a := New(0, must(general.New("aggressive")))
	unit := model.NewUnit(1, model.KnightKind, 0, model.Vec2{X: 0, Y: 38})

	action := &model.Action{Kind: model.MoveAction, Attacker: unit, NewPosition: model.Vec2{X: -3, Y: 50}}
	apply(rand.New(rand.NewSource(1)), m, a, a, action)

	want := model.Vec2{X: 0, Y: 39}
	if unit.Position != want {
		t.Errorf("Position after clamp = %v, want %v", unit.Position, want)
	}
}

func must(m general.StrategicModule, err error) general.StrategicModule {
	if err != nil {
		panic(err)
	}
	return m
}

func idsOf(units []*model.Unit) []int {
	ids := make([]int, len(units))
	for i, u := range units {
		ids[i] = u.ID
	}
	return ids
}
