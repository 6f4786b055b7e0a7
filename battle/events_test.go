package battle

import (
	"testing"

	"github.com/nstehr/battlesim/army"
	"github.com/nstehr/battlesim/general"
	"github.com/nstehr/battlesim/model"
)

func mustGeneral(t *testing.T, name string) general.StrategicModule {
	t.Helper()
	m, err := general.New(name)
	if err != nil {
		t.Fatalf("general.New(%q): %v", name, err)
	}
	return m
}

func TestDetectEventsNilPrevReturnsNil(t *testing.T) {
	a := army.New(0, mustGeneral(t, "aggressive"))
	b := army.New(1, mustGeneral(t, "aggressive"))
	a.Add(model.NewUnit(1, model.KnightKind, 0, model.Vec2{}))
	cur := takeSnapshot(a, b)

	if events := detectEvents(1, stateSnapshot{}, cur); events != nil {
		t.Errorf("expected nil events with zero-value prev, got %+v", events)
	}
}

func TestDetectEventsUnitDied(t *testing.T) {
	a := army.New(0, mustGeneral(t, "aggressive"))
	b := army.New(1, mustGeneral(t, "aggressive"))
	knight := model.NewUnit(1, model.KnightKind, 0, model.Vec2{})
	a.Add(knight)
	b.Add(model.NewUnit(2, model.PikemanKind, 1, model.Vec2{}))

	prev := takeSnapshot(a, b)
	knight.HP = 0
	cur := takeSnapshot(a, b)

	events := detectEvents(5, prev, cur)
	found := false
	for _, e := range events {
		if e.Kind == EventUnitDied {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a unit_died event, got %+v", events)
	}
}

func TestDetectEventsCastleDestroyed(t *testing.T) {
	a := army.New(0, mustGeneral(t, "aggressive"))
	b := army.New(1, mustGeneral(t, "aggressive"))
	castle := model.NewUnit(1, model.CastleKind, 0, model.Vec2{})
	a.Add(castle)
	b.Add(model.NewUnit(2, model.KnightKind, 1, model.Vec2{}))

	prev := takeSnapshot(a, b)
	castle.HP = 0
	cur := takeSnapshot(a, b)

	events := detectEvents(9, prev, cur)
	if len(events) != 1 || events[0].Kind != EventCastleDestroyed {
		t.Errorf("expected a single castle_destroyed event, got %+v", events)
	}
}

func TestDetectEventsConversion(t *testing.T) {
	a := army.New(0, mustGeneral(t, "aggressive"))
	b := army.New(1, mustGeneral(t, "aggressive"))
	elephant := model.NewUnit(1, model.ElephantKind, 1, model.Vec2{})
	b.Add(elephant)
	a.Add(model.NewUnit(2, model.MonkKind, 0, model.Vec2{}))

	prev := takeSnapshot(a, b)
	b.Remove(elephant.ID)
	elephant.ArmyID = a.ID
	a.Add(elephant)
	cur := takeSnapshot(a, b)

	events := detectEvents(12, prev, cur)
	found := false
	for _, e := range events {
		if e.Kind == EventConversion {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a conversion event, got %+v", events)
	}
}

func TestDetectEventsArmyRouted(t *testing.T) {
	a := army.New(0, mustGeneral(t, "aggressive"))
	b := army.New(1, mustGeneral(t, "aggressive"))
	units := make([]*model.Unit, 6)
	for i := range units {
		units[i] = model.NewUnit(i, model.PikemanKind, 0, model.Vec2{})
		a.Add(units[i])
	}
	b.Add(model.NewUnit(100, model.KnightKind, 1, model.Vec2{}))

	prev := takeSnapshot(a, b)
	for i := 0; i < 4; i++ {
		units[i].HP = 0
	}
	cur := takeSnapshot(a, b)

	events := detectEvents(20, prev, cur)
	found := false
	for _, e := range events {
		if e.Kind == EventArmyRouted {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an army_routed event after losing 4/6 units, got %+v", events)
	}
}
