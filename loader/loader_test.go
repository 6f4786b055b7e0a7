package loader

import (
	"strings"
	"testing"

	"github.com/nstehr/battlesim/general"
	"github.com/nstehr/battlesim/model"
)

func aggressivePair(t *testing.T) (general.StrategicModule, general.StrategicModule) {
	t.Helper()
	a, err := general.New("aggressive")
	if err != nil {
		t.Fatalf("general.New: %v", err)
	}
	b, err := general.New("aggressive")
	if err != nil {
		t.Fatalf("general.New: %v", err)
	}
	return a, b
}

func TestLoadMirroredArmiesMirrorsPositions(t *testing.T) {
	a, b := aggressivePair(t)
	input := "4;2\n" +
		"K..P\n" +
		"....\n"
	armyA, armyB, err := LoadMirroredArmies(strings.NewReader(input), a, b)
	if err != nil {
		t.Fatalf("LoadMirroredArmies: %v", err)
	}
	if len(armyA.Units) != 2 || len(armyB.Units) != 2 {
		t.Fatalf("expected 2 units per side, got A=%d B=%d", len(armyA.Units), len(armyB.Units))
	}

	var knightA, pikemanA *model.Unit
	for _, u := range armyA.Units {
		switch u.Kind {
		case model.KnightKind:
			knightA = u
		case model.PikemanKind:
			pikemanA = u
		}
	}
	if knightA == nil || pikemanA == nil {
		t.Fatal("expected a Knight and a Pikeman on side A")
	}
	if knightA.Position != (model.Vec2{X: 0, Y: 0}) {
		t.Errorf("Knight A position = %v, want (0,0)", knightA.Position)
	}
	if pikemanA.Position != (model.Vec2{X: 3, Y: 0}) {
		t.Errorf("Pikeman A position = %v, want (3,0)", pikemanA.Position)
	}

	var knightB, pikemanB *model.Unit
	for _, u := range armyB.Units {
		switch u.Kind {
		case model.KnightKind:
			knightB = u
		case model.PikemanKind:
			pikemanB = u
		}
	}
	if knightB.Position != (model.Vec2{X: 3, Y: 0}) {
		t.Errorf("mirrored Knight B position = %v, want (3,0)", knightB.Position)
	}
	if pikemanB.Position != (model.Vec2{X: 0, Y: 0}) {
		t.Errorf("mirrored Pikeman B position = %v, want (0,0)", pikemanB.Position)
	}
}

func TestLoadMirroredArmiesRejectsUnknownLetter(t *testing.T) {
	a, b := aggressivePair(t)
	input := "2;1\nKZ\n"
	if _, _, err := LoadMirroredArmies(strings.NewReader(input), a, b); err == nil {
		t.Error("expected an error for an unknown unit letter")
	}
}

func TestLoadMirroredArmiesRejectsBadHeader(t *testing.T) {
	a, b := aggressivePair(t)
	if _, _, err := LoadMirroredArmies(strings.NewReader("not-a-header\n"), a, b); err == nil {
		t.Error("expected an error for a malformed header")
	}
}

func TestLoadMapParsesObstacles(t *testing.T) {
	input := "3;2\n" +
		".O.\n" +
		"...\n"
	m, err := LoadMap(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if m.Width != 3 || m.Height != 2 {
		t.Errorf("dimensions = %dx%d, want 3x2", m.Width, m.Height)
	}
	if len(m.Obstacles) != 1 {
		t.Fatalf("expected 1 obstacle, got %d", len(m.Obstacles))
	}
	want := model.Vec2{X: 1, Y: 0}
	if m.Obstacles[0].Position != want {
		t.Errorf("obstacle position = %v, want %v", m.Obstacles[0].Position, want)
	}
	if m.Obstacles[0].Radius != 1 {
		t.Errorf("obstacle radius = %v, want 1", m.Obstacles[0].Radius)
	}
}

func TestLoadMapRejectsRowCountMismatch(t *testing.T) {
	input := "3;3\n..\n"
	if _, err := LoadMap(strings.NewReader(input)); err == nil {
		t.Error("expected an error when declared row count doesn't match actual rows")
	}
}
