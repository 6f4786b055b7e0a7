package army

import "github.com/nstehr/battlesim/model"

// circlesOverlap reports whether two circular footprints, given by center
// and radius, intersect.
func circlesOverlap(centerA model.Vec2, radiusA float64, centerB model.Vec2, radiusB float64) bool {
	r := radiusA + radiusB
	return model.DistSquared(centerA, centerB) < r*r
}

// wouldCollide reports whether placing unit at newPos would overlap any
// other living allied unit, any living enemy unit (unless unit is an
// Elephant, which ignores enemy footprints so it can trample through
// them), or any map obstacle. Footprints are circles of radius Size/2,
// applied uniformly everywhere collision matters.
func wouldCollide(m *model.Map, unit *model.Unit, newPos model.Vec2, allies, enemies []*model.Unit) bool {
	radius := unit.Size / 2

	for _, a := range allies {
		if a.ID == unit.ID || !a.IsAlive() {
			continue
		}
		if circlesOverlap(newPos, radius, a.Position, a.Size/2) {
			return true
		}
	}

	if unit.Kind != model.ElephantKind {
		for _, e := range enemies {
			if !e.IsAlive() {
				continue
			}
			if circlesOverlap(newPos, radius, e.Position, e.Size/2) {
				return true
			}
		}
	}

	for _, obs := range m.Obstacles {
		if circlesOverlap(newPos, radius, obs.Position, obs.Radius) {
			return true
		}
	}

	return false
}
