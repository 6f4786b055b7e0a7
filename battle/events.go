package battle

import (
	"fmt"

	"github.com/nstehr/battlesim/army"
	"github.com/nstehr/battlesim/model"
)

// EventKind identifies the category of a notable occurrence detected by
// diffing consecutive tick snapshots, for consumption by an Observer.
type EventKind string

const (
	EventUnitDied        EventKind = "unit_died"
	EventConversion      EventKind = "conversion"
	EventArmyRouted      EventKind = "army_routed"
	EventCastleDestroyed EventKind = "castle_destroyed"
)

// Event is a single notable occurrence surfaced to the Observer alongside
// the per-tick render call.
type Event struct {
	Kind   EventKind
	Tick   int
	Detail string
}

// stateSnapshot captures the diffable fields from both sides of the battle
// at a tick boundary. Battle keeps the latest one and compares it against
// the next tick's snapshot to detect events, tracking living units by army.
type stateSnapshot struct {
	livingByArmy map[int]map[int]model.Kind // armyID -> unit ID -> kind, living units only
	livingCount  map[int]int                // armyID -> count, for rout detection
}

func takeSnapshot(a, b *army.Army) stateSnapshot {
	snap := stateSnapshot{
		livingByArmy: map[int]map[int]model.Kind{a.ID: {}, b.ID: {}},
		livingCount:  map[int]int{},
	}
	for _, side := range []*army.Army{a, b} {
		for _, u := range side.Living() {
			snap.livingByArmy[side.ID][u.ID] = u.Kind
		}
		snap.livingCount[side.ID] = len(side.Living())
	}
	return snap
}

// detectEvents compares the snapshot taken before a tick's two Fight calls
// against the one taken after, returning unit-death, conversion, rout, and
// castle-destruction events. Returns nil if prev is the zero-value snapshot
// (no snapshot has been taken yet).
func detectEvents(tick int, prev, cur stateSnapshot) []Event {
	if prev.livingByArmy == nil {
		return nil
	}

	var events []Event

	for armyID, prevUnits := range prev.livingByArmy {
		curUnits := cur.livingByArmy[armyID]
		for id, kind := range prevUnits {
			if _, stillHere := curUnits[id]; stillHere {
				continue
			}
			if wasConverted(id, armyID, cur) {
				events = append(events, Event{
					Kind:   EventConversion,
					Tick:   tick,
					Detail: fmt.Sprintf("unit %d (%s) converted away from army %d", id, kind, armyID),
				})
				continue
			}
			if kind == model.CastleKind {
				events = append(events, Event{
					Kind:   EventCastleDestroyed,
					Tick:   tick,
					Detail: fmt.Sprintf("castle %d (army %d) destroyed", id, armyID),
				})
				continue
			}
			events = append(events, Event{
				Kind:   EventUnitDied,
				Tick:   tick,
				Detail: fmt.Sprintf("unit %d (%s, army %d) died", id, kind, armyID),
			})
		}
	}

	for armyID, prevCount := range prev.livingCount {
		curCount := cur.livingCount[armyID]
		if prevCount < 2 || curCount == 0 {
			continue
		}
		lost := prevCount - curCount
		if lost > 0 && float64(lost)/float64(prevCount) > 0.5 {
			events = append(events, Event{
				Kind:   EventArmyRouted,
				Tick:   tick,
				Detail: fmt.Sprintf("army %d routed: %d -> %d living units", armyID, prevCount, curCount),
			})
		}
	}

	return events
}

// wasConverted reports whether unit id, last seen alive in fromArmy, now
// shows up living in a different army in the current snapshot.
func wasConverted(id, fromArmy int, cur stateSnapshot) bool {
	for armyID, units := range cur.livingByArmy {
		if armyID == fromArmy {
			continue
		}
		if _, ok := units[id]; ok {
			return true
		}
	}
	return false
}
