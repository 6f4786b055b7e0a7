// Package army owns a side's units and strategic module and runs one
// side's tick against the opposing side.
package army

import (
	"github.com/nstehr/battlesim/general"
	"github.com/nstehr/battlesim/model"
)

// Army owns an ordered, duplicate-free collection of units and a strategic
// module instance. The ID is the stable handle units carry in their ArmyID
// field; conversion rewrites that tag rather than any pointer.
type Army struct {
	ID       int
	Units    []*model.Unit
	Strategy general.StrategicModule
}

// New creates an empty army bound to the given strategic module.
func New(id int, strategy general.StrategicModule) *Army {
	return &Army{ID: id, Strategy: strategy}
}

// Add appends a unit to the army and stamps its ArmyID, refusing duplicates
// by identity (unit ID).
func (a *Army) Add(u *model.Unit) {
	for _, existing := range a.Units {
		if existing.ID == u.ID {
			return
		}
	}
	u.ArmyID = a.ID
	a.Units = append(a.Units, u)
}

// Remove drops the unit with the given ID from the army, if present.
func (a *Army) Remove(id int) {
	for i, u := range a.Units {
		if u.ID == id {
			a.Units = append(a.Units[:i], a.Units[i+1:]...)
			return
		}
	}
}

// Living returns every unit in the army with positive hp. Dead units are
// never deleted from Units; they are filtered out here and by the resolver.
func (a *Army) Living() []*model.Unit {
	living := make([]*model.Unit, 0, len(a.Units))
	for _, u := range a.Units {
		if u.IsAlive() {
			living = append(living, u)
		}
	}
	return living
}

// IsEmpty reports whether the army has no living units.
func (a *Army) IsEmpty() bool {
	for _, u := range a.Units {
		if u.IsAlive() {
			return false
		}
	}
	return true
}

// Find returns the unit with the given ID, or nil if absent.
func (a *Army) Find(id int) *model.Unit {
	for _, u := range a.Units {
		if u.ID == id {
			return u
		}
	}
	return nil
}
