package model

import "math"

// Vec2 is a real-valued 2D point or displacement.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by a scalar factor.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// LengthSquared returns the squared Euclidean length, avoiding a sqrt for
// the hot-path distance comparisons the resolver performs every tick.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Rotated returns v rotated by theta radians about the origin.
func (v Vec2) Rotated(theta float64) Vec2 {
	s, c := math.Sin(theta), math.Cos(theta)
	return Vec2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// DistSquared returns the squared distance between two points.
func DistSquared(a, b Vec2) float64 {
	return a.Sub(b).LengthSquared()
}

// Unit is the fundamental combatant. Kind fixes the immutable stat block;
// the remaining fields are mutable state tracked across ticks.
type Unit struct {
	ID    int
	Kind  Kind
	HP    int
	MaxHP int

	Attack       int
	Armor        int
	Speed        float64
	Range        float64
	ConvertRange float64
	ReloadTime   int
	LineOfSight  float64
	Size         float64
	Classes      map[Class]bool
	Bonuses      map[Class]int

	Cooldown int
	Position Vec2

	// ArmyID is a stable handle to the owning army, not an owning pointer
	// (see resolve over a back-pointer: conversion just rewrites this tag).
	ArmyID int

	// LastAttacker/LastAttacked are unit IDs, not pointers, so they never
	// dangle. They are cleared on conversion only; an ID that names a dead
	// unit stays set, and strategic modules skip it because they resolve
	// IDs against living units only. A nil value means "none".
	LastAttacker *int
	LastAttacked *int
}

// NewUnit constructs a unit of the given kind at the given position, with
// fields copied out of the catalog stat block.
func NewUnit(id int, k Kind, armyID int, pos Vec2) *Unit {
	s := StatsFor(k)
	return &Unit{
		ID:           id,
		Kind:         k,
		HP:           s.MaxHP,
		MaxHP:        s.MaxHP,
		Attack:       s.Attack,
		Armor:        s.Armor,
		Speed:        s.Speed,
		Range:        s.Range,
		ConvertRange: s.ConvertRange,
		ReloadTime:   s.ReloadTime,
		LineOfSight:  s.LineOfSight,
		Size:         s.Size,
		Classes:      s.Classes,
		Bonuses:      s.Bonuses,
		ArmyID:       armyID,
		Position:     pos,
	}
}

// IsAlive reports whether the unit still has positive hp.
func (u *Unit) IsAlive() bool {
	return u.HP > 0
}

// ComputeBonus sums the attacker's bonus damage against every class the
// target carries. Missing entries contribute zero.
func (u *Unit) ComputeBonus(target *Unit) int {
	bonus := 0
	for c := range target.Classes {
		bonus += u.Bonuses[c]
	}
	return bonus
}

// ClearCrossArmyMemory drops last-attacker/last-attacked so a converted
// unit's history cannot leak into its new side's strategic module. It is
// called on conversion; nothing calls it when a unit dies.
func (u *Unit) ClearCrossArmyMemory() {
	u.LastAttacker = nil
	u.LastAttacked = nil
}

// Reach is the effective distance at which the unit resolves an attack on
// target. Monks use ConvertRange in place of Range specifically against an
// Elephant or Castle target, encoding "conversion works close".
func (u *Unit) Reach(target *Unit) float64 {
	r := u.Range
	if u.Kind == MonkKind && (target.Kind == ElephantKind || target.Kind == CastleKind) {
		r = u.ConvertRange
	}
	return r + (u.Size+target.Size)/2
}
