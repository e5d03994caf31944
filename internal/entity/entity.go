// Package entity holds the combatant record shared by the player and
// generated enemies.
package entity

import (
	"fmt"
	"math"
	"strconv"
)

// Status governs whether an incoming attack lands.
type Status int

const (
	StatusNeutral Status = iota
	StatusAttacking
	StatusDefending
	StatusProne
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNeutral:
		return "Neutral"
	case StatusAttacking:
		return "Attacking"
	case StatusDefending:
		return "Defending"
	case StatusProne:
		return "Prone"
	default:
		return "Unknown"
	}
}

// Kind selects which combat strategy drives an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindGenerated
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindGenerated:
		return "Generated"
	default:
		return "Unknown"
	}
}

// Entity is a combatant. Health is never clamped; health <= 0 means defeat.
type Entity struct {
	Name        string
	Description string
	Health      float64
	BaseHealth  float64 // Health at creation
	Experience  int
	Alignment   int
	Status      Status
	Kind        Kind
	Power       float64 // Damage of a normal hit
}

// New creates an entity with BaseHealth fixed to the starting health.
func New(kind Kind, name, description string, health float64, experience, alignment int) *Entity {
	return &Entity{
		Name:        name,
		Description: description,
		Health:      health,
		BaseHealth:  health,
		Experience:  experience,
		Alignment:   alignment,
		Kind:        kind,
	}
}

// PowerFor derives attack power from experience: floor(experience/10).
func PowerFor(experience int) float64 {
	return math.Floor(float64(experience) / 10)
}

// AttackAgainst applies damage to target unless the target is defending.
// A landed attack marks e as attacking.
func (e *Entity) AttackAgainst(target *Entity, damage float64) string {
	if target.Status == StatusDefending {
		return fmt.Sprintf(".. %s defended the attack!", target.Name)
	}
	target.Health -= damage
	e.Status = StatusAttacking
	return fmt.Sprintf("%s received %s damage!", target.Name, FormatAmount(damage))
}

// DefendAgainst raises e's guard against target.
func (e *Entity) DefendAgainst(target *Entity) string {
	e.Status = StatusDefending
	return fmt.Sprintf("%s is defending against %s!", e.Name, target.Name)
}

// AddExperience adds experience points.
func (e *Entity) AddExperience(points int) {
	e.Experience += points
}

// Defeated reports whether health has dropped to zero or below.
func (e *Entity) Defeated() bool {
	return e.Health <= 0
}

// Wounded reports whether health is below half of BaseHealth.
func (e *Entity) Wounded() bool {
	return e.Health < e.BaseHealth/2
}

// FormatAmount renders health and damage values without trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
