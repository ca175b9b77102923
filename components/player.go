package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData is the player's per-entity state. The debug invulnerability
// flag is unexported: ToggleInvulnerable is its only writer and
// IsInvulnerable its only reader.
type PlayerData struct {
	Direction Vector
	SpawnX    float64
	SpawnY    float64

	invulnerable bool
}

// ToggleInvulnerable flips the debug invulnerability flag.
func (p *PlayerData) ToggleInvulnerable() {
	p.invulnerable = !p.invulnerable
}

// IsInvulnerable reports whether damage is currently ignored.
func (p *PlayerData) IsInvulnerable() bool {
	return p.invulnerable
}

var Player = donburi.NewComponentType[PlayerData]()
