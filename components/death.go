package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence.
// Timer counts down each frame; when it reaches 0, the entity is
// removed from the world.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()

// RespawnData is the singleton tracking a pending player respawn.
type RespawnData struct {
	Pending bool
	Timer   int // frames until the new player entity is created
	Lives   int // lives carried over to the new entity
}

var Respawn = donburi.NewComponentType[RespawnData]()
