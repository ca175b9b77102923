package components

import "github.com/yohamta/donburi"

// DamageEvent is a single hit queued against a target for the current frame.
type DamageEvent struct {
	Target     donburi.Entity
	Amount     int
	KnockbackX float64
	KnockbackY float64
	Source     string // producer name, for diagnostics only
}

// DamageQueueData is the singleton frame-scoped damage queue. Events are
// kept in arrival order and never carried into the next frame.
type DamageQueueData struct {
	Events []DamageEvent
}

var DamageQueue = donburi.NewComponentType[DamageQueueData]()
