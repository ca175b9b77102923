package components

import "github.com/yohamta/donburi"

// HazardData describes a static damage zone.
type HazardData struct {
	Damage         int
	KnockbackForce float64
	Cooldown       int // frames until this hazard can hit again
}

var Hazard = donburi.NewComponentType[HazardData]()
