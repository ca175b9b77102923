package systems

import (
	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// TriggerDamageFlash starts a red flash effect on the entity (for damage taken)
func TriggerDamageFlash(entry *donburi.Entry) {
	// Don't flash dying entities
	if entry.HasComponent(components.Death) {
		return
	}
	// Update existing Flash component (initialized in factory)
	if entry.HasComponent(components.Flash) {
		flash := components.Flash.Get(entry)
		flash.Duration = cfg.Combat.DamageFlashFrames
		flash.R, flash.G, flash.B = 3, 1, 1 // Red tint (multiplier)
	}
}
