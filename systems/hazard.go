package systems

import (
	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards queues damage for the player while it overlaps a hazard
// zone. Each hazard hits at most once per cooldown window. Must run before
// UpdateCombat.
func UpdateHazards(ecs *ecs.ECS) {
	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		hazard := components.Hazard.Get(e)
		if hazard.Cooldown > 0 {
			hazard.Cooldown--
		}
	})

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	if playerObj.Object == nil || playerObj.Space == nil {
		return
	}

	check := playerObj.Check(0, 0, tags.ResolvHazard)
	if check == nil {
		return
	}

	for _, hazardResolv := range check.ObjectsByTags(tags.ResolvHazard) {
		hazardEntry, ok := hazardResolv.Data.(*donburi.Entry)
		if !ok || hazardEntry == nil || !hazardEntry.Valid() {
			continue
		}

		hazard := components.Hazard.Get(hazardEntry)
		if hazard.Cooldown > 0 {
			continue
		}
		hazard.Cooldown = cfg.Hazard.CooldownFrames

		knockbackX := knockbackDirection(playerObj.Object, hazardResolv) * hazard.KnockbackForce
		PushDamage(ecs, components.DamageEvent{
			Target:     playerEntry.Entity(),
			Amount:     hazard.Damage,
			KnockbackX: knockbackX,
			Source:     "hazard",
		})
	}
}

// knockbackDirection returns -1 or 1 based on player position relative to the hazard
func knockbackDirection(player, hazard *resolv.Object) float64 {
	playerCenterX := player.X + player.W/2
	hazardCenterX := hazard.X + hazard.W/2
	if playerCenterX < hazardCenterX {
		return -1
	}
	return 1
}
