package systems

import (
	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/logging"
	"github.com/automoto/doomerang-immortal/systems/factory"
	"github.com/automoto/doomerang-immortal/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateDeaths counts down death sequences. A dead player's entity is
// removed; if lives remain a respawn is scheduled and the player is
// absent from the world until it fires.
func UpdateDeaths(ecs *ecs.ECS) {
	var finished []*donburi.Entry

	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		if e.HasComponent(tags.Player) {
			handlePlayerDeath(ecs, e)
			continue
		}
		removeEntity(ecs, e)
	}
}

func handlePlayerDeath(ecs *ecs.ECS, e *donburi.Entry) {
	lives := components.Lives.Get(e).Lives - 1
	removeEntity(ecs, e)

	if lives <= 0 {
		logging.L().Info("no lives left")
		return
	}

	respawn := getOrCreateRespawn(ecs)
	respawn.Pending = true
	respawn.Timer = cfg.Player.RespawnDelayFrames
	respawn.Lives = lives
}

// UpdateRespawn creates a fresh player entity once a pending respawn
// delay has elapsed.
func UpdateRespawn(ecs *ecs.ECS) {
	respawn := getOrCreateRespawn(ecs)
	if !respawn.Pending {
		return
	}

	respawn.Timer--
	if respawn.Timer > 0 {
		return
	}

	respawn.Pending = false
	factory.CreatePlayer(ecs, cfg.Player.SpawnX, cfg.Player.SpawnY, respawn.Lives)
	logging.L().Info("player respawned", zap.Int("lives", respawn.Lives))
}

// IsGameOver reports whether the player is gone for good.
func IsGameOver(ecs *ecs.ECS) bool {
	if _, ok := tags.Player.First(ecs.World); ok {
		return false
	}
	return !getOrCreateRespawn(ecs).Pending
}

func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

// getOrCreateRespawn returns the singleton Respawn component
func getOrCreateRespawn(ecs *ecs.ECS) *components.RespawnData {
	entry, ok := components.Respawn.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Respawn))
	}
	return components.Respawn.Get(entry)
}
