package systems

import (
	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics moves bodies by their speed and bleeds speed off with
// friction. Knockback from damage is the only source of speed in play.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Freeze in place during the death sequence
		if e.HasComponent(components.Death) {
			return
		}

		physics := components.Physics.Get(e)
		physics.SpeedX = applyFriction(physics.SpeedX, physics.Friction)
		physics.SpeedY = applyFriction(physics.SpeedY, physics.Friction)

		if physics.SpeedX > physics.MaxSpeed {
			physics.SpeedX = physics.MaxSpeed
		} else if physics.SpeedX < -physics.MaxSpeed {
			physics.SpeedX = -physics.MaxSpeed
		}

		if !e.HasComponent(components.Object) || (physics.SpeedX == 0 && physics.SpeedY == 0) {
			return
		}
		obj := components.Object.Get(e)
		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY
		obj.Update()
	})
}

func applyFriction(speed, friction float64) float64 {
	switch {
	case speed > friction:
		return speed - friction
	case speed < -friction:
		return speed + friction
	default:
		return 0
	}
}

// UpdatePlayerMovement turns held move actions into horizontal speed.
func UpdatePlayerMovement(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	// Friction is applied after this, so push by friction plus the step.
	step := physics.MaxSpeed / 2
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		physics.SpeedX = -(step + physics.Friction)
		player.Direction.X = -1
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		physics.SpeedX = step + physics.Friction
		player.Direction.X = 1
	}
}
