package systems

import (
	"testing"

	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
)

func TestHazardDamagesOverlappingPlayer(t *testing.T) {
	e, player := newTestGame(t)
	// Hazard centered to the right of the player: knockback pushes left.
	factory.CreateHazard(e, cfg.Player.SpawnX+8, cfg.Player.SpawnY, 32, 32)

	step(e)
	assert.Equal(t, cfg.Player.Health-cfg.Hazard.Damage, health(player))
	assert.Less(t, components.Physics.Get(player).SpeedX, 0.0)

	// Cooldown: no second hit right away.
	step(e)
	assert.Equal(t, cfg.Player.Health-cfg.Hazard.Damage, health(player))
}

func TestHazardIgnoredWhileImmortal(t *testing.T) {
	e, player := newTestGame(t)
	factory.CreateHazard(e, cfg.Player.SpawnX, cfg.Player.SpawnY, 32, 32)

	for i := 0; i < cfg.Hazard.CooldownFrames*3; i++ {
		held := []cfg.ActionID{}
		if i == 0 {
			held = append(held, cfg.ActionToggleImmortal)
		}
		step(e, held...)
	}
	assert.Equal(t, cfg.Player.Health, health(player))
}

func TestHazardOutOfReach(t *testing.T) {
	e, player := newTestGame(t)
	factory.CreateHazard(e, cfg.Player.SpawnX+200, cfg.Player.SpawnY, 32, 32)

	step(e)
	assert.Equal(t, cfg.Player.Health, health(player))
}

func TestKnockbackDirection(t *testing.T) {
	hazard := resolv.NewObject(100, 0, 20, 20)

	assert.Equal(t, -1.0, knockbackDirection(resolv.NewObject(80, 0, 10, 10), hazard))
	assert.Equal(t, 1.0, knockbackDirection(resolv.NewObject(120, 0, 10, 10), hazard))
}
