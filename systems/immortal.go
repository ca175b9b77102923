package systems

import (
	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/logging"
	"github.com/automoto/doomerang-immortal/tags"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateImmortalToggle flips the player's debug invulnerability once per
// press of the toggle key. Holding the key does not toggle again.
// Must run after UpdateInput and before UpdateCombat so a toggle applies
// to the same frame's damage.
func UpdateImmortalToggle(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionToggleImmortal).JustPressed {
		return
	}
	ToggleImmortal(ecs)
}

// ToggleImmortal flips the player's debug invulnerability and reports the
// new state. ok is false when there is no player this frame, in which
// case nothing changes.
func ToggleImmortal(ecs *ecs.ECS) (immortal, ok bool) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return false, false
	}

	player := components.Player.Get(playerEntry)
	player.ToggleInvulnerable()
	immortal = player.IsInvulnerable()

	logging.L().Info("Debug Immortality: "+onOff(immortal), zap.Bool("immortal", immortal))
	return immortal, true
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
