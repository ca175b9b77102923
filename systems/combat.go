package systems

import (
	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/logging"
	"github.com/automoto/doomerang-immortal/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateCombat drains the frame's damage queue against the player.
// Events are handled in arrival order and each one is either fully
// applied or fully skipped. The queue is empty when this returns, whether
// or not a player exists.
func UpdateCombat(ecs *ecs.ECS) {
	queue := getOrCreateDamageQueue(ecs)
	defer func() { queue.Events = queue.Events[:0] }()

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	for _, dmg := range queue.Events {
		if dmg.Target != playerEntry.Entity() {
			logging.L().Debug("skipping damage for stale target",
				zap.String("source", dmg.Source),
				zap.Int("amount", dmg.Amount),
			)
			continue
		}

		// Debug immortality: no health change, no knockback, no flash.
		if components.Player.Get(playerEntry).IsInvulnerable() {
			continue
		}

		// Already dying, nothing left to take.
		if playerEntry.HasComponent(components.Death) {
			continue
		}

		applyDamage(ecs, playerEntry, dmg)
	}
}

func applyDamage(ecs *ecs.ECS, e *donburi.Entry, dmg components.DamageEvent) {
	hp := components.Health.Get(e)
	hp.Current -= dmg.Amount

	// Apply knockback only if explicit knockback values are provided.
	if e.HasComponent(components.Physics) && (dmg.KnockbackX != 0 || dmg.KnockbackY != 0) {
		physics := components.Physics.Get(e)
		physics.SpeedX = dmg.KnockbackX
		physics.SpeedY = dmg.KnockbackY
	}

	TriggerDamageFlash(e)

	// Clamp health ranges (0..Max)
	if hp.Current < 0 {
		hp.Current = 0
	}
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}

	if hp.Current == 0 {
		startDeathSequence(ecs, e)
	}
}

func startDeathSequence(ecs *ecs.ECS, e *donburi.Entry) {
	// Remove visual effect state to prevent rendering artifacts
	if e.HasComponent(components.Flash) {
		components.Flash.Get(e).Duration = 0
	}

	donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Player.DeathFrames})

	if e.HasComponent(components.Physics) {
		physics := components.Physics.Get(e)
		physics.SpeedX = 0
		physics.SpeedY = 0
	}

	logging.L().Info("player died", zap.Int("lives", components.Lives.Get(e).Lives))
}

// UpdateDebugHurt queues a fixed hit on the player while the debug hurt
// key is pressed. It must run before UpdateCombat.
func UpdateDebugHurt(ecs *ecs.ECS) {
	if !GetAction(getOrCreateInput(ecs), cfg.ActionDebugHurt).JustPressed {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	PushDamage(ecs, components.DamageEvent{
		Target: playerEntry.Entity(),
		Amount: cfg.Combat.DebugHurtAmount,
		Source: "debug",
	})
}
