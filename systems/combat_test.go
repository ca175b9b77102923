package systems

import (
	"testing"

	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombatAppliesDamageInArrivalOrder(t *testing.T) {
	e, player := newTestGame(t)

	first := hit(player, 10)
	first.KnockbackX = -3
	second := hit(player, 5)
	second.KnockbackX = 4

	require.True(t, PushDamage(e, first))
	require.True(t, PushDamage(e, second))
	UpdateCombat(e)

	assert.Equal(t, cfg.Player.Health-15, health(player))
	assert.Equal(t, 4.0, components.Physics.Get(player).SpeedX, "last applied event sets knockback")
	assert.Equal(t, cfg.Combat.DamageFlashFrames, components.Flash.Get(player).Duration)
	assert.Zero(t, PendingDamage(e), "queue is drained")
}

func TestCombatIgnoresDamageWhileImmortal(t *testing.T) {
	e, player := newTestGame(t)
	_, ok := ToggleImmortal(e)
	require.True(t, ok)

	for _, amount := range []int{1, 50, 1000} {
		ev := hit(player, amount)
		ev.KnockbackX = 5
		PushDamage(e, ev)
	}
	UpdateCombat(e)

	assert.Equal(t, cfg.Player.Health, health(player))
	assert.Zero(t, components.Physics.Get(player).SpeedX, "no knockback")
	assert.Zero(t, components.Flash.Get(player).Duration, "no flash")
	assert.False(t, player.HasComponent(components.Death))
	assert.Zero(t, PendingDamage(e))
}

func TestCombatSkipsStaleTargets(t *testing.T) {
	e, player := newTestGame(t)

	stale := e.World.Entry(e.World.Create(components.Health))
	PushDamage(e, hit(stale, 30))
	gone := e.World.Create(components.Health)
	e.World.Remove(gone)
	PushDamage(e, components.DamageEvent{Target: gone, Amount: 30})
	PushDamage(e, hit(player, 7))
	UpdateCombat(e)

	assert.Equal(t, cfg.Player.Health-7, health(player))
	assert.Zero(t, components.Health.Get(stale).Current)
}

func TestCombatWithoutPlayerDrainsQueue(t *testing.T) {
	e, player := newTestGame(t)
	PushDamage(e, hit(player, 10))
	removeEntity(e, player)

	require.NotPanics(t, func() { UpdateCombat(e) })
	assert.Zero(t, PendingDamage(e))
}

func TestCombatClampsHealthAndStartsDeath(t *testing.T) {
	e, player := newTestGame(t)

	PushDamage(e, hit(player, cfg.Player.Health+50))
	PushDamage(e, hit(player, 10))
	UpdateCombat(e)

	assert.Zero(t, health(player))
	require.True(t, player.HasComponent(components.Death))
	assert.Equal(t, cfg.Player.DeathFrames, components.Death.Get(player).Timer)
}

func TestDamageQueueCapacity(t *testing.T) {
	e, player := newTestGame(t)
	cfg.Combat.DamageQueueCapacity = 3

	accepted := 0
	for i := 0; i < 5; i++ {
		if PushDamage(e, hit(player, 1)) {
			accepted++
		}
	}
	assert.Equal(t, 3, accepted)
	assert.Equal(t, 3, PendingDamage(e))

	UpdateCombat(e)
	assert.Equal(t, cfg.Player.Health-3, health(player))
}

func TestClearDamageQueueDropsLeftovers(t *testing.T) {
	e, player := newTestGame(t)
	PushDamage(e, hit(player, 10))
	PushDamage(e, hit(player, 10))

	ClearDamageQueue(e)

	assert.Zero(t, PendingDamage(e))
	UpdateCombat(e)
	assert.Equal(t, cfg.Player.Health, health(player), "cleared events never apply")
}

func TestDebugHurtKey(t *testing.T) {
	e, player := newTestGame(t)

	step(e, cfg.ActionDebugHurt)
	assert.Equal(t, cfg.Player.Health-cfg.Combat.DebugHurtAmount, health(player))

	// Held: no repeat.
	step(e, cfg.ActionDebugHurt)
	assert.Equal(t, cfg.Player.Health-cfg.Combat.DebugHurtAmount, health(player))
}
