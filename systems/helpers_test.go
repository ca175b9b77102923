package systems

import (
	"testing"

	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/logging"
	"github.com/automoto/doomerang-immortal/systems/factory"
	"github.com/automoto/doomerang-immortal/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// newTestECS builds a world with the gameplay systems registered and a
// collision space, but no player.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	t.Cleanup(cfg.Defaults)

	e := ecs.NewECS(donburi.NewWorld())
	AddGameplaySystems(e)
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	return e
}

// newTestGame is newTestECS plus a player at the default spawn.
func newTestGame(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := newTestECS(t)
	return e, newPlayerWithLives(e, cfg.Player.StartingLives)
}

func newPlayerWithLives(e *ecs.ECS, lives int) *donburi.Entry {
	return factory.CreatePlayer(e, cfg.Player.SpawnX, cfg.Player.SpawnY, lives)
}

// observeLogs routes the process logger into an in-memory sink.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	t.Cleanup(logging.SetLogger(zap.New(core)))
	return logs
}

// step runs one frame with exactly the given actions held.
func step(e *ecs.ECS, held ...cfg.ActionID) {
	FeedInput(e, held...)
	e.Update()
}

func hit(target *donburi.Entry, amount int) components.DamageEvent {
	return components.DamageEvent{Target: target.Entity(), Amount: amount, Source: "test"}
}

func currentPlayer(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	require.True(t, ok, "expected a player entity")
	return entry
}

func isImmortal(t *testing.T, e *ecs.ECS) bool {
	t.Helper()
	return components.Player.Get(currentPlayer(t, e)).IsInvulnerable()
}

func health(entry *donburi.Entry) int {
	return components.Health.Get(entry).Current
}

func overlayCount(e *ecs.ECS) int {
	n := 0
	tags.DebugOverlay.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
