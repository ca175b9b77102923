package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMergesOverDefaults(t *testing.T) {
	t.Cleanup(Defaults)

	err := Parse([]byte(`
player:
  health: 250
combat:
  damageQueueCapacity: 8
overlay:
  text: GOD MODE
`))
	require.NoError(t, err)

	assert.Equal(t, 250, Player.Health)
	assert.Equal(t, 3, Player.StartingLives, "absent keys keep their default")
	assert.Equal(t, 8, Combat.DamageQueueCapacity)
	assert.Equal(t, 10, Combat.DebugHurtAmount)
	assert.Equal(t, "GOD MODE", Overlay.Text)
	assert.Equal(t, DebugRed, Overlay.BackgroundColor)
	assert.Equal(t, 640, C.Width)
}

func TestParseRebindsDebugKeys(t *testing.T) {
	t.Cleanup(Defaults)

	require.NoError(t, Parse([]byte("debug:\n  immortalKey: f2\n  hurtKey: K\n")))

	assert.Equal(t, []ebiten.Key{ebiten.KeyF2}, Input.Bindings[ActionToggleImmortal].Keys)
	assert.Equal(t, []ebiten.Key{ebiten.KeyK}, Input.Bindings[ActionDebugHurt].Keys)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"unknown key", "debug:\n  immortalKey: NotAKey\n"},
		{"zero health", "player:\n  health: 0\n"},
		{"zero queue", "combat:\n  damageQueueCapacity: 0\n"},
		{"bad window", "window:\n  width: -1\n"},
		{"malformed", "player: [\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Cleanup(Defaults)
			assert.Error(t, Parse([]byte(c.yaml)))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Cleanup(Defaults)

	require.NoError(t, Load(""), "empty path is a no-op")

	_, err := os.Stat("does-not-exist.yaml")
	require.True(t, os.IsNotExist(err))
	assert.Error(t, Load("does-not-exist.yaml"))

	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hazard:\n  damage: 42\n"), 0o600))
	require.NoError(t, Load(path))
	assert.Equal(t, 42, Hazard.Damage)
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("F1")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyF1, k)

	_, err = ParseKey("")
	assert.Error(t, err)
}
