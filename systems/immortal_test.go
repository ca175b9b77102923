package systems

import (
	"testing"

	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmortalToggleIsEdgeTriggered(t *testing.T) {
	e, _ := newTestGame(t)
	logs := observeLogs(t)

	require.False(t, isImmortal(t, e), "new player starts mortal")

	step(e, cfg.ActionToggleImmortal)
	assert.True(t, isImmortal(t, e))

	// Holding the key for several frames does not toggle again.
	for i := 0; i < 5; i++ {
		step(e, cfg.ActionToggleImmortal)
	}
	assert.True(t, isImmortal(t, e))

	step(e) // release
	step(e, cfg.ActionToggleImmortal)
	assert.False(t, isImmortal(t, e))

	assert.Equal(t, 1, logs.FilterMessage("Debug Immortality: ON").Len())
	assert.Equal(t, 1, logs.FilterMessage("Debug Immortality: OFF").Len())
}

func TestImmortalToggleParity(t *testing.T) {
	for n := 0; n <= 6; n++ {
		e, _ := newTestGame(t)
		for i := 0; i < n; i++ {
			step(e, cfg.ActionToggleImmortal)
			step(e)
		}
		assert.Equal(t, n%2 == 1, isImmortal(t, e), "after %d presses", n)
	}
}

func TestImmortalToggleLogsNewState(t *testing.T) {
	e, _ := newTestGame(t)
	logs := observeLogs(t)

	immortal, ok := ToggleImmortal(e)
	require.True(t, ok)
	require.True(t, immortal)

	entries := logs.FilterMessage("Debug Immortality: ON").All()
	require.Len(t, entries, 1)
	assert.Equal(t, true, entries[0].ContextMap()["immortal"])
}

func TestImmortalToggleWithoutPlayerIsNoop(t *testing.T) {
	e := newTestECS(t)
	logs := observeLogs(t)

	require.NotPanics(t, func() { step(e, cfg.ActionToggleImmortal) })

	_, ok := ToggleImmortal(e)
	assert.False(t, ok)
	assert.Zero(t, logs.FilterMessageSnippet("Debug Immortality").Len())
}

func TestOtherKeysDoNotToggle(t *testing.T) {
	e, _ := newTestGame(t)

	step(e, cfg.ActionMoveLeft, cfg.ActionMenuSelect, cfg.ActionDebugHurt)
	assert.False(t, isImmortal(t, e))
}
