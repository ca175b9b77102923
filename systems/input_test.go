package systems

import (
	"testing"

	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/stretchr/testify/assert"
)

func TestGetAction(t *testing.T) {
	cases := []struct {
		name       string
		prev, curr bool
		want       components.ActionState
	}{
		{"idle", false, false, components.ActionState{}},
		{"pressed", false, true, components.ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, components.ActionState{Pressed: true}},
		{"released", true, false, components.ActionState{JustReleased: true}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var input components.InputData
			input.Previous[cfg.ActionToggleImmortal] = c.prev
			input.Current[cfg.ActionToggleImmortal] = c.curr
			assert.Equal(t, c.want, GetAction(&input, cfg.ActionToggleImmortal))
		})
	}
}

func TestFeedInputAdvancesBuffers(t *testing.T) {
	e, _ := newTestGame(t)

	FeedInput(e, cfg.ActionMoveLeft)
	FeedInput(e, cfg.ActionMoveRight)

	input := getOrCreateInput(e)
	assert.True(t, input.Previous[cfg.ActionMoveLeft])
	assert.True(t, input.Current[cfg.ActionMoveRight])
	assert.False(t, input.Current[cfg.ActionMoveLeft])
}

func TestPlayerMovement(t *testing.T) {
	e, player := newTestGame(t)
	startX := components.Object.Get(player).X

	step(e, cfg.ActionMoveLeft)
	assert.Less(t, components.Object.Get(player).X, startX)
	assert.Equal(t, -1.0, components.Player.Get(player).Direction.X)

	for i := 0; i < 20; i++ {
		step(e)
	}
	assert.Zero(t, components.Physics.Get(player).SpeedX, "friction stops the player")
}
