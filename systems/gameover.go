package systems

import (
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system that calls retry
// when the select action is pressed.
func NewUpdateGameOver(retry func()) ecs.System {
	return func(e *ecs.ECS) {
		if GetAction(getOrCreateInput(e), cfg.ActionMenuSelect).JustPressed {
			retry()
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	drawCentered(screen, cfg.GameOver.Title, fonts.Title.Get(), cfg.GameOver.TitleY, cfg.GameOver.TitleColor)
	drawCentered(screen, cfg.GameOver.Hint, fonts.Regular.Get(), cfg.GameOver.HintY, cfg.GameOver.TextColor)
}
