package systems

import (
	"image/color"

	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the player's health bar and lives counter in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	lives := components.Lives.Get(playerEntry)

	// Background
	vector.FillRect(screen,
		float32(cfg.HUD.Margin), float32(cfg.HUD.Margin),
		float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight),
		cfg.HUD.BarBgColor, false)

	// Current HP
	ratio := float32(hp.Current) / float32(hp.Max)
	vector.FillRect(screen,
		float32(cfg.HUD.Margin), float32(cfg.HUD.Margin),
		float32(cfg.HUD.BarWidth)*ratio, float32(cfg.HUD.BarHeight),
		cfg.HUD.BarFgColor, false)

	// Lives counter
	livesY := cfg.HUD.Margin + cfg.HUD.BarHeight + cfg.HUD.LivesMargin
	for i := 0; i < lives.Lives; i++ {
		x := cfg.HUD.Margin + float64(i)*(cfg.HUD.LifeSize+cfg.HUD.LivesMargin)
		vector.FillRect(screen,
			float32(x), float32(livesY),
			float32(cfg.HUD.LifeSize), float32(cfg.HUD.LifeSize),
			cfg.HUD.LifeColor, false)
	}
}

// drawCentered draws a line of text horizontally centered at baseline y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y float64, clr color.Color) {
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, int(y), clr) //nolint:staticcheck // TODO: migrate to text/v2
}
