package systems

import (
	"image/color"

	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld renders hazard zones and the player as flat rectangles.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.HazardOrange, false)
	})

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	o := components.Object.Get(playerEntry)
	c := tint(cfg.PlayerBlue, components.Flash.Get(playerEntry))
	vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
}

// tint applies an active flash's color multipliers.
func tint(c color.RGBA, flash *components.FlashData) color.RGBA {
	if flash.Duration <= 0 {
		return c
	}
	return color.RGBA{
		R: clampChannel(float32(c.R)*flash.R + 40*flash.R),
		G: clampChannel(float32(c.G) * flash.G),
		B: clampChannel(float32(c.B) * flash.B),
		A: c.A,
	}
}

func clampChannel(v float32) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
