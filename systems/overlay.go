package systems

import (
	"image/color"

	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/fonts"
	"github.com/automoto/doomerang-immortal/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugOverlay makes the "DEBUG MODE" indicator exist exactly when
// the player is immortal. Runs after UpdateCombat so it sees the frame's
// final flag. No player this frame means no change.
func UpdateDebugOverlay(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	immortal := components.Player.Get(playerEntry).IsInvulnerable()
	SyncDebugOverlay(WorldUIHost{World: ecs.World}, immortal)
}

// SyncDebugOverlay reconciles the indicator against the flag. It checks
// the host every call, so repeated calls with the same flag are no-ops.
func SyncDebugOverlay(host UIHost, immortal bool) {
	have := host.Exists(tags.DebugOverlay)
	switch {
	case immortal && !have:
		host.Create(NewDebugOverlayNode(), tags.DebugOverlay, tags.UICleanup)
	case !immortal && have:
		host.DestroyByTag(tags.DebugOverlay)
	}
}

// NewDebugOverlayNode builds the indicator node from the overlay config.
func NewDebugOverlayNode() components.OverlayData {
	pulse := gween.NewSequence(
		gween.New(1, 0.5, cfg.Overlay.PulseTime, ease.InOutSine),
		gween.New(0.5, 1, cfg.Overlay.PulseTime, ease.InOutSine),
	)
	return components.OverlayData{
		Right:      cfg.Overlay.Right,
		Top:        cfg.Overlay.Top,
		Padding:    cfg.Overlay.Padding,
		Background: cfg.Overlay.BackgroundColor,
		Children: []components.OverlayText{
			{Text: cfg.Overlay.Text, Color: cfg.Overlay.TextColor, Font: fonts.Bold},
		},
		Pulse: pulse,
		Alpha: 1,
	}
}

// UpdateOverlayPulse advances the background pulse of every overlay node.
func UpdateOverlayPulse(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TPS)
	components.Overlay.Each(ecs.World, func(e *donburi.Entry) {
		node := components.Overlay.Get(e)
		if node.Pulse == nil {
			return
		}
		alpha, _, done := node.Pulse.Update(dt)
		node.Alpha = alpha
		if done {
			node.Pulse.Reset()
		}
	})
}

// DrawOverlays renders every overlay node anchored to the top-right corner.
func DrawOverlays(ecs *ecs.ECS, screen *ebiten.Image) {
	screenWidth := float64(screen.Bounds().Dx())

	components.Overlay.Each(ecs.World, func(e *donburi.Entry) {
		node := components.Overlay.Get(e)

		// Measure children
		var boxWidth, boxHeight float64
		for _, child := range node.Children {
			bounds := text.BoundString(child.Font.Get(), child.Text) //nolint:staticcheck // TODO: migrate to text/v2
			if w := float64(bounds.Dx()); w > boxWidth {
				boxWidth = w
			}
			boxHeight += float64(bounds.Dy()) + node.Padding
		}
		boxWidth += node.Padding * 2
		boxHeight += node.Padding

		boxX := screenWidth - node.Right - boxWidth
		boxY := node.Top

		bg := color.NRGBA{
			R: node.Background.R,
			G: node.Background.G,
			B: node.Background.B,
			A: uint8(float32(node.Background.A) * node.Alpha),
		}
		vector.FillRect(screen, float32(boxX), float32(boxY), float32(boxWidth), float32(boxHeight), bg, false)

		y := boxY + node.Padding
		for _, child := range node.Children {
			face := child.Font.Get()
			bounds := text.BoundString(face, child.Text) //nolint:staticcheck // TODO: migrate to text/v2
			y += float64(bounds.Dy())
			text.Draw(screen, child.Text, face, int(boxX+node.Padding), int(y), child.Color) //nolint:staticcheck // TODO: migrate to text/v2
			y += node.Padding
		}
	})
}
