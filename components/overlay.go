package components

import (
	"image/color"

	"github.com/automoto/doomerang-immortal/fonts"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayText is a single line of text inside an overlay node.
type OverlayText struct {
	Text  string
	Color color.RGBA
	Font  fonts.FontName
}

// OverlayData describes a screen-anchored UI node and its children.
// Right and Top are offsets from the top-right corner of the screen.
type OverlayData struct {
	Right      float64
	Top        float64
	Padding    float64
	Background color.RGBA
	Children   []OverlayText

	// Pulse drives the background alpha multiplier. Nil means no pulse.
	Pulse *gween.Sequence
	Alpha float32
}

var Overlay = donburi.NewComponentType[OverlayData]()
