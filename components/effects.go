package components

import "github.com/yohamta/donburi"

// FlashData tracks sprite flash effect (damage flash)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 3,1,1 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()
