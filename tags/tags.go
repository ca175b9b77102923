package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Hazard = donburi.NewTag().SetName("Hazard")

	// DebugOverlay marks the "DEBUG MODE" indicator node.
	DebugOverlay = donburi.NewTag().SetName("DebugOverlay")
	// UICleanup marks transient UI nodes reclaimed by the cleanup sweep
	// on state transitions.
	UICleanup = donburi.NewTag().SetName("UICleanup")
)

// Resolv tags for physics collision
const (
	ResolvPlayer = "Player"
	ResolvHazard = "hazard"
)
