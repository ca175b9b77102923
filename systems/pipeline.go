package systems

import "github.com/yohamta/donburi/ecs"

// AddGameplaySystems registers the per-frame gameplay systems in their
// required order. Producers queue damage, the immortality toggle runs,
// combat drains the queue, and the overlay sync observes the final flag.
// Anything left in the damage queue is dropped at the end of the frame.
func AddGameplaySystems(e *ecs.ECS) {
	e.AddSystem(WithGameplayChecks(UpdatePlayerMovement))
	e.AddSystem(WithGameplayChecks(UpdatePhysics))

	// Damage producers
	e.AddSystem(WithGameplayChecks(UpdateDebugHurt))
	e.AddSystem(WithGameplayChecks(UpdateHazards))

	e.AddSystem(WithGameplayChecks(UpdateImmortalToggle))
	e.AddSystem(WithGameplayChecks(UpdateCombat))

	e.AddSystem(WithGameplayChecks(UpdateDeaths))
	e.AddSystem(WithGameplayChecks(UpdateRespawn))
	e.AddSystem(WithGameplayChecks(UpdateEffects))

	e.AddSystem(WithGameplayChecks(UpdateDebugOverlay))
	e.AddSystem(UpdateOverlayPulse)

	e.AddSystem(ClearDamageQueue)
}
