package factory

import (
	"github.com/automoto/doomerang-immortal/archetypes"
	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard creates a static damage zone and registers it in the space.
func CreateHazard(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvHazard)
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	components.Hazard.SetValue(hazard, components.HazardData{
		Damage:         cfg.Hazard.Damage,
		KnockbackForce: cfg.Hazard.KnockbackForce,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return hazard
}
