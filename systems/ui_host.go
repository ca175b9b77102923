package systems

import (
	"github.com/automoto/doomerang-immortal/components"
	"github.com/automoto/doomerang-immortal/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// UIHost creates, finds and destroys UI nodes by tag. Callers never hold
// on to node entities across frames; they ask the host instead.
type UIHost interface {
	Exists(tag donburi.IComponentType) bool
	Create(node components.OverlayData, tags ...donburi.IComponentType)
	DestroyByTag(tag donburi.IComponentType) int
}

// WorldUIHost keeps UI nodes as entities in a donburi world.
type WorldUIHost struct {
	World donburi.World
}

func (h WorldUIHost) Exists(tag donburi.IComponentType) bool {
	_, ok := donburi.NewQuery(filter.Contains(tag, components.Overlay)).First(h.World)
	return ok
}

func (h WorldUIHost) Create(node components.OverlayData, tags ...donburi.IComponentType) {
	cs := append([]donburi.IComponentType{components.Overlay}, tags...)
	entry := h.World.Entry(h.World.Create(cs...))
	components.Overlay.SetValue(entry, node)
}

func (h WorldUIHost) DestroyByTag(tag donburi.IComponentType) int {
	var toRemove []donburi.Entity
	donburi.NewQuery(filter.Contains(tag)).Each(h.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e.Entity())
	})

	for _, e := range toRemove {
		h.World.Remove(e)
	}
	return len(toRemove)
}

// CleanupUI removes every node carrying the cleanup tag. Scenes call it
// on state transitions; it does not care who created the nodes.
func CleanupUI(ecs *ecs.ECS) int {
	return WorldUIHost{World: ecs.World}.DestroyByTag(tags.UICleanup)
}
