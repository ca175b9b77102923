package systems

import (
	"github.com/automoto/doomerang-immortal/components"
	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/logging"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// PushDamage queues a damage event for this frame. It returns false when
// the frame's queue is already at capacity; the event is dropped.
func PushDamage(ecs *ecs.ECS, ev components.DamageEvent) bool {
	queue := getOrCreateDamageQueue(ecs)
	if len(queue.Events) >= cfg.Combat.DamageQueueCapacity {
		logging.L().Debug("damage queue full, dropping event",
			zap.String("source", ev.Source),
			zap.Int("amount", ev.Amount),
			zap.Int("capacity", cfg.Combat.DamageQueueCapacity),
		)
		return false
	}
	queue.Events = append(queue.Events, ev)
	return true
}

// PendingDamage returns the number of events queued this frame.
func PendingDamage(ecs *ecs.ECS) int {
	return len(getOrCreateDamageQueue(ecs).Events)
}

// ClearDamageQueue drops everything still queued. It runs at frame end so
// no event is ever carried into the next frame.
func ClearDamageQueue(ecs *ecs.ECS) {
	queue := getOrCreateDamageQueue(ecs)
	if n := len(queue.Events); n > 0 {
		logging.L().Debug("dropping undrained damage events", zap.Int("count", n))
	}
	queue.Events = queue.Events[:0]
}

// getOrCreateDamageQueue returns the singleton DamageQueue component
func getOrCreateDamageQueue(ecs *ecs.ECS) *components.DamageQueueData {
	entry, ok := components.DamageQueue.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.DamageQueue))
		components.DamageQueue.SetValue(entry, components.DamageQueueData{
			Events: make([]components.DamageEvent, 0, cfg.Combat.DamageQueueCapacity),
		})
	}
	return components.DamageQueue.Get(entry)
}
