package systems

import "github.com/yohamta/donburi/ecs"

// ClearEvents empties the per-tick event queues. Registered last so every
// consumer has seen this tick's events.
func ClearEvents(e *ecs.ECS) {
	GetEvents(e).Clear()
}
