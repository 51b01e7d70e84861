package ecs

import (
	"github.com/phanxgames/vantage"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TourEventType is the Donburi event type for vantage tour events.
// Subscribe to this in your ECS systems to react to hovers, selections, and
// teleport lifecycle changes.
var TourEventType = events.NewEventType[vantage.TourEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiEventStore creates an EventStore backed by a Donburi world.
// Tour events are published to TourEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiEventStore(world donburi.World) vantage.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event vantage.TourEvent) {
	TourEventType.Publish(s.world, event)
}
