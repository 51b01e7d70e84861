// Package ecs provides ECS adapters for vantage's tour event system.
//
// The primary adapter is [NewDonburiEventStore], which bridges vantage tour
// events (hover, select, teleport lifecycle) into a [Donburi] world as typed
// events. Subscribe to [TourEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiEventStore(world)
//	tour.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
