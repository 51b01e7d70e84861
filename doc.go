// Package vantage orchestrates teleport-style navigation between fixed
// vantage points ("rooms") in an immersive viewer.
//
// Vantage provides the navigation graph, per-hotspot interaction state
// machines, fade-to-black transition sequencing, and the pointer refresh
// protocol that discards stale hover/select state after an instantaneous
// viewpoint jump. It does not render anything: the host supplies a
// fullscreen [Overlay], a [ViewerRig] to reposition, and (optionally) an
// [InputDevices] layer, and advances the library once per frame.
//
// # Quick start
//
// Build a [Tour], author the graph, bind hotspots, and tick it from your
// game loop:
//
//	tour := vantage.NewTour(vantage.TourConfig{Overlay: overlay, Rig: rig})
//	tour.Graph().AddRoom(&vantage.Room{ID: "lobby", Pose: lobbyPose})
//	tour.Graph().AddRoom(&vantage.Room{ID: "hall", Pose: hallPose})
//	tour.AddConnection("lobby", vantage.ConnectionPoint{
//		Target:  "hall",
//		Hotspot: "lobby-door",
//	}, doorVisual)
//	tour.EnterRoom("lobby")
//
//	// each frame:
//	tour.Update(dt)
//
// Hover and select signals from the host input layer are delivered with
// [Tour.Dispatch] (immediate) or the Inject methods (queued until the next
// frame). A confirmed selection on a hovered hotspot starts the transition
// sequence: fade out, reposition the viewer, refresh pointer devices, fade
// in, and release the hotspot's cooldown.
//
// # Frame stepping
//
// Vantage is single-threaded and cooperative. Long-running operations
// (fades, frame waits) are expressed as [Step] values composed into a
// [Sequence] that is advanced by Update once per frame — there are no
// goroutines and no locks. At most one transition is in flight at a time;
// a second request returns [Busy].
//
// # Ebitengine
//
// The library core is host-agnostic. [NewEbitenOverlay] provides a
// ready-made [Overlay] for [Ebitengine] hosts, and the ECS bridge in
// vantage/ecs publishes [TourEvent] values into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package vantage
