package vantage

// Room is a fixed vantage point in the tour. Rooms are created during
// authoring/load and are immutable afterwards except for their connection
// list, which may grow via [NavigationGraph.AddConnection]. Rooms are never
// destroyed during a session.
type Room struct {
	// ID uniquely identifies the room within its graph.
	ID RoomID

	// Pose is the viewer placement applied on arrival.
	Pose Pose

	connections []ConnectionPoint
}

// Connections returns the room's connection points in authoring order.
// The returned slice MUST NOT be mutated.
func (r *Room) Connections() []ConnectionPoint {
	return r.connections
}

// ConnectionPoint is a selectable link from its owning room to a target
// room, anchored at a point in space.
type ConnectionPoint struct {
	// Target is the room reached by activating this connection. It must
	// resolve in the same graph; AddConnection and Validate enforce this.
	Target RoomID

	// AnchorOffset is the hotspot position relative to the owning room's
	// origin.
	AnchorOffset Vec3

	// Hotspot is a back-reference, by identity, to the hotspot controller
	// representing this connection. Ownership of the controller lies with
	// the scene graph, not with the connection.
	Hotspot HotspotID
}

// NavigationGraph holds the tour's rooms and their directed connections.
// Pure data: lookup plus incremental insertion, no deletion. The graph need
// not be symmetric; a connection A→B does not imply B→A exists.
//
// Single-writer, read-mostly: mutate only during authoring/load, never while
// a transition is active.
type NavigationGraph struct {
	rooms map[RoomID]*Room
}

// NewNavigationGraph creates an empty graph.
func NewNavigationGraph() *NavigationGraph {
	return &NavigationGraph{rooms: make(map[RoomID]*Room)}
}

// AddRoom inserts a room. Returns a DuplicateIDError if the id is taken.
func (g *NavigationGraph) AddRoom(room *Room) error {
	if _, exists := g.rooms[room.ID]; exists {
		return DuplicateIDError{ID: room.ID}
	}
	g.rooms[room.ID] = room
	return nil
}

// AddConnection appends a connection to the room with id from. Returns an
// UnknownRoomError if either endpoint is absent from the graph.
func (g *NavigationGraph) AddConnection(from RoomID, conn ConnectionPoint) error {
	room, ok := g.rooms[from]
	if !ok {
		return UnknownRoomError{ID: from}
	}
	if _, ok := g.rooms[conn.Target]; !ok {
		return UnknownRoomError{ID: conn.Target}
	}
	room.connections = append(room.connections, conn)
	return nil
}

// Resolve looks up a room by id. Returns an UnknownRoomError if absent.
func (g *NavigationGraph) Resolve(id RoomID) (*Room, error) {
	room, ok := g.rooms[id]
	if !ok {
		return nil, UnknownRoomError{ID: id}
	}
	return room, nil
}

// Len returns the number of rooms in the graph.
func (g *NavigationGraph) Len() int {
	return len(g.rooms)
}

// Validate checks every connection target against the room map. Dangling
// targets are a load-time error; run this after authoring and before the
// tour goes live. Returns the first UnknownRoomError found, or nil.
//
// AddConnection already rejects dangling targets, so Validate only catches
// graphs assembled by external loaders that construct rooms directly.
func (g *NavigationGraph) Validate() error {
	for _, room := range g.rooms {
		for _, conn := range room.connections {
			if _, ok := g.rooms[conn.Target]; !ok {
				return UnknownRoomError{ID: conn.Target}
			}
		}
	}
	return nil
}
