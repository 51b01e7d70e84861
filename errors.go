package vantage

import "fmt"

// UnknownRoomError reports a room id that does not resolve in the graph.
// Fatal during authoring (a dangling connection is a broken tour); at
// runtime the teleporter rejects the request and carries on.
type UnknownRoomError struct {
	ID RoomID
}

func (e UnknownRoomError) Error() string {
	return fmt.Sprintf("vantage: unknown room %q", string(e.ID))
}

// DuplicateIDError reports an attempt to add a room whose id is already
// present in the graph. Authoring-time only.
type DuplicateIDError struct {
	ID RoomID
}

func (e DuplicateIDError) Error() string {
	return fmt.Sprintf("vantage: duplicate room id %q", string(e.ID))
}
