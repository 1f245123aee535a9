// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// services and handlers to distinguish between different failure
// scenarios with errors.Is instead of string matching. Lookup
// failures get one sentinel per entity, defined next to the
// repository that raises them.
package repository

import "errors"

// ErrRoomFull is returned by booking mutations when the target room
// has no remaining slot: the number of active bookings referencing
// the room already equals its capacity. Handlers should translate
// this into an HTTP 403 response.
var ErrRoomFull = errors.New("room is full")
