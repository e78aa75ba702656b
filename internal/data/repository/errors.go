package repository

import "errors"

// ErrRoomNotFound is returned by booking writes when the target room row is gone.
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomFull is returned when the locked occupancy recount hits capacity.
var ErrRoomFull = errors.New("room is at capacity")
