package websocket

import "errors"

var (
	ErrClientQueueFull = errors.New("client message queue is full")
	ErrInvalidMessage  = errors.New("invalid message format")
	ErrNotJoined       = errors.New("connection has not joined a room")
	ErrAlreadyJoined   = errors.New("connection already joined a room")
)
