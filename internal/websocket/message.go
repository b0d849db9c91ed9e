package websocket

import (
	"encoding/json"
	"time"
)

// MessageType defines the wire envelope types.
type MessageType string

const (
	TypePing MessageType = "ping"
	TypePong MessageType = "pong"

	// Client -> server
	TypeJoin    MessageType = "join"
	TypeMessage MessageType = "message"

	// Server -> room
	TypeMessageRetract MessageType = "message_retract"

	TypeError MessageType = "error"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
