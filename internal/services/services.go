package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkravets/safechat/internal/models"
)

// RoomDirectory is the durable record of which room keys exist.
type RoomDirectory interface {
	EnsureRoom(website string) error
}

// MessageStore persists messages and their moderation state.
type MessageStore interface {
	SaveMessage(message *models.Message) error
	MarkRetracted(id uuid.UUID) error
}

// Classifier scores raw text for toxicity on two independent axes.
type Classifier interface {
	Classify(ctx context.Context, text string) (Scores, error)
}

// Scores is the typed response contract of the external classifier.
type Scores struct {
	Score0 float64
	Score1 float64
}

// Broadcaster fans a payload out to every connection in a room.
type Broadcaster interface {
	SendToRoom(website string, message []byte)
}
