package models

import (
	"github.com/google/uuid"
	"time"
)

type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	RoomWebsite string    `gorm:"not null;index"`
	Username    string    `gorm:"not null"`
	Content     string    `gorm:"not null"`
	// Retracted flips to true when the moderation gate fires; rows are
	// never physically deleted.
	Retracted bool `gorm:"default:false"`
	CreatedAt time.Time

	Room Room `gorm:"foreignKey:RoomWebsite;references:Website"`
}
