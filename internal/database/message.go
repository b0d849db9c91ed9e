package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkravets/safechat/internal/models"
)

func (d *Database) SaveMessage(message *models.Message) error {
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	return d.db.Create(message).Error
}

func (d *Database) GetMessage(id uuid.UUID) (*models.Message, error) {
	var message models.Message
	if err := d.db.First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// MarkRetracted flips the moderation flag on an already persisted message.
// The row stays; retraction is a visibility change, not a delete.
func (d *Database) MarkRetracted(id uuid.UUID) error {
	return d.db.Model(&models.Message{}).Where("id = ?", id).Update("retracted", true).Error
}

// GetRoomMessages returns the room history oldest-first, hiding retracted
// messages.
func (d *Database) GetRoomMessages(website string, limit int) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Where("room_website = ? AND retracted = ?", website, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
