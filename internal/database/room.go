package database

import (
	"errors"
	"time"

	"github.com/mkravets/safechat/internal/models"
	"gorm.io/gorm"
)

func (d *Database) RoomExists(website string) (bool, error) {
	var room models.Room
	err := d.db.Select("website").First(&room, "website = ?", website).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (d *Database) CreateRoom(website string) error {
	room := models.Room{
		Website:   website,
		CreatedAt: time.Now(),
	}
	return d.db.Create(&room).Error
}

// EnsureRoom creates the room on first sight of the key and is a no-op
// afterwards. Callers do not need to check existence themselves.
func (d *Database) EnsureRoom(website string) error {
	exists, err := d.RoomExists(website)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return d.CreateRoom(website)
}

func (d *Database) GetRoom(website string) (*models.Room, error) {
	var room models.Room
	if err := d.db.First(&room, "website = ?", website).Error; err != nil {
		return nil, err
	}
	return &room, nil
}
