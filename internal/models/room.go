package models

import (
	"time"
)

type Room struct {
	// Website is the externally supplied room key; rooms are never generated here.
	Website   string `gorm:"primaryKey"`
	CreatedAt time.Time

	Messages []Message `gorm:"foreignKey:RoomWebsite;references:Website"`
}
