package model

import "time"

// Message maps to the legacy `messages` table. Column names are kept
// as-is so an existing database keeps working: the text column is
// `message` and the owner token column is `user_id`.
type Message struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Text      string    `gorm:"column:message;type:text;not null"`
	OwnerId   string    `gorm:"column:user_id;type:varchar(50);default:'anonymous'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Message) TableName() string {
	return "messages"
}
