package entity

import "time"

type Message struct {
	Id        int64
	Text      string
	OwnerId   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
