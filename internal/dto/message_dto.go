package dto

import "time"

type CreateMessageRequest struct {
	Message string `form:"new_message" json:"new_message" validate:"required"`
}

type UpdateMessageRequest struct {
	Id      int64  `json:"-"`
	Message string `json:"message" validate:"required"`
}

// CreateMessageResponse mirrors the wire shape the board's frontend
// expects: timestamps are pre-formatted strings, and is_owner is always
// true because the creator owns what they just created.
type CreateMessageResponse struct {
	Id        int64  `json:"id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	UserId    string `json:"user_id"`
	IsOwner   bool   `json:"is_owner"`
}

type UpdateMessageResponse struct {
	Id        int64  `json:"id"`
	Message   string `json:"message"`
	UpdatedAt string `json:"updated_at"`
}

// BoardMessage is a single row on the rendered index page.
type BoardMessage struct {
	Id        int64
	Message   string
	CreatedAt time.Time
	UserId    string
	IsOwner   bool
}

// BoardView backs the index template. DBError is set instead of failing
// the page when the store is unreachable.
type BoardView struct {
	Messages []BoardMessage
	UserId   string
	DBError  string
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}
