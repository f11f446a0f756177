package service

import (
	"context"
	"html"
	"strings"

	"anon-board-be/internal/apperrors"
	"anon-board-be/internal/dto"
	"anon-board-be/internal/entity"
	"anon-board-be/internal/pkg/logger"
	"anon-board-be/internal/repository/contract"
	"anon-board-be/internal/repository/specification"
)

// timeFormat is the board's legacy display format ("Mar 05, 2026 07:41 PM").
const timeFormat = "Jan 02, 2006 03:04 PM"

type IMessageService interface {
	Board(ctx context.Context, ownerId string) *dto.BoardView
	Create(ctx context.Context, ownerId string, req *dto.CreateMessageRequest) (*dto.CreateMessageResponse, error)
	Update(ctx context.Context, ownerId string, req *dto.UpdateMessageRequest) (*dto.UpdateMessageResponse, error)
	Delete(ctx context.Context, ownerId string, id int64) error
}

type messageService struct {
	messageRepo contract.MessageRepository
	log         logger.ILogger
}

func NewMessageService(messageRepo contract.MessageRepository, log logger.ILogger) IMessageService {
	return &messageService{
		messageRepo: messageRepo,
		log:         log,
	}
}

// Board returns every message newest-first for the index page. It never
// fails: if the store is down the page still renders, with an empty list
// and DBError set.
func (c *messageService) Board(ctx context.Context, ownerId string) *dto.BoardView {
	view := &dto.BoardView{
		Messages: []dto.BoardMessage{},
		UserId:   ownerId,
	}

	// Opportunistic schema creation, mirroring startup. A failure here is
	// not fatal; the query below reports the real problem.
	if err := c.messageRepo.EnsureSchema(ctx); err != nil {
		c.log.Warn("message", "schema check failed", map[string]interface{}{"error": err.Error()})
	}

	messages, err := c.messageRepo.FindAll(ctx, specification.NewestFirst{})
	if err != nil {
		c.log.Error("message", "failed to load board", map[string]interface{}{"error": err.Error()})
		view.DBError = "Unable to load messages from the database."
		return view
	}

	for _, msg := range messages {
		view.Messages = append(view.Messages, dto.BoardMessage{
			Id:        msg.Id,
			Message:   msg.Text,
			CreatedAt: msg.CreatedAt,
			UserId:    msg.OwnerId,
			IsOwner:   msg.OwnerId == ownerId,
		})
	}
	return view
}

func (c *messageService) Create(ctx context.Context, ownerId string, req *dto.CreateMessageRequest) (*dto.CreateMessageResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, apperrors.NewValidation("Message cannot be empty")
	}

	// Escape once, at write time. Stored text is always render-safe.
	msg := entity.Message{
		Text:    html.EscapeString(text),
		OwnerId: ownerId,
	}

	if err := c.messageRepo.Create(ctx, &msg); err != nil {
		return nil, apperrors.NewStorage("Database error: Unable to save message. Please check your connection.", err)
	}

	// Re-read the inserted row so the response carries the store's own
	// id and timestamp. A miss here means a concurrent delete won the
	// race between insert and readback.
	created, err := c.messageRepo.FindOne(ctx, specification.ByID{ID: msg.Id})
	if err != nil || created == nil {
		return nil, apperrors.NewStorage("Database error: Unable to save message. Please check your connection.", err)
	}

	return &dto.CreateMessageResponse{
		Id:        created.Id,
		Message:   created.Text,
		CreatedAt: created.CreatedAt.Format(timeFormat),
		UserId:    ownerId,
		IsOwner:   true,
	}, nil
}

func (c *messageService) Update(ctx context.Context, ownerId string, req *dto.UpdateMessageRequest) (*dto.UpdateMessageResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, apperrors.NewValidation("Message cannot be empty")
	}

	// Check-then-act: fetch owner, compare, then write. There is no
	// version check, so two tabs of the same owner race last-write-wins.
	msg, err := c.messageRepo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperrors.NewStorage("Database error: Unable to edit message.", err)
	}
	if msg == nil {
		return nil, apperrors.NewNotFound("Message not found")
	}
	if msg.OwnerId != ownerId {
		return nil, apperrors.NewAuthorization("Not authorized to edit this message")
	}

	msg.Text = html.EscapeString(text)
	if err := c.messageRepo.Update(ctx, msg); err != nil {
		return nil, apperrors.NewStorage("Database error: Unable to edit message.", err)
	}

	updated, err := c.messageRepo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperrors.NewStorage("Database error: Unable to edit message.", err)
	}
	if updated == nil {
		return nil, apperrors.NewNotFound("Message not found")
	}

	return &dto.UpdateMessageResponse{
		Id:        updated.Id,
		Message:   updated.Text,
		UpdatedAt: updated.UpdatedAt.Format(timeFormat),
	}, nil
}

func (c *messageService) Delete(ctx context.Context, ownerId string, id int64) error {
	msg, err := c.messageRepo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperrors.NewStorage("Database error: Unable to delete message.", err)
	}
	if msg == nil {
		return apperrors.NewNotFound("Message not found")
	}
	if msg.OwnerId != ownerId {
		return apperrors.NewAuthorization("Not authorized to delete this message")
	}

	if err := c.messageRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorage("Database error: Unable to delete message.", err)
	}
	return nil
}
