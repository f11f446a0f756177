package contract

import (
	"context"

	"anon-board-be/internal/entity"
	"anon-board-be/internal/repository/specification"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *entity.Message) error
	Update(ctx context.Context, msg *entity.Message) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// EnsureSchema idempotently creates the messages table. Called at
	// startup and opportunistically on first page load.
	EnsureSchema(ctx context.Context) error

	// Ping runs a trivial query against the store for the health check.
	Ping(ctx context.Context) error
}
