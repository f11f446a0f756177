package service

import (
	"context"

	"anon-board-be/internal/dto"
	"anon-board-be/internal/repository/contract"
)

type IHealthService interface {
	Check(ctx context.Context) *dto.HealthResponse
}

type healthService struct {
	messageRepo contract.MessageRepository
}

func NewHealthService(messageRepo contract.MessageRepository) IHealthService {
	return &healthService{messageRepo: messageRepo}
}

// Check pings the store. Unlike every other path this is diagnostic, so
// the raw error text is included in the response.
func (c *healthService) Check(ctx context.Context) *dto.HealthResponse {
	if err := c.messageRepo.Ping(ctx); err != nil {
		return &dto.HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		}
	}
	return &dto.HealthResponse{
		Status:   "healthy",
		Database: "connected",
	}
}
