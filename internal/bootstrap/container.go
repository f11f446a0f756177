package bootstrap

import (
	"anon-board-be/internal/config"
	"anon-board-be/internal/controller"
	"anon-board-be/internal/pkg/logger"
	"anon-board-be/internal/repository/implementation"
	"anon-board-be/internal/repository/memory"
	"anon-board-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	BoardController controller.IBoardController
	SessionRepo     *memory.SessionRepository
	Logger          logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	messageRepo := implementation.NewMessageRepository(db)
	sessionRepo := memory.NewSessionRepository()

	messageService := service.NewMessageService(messageRepo, sysLogger)
	healthService := service.NewHealthService(messageRepo)

	boardController := controller.NewBoardController(messageService, healthService)

	return &Container{
		BoardController: boardController,
		SessionRepo:     sessionRepo,
		Logger:          sysLogger,
	}
}
