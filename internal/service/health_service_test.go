package service

import (
	"context"
	"testing"

	"anon-board-be/internal/repository/implementation"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestHealthCheckHealthy(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewHealthService(repo)

	res := svc.Check(context.Background())
	assert.Equal(t, "healthy", res.Status)
	assert.Equal(t, "connected", res.Database)
	assert.Empty(t, res.Error)
}

func TestHealthCheckUnreachableStore(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)

	// Close the underlying pool so every query fails.
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Close())

	svc := NewHealthService(implementation.NewMessageRepository(db))

	res := svc.Check(context.Background())
	assert.Equal(t, "unhealthy", res.Status)
	assert.Equal(t, "disconnected", res.Database)
	assert.NotEmpty(t, res.Error, "health check is diagnostic and carries the store error")
}
