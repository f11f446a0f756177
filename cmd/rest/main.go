package main

import (
	"context"
	"log"

	"anon-board-be/internal/bootstrap"
	"anon-board-be/internal/config"
	"anon-board-be/internal/server"
	"anon-board-be/internal/tracer"
	"anon-board-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
	})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Ensure Schema. Non-fatal: the index handler retries on first
	// page load so the server stays up through a store outage.
	if err := database.Migrate(gormDB); err != nil {
		log.Printf("Warning: schema migration failed (will retry on first page load): %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
