package main

import (
	"context"
	"log"
	"time"

	"eventpass-be/internal/bootstrap"
	"eventpass-be/internal/config"
	"eventpass-be/internal/server"
	"eventpass-be/internal/tracer"
	"eventpass-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Payout Consumer...")
		if err := container.PayoutConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Payout Consumer Error: %v", err)
		}
	}()

	// Sweep for payouts that got approved but never paid out (enqueue
	// failures, worker crashes).
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if err := container.PayoutConsumerService.RetryStuckPayouts(context.Background()); err != nil {
				log.Printf("Background Payout Sweep Error: %v", err)
			}
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
