package main

import (
	"log"
	"os"

	"eventpass-be/internal/model"
	"eventpass-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions & Enums (Things GORM AutoMigrate doesn't do perfectly)
	log.Println("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		// Extensions
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,

		// Enums (Idempotent creation)
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'refund_status') THEN CREATE TYPE refund_status AS ENUM ('pending', 'approved', 'rejected', 'processing', 'completed'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'ticket_status') THEN CREATE TYPE ticket_status AS ENUM ('valid', 'used', 'refunded'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.Event{},
		&model.RefundPolicy{},
		&model.TicketType{},
		&model.Ticket{},
		&model.RefundRequest{},
		&model.RefundStatusChange{},
		&model.Notification{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Indexes the workflow leans on
	log.Println("Step 3: Creating supporting indexes...")

	postMigrationSQL := []string{
		// One non-terminal request per ticket, enforced at the storage
		// layer as the backstop for the application-level guard.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_refund_requests_active_ticket
		 ON refund_requests (ticket_id)
		 WHERE status IN ('pending', 'approved', 'processing');`,

		// Organizer list view: requests joined to events by owner.
		`CREATE INDEX IF NOT EXISTS idx_refund_requests_event_status
		 ON refund_requests (event_id, status);`,

		`CREATE INDEX IF NOT EXISTS idx_refund_status_changes_request
		 ON refund_status_changes (request_id, changed_at);`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
