package main

import (
	"log"
	"os"
	"time"

	"eventpass-be/internal/model"
	"eventpass-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds a demo organizer with two events, a platform default refund
// policy, and a handful of tickets to exercise the refund workflow
// locally.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	organizerID := uuid.MustParse("7f0d2f61-4c2e-4b8e-9a8f-1f6a2cfa0001")
	holderID := uuid.MustParse("7f0d2f61-4c2e-4b8e-9a8f-1f6a2cfa0002")

	log.Println("Seeding refund policies...")

	// Platform default policy (EventID nil): flat 100% refund up to 48h
	// before the event, 5% processing fee.
	base := 1.0
	defaultPolicy := model.RefundPolicy{
		EventID:                 nil,
		IsRefundable:            true,
		RefundDeadlineHours:     48,
		BaseRefundPercentage:    &base,
		ProcessingFeePercentage: 0.05,
		PolicyText:              "Full refund up to 48 hours before the event. A 5% processing fee applies.",
	}
	upsertPolicy(db, &defaultPolicy, yellow)

	log.Println("Seeding events and tickets...")

	concert := model.Event{
		ID:          uuid.MustParse("7f0d2f61-4c2e-4b8e-9a8f-1f6a2cfa0010"),
		Title:       "Kampala Jazz Night",
		Venue:       "Serena Hotel",
		StartDate:   time.Now().Add(30 * 24 * time.Hour),
		EndDate:     time.Now().Add(30*24*time.Hour + 5*time.Hour),
		OrganizerID: organizerID,
	}
	full := 72
	partial := 24
	partialPct := 0.5
	concertPolicy := model.RefundPolicy{
		EventID:                    &concert.ID,
		IsRefundable:               true,
		RefundDeadlineHours:        24,
		FullRefundDeadlineHours:    &full,
		PartialRefundDeadlineHours: &partial,
		PartialRefundPercentage:    &partialPct,
		ProcessingFeePercentage:    0.05,
		PolicyText:                 "Full refund up to 72h before showtime, 50% up to 24h. 5% processing fee.",
	}

	festival := model.Event{
		ID:          uuid.MustParse("7f0d2f61-4c2e-4b8e-9a8f-1f6a2cfa0011"),
		Title:       "Nyege Nyege Festival",
		Venue:       "Itanda Falls",
		StartDate:   time.Now().Add(60 * 24 * time.Hour),
		EndDate:     time.Now().Add(63 * 24 * time.Hour),
		OrganizerID: organizerID,
	}

	for _, ev := range []*model.Event{&concert, &festival} {
		var existing model.Event
		if err := db.Where("id = ?", ev.ID).First(&existing).Error; err == nil {
			log.Printf("Event %s already exists, skipping...", yellow(ev.Title))
			continue
		}
		if err := db.Create(ev).Error; err != nil {
			log.Fatalf("Error creating event %s: %v", ev.Title, err)
		}
		log.Printf("Created event: %s", green(ev.Title))
	}
	upsertPolicy(db, &concertPolicy, yellow)

	ordinary := model.TicketType{
		ID:      uuid.MustParse("7f0d2f61-4c2e-4b8e-9a8f-1f6a2cfa0020"),
		EventID: concert.ID,
		Name:    "Ordinary",
		Price:   100000,
	}
	vip := model.TicketType{
		ID:      uuid.MustParse("7f0d2f61-4c2e-4b8e-9a8f-1f6a2cfa0021"),
		EventID: festival.ID,
		Name:    "VIP",
		Price:   350000,
	}
	for _, tt := range []*model.TicketType{&ordinary, &vip} {
		var existing model.TicketType
		if err := db.Where("id = ?", tt.ID).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(tt).Error; err != nil {
			log.Fatalf("Error creating ticket type %s: %v", tt.Name, err)
		}
		log.Printf("Created ticket type: %s (%.0f)", green(tt.Name), tt.Price)
	}

	tickets := []model.Ticket{
		{
			TicketNumber: "EP-2026-000101",
			EventID:      concert.ID,
			TicketTypeID: ordinary.ID,
			HolderID:     holderID,
			HolderName:   "Aisha Namukasa",
			HolderEmail:  "aisha@example.com",
			HolderPhone:  "+256700000001",
			Status:       "valid",
			PurchasedAt:  time.Now().Add(-7 * 24 * time.Hour),
		},
		{
			TicketNumber: "EP-2026-000102",
			EventID:      festival.ID,
			TicketTypeID: vip.ID,
			HolderID:     holderID,
			HolderName:   "Aisha Namukasa",
			HolderEmail:  "aisha@example.com",
			HolderPhone:  "+256700000001",
			Status:       "valid",
			PurchasedAt:  time.Now().Add(-2 * 24 * time.Hour),
		},
	}
	for _, t := range tickets {
		var existing model.Ticket
		if err := db.Where("ticket_number = ?", t.TicketNumber).First(&existing).Error; err == nil {
			log.Printf("Ticket %s already exists, skipping...", yellow(t.TicketNumber))
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			log.Fatalf("Error creating ticket %s: %v", t.TicketNumber, err)
		}
		log.Printf("Created ticket: %s", green(t.TicketNumber))
	}

	log.Println(green("✅ Seeding completed!"))
}

func upsertPolicy(db *gorm.DB, policy *model.RefundPolicy, warn func(a ...interface{}) string) {
	var existing model.RefundPolicy
	query := db.Where("event_id IS NULL")
	if policy.EventID != nil {
		query = db.Where("event_id = ?", *policy.EventID)
	}
	if err := query.First(&existing).Error; err == nil {
		log.Printf("Refund policy already exists, skipping... (%s)", warn(policy.PolicyText))
		return
	}
	if err := db.Create(policy).Error; err != nil {
		log.Fatalf("Error creating refund policy: %v", err)
	}
	log.Printf("Created refund policy: %s", policy.PolicyText)
}
