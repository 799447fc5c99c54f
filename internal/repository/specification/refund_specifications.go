package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByTicketID filters refund requests (or tickets) by ticket id.
type ByTicketID struct {
	TicketID uuid.UUID
}

func (s ByTicketID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("ticket_id = ?", s.TicketID)
}

// ByUserID filters by the requesting ticket holder.
type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByStatus filters refund requests by lifecycle status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByStatusIn filters refund requests by a set of statuses.
type ByStatusIn struct {
	Statuses []string
}

func (s ByStatusIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

// ByOrganizerID scopes refund requests to one organizer's events via the
// events table.
type ByOrganizerID struct {
	OrganizerID uuid.UUID
}

func (s ByOrganizerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN events ON events.id = refund_requests.event_id").
		Where("events.organizer_id = ?", s.OrganizerID)
}

// ByEventID filters by event.
type ByEventID struct {
	EventID uuid.UUID
}

func (s ByEventID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("event_id = ?", s.EventID)
}
