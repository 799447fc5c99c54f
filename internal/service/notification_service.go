package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"eventpass-be/internal/model"
	"eventpass-be/internal/pkg/logger"
	"eventpass-be/internal/pkg/mailer"
	"eventpass-be/internal/repository"
	"eventpass-be/internal/repository/specification"
	"eventpass-be/internal/repository/unitofwork"
	"eventpass-be/pkg/events"
	pktNats "eventpass-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
}

// NotificationService turns refund workflow events into persisted
// in-app notifications, websocket pushes, and decision emails.
type NotificationService struct {
	repo       repository.NotificationRepository
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	mailer     mailer.IEmailService
	logger     logger.ILogger
}

func NewNotificationService(
	repo repository.NotificationRepository,
	uowFactory unitofwork.RepositoryFactory,
	sub *pktNats.Subscriber,
	delivery NotificationDelivery,
	mail mailer.IEmailService,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		repo:       repo,
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		mailer:     mail,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	if s.subscriber == nil {
		s.logger.Warn("NotificationService", "No event bus configured, notifications disabled", nil)
		return
	}
	err := s.subscriber.Subscribe("events.>", "refund-notif-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// NATS subjects include the stream prefix.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	title, messageTmpl, emailStatus, ok := renderTemplate(typeCode)
	if !ok {
		return nil
	}

	payload := event.Payload()
	userID, err := parsePayloadUUID(payload, "user_id")
	if err != nil {
		s.logger.Warn("NotificationService", fmt.Sprintf("Event %s has no usable user_id", typeCode), map[string]interface{}{"error": err.Error()})
		return nil
	}

	requestId, err := parsePayloadUUID(payload, "entity_id")
	if err != nil {
		s.logger.Warn("NotificationService", fmt.Sprintf("Event %s has no usable entity_id", typeCode), map[string]interface{}{"error": err.Error()})
		return nil
	}

	// The event carries ids only; load the request for the human-facing
	// bits (event title, holder email).
	uow := s.uowFactory.NewUnitOfWork(ctx)
	request, err := uow.RefundRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return err // NATS will retry
	}
	if request == nil {
		s.logger.Warn("NotificationService", "Refund request gone, dropping event", map[string]interface{}{"requestId": requestId.String()})
		return nil
	}

	message := strings.ReplaceAll(messageTmpl, "{event_title}", request.EventTitle)
	message = strings.ReplaceAll(message, "{amount}", fmt.Sprintf("%.2f", request.PayableAmount()))
	if note := request.ReviewerNote; note != "" {
		message = strings.ReplaceAll(message, "{reviewer_note}", note)
	} else {
		message = strings.ReplaceAll(message, "{reviewer_note}", "-")
	}

	metaMap := map[string]interface{}{
		"request_id":  requestId.String(),
		"ticket_id":   request.TicketID.String(),
		"event_title": request.EventTitle,
		"status":      string(request.Status),
		"action_url":  fmt.Sprintf("/refunds/%s", requestId.String()),
	}
	metaJSON, _ := json.Marshal(metaMap)

	notif := model.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		TypeCode:  typeCode,
		Title:     title,
		Message:   message,
		Metadata:  datatypes.JSON(metaJSON),
		CreatedAt: time.Now(),
		IsRead:    false,
	}

	if err := s.repo.Create(ctx, &notif); err != nil {
		s.logger.Error("NotificationService", "Error saving notification", map[string]interface{}{
			"userId": userID.String(),
			"error":  err,
		})
		return err
	}

	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}

	if emailStatus != "" && s.mailer != nil && request.UserEmail != "" {
		if err := s.mailer.SendRefundDecision(request.UserEmail, request.EventTitle, emailStatus, request.ReviewerNote, request.PayableAmount()); err != nil {
			// Email is a courtesy; never requeue the event over SMTP.
			s.logger.Warn("NotificationService", "Failed to send decision email", map[string]interface{}{
				"requestId": requestId.String(),
				"error":     err.Error(),
			})
		}
	}

	return nil
}

// renderTemplate maps an event type to notification copy plus the email
// status variant (empty when the event gets no email).
func renderTemplate(typeCode string) (title, message, emailStatus string, ok bool) {
	switch typeCode {
	case "REFUND_REQUESTED":
		return "Refund request received",
			"Your refund request for {event_title} is in. We'll notify you once the organizer decides.",
			"", true
	case "REFUND_APPROVED":
		return "Refund approved",
			"Your refund of {amount} for {event_title} was approved. The payout is on its way.",
			"approved", true
	case "REFUND_REJECTED":
		return "Refund declined",
			"The organizer declined your refund request for {event_title}. Reason: {reviewer_note}",
			"rejected", true
	case "REFUND_PAYOUT_COMPLETED":
		return "Refund paid out",
			"Your refund of {amount} for {event_title} has been paid out.",
			"completed", true
	default:
		// REFUND_PAYOUT_STARTED and anything future-added is analytics
		// only, no user-facing copy.
		return "", "", "", false
	}
}

func parsePayloadUUID(payload map[string]interface{}, key string) (uuid.UUID, error) {
	raw, ok := payload[key].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("payload field %q missing or not a string", key)
	}
	return uuid.Parse(raw)
}

// GetNotifications fetches a user's notification inbox.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, error) {
	return s.repo.FindAllByUser(ctx, userID, limit, offset)
}

// MarkAsRead marks one of the user's notifications as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}
