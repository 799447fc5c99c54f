package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendRefundReceipt(toEmail, eventTitle string, amount float64) error
	SendRefundDecision(toEmail, eventTitle, status, reviewerNote string, amount float64) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendRefundReceipt(toEmail, eventTitle string, amount float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "We received your refund request")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Refund request received</h2>
			<p>Your refund request for <strong>%s</strong> is in. The organizer will review it shortly.</p>
			<p>Requested amount: <strong>%.2f</strong></p>
			<p>We'll let you know as soon as a decision is made.</p>
		</div>
	`, eventTitle, amount)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send refund receipt to %s: %w", toEmail, err)
	}
	return nil
}

func (s *emailService) SendRefundDecision(toEmail, eventTitle, status, reviewerNote string, amount float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)

	var subject, body string
	switch status {
	case "approved":
		subject = "Your refund was approved"
		body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Refund approved</h2>
			<p>Your refund for <strong>%s</strong> was approved.</p>
			<p>Amount: <strong>%.2f</strong></p>
			<p>The payout is on its way and usually lands within a few business days.</p>
		</div>
		`, eventTitle, amount)
	case "rejected":
		subject = "Your refund request was declined"
		body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Refund declined</h2>
			<p>The organizer declined your refund request for <strong>%s</strong>.</p>
			<p>Reason: %s</p>
			<p>If you believe this is a mistake, please contact support.</p>
		</div>
		`, eventTitle, reviewerNote)
	case "completed":
		subject = "Your refund has been paid out"
		body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Refund completed</h2>
			<p>Your refund of <strong>%.2f</strong> for <strong>%s</strong> has been paid out.</p>
		</div>
		`, amount, eventTitle)
	default:
		subject = "Refund status update"
		body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<p>Your refund request for <strong>%s</strong> is now: %s</p>
		</div>
		`, eventTitle, status)
	}

	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send refund decision to %s: %w", toEmail, err)
	}
	return nil
}
