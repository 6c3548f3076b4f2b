package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/LUCY-sama29/school-erp/app/config"
)

// EmailService sends mail through the configured SMTP relay.
type EmailService struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Configured reports whether an SMTP host has been set up.
func (s *EmailService) Configured() bool {
	return s.cfg.Host != ""
}

// Send delivers one plain-text message.
func (s *EmailService) Send(to, subject, body string) error {
	if !s.Configured() {
		return fmt.Errorf("SMTP is not configured")
	}

	msg := strings.Builder{}
	msg.WriteString("From: " + s.cfg.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var a smtp.Auth
	if s.cfg.Username != "" {
		a = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	return smtp.SendMail(addr, a, s.cfg.From, []string{to}, []byte(msg.String()))
}

// Reminder is one fee reminder to deliver.
type Reminder struct {
	To          string
	StudentName string
	TotalDue    float64
	Invoices    int
}

// SendFeeReminders delivers reminders one by one, collecting per-recipient
// failures instead of aborting the batch.
func (s *EmailService) SendFeeReminders(schoolName string, reminders []Reminder) (sent int, failed []string) {
	for _, r := range reminders {
		subject := fmt.Sprintf("Fee Reminder - %s", schoolName)
		body := fmt.Sprintf(
			"Dear Parent/Guardian,\n\nThis is a reminder that %s has an outstanding fee balance of %.2f across %d invoice(s).\n\nPlease arrange payment at your earliest convenience.\n\nRegards,\n%s",
			r.StudentName, r.TotalDue, r.Invoices, schoolName,
		)

		if err := s.Send(r.To, subject, body); err != nil {
			failed = append(failed, r.To)
			continue
		}
		sent++
	}
	return sent, failed
}
