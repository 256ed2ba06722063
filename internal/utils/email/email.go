package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/Dan9191/realty-service/internal/config"
	"github.com/Dan9191/realty-service/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	s := &Sender{
		cfg:    cfg,
		logger: logger,
	}
	s.send = s.smtpSend
	return s
}

func (s *Sender) smtpSend(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	return e.Send(addr, auth)
}

// SendLeadNotification tells the broker a new lead came in.
// Lead contact fields must be plaintext.
func (s *Sender) SendLeadNotification(lead *models.Lead) error {
	if s.cfg.BrokerEmail == "" {
		s.logger.Debug("BROKER_EMAIL not set, skipping lead notification")
		return nil
	}

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{s.cfg.BrokerEmail}
	e.Subject = fmt.Sprintf("New lead: %s (%s)", lead.Name, lead.Tag)
	if lead.Returning {
		e.Subject = fmt.Sprintf("Returning lead: %s (%s)", lead.Name, lead.Tag)
	}

	body := fmt.Sprintf("A new lead was captured at %s.\n\n", lead.CreatedAt.Format("2006-01-02 15:04"))
	body += formatLead(lead)
	if len(lead.Result) > 0 {
		body += fmt.Sprintf("\nCalculator result:\n%s\n", lead.Result)
	}
	e.Text = []byte(body)
	e.ReplyTo = []string{lead.Email}

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send lead notification for %s: %v", lead.ID, err)
		return fmt.Errorf("failed to send lead notification: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", s.cfg.BrokerEmail, e.Subject)
	return nil
}

// SendLeadDigest sends the daily summary of leads captured since the given time
func (s *Sender) SendLeadDigest(since time.Time, leads []models.Lead) error {
	if s.cfg.BrokerEmail == "" {
		s.logger.Debug("BROKER_EMAIL not set, skipping lead digest")
		return nil
	}

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{s.cfg.BrokerEmail}
	e.Subject = fmt.Sprintf("Lead digest: %d new since %s", len(leads), since.Format("Jan 2 15:04"))

	var b strings.Builder
	if len(leads) == 0 {
		b.WriteString("No new leads were captured.\n")
	}
	for i := range leads {
		fmt.Fprintf(&b, "%d. %s", i+1, formatLead(&leads[i]))
		b.WriteString("\n")
	}
	e.Text = []byte(b.String())

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send lead digest: %v", err)
		return fmt.Errorf("failed to send lead digest: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", s.cfg.BrokerEmail, e.Subject)
	return nil
}

func formatLead(lead *models.Lead) string {
	body := fmt.Sprintf("%s <%s>\n", lead.Name, lead.Email)
	if lead.Phone != "" {
		body += fmt.Sprintf("Phone: %s\n", lead.Phone)
	}
	body += fmt.Sprintf("Tag: %s\n", lead.Tag)
	if lead.Returning {
		body += "Returning visitor\n"
	}
	if lead.Message != "" {
		body += fmt.Sprintf("Message: %s\n", lead.Message)
	}
	return body
}
