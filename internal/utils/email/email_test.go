package email

import (
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/realty-service/internal/config"
	"github.com/Dan9191/realty-service/internal/models"
)

func newTestSender(broker string) (*Sender, *[]*email.Email) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s := NewSender(&config.Config{SenderEmail: "site@example.com", BrokerEmail: broker}, logger)
	sent := []*email.Email{}
	s.send = func(e *email.Email) error {
		sent = append(sent, e)
		return nil
	}
	return s, &sent
}

func sampleLead() *models.Lead {
	return &models.Lead{
		Name:      "Jordan Lee",
		Email:     "jordan@example.com",
		Phone:     "(281) 555-0142",
		Tag:       "77346-atascocita-home-value",
		Message:   "Thinking of listing in spring",
		Result:    json.RawMessage(`{"mid_estimate":312000}`),
		CreatedAt: time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestSendLeadNotification(t *testing.T) {
	s, sent := newTestSender("broker@example.com")

	require.NoError(t, s.SendLeadNotification(sampleLead()))
	require.Len(t, *sent, 1)

	e := (*sent)[0]
	assert.Equal(t, []string{"broker@example.com"}, e.To)
	assert.Equal(t, []string{"jordan@example.com"}, e.ReplyTo)
	assert.Equal(t, "New lead: Jordan Lee (77346-atascocita-home-value)", e.Subject)
	assert.Contains(t, string(e.Text), "Phone: (281) 555-0142")
	assert.Contains(t, string(e.Text), `{"mid_estimate":312000}`)
}

func TestSendLeadNotification_Returning(t *testing.T) {
	s, sent := newTestSender("broker@example.com")
	lead := sampleLead()
	lead.Returning = true

	require.NoError(t, s.SendLeadNotification(lead))
	assert.Contains(t, (*sent)[0].Subject, "Returning lead")
}

func TestSendLeadNotification_NoBroker(t *testing.T) {
	s, sent := newTestSender("")
	require.NoError(t, s.SendLeadNotification(sampleLead()))
	assert.Empty(t, *sent)
}

func TestSendLeadNotification_Failure(t *testing.T) {
	s, _ := newTestSender("broker@example.com")
	s.send = func(*email.Email) error { return errors.New("dial tcp: refused") }

	err := s.SendLeadNotification(sampleLead())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refused")
}

func TestSendLeadDigest(t *testing.T) {
	s, sent := newTestSender("broker@example.com")
	since := time.Date(2026, 10, 13, 8, 0, 0, 0, time.UTC)
	leads := []models.Lead{*sampleLead(), {Name: "Sam", Email: "sam@example.com", Tag: "contact"}}

	require.NoError(t, s.SendLeadDigest(since, leads))
	require.Len(t, *sent, 1)
	assert.Equal(t, "Lead digest: 2 new since Oct 13 08:00", (*sent)[0].Subject)
	assert.Contains(t, string((*sent)[0].Text), "2. Sam <sam@example.com>")
}

func TestSendLeadDigest_Empty(t *testing.T) {
	s, sent := newTestSender("broker@example.com")
	require.NoError(t, s.SendLeadDigest(time.Now(), nil))
	assert.Contains(t, string((*sent)[0].Text), "No new leads")
}
