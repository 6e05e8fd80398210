package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/mehrsalabs/leadbot/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, from, salesTo string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		SalesTo:  salesTo,
	}
}

// SendLeadAlert mails the sales inbox about a freshly registered lead.
func (s *EmailSender) SendLeadAlert(payload queue.LeadRegisteredPayload) error {
	data := LeadAlertData{
		Name:         payload.Name,
		Phone:        payload.Phone,
		Language:     payload.Language,
		Channel:      payload.Channel,
		Identity:     payload.Identity,
		RegisteredAt: payload.RegisteredAt.Format(time.RFC1123),
	}

	tmplPath := filepath.Join("templates", "lead_alert.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("read lead alert template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("render lead alert template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.SalesTo)
	m.SetHeader("Subject", fmt.Sprintf("New lead: %s (%s) 🌟", payload.Name, payload.Channel))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send lead alert email: %w", err)
	}

	return nil
}
