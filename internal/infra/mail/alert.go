package mail

import (
	"fmt"
	"log"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/entity"
)

// AlertSender emails the operator when a lead delivery exhausts all
// attempts. This is the only surface a terminal delivery failure has; the
// registrant never sees anything.
type AlertSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func NewAlertSender(host string, port int, user, password, from, to string) *AlertSender {
	return &AlertSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// NotifyDeliveryFailure satisfies usecase.AlertNotifier. Sending is best
// effort: a broken SMTP setup must never take the capture path down, so
// errors are only logged.
func (s *AlertSender) NotifyDeliveryFailure(lead *entity.Lead, attempts int) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Lead delivery failed: %s", lead.Email))
	m.SetBody("text/plain", fmt.Sprintf(
		"Webhook delivery for lead %s gave up after %d attempts at %s.\n\n"+
			"Name: %s %s\nPhone: %s\nCountry: %s\nSource: %s\n\n"+
			"The lead was NOT stored anywhere - re-capture it manually in GHL.\n",
		lead.Email, attempts, time.Now().Format(time.RFC3339),
		lead.FirstName, lead.LastName, lead.Phone, lead.Country, lead.Source,
	))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("❌ failed to send delivery-failure alert for %s: %v", lead.Email, err)
	}
}
