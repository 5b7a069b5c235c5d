package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type IAlertMailer interface {
	SendEmergencyAlert(to []string, userId string, details map[string]interface{}) error
}

type alertMailer struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewAlertMailer(host string, port int, username, password, senderEmail, senderName string) IAlertMailer {
	d := gomail.NewDialer(host, port, username, password)

	return &alertMailer{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *alertMailer) SendEmergencyAlert(to []string, userId string, details map[string]interface{}) error {
	if len(to) == 0 {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", to...)
	m.SetHeader("Subject", "EMERGENCY ALERT - Drone Response")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2 style="color: #D32F2F;">Emergency protocols activated</h2>
			<p>Operator <strong>%s</strong> triggered an emergency alert at %s.</p>
			<p>Details: %v</p>
			<p>Check the dispatch dashboard for the live situation.</p>
		</div>
	`, userId, time.Now().Format(time.RFC1123), details)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send emergency alert: %v\n", err)
		return err
	}

	return nil
}
