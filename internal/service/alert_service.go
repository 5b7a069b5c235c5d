package service

import (
	"context"
	"fmt"
	"strings"

	"drone-response-be/internal/pkg/logger"
	"drone-response-be/internal/pkg/mailer"
	"drone-response-be/pkg/events"
	pktNats "drone-response-be/pkg/nats"
)

// AlertDelivery pushes alerts to connected operators in real time.
// Typically implemented by the WebSocket hub.
type AlertDelivery interface {
	BroadcastAlert(alertType string, payload map[string]interface{})
}

// AlertService drains the alert stream and fans each alert out to email
// and the realtime channel.
type AlertService struct {
	subscriber *pktNats.Subscriber
	mailer     mailer.IAlertMailer
	delivery   AlertDelivery
	recipients []string
	logger     logger.ILogger
}

func NewAlertService(
	sub *pktNats.Subscriber,
	alertMailer mailer.IAlertMailer,
	delivery AlertDelivery,
	recipients string,
	log logger.ILogger,
) *AlertService {
	var to []string
	for _, addr := range strings.Split(recipients, ",") {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			to = append(to, trimmed)
		}
	}

	return &AlertService{
		subscriber: sub,
		mailer:     alertMailer,
		delivery:   delivery,
		recipients: to,
		logger:     log,
	}
}

// Start begins listening to the alert stream.
func (s *AlertService) Start() {
	err := s.subscriber.Subscribe("alerts.>", "alert-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("AlertService", "Failed to start alert subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("AlertService", "Alert service started, listening to alerts.>", nil)
}

func (s *AlertService) handleEvent(ctx context.Context, event events.Event) error {
	// NATS subjects arrive prefixed with the stream subject root.
	typeCode := strings.TrimPrefix(event.EventType(), "alerts.")
	payload := event.Payload()

	s.logger.Info("AlertService", fmt.Sprintf("Processing alert: %s", typeCode), map[string]interface{}{"type": typeCode})

	if s.delivery != nil {
		s.delivery.BroadcastAlert(typeCode, payload)
	}

	// Only full emergencies page operators by email.
	if typeCode == events.TypeEmergencyAlert && len(s.recipients) > 0 {
		userId, _ := payload["user_id"].(string)
		if err := s.mailer.SendEmergencyAlert(s.recipients, userId, payload); err != nil {
			s.logger.Error("AlertService", "Failed to send emergency alert email", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}
	}

	return nil
}
