package service

import (
	"context"
	"encoding/json"
	"time"

	"drone-response-be/internal/dto"
	"drone-response-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the fleet statistics recompute topic. Drone
// mutations publish onto it so the monthly rows catch up out of band
// instead of blocking the request path.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	fleetService IFleetService
	log          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	fleetService IFleetService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		fleetService: fleetService,
		log:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.FleetStatsRecomputeEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal recompute message", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	month, err := time.Parse("2006-01", payload.Month)
	if err != nil {
		cs.log.Error("consumer", "Invalid month in recompute message", map[string]interface{}{
			"month": payload.Month,
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	if err := cs.fleetService.RecomputeMonth(ctx, month); err != nil {
		cs.log.Error("consumer", "Fleet statistics recompute failed", map[string]interface{}{
			"month": payload.Month,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("consumer", "Fleet statistics recomputed", map[string]interface{}{
		"month":  payload.Month,
		"reason": payload.Reason,
	})
	msg.Ack()
}
