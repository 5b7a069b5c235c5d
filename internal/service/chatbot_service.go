package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"drone-response-be/internal/constant"
	"drone-response-be/internal/dto"
	"drone-response-be/internal/entity"
	"drone-response-be/internal/pkg/logger"
	"drone-response-be/internal/pkg/serverutils"
	"drone-response-be/internal/repository/specification"
	"drone-response-be/internal/repository/unitofwork"
	"drone-response-be/pkg/chatbot"
	"drone-response-be/pkg/events"
	pktNats "drone-response-be/pkg/nats"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("chat session not found")

// highPriorityThreshold is the minimum priority score that raises an
// alert event for an inbound message.
const highPriorityThreshold = 4

type IChatbotService interface {
	ProcessMessage(ctx context.Context, userId uuid.UUID, req *dto.ProcessMessageRequest) (*dto.ProcessMessageResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.ChatHistoryResponse, error)
	GetSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionSummary, error)
	CloseSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
	DispatchQuickAction(ctx context.Context, userId uuid.UUID, req *dto.QuickActionRequest) (*chatbot.ActionResponse, error)
	RecordFeedback(ctx context.Context, userId uuid.UUID, req *dto.FeedbackRequest) error
	UsageReport(ctx context.Context, userId uuid.UUID, days int) (*dto.UsageReportResponse, error)
	VoiceToText(ctx context.Context, audio []byte) (*dto.VoiceToTextResponse, error)
}

type chatbotService struct {
	uowFactory     unitofwork.RepositoryFactory
	generator      *chatbot.Generator
	voice          chatbot.VoiceProcessor
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	generator *chatbot.Generator,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		uowFactory:     uowFactory,
		generator:      generator,
		voice:          chatbot.NoopVoiceProcessor{},
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *chatbotService) ProcessMessage(ctx context.Context, userId uuid.UUID, req *dto.ProcessMessageRequest) (*dto.ProcessMessageResponse, error) {
	start := time.Now()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, serverutils.NewValidationError("Message is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.resolveSession(ctx, uow, userId, req.SessionId)
	if err != nil {
		return nil, err
	}

	intent := chatbot.Classify(message)
	priority := chatbot.ScorePriority(message)
	entities := chatbot.ExtractEntities(message)

	response, err := s.generator.Generate(ctx, intent, message)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	userMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		MessageType:   constant.ChatMessageTypeUser,
		Content:       message,
		Metadata: map[string]interface{}{
			"intent":   string(intent),
			"priority": priority,
			"entities": entities,
		},
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	responseTime := time.Since(start).Seconds()

	botMetadata := map[string]interface{}{
		"intent":        string(intent),
		"response_time": responseTime,
	}
	for k, v := range response.Metadata {
		botMetadata[k] = v
	}

	botMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		MessageType:   constant.ChatMessageTypeBot,
		Content:       response.Content,
		Metadata:      botMetadata,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, botMessage); err != nil {
		return nil, err
	}

	for _, spec := range response.QuickActions {
		action := &entity.QuickAction{
			Id:            uuid.New(),
			ChatMessageId: botMessage.Id,
			ActionType:    spec.Type,
			Label:         spec.Label,
			Icon:          spec.Icon,
			Data:          spec.Data,
			CreatedAt:     time.Now(),
		}
		if err := uow.QuickActionRepository().Create(ctx, action); err != nil {
			return nil, err
		}
	}

	analytics := &entity.ChatAnalytics{
		Id:           uuid.New(),
		UserId:       userId,
		QueryType:    string(intent),
		ResponseTime: responseTime,
		CreatedAt:    time.Now(),
	}
	if err := uow.ChatAnalyticsRepository().Create(ctx, analytics); err != nil {
		return nil, err
	}

	if err := uow.ChatSessionRepository().Touch(ctx, session.Id); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if priority >= highPriorityThreshold {
		s.publishEvent(ctx, events.HighPriorityMessageEvent{
			UserId:     userId,
			SessionId:  session.Id,
			Priority:   priority,
			Excerpt:    excerpt(message, 120),
			OccurredAt: time.Now(),
		})
	}

	quickActions := make([]dto.QuickActionDTO, 0, len(response.QuickActions))
	for _, spec := range response.QuickActions {
		quickActions = append(quickActions, dto.QuickActionDTO{
			Type:  spec.Type,
			Label: spec.Label,
			Icon:  spec.Icon,
			Data:  spec.Data,
		})
	}

	return &dto.ProcessMessageResponse{
		SessionId:    session.Id,
		MessageId:    botMessage.Id,
		Content:      response.Content,
		QuickActions: quickActions,
		Metadata:     botMetadata,
	}, nil
}

// resolveSession returns the caller's active session with the given id,
// or creates a fresh one when no id is given or the id no longer maps
// to an active session owned by the caller.
func (s *chatbotService) resolveSession(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, sessionId *uuid.UUID) (*entity.ChatSession, error) {
	if sessionId != nil {
		session, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: *sessionId},
			specification.ByUserID{UserID: userId},
			specification.ActiveSessions{},
		)
		if err != nil {
			return nil, err
		}
		if session != nil {
			return session, nil
		}
	}

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     constant.DefaultSessionTitle,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *chatbotService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		// Unknown session reads as empty history rather than an error.
		return &dto.ChatHistoryResponse{SessionId: sessionId, Messages: []dto.ChatHistoryMessage{}}, nil
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	history := make([]dto.ChatHistoryMessage, 0, len(messages))
	for _, msg := range messages {
		item := dto.ChatHistoryMessage{
			Id:        msg.Id,
			Type:      msg.MessageType,
			Content:   msg.Content,
			Timestamp: msg.CreatedAt,
			Metadata:  msg.Metadata,
		}

		if msg.MessageType == constant.ChatMessageTypeBot {
			actions, err := uow.QuickActionRepository().FindAll(ctx,
				specification.ByChatMessageID{ChatMessageID: msg.Id},
			)
			if err != nil {
				return nil, err
			}
			for _, action := range actions {
				item.QuickActions = append(item.QuickActions, dto.QuickActionDTO{
					Type:  action.ActionType,
					Label: action.Label,
					Icon:  action.Icon,
					Data:  action.Data,
				})
			}
		}

		history = append(history, item)
	}

	return &dto.ChatHistoryResponse{SessionId: sessionId, Messages: history}, nil
}

func (s *chatbotService) GetSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.ActiveSessions{},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		count, err := uow.ChatMessageRepository().Count(ctx,
			specification.ByChatSessionID{ChatSessionID: session.Id},
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &dto.SessionSummary{
			Id:           session.Id,
			Title:        session.Title,
			CreatedAt:    session.CreatedAt,
			UpdatedAt:    session.UpdatedAt,
			MessageCount: count,
		})
	}

	return summaries, nil
}

func (s *chatbotService) CloseSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
		specification.ActiveSessions{},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	return uow.ChatSessionRepository().Deactivate(ctx, sessionId)
}

func (s *chatbotService) DispatchQuickAction(ctx context.Context, userId uuid.UUID, req *dto.QuickActionRequest) (*chatbot.ActionResponse, error) {
	response := chatbot.DispatchAction(req.ActionType)

	// Audit trail: record the dispatch as a system message when the
	// caller is in a session. Failure here never fails the dispatch.
	if req.SessionId != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		session, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: *req.SessionId},
			specification.ByUserID{UserID: userId},
		)
		if err == nil && session != nil {
			systemMessage := &entity.ChatMessage{
				Id:            uuid.New(),
				ChatSessionId: session.Id,
				MessageType:   constant.ChatMessageTypeSystem,
				Content:       response.Message,
				Metadata: map[string]interface{}{
					"action_type": req.ActionType,
					"action":      response.Action,
					"target":      response.Target,
					"action_data": req.Data,
				},
				CreatedAt: time.Now(),
			}
			if err := uow.ChatMessageRepository().Create(ctx, systemMessage); err != nil {
				s.log.Warn("chatbot_service", "Failed to record quick action", map[string]interface{}{
					"action_type": req.ActionType,
					"error":       err.Error(),
				})
			}
		}
	}

	if req.ActionType == constant.QuickActionEmergencyAlert {
		s.publishEvent(ctx, events.EmergencyAlertEvent{
			UserId:     userId,
			SessionId:  req.SessionId,
			ActionData: req.Data,
			OccurredAt: time.Now(),
		})
	}

	return &response, nil
}

// RecordFeedback attaches a satisfaction score to the analytics row
// recorded for the exchange the rated message belongs to. The lookup is
// a heuristic: the most recent analytics row for the user created at or
// after the rated message. No matching row is a silent no-op.
func (s *chatbotService) RecordFeedback(ctx context.Context, userId uuid.UUID, req *dto.FeedbackRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	message, err := uow.ChatMessageRepository().FindOne(ctx,
		specification.ByID{ID: req.MessageId},
	)
	if err != nil {
		return err
	}
	if message == nil {
		return nil
	}

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: message.ChatSessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	analytics, err := uow.ChatAnalyticsRepository().FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.CreatedAtOrAfter{At: message.CreatedAt},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return err
	}
	if analytics == nil {
		return nil
	}

	return uow.ChatAnalyticsRepository().SetSatisfactionScore(ctx, analytics.Id, req.Rating)
}

func (s *chatbotService) UsageReport(ctx context.Context, userId uuid.UUID, days int) (*dto.UsageReportResponse, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.ChatAnalyticsRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.CreatedAtOrAfter{At: since},
	)
	if err != nil {
		return nil, err
	}

	totalSessions, err := uow.ChatSessionRepository().Count(ctx,
		specification.ByUserID{UserID: userId},
		specification.CreatedAtOrAfter{At: since},
	)
	if err != nil {
		return nil, err
	}

	queryCounts := make(map[string]int)
	responseTimes := make([]float64, 0, len(rows))
	var scoreSum, scoreCount int
	for _, row := range rows {
		queryCounts[row.QueryType]++
		responseTimes = append(responseTimes, row.ResponseTime)
		if row.SatisfactionScore != nil {
			scoreSum += *row.SatisfactionScore
			scoreCount++
		}
	}

	mostCommon := make([]string, 0, len(queryCounts))
	for queryType := range queryCounts {
		mostCommon = append(mostCommon, queryType)
	}
	sort.Slice(mostCommon, func(i, j int) bool {
		if queryCounts[mostCommon[i]] != queryCounts[mostCommon[j]] {
			return queryCounts[mostCommon[i]] > queryCounts[mostCommon[j]]
		}
		return mostCommon[i] < mostCommon[j]
	})
	if len(mostCommon) > 5 {
		mostCommon = mostCommon[:5]
	}

	var avgSatisfaction float64
	if scoreCount > 0 {
		avgSatisfaction = float64(scoreSum) / float64(scoreCount)
	}

	return &dto.UsageReportResponse{
		Period:            since.Format("2006-01-02") + " to " + time.Now().Format("2006-01-02"),
		TotalQueries:      int64(len(rows)),
		TotalSessions:     totalSessions,
		AvgSatisfaction:   avgSatisfaction,
		ResponseMetrics:   chatbot.CalculateResponseMetrics(responseTimes),
		MostCommonQueries: mostCommon,
	}, nil
}

func (s *chatbotService) VoiceToText(ctx context.Context, audio []byte) (*dto.VoiceToTextResponse, error) {
	text, err := s.voice.SpeechToText(audio)
	if err != nil {
		return nil, err
	}
	return &dto.VoiceToTextResponse{Text: text, Success: s.voice.Available()}, nil
}

func (s *chatbotService) publishEvent(ctx context.Context, event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.log.Warn("chatbot_service", "Failed to publish event", map[string]interface{}{
			"event_type": event.EventType(),
			"error":      err.Error(),
		})
	}
}

// excerpt cuts on a rune boundary so multi-byte text never truncates
// mid-sequence.
func excerpt(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
