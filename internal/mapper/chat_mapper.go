package mapper

import (
	"drone-response-be/internal/entity"
	"drone-response-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: timePtr(s.UpdatedAt),
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	return &model.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: timeVal(s.UpdatedAt),
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		MessageType:   msg.MessageType,
		Content:       msg.Content,
		Metadata:      map[string]interface{}(msg.Metadata),
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		MessageType:   msg.MessageType,
		Content:       msg.Content,
		Metadata:      datatypes.JSONMap(msg.Metadata),
		CreatedAt:     msg.CreatedAt,
	}
}

// Quick Action Mappers

func (m *ChatMapper) QuickActionToEntity(qa *model.QuickAction) *entity.QuickAction {
	if qa == nil {
		return nil
	}

	return &entity.QuickAction{
		Id:            qa.Id,
		ChatMessageId: qa.ChatMessageId,
		ActionType:    qa.ActionType,
		Label:         qa.Label,
		Icon:          qa.Icon,
		Data:          map[string]interface{}(qa.Data),
		CreatedAt:     qa.CreatedAt,
	}
}

func (m *ChatMapper) QuickActionToModel(qa *entity.QuickAction) *model.QuickAction {
	if qa == nil {
		return nil
	}

	return &model.QuickAction{
		Id:            qa.Id,
		ChatMessageId: qa.ChatMessageId,
		ActionType:    qa.ActionType,
		Label:         qa.Label,
		Icon:          qa.Icon,
		Data:          datatypes.JSONMap(qa.Data),
		CreatedAt:     qa.CreatedAt,
	}
}

// Analytics Mappers

func (m *ChatMapper) ChatAnalyticsToEntity(a *model.ChatAnalytics) *entity.ChatAnalytics {
	if a == nil {
		return nil
	}

	return &entity.ChatAnalytics{
		Id:                a.Id,
		UserId:            a.UserId,
		QueryType:         a.QueryType,
		ResponseTime:      a.ResponseTime,
		SatisfactionScore: a.SatisfactionScore,
		CreatedAt:         a.CreatedAt,
	}
}

func (m *ChatMapper) ChatAnalyticsToModel(a *entity.ChatAnalytics) *model.ChatAnalytics {
	if a == nil {
		return nil
	}

	return &model.ChatAnalytics{
		Id:                a.Id,
		UserId:            a.UserId,
		QueryType:         a.QueryType,
		ResponseTime:      a.ResponseTime,
		SatisfactionScore: a.SatisfactionScore,
		CreatedAt:         a.CreatedAt,
	}
}
