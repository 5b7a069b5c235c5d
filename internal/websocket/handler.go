package websocket

import (
	"context"
	"encoding/json"
	"strings"

	"drone-response-be/internal/dto"
	"drone-response-be/internal/pkg/logger"
	"drone-response-be/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Inbound frame envelope. Type selects the payload fields read.
type inboundFrame struct {
	Type       string                 `json:"type"`
	Message    string                 `json:"message"`
	SessionId  *uuid.UUID             `json:"session_id"`
	ActionType string                 `json:"action_type"`
	Data       map[string]interface{} `json:"data"`
}

// ChatHandler speaks the realtime chat protocol: chat_message frames
// are answered with bot_typing then bot_message, quick_action frames
// with quick_action_response, typing frames fan out to the user's
// other devices.
type ChatHandler struct {
	chatbotService service.IChatbotService
	logger         logger.ILogger
}

func NewChatHandler(chatbotService service.IChatbotService, log logger.ILogger) *ChatHandler {
	return &ChatHandler{chatbotService: chatbotService, logger: log}
}

func (h *ChatHandler) HandleFrame(ctx context.Context, client *Client, frame []byte) {
	var in inboundFrame
	if err := json.Unmarshal(frame, &in); err != nil {
		h.sendError(client, "invalid frame")
		return
	}

	switch in.Type {
	case "chat_message":
		h.handleChatMessage(ctx, client, in)
	case "quick_action":
		h.handleQuickAction(ctx, client, in)
	case "typing":
		h.handleTyping(client)
	default:
		h.sendError(client, "unknown frame type: "+in.Type)
	}
}

func (h *ChatHandler) handleChatMessage(ctx context.Context, client *Client, in inboundFrame) {
	if strings.TrimSpace(in.Message) == "" {
		h.sendError(client, "message is required")
		return
	}

	h.send(client, map[string]interface{}{"type": "bot_typing"})

	res, err := h.chatbotService.ProcessMessage(ctx, client.UserID, &dto.ProcessMessageRequest{
		Message:   in.Message,
		SessionId: in.SessionId,
	})
	if err != nil {
		h.logger.Error("ChatHandler", "Failed to process chat message", map[string]interface{}{
			"user_id": client.UserID,
			"error":   err.Error(),
		})
		h.sendError(client, "failed to process message")
		return
	}

	h.send(client, map[string]interface{}{
		"type":          "bot_message",
		"session_id":    res.SessionId,
		"message_id":    res.MessageId,
		"content":       res.Content,
		"quick_actions": res.QuickActions,
		"metadata":      res.Metadata,
	})
}

func (h *ChatHandler) handleQuickAction(ctx context.Context, client *Client, in inboundFrame) {
	if in.ActionType == "" {
		h.sendError(client, "action_type is required")
		return
	}

	res, err := h.chatbotService.DispatchQuickAction(ctx, client.UserID, &dto.QuickActionRequest{
		ActionType: in.ActionType,
		Data:       in.Data,
		SessionId:  in.SessionId,
	})
	if err != nil {
		h.logger.Error("ChatHandler", "Failed to dispatch quick action", map[string]interface{}{
			"user_id":     client.UserID,
			"action_type": in.ActionType,
			"error":       err.Error(),
		})
		h.sendError(client, "failed to dispatch quick action")
		return
	}

	h.send(client, map[string]interface{}{
		"type":     "quick_action_response",
		"message":  res.Message,
		"action":   res.Action,
		"target":   res.Target,
		"data":     res.Data,
		"priority": res.Priority,
	})
}

func (h *ChatHandler) handleTyping(client *Client) {
	data, _ := json.Marshal(map[string]interface{}{
		"type":    "typing",
		"user_id": client.UserID.String(),
	})
	client.Hub.SendToUser(client.UserID, data)
}

func (h *ChatHandler) send(client *Client, payload map[string]interface{}) {
	data, _ := json.Marshal(payload)
	select {
	case client.Send <- data:
	default:
	}
}

func (h *ChatHandler) sendError(client *Client, message string) {
	h.send(client, map[string]interface{}{
		"type":    "error",
		"message": message,
	})
}

// ServeWs registers the connection with the hub and runs the pumps.
func ServeWs(hub *Hub, handler *ChatHandler, c *websocket.Conn, userID uuid.UUID) {
	client := &Client{
		Hub:     hub,
		Conn:    c,
		UserID:  userID,
		Send:    make(chan []byte, 256),
		handler: handler,
	}
	client.Hub.register <- client

	go client.writePump()

	data, _ := json.Marshal(map[string]interface{}{
		"type":    "system_message",
		"message": "Connected to drone response assistant. How can I help?",
	})
	client.Send <- data

	client.readPump()
}
