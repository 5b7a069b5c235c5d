package controller

import (
	"errors"

	"drone-response-be/internal/dto"
	"drone-response-be/internal/pkg/serverutils"
	"drone-response-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	ProcessMessage(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	CloseSession(ctx *fiber.Ctx) error
	DispatchQuickAction(ctx *fiber.Ctx) error
	RecordFeedback(ctx *fiber.Ctx) error
	UsageReport(ctx *fiber.Ctx) error
	VoiceToText(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{chatbotService: chatbotService}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("message", c.ProcessMessage)
	h.Get("sessions", c.GetSessions)
	h.Get("sessions/:id/history", c.GetChatHistory)
	h.Delete("sessions/:id", c.CloseSession)
	h.Post("quick-action", c.DispatchQuickAction)
	h.Post("feedback", c.RecordFeedback)
	h.Get("usage-report", c.UsageReport)
	h.Post("voice-to-text", c.VoiceToText)
}

func (c *chatbotController) ProcessMessage(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.ProcessMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatbotService.ProcessMessage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process message", res))
}

func (c *chatbotController) GetSessions(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.chatbotService.GetSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *chatbotController) GetChatHistory(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	sessionId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.chatbotService.GetChatHistory(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatbotController) CloseSession(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	sessionId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.chatbotService.CloseSession(ctx.Context(), userId, sessionId); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success close session", nil))
}

func (c *chatbotController) DispatchQuickAction(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.QuickActionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatbotService.DispatchQuickAction(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success dispatch quick action", res))
}

func (c *chatbotController) RecordFeedback(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.chatbotService.RecordFeedback(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success record feedback", nil))
}

func (c *chatbotController) UsageReport(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	days := ctx.QueryInt("days", 7)

	res, err := c.chatbotService.UsageReport(ctx.Context(), userId, days)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate usage report", res))
}

func (c *chatbotController) VoiceToText(ctx *fiber.Ctx) error {
	res, err := c.chatbotService.VoiceToText(ctx.Context(), ctx.Body())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success transcribe audio", res))
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}
