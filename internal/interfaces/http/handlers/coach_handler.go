package handlers

import (
	"errors"
	"time"

	"github.com/PavaniTiago/sleep-coach-api/internal/application/usecases"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/sleep-coach-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type CoachHandler struct {
	coachUseCase usecases.CoachUseCase
	log          *logger.Logger
}

func NewCoachHandler(coachUseCase usecases.CoachUseCase, log *logger.Logger) *CoachHandler {
	return &CoachHandler{coachUseCase: coachUseCase, log: log}
}

type chatRequest struct {
	Messages []usecases.ChatMessageInput `json:"messages"`
}

func messageBody(role, content string, timestamp time.Time) fiber.Map {
	return fiber.Map{
		"role":      role,
		"content":   content,
		"timestamp": timestamp.UTC().Format(time.RFC3339Nano),
	}
}

// Chat responde a conversa com o coach; erros seguem {"error","code","retryable"}
func (h *CoachHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return chatError(c, &usecases.ChatError{
			Message: "Invalid request format: messages array is required",
			Status:  fiber.StatusBadRequest,
			Code:    usecases.ChatCodeInvalidRequest,
		})
	}

	reply, err := h.coachUseCase.Chat(c.UserContext(), middleware.UserID(c), req.Messages)
	if err != nil {
		var ce *usecases.ChatError
		if !errors.As(err, &ce) {
			ce = &usecases.ChatError{Message: "Internal server error", Status: fiber.StatusInternalServerError, Code: usecases.ChatCodeInternalError}
		}
		h.log.Warn("chat error", "user_id", middleware.UserID(c), "code", ce.Code, "status", ce.Status, "error", err)
		return chatError(c, ce)
	}

	return c.JSON(fiber.Map{"message": messageBody(reply.Role, reply.Content, reply.Timestamp)})
}

func chatError(c *fiber.Ctx, ce *usecases.ChatError) error {
	return c.Status(ce.Status).JSON(fiber.Map{
		"error":     ce.Message,
		"code":      ce.Code,
		"retryable": ce.Retryable,
	})
}

// GetMessages retorna o histórico salvo em ordem cronológica; ?limit= (padrão 50)
func (h *CoachHandler) GetMessages(c *fiber.Ctx) error {
	messages, err := h.coachUseCase.GetMessages(c.UserContext(), middleware.UserID(c), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}

	data := make([]fiber.Map, 0, len(messages))
	for _, msg := range messages {
		data = append(data, messageBody(msg.Role, msg.Content, msg.Timestamp))
	}
	return c.JSON(fiber.Map{"data": data})
}
