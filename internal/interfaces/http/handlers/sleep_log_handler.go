package handlers

import (
	"github.com/PavaniTiago/sleep-coach-api/internal/application/usecases"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/timeline"
	"github.com/PavaniTiago/sleep-coach-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type SleepLogHandler struct {
	sleepLogUseCase usecases.SleepLogUseCase
}

func NewSleepLogHandler(sleepLogUseCase usecases.SleepLogUseCase) *SleepLogHandler {
	return &SleepLogHandler{sleepLogUseCase}
}

type sleepLogRequest struct {
	Events []timeline.SleepEvent `json:"events"`
}

// SaveSleepLog grava o diário da data do path
func (h *SleepLogHandler) SaveSleepLog(c *fiber.Ctx) error {
	var req sleepLogRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	log, err := h.sleepLogUseCase.SaveSleepLog(c.UserContext(), middleware.UserID(c), c.Params("date"), req.Events)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": log})
}

// GetSleepLogs lista os diários mais recentes; ?limit= (padrão 30)
func (h *SleepLogHandler) GetSleepLogs(c *fiber.Ctx) error {
	logs, err := h.sleepLogUseCase.GetSleepLogs(c.UserContext(), middleware.UserID(c), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": logs})
}

func (h *SleepLogHandler) GetSleepLog(c *fiber.Ctx) error {
	log, err := h.sleepLogUseCase.GetSleepLog(c.UserContext(), middleware.UserID(c), c.Params("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": log})
}

func (h *SleepLogHandler) DeleteSleepLog(c *fiber.Ctx) error {
	if err := h.sleepLogUseCase.DeleteSleepLog(c.UserContext(), middleware.UserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
