package handlers

import (
	"strconv"

	"github.com/PavaniTiago/sleep-coach-api/internal/application/usecases"
	"github.com/PavaniTiago/sleep-coach-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type TimelineHandler struct {
	timelineUseCase usecases.TimelineUseCase
}

func NewTimelineHandler(timelineUseCase usecases.TimelineUseCase) *TimelineHandler {
	return &TimelineHandler{timelineUseCase}
}

// GetTimeline projeta ?days= dias a partir de ?start= (padrão: hoje)
func (h *TimelineHandler) GetTimeline(c *fiber.Ctx) error {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "days must be an integer",
				"field": "days",
			})
		}
		days = parsed
	}

	view, err := h.timelineUseCase.GetTimeline(c.UserContext(), middleware.UserID(c), c.Query("start"), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": view})
}
