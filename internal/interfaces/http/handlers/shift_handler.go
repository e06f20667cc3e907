package handlers

import (
	"github.com/PavaniTiago/sleep-coach-api/internal/application/usecases"
	"github.com/PavaniTiago/sleep-coach-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type ShiftHandler struct {
	shiftUseCase usecases.ShiftUseCase
}

func NewShiftHandler(shiftUseCase usecases.ShiftUseCase) *ShiftHandler {
	return &ShiftHandler{shiftUseCase}
}

// CreateShifts cria o mesmo turno em cada data enviada
func (h *ShiftHandler) CreateShifts(c *fiber.Ctx) error {
	var input usecases.ShiftInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	shifts, err := h.shiftUseCase.CreateShifts(c.UserContext(), middleware.UserID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": shifts})
}

// GetShifts lista os turnos, opcionalmente entre ?from= e ?to=
func (h *ShiftHandler) GetShifts(c *fiber.Ctx) error {
	shifts, err := h.shiftUseCase.GetShifts(c.UserContext(), middleware.UserID(c), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": shifts,
		"meta": fiber.Map{
			"total": len(shifts),
			"from":  c.Query("from"),
			"to":    c.Query("to"),
		},
	})
}

func (h *ShiftHandler) UpdateShift(c *fiber.Ctx) error {
	var input usecases.ShiftUpdate
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	shift, err := h.shiftUseCase.UpdateShift(c.UserContext(), middleware.UserID(c), c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": shift})
}

func (h *ShiftHandler) DeleteShift(c *fiber.Ctx) error {
	if err := h.shiftUseCase.DeleteShift(c.UserContext(), middleware.UserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
