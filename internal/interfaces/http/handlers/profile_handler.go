package handlers

import (
	"github.com/PavaniTiago/sleep-coach-api/internal/application/usecases"
	"github.com/PavaniTiago/sleep-coach-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profileUseCase usecases.ProfileUseCase
}

func NewProfileHandler(profileUseCase usecases.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.profileUseCase.GetProfile(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": profile})
}

func (h *ProfileHandler) SaveProfile(c *fiber.Ctx) error {
	var input usecases.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	profile, err := h.profileUseCase.SaveProfile(c.UserContext(), middleware.UserID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": profile})
}

func (h *ProfileHandler) GetPreferences(c *fiber.Ctx) error {
	prefs, err := h.profileUseCase.GetPreferences(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": prefs})
}

func (h *ProfileHandler) SavePreferences(c *fiber.Ctx) error {
	var input usecases.PreferencesInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	prefs, err := h.profileUseCase.SavePreferences(c.UserContext(), middleware.UserID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": prefs})
}
