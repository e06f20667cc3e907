package handlers

import (
	"errors"

	"github.com/PavaniTiago/sleep-coach-api/internal/application/usecases"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/assessment"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/repositories"
	"github.com/PavaniTiago/sleep-coach-api/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// respondError converte os erros dos casos de uso em status HTTP com corpo {"error": ...}
func respondError(c *fiber.Ctx, err error) error {
	var validation *usecases.ValidationError
	var incomplete *assessment.IncompleteAssessmentError

	switch {
	case errors.As(err, &validation):
		body := fiber.Map{"error": validation.Message}
		if validation.Field != "" {
			body["field"] = validation.Field
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.As(err, &incomplete):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":              err.Error(),
			"question_index":     incomplete.QuestionIndex,
			"sub_question_index": incomplete.SubQuestionIndex,
		})
	case errors.Is(err, assessment.ErrInvalidAnswer), errors.Is(err, utils.ErrMalformedTime):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, assessment.ErrUnknownInstrument):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, repositories.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

// badRequest responde 400 para corpo inválido
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
