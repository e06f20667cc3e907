package handlers

import (
	"github.com/PavaniTiago/sleep-coach-api/internal/application/usecases"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/assessment"
	"github.com/PavaniTiago/sleep-coach-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type AssessmentHandler struct {
	assessmentUseCase usecases.AssessmentUseCase
}

func NewAssessmentHandler(assessmentUseCase usecases.AssessmentUseCase) *AssessmentHandler {
	return &AssessmentHandler{assessmentUseCase}
}

type answersRequest struct {
	Answers [][]int `json:"answers"`
}

func instrumentSummary(def assessment.Definition) fiber.Map {
	return fiber.Map{
		"key":         def.Key,
		"name":        def.Name,
		"kind":        def.Kind,
		"description": def.Description,
		"questions":   len(def.Questions),
		"min_score":   def.MinScore(),
		"max_score":   def.MaxScore(),
	}
}

// ListInstruments retorna os questionários disponíveis
func (h *AssessmentHandler) ListInstruments(c *fiber.Ctx) error {
	definitions := h.assessmentUseCase.ListInstruments()

	data := make([]fiber.Map, 0, len(definitions))
	for _, def := range definitions {
		data = append(data, instrumentSummary(def))
	}
	return c.JSON(fiber.Map{"data": data})
}

// GetInstrument retorna perguntas, opções e faixas de um questionário
func (h *AssessmentHandler) GetInstrument(c *fiber.Ctx) error {
	def, err := h.assessmentUseCase.GetInstrument(c.Params("key"))
	if err != nil {
		return respondError(c, err)
	}

	summary := instrumentSummary(def)
	summary["question_list"] = def.Questions
	summary["bands"] = def.Bands
	return c.JSON(fiber.Map{"data": summary})
}

func parseAnswers(c *fiber.Ctx) ([][]int, error) {
	var req answersRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, err
	}
	return req.Answers, nil
}

// Progress informa a próxima pergunta pendente do assistente
func (h *AssessmentHandler) Progress(c *fiber.Ctx) error {
	answers, err := parseAnswers(c)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}
	progress, err := h.assessmentUseCase.Progress(c.Params("key"), answers)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": progress})
}

// Score pontua sem salvar
func (h *AssessmentHandler) Score(c *fiber.Ctx) error {
	answers, err := parseAnswers(c)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}
	result, err := h.assessmentUseCase.Score(c.Params("key"), answers)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": result})
}

// Submit pontua, salva e atualiza o perfil do usuário
func (h *AssessmentHandler) Submit(c *fiber.Ctx) error {
	answers, err := parseAnswers(c)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}
	record, err := h.assessmentUseCase.Submit(c.UserContext(), middleware.UserID(c), c.Params("key"), answers)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": record})
}

// GetResults retorna o histórico de resultados; ?instrument= filtra por questionário
func (h *AssessmentHandler) GetResults(c *fiber.Ctx) error {
	results, err := h.assessmentUseCase.GetResults(c.UserContext(), middleware.UserID(c), c.Query("instrument"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": results})
}
