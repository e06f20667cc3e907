package usecases

import (
	"context"
	"fmt"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/assessment"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/repositories"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/logger"
)

// AssessmentProgress é o estado do assistente passo a passo
type AssessmentProgress struct {
	Answered int  `json:"answered"`
	Total    int  `json:"total"`
	Next     int  `json:"next"`
	Complete bool `json:"complete"`
}

type AssessmentUseCase interface {
	ListInstruments() []assessment.Definition
	GetInstrument(key string) (assessment.Definition, error)
	Progress(key string, answers [][]int) (AssessmentProgress, error)
	Score(key string, answers [][]int) (assessment.Result, error)
	Submit(ctx context.Context, userID, key string, answers [][]int) (*entities.AssessmentResult, error)
	GetResults(ctx context.Context, userID, key string) ([]entities.AssessmentResult, error)
}

type assessmentUseCase struct {
	catalog        *assessment.Catalog
	assessmentRepo repositories.IAssessmentRepository
	profileRepo    repositories.IProfileRepository
	log            *logger.Logger
}

func NewAssessmentUseCase(catalog *assessment.Catalog, assessmentRepo repositories.IAssessmentRepository, profileRepo repositories.IProfileRepository, log *logger.Logger) AssessmentUseCase {
	return &assessmentUseCase{
		catalog:        catalog,
		assessmentRepo: assessmentRepo,
		profileRepo:    profileRepo,
		log:            log,
	}
}

func (uc *assessmentUseCase) ListInstruments() []assessment.Definition {
	return uc.catalog.List()
}

func (uc *assessmentUseCase) GetInstrument(key string) (assessment.Definition, error) {
	return uc.catalog.Get(key)
}

func (uc *assessmentUseCase) Progress(key string, answers [][]int) (AssessmentProgress, error) {
	def, err := uc.catalog.Get(key)
	if err != nil {
		return AssessmentProgress{}, err
	}
	answered, total, next := assessment.Progress(def, assessment.FromSlices(answers))
	return AssessmentProgress{
		Answered: answered,
		Total:    total,
		Next:     next,
		Complete: next == -1,
	}, nil
}

func (uc *assessmentUseCase) Score(key string, answers [][]int) (assessment.Result, error) {
	def, err := uc.catalog.Get(key)
	if err != nil {
		return assessment.Result{}, err
	}
	return assessment.Score(def, assessment.FromSlices(answers))
}

// Submit pontua, grava o resultado e atualiza o perfil conforme o tipo do instrumento
func (uc *assessmentUseCase) Submit(ctx context.Context, userID, key string, answers [][]int) (*entities.AssessmentResult, error) {
	def, err := uc.catalog.Get(key)
	if err != nil {
		return nil, err
	}
	result, err := assessment.Score(def, assessment.FromSlices(answers))
	if err != nil {
		return nil, err
	}

	record := &entities.AssessmentResult{
		UserID:        userID,
		InstrumentKey: def.Key,
		Answers:       answers,
		TotalScore:    result.TotalScore,
		Label:         result.Label,
		Auxiliary:     result.Auxiliary,
	}
	if err := uc.assessmentRepo.CreateResult(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save assessment result: %w", err)
	}

	switch def.Kind {
	case assessment.KindChronotype:
		err = uc.profileRepo.SetChronotype(ctx, userID, result.Label)
	case assessment.KindInsomnia:
		err = uc.profileRepo.SetInsomniaSeverity(ctx, userID, result.Label)
	}
	if err != nil {
		// o resultado já está salvo e GetResults o devolve; o perfil é derivado dele
		uc.log.Error("failed to update profile from assessment", "user_id", userID, "instrument", def.Key, "error", err)
	}

	uc.log.Info("assessment submitted", "user_id", userID, "instrument", def.Key, "score", result.TotalScore, "label", result.Label)
	return record, nil
}

func (uc *assessmentUseCase) GetResults(ctx context.Context, userID, key string) ([]entities.AssessmentResult, error) {
	if key != "" {
		if _, err := uc.catalog.Get(key); err != nil {
			return nil, err
		}
	}
	return uc.assessmentRepo.FindResults(ctx, userID, key)
}
