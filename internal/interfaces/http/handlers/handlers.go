package handlers

import (
	"github.com/PavaniTiago/sleep-coach-api/internal/application/usecases"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/logger"
)

// Handlers agrupa os handlers HTTP da API
type Handlers struct {
	Assessment  *AssessmentHandler
	Shift       *ShiftHandler
	SleepLog    *SleepLogHandler
	Profile     *ProfileHandler
	Timeline    *TimelineHandler
	Coach       *CoachHandler
	Performance *PerformanceHandler
}

// UseCases são as dependências dos handlers
type UseCases struct {
	Assessment usecases.AssessmentUseCase
	Shift      usecases.ShiftUseCase
	SleepLog   usecases.SleepLogUseCase
	Profile    usecases.ProfileUseCase
	Timeline   usecases.TimelineUseCase
	Coach      usecases.CoachUseCase
}

func NewHandlers(uc UseCases, performance *PerformanceHandler, log *logger.Logger) *Handlers {
	return &Handlers{
		Assessment:  NewAssessmentHandler(uc.Assessment),
		Shift:       NewShiftHandler(uc.Shift),
		SleepLog:    NewSleepLogHandler(uc.SleepLog),
		Profile:     NewProfileHandler(uc.Profile),
		Timeline:    NewTimelineHandler(uc.Timeline),
		Coach:       NewCoachHandler(uc.Coach, log),
		Performance: performance,
	}
}
