package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/repositories"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/timeline"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/sleep-coach-api/internal/utils"
)

const maxTimelineDays = 31

// TimelineOptions vem da configuração da aplicação
type TimelineOptions struct {
	DefaultDays  int
	Personalized bool
	Location     *time.Location
}

// TimelineView é a resposta da projeção
type TimelineView struct {
	Start string          `json:"start"`
	Days  []timeline.Day  `json:"days"`
	Bands []timeline.Band `json:"bands"`
}

type TimelineUseCase interface {
	GetTimeline(ctx context.Context, userID, start string, days int) (*TimelineView, error)
}

type timelineUseCase struct {
	shiftRepo   repositories.IShiftRepository
	profileRepo repositories.IProfileRepository
	opts        TimelineOptions
	log         *logger.Logger
}

func NewTimelineUseCase(shiftRepo repositories.IShiftRepository, profileRepo repositories.IProfileRepository, opts TimelineOptions, log *logger.Logger) TimelineUseCase {
	if opts.DefaultDays <= 0 {
		opts.DefaultDays = 7
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &timelineUseCase{shiftRepo: shiftRepo, profileRepo: profileRepo, opts: opts, log: log}
}

// GetTimeline projeta days dias a partir de start. Turnos do dia anterior
// entram na consulta para que a sobra da madrugada apareça no primeiro dia.
func (uc *timelineUseCase) GetTimeline(ctx context.Context, userID, start string, days int) (*TimelineView, error) {
	if start == "" {
		start = utils.Today(uc.opts.Location)
	}
	if _, err := utils.ParseDate(start); err != nil {
		return nil, invalid("start", "%v", err)
	}
	if days == 0 {
		days = uc.opts.DefaultDays
	}
	if days < 1 || days > maxTimelineDays {
		return nil, invalid("days", "must be between 1 and %d", maxTimelineDays)
	}

	from, _ := utils.AddDays(start, -1)
	to, _ := utils.AddDays(start, days-1)

	shifts, err := uc.shiftRepo.FindShifts(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	intervals := make([]timeline.ShiftInterval, 0, len(shifts))
	for _, shift := range shifts {
		intervals = append(intervals, shift.Interval())
	}

	bands, err := uc.bandsFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	projected, err := timeline.ProjectRange(start, days, intervals, bands)
	if err != nil {
		return nil, err
	}

	return &TimelineView{Start: start, Days: projected, Bands: bands}, nil
}

// bandsFor usa as janelas padrão, ou as derivadas das preferências quando a personalização está ligada
func (uc *timelineUseCase) bandsFor(ctx context.Context, userID string) ([]timeline.Band, error) {
	if !uc.opts.Personalized {
		return timeline.DefaultBands(), nil
	}

	prefs, err := uc.profileRepo.FindPreferences(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return timeline.DefaultBands(), nil
	}
	if err != nil {
		return nil, err
	}

	bands, err := timeline.BandsFor(timeline.Schedule{
		SleepStart:   prefs.SleepStartTimeDaysOff.String(),
		WakeTime:     prefs.SleepEndTimeDaysOff.String(),
		UseMelatonin: prefs.UseMelatonin,
	})
	if err != nil {
		uc.log.Warn("invalid preferences for timeline, using default bands", "user_id", userID, "error", err)
		return timeline.DefaultBands(), nil
	}
	return bands, nil
}
