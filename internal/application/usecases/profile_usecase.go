package usecases

import (
	"context"
	"fmt"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/repositories"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/sleep-coach-api/internal/utils"
)

// ProfileInput são as respostas do onboarding
type ProfileInput struct {
	Chronotype       string `json:"chronotype"`
	WorkSchedule     string `json:"work_schedule"`
	StressLevel      *int   `json:"stress_level"`
	SocialLife       string `json:"social_life"`
	Hobbies          string `json:"hobbies"`
	InsomniaSeverity string `json:"insomnia_severity"`
}

// PreferencesInput são as preferências de sono editáveis
type PreferencesInput struct {
	SleepStartTimeDaysOff string `json:"sleep_start_time_days_off"`
	SleepEndTimeDaysOff   string `json:"sleep_end_time_days_off"`
	ReadyTimeMinutes      int    `json:"ready_time_minutes"`
	Chronotype            string `json:"chronotype"`
	Sex                   string `json:"sex"`
	Age                   int    `json:"age"`
	UseMelatonin          bool   `json:"use_melatonin"`
}

// PreferencesView inclui a duração de sono derivada
type PreferencesView struct {
	entities.UserPreferences
	SleepDurationHours float64 `json:"sleep_duration_hours"`
}

type ProfileUseCase interface {
	GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error)
	SaveProfile(ctx context.Context, userID string, input ProfileInput) (*entities.UserProfile, error)
	GetPreferences(ctx context.Context, userID string) (*PreferencesView, error)
	SavePreferences(ctx context.Context, userID string, input PreferencesInput) (*PreferencesView, error)
}

type profileUseCase struct {
	profileRepo repositories.IProfileRepository
	log         *logger.Logger
}

func NewProfileUseCase(profileRepo repositories.IProfileRepository, log *logger.Logger) ProfileUseCase {
	return &profileUseCase{profileRepo: profileRepo, log: log}
}

func (uc *profileUseCase) GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error) {
	return uc.profileRepo.FindProfile(ctx, userID)
}

func (uc *profileUseCase) SaveProfile(ctx context.Context, userID string, input ProfileInput) (*entities.UserProfile, error) {
	if input.StressLevel != nil && (*input.StressLevel < 1 || *input.StressLevel > 10) {
		return nil, invalid("stress_level", "must be between 1 and 10")
	}

	profile, err := uc.profileRepo.UpsertProfile(ctx, &entities.UserProfile{
		UserID:           userID,
		Chronotype:       input.Chronotype,
		WorkSchedule:     input.WorkSchedule,
		StressLevel:      input.StressLevel,
		SocialLife:       input.SocialLife,
		Hobbies:          input.Hobbies,
		InsomniaSeverity: input.InsomniaSeverity,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}

func (uc *profileUseCase) GetPreferences(ctx context.Context, userID string) (*PreferencesView, error) {
	prefs, err := uc.profileRepo.FindPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	return newPreferencesView(*prefs), nil
}

func newPreferencesView(prefs entities.UserPreferences) *PreferencesView {
	hours, _ := prefs.SleepDurationHours()
	return &PreferencesView{UserPreferences: prefs, SleepDurationHours: hours}
}

// ValidatePreferences confere faixas e valores aceitos; devolve os horários normalizados
func ValidatePreferences(input PreferencesInput) (entities.Clock, entities.Clock, error) {
	sh, sm, err := utils.ParseClock(input.SleepStartTimeDaysOff)
	if err != nil {
		return "", "", invalid("sleep_start_time_days_off", "%v", err)
	}
	eh, em, err := utils.ParseClock(input.SleepEndTimeDaysOff)
	if err != nil {
		return "", "", invalid("sleep_end_time_days_off", "%v", err)
	}
	if input.ReadyTimeMinutes < 5 || input.ReadyTimeMinutes > 300 {
		return "", "", invalid("ready_time_minutes", "must be between 5 and 300")
	}
	if input.Age < 13 || input.Age > 120 {
		return "", "", invalid("age", "must be between 13 and 120")
	}
	switch input.Chronotype {
	case entities.PreferenceMorning, entities.PreferenceEvening, entities.PreferenceNeither:
	default:
		return "", "", invalid("chronotype", "must be morning, evening or neither")
	}
	switch input.Sex {
	case entities.SexMale, entities.SexFemale, entities.SexOther:
	default:
		return "", "", invalid("sex", "must be male, female or other")
	}
	return entities.Clock(utils.FormatClock(sh, sm)), entities.Clock(utils.FormatClock(eh, em)), nil
}

func (uc *profileUseCase) SavePreferences(ctx context.Context, userID string, input PreferencesInput) (*PreferencesView, error) {
	start, end, err := ValidatePreferences(input)
	if err != nil {
		return nil, err
	}

	prefs, err := uc.profileRepo.UpsertPreferences(ctx, &entities.UserPreferences{
		UserID:                userID,
		SleepStartTimeDaysOff: start,
		SleepEndTimeDaysOff:   end,
		ReadyTimeMinutes:      input.ReadyTimeMinutes,
		Chronotype:            input.Chronotype,
		Sex:                   input.Sex,
		Age:                   input.Age,
		UseMelatonin:          input.UseMelatonin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	uc.log.Info("preferences saved", "user_id", userID)
	return newPreferencesView(*prefs), nil
}
