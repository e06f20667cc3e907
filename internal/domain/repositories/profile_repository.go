package repositories

import (
	"context"
	"time"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IProfileRepository interface {
	FindProfile(ctx context.Context, userID string) (*entities.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *entities.UserProfile) (*entities.UserProfile, error)
	SetChronotype(ctx context.Context, userID, chronotype string) error
	SetInsomniaSeverity(ctx context.Context, userID, severity string) error
	FindPreferences(ctx context.Context, userID string) (*entities.UserPreferences, error)
	UpsertPreferences(ctx context.Context, prefs *entities.UserPreferences) (*entities.UserPreferences, error)
}

// ProfileRepository guarda perfil e preferências, com cache de leitura por usuário
type ProfileRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db:    db,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func profileKey(userID string) string     { return "profile:" + userID }
func preferencesKey(userID string) string { return "preferences:" + userID }

func (r *ProfileRepository) FindProfile(ctx context.Context, userID string) (*entities.UserProfile, error) {
	if cached, found := r.cache.Get(profileKey(userID)); found {
		profile := cached.(entities.UserProfile)
		return &profile, nil
	}

	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translateError(err)
	}

	r.cache.Set(profileKey(userID), profile, cache.DefaultExpiration)
	return &profile, nil
}

// UpsertProfile cria ou substitui o perfil do usuário
func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile *entities.UserProfile) (*entities.UserProfile, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"chronotype", "work_schedule", "stress_level", "social_life",
			"hobbies", "insomnia_severity", "updated_at",
		}),
	}).Create(profile).Error
	if err != nil {
		return nil, translateError(err)
	}

	r.cache.Delete(profileKey(profile.UserID))
	return r.FindProfile(ctx, profile.UserID)
}

// SetChronotype atualiza apenas o cronotipo, criando o perfil se necessário
func (r *ProfileRepository) SetChronotype(ctx context.Context, userID, chronotype string) error {
	return r.setProfileField(ctx, &entities.UserProfile{UserID: userID, Chronotype: chronotype}, "chronotype")
}

// SetInsomniaSeverity atualiza apenas a severidade de insônia, criando o perfil se necessário
func (r *ProfileRepository) SetInsomniaSeverity(ctx context.Context, userID, severity string) error {
	return r.setProfileField(ctx, &entities.UserProfile{UserID: userID, InsomniaSeverity: severity}, "insomnia_severity")
}

func (r *ProfileRepository) setProfileField(ctx context.Context, profile *entities.UserProfile, column string) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{column, "updated_at"}),
	}).Create(profile).Error
	if err != nil {
		return translateError(err)
	}

	r.cache.Delete(profileKey(profile.UserID))
	return nil
}

func (r *ProfileRepository) FindPreferences(ctx context.Context, userID string) (*entities.UserPreferences, error) {
	if cached, found := r.cache.Get(preferencesKey(userID)); found {
		prefs := cached.(entities.UserPreferences)
		return &prefs, nil
	}

	var prefs entities.UserPreferences
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return nil, translateError(err)
	}

	r.cache.Set(preferencesKey(userID), prefs, cache.DefaultExpiration)
	return &prefs, nil
}

// UpsertPreferences cria ou substitui as preferências do usuário
func (r *ProfileRepository) UpsertPreferences(ctx context.Context, prefs *entities.UserPreferences) (*entities.UserPreferences, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"sleep_start_time_days_off", "sleep_end_time_days_off", "ready_time_minutes",
			"chronotype", "sex", "age", "use_melatonin", "updated_at",
		}),
	}).Create(prefs).Error
	if err != nil {
		return nil, translateError(err)
	}

	r.cache.Delete(preferencesKey(prefs.UserID))
	return r.FindPreferences(ctx, prefs.UserID)
}
