package usecases

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/repositories"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/llm"
	"github.com/google/uuid"
)

type fakeShiftRepo struct {
	shifts    []entities.Shift
	lastFrom  string
	lastTo    string
	createErr error
}

func (r *fakeShiftRepo) CreateShifts(ctx context.Context, shifts []entities.Shift) error {
	if r.createErr != nil {
		return r.createErr
	}
	for i := range shifts {
		shifts[i].ID = uuid.New()
	}
	r.shifts = append(r.shifts, shifts...)
	return nil
}

func (r *fakeShiftRepo) FindShifts(ctx context.Context, userID, from, to string) ([]entities.Shift, error) {
	r.lastFrom, r.lastTo = from, to
	var out []entities.Shift
	for _, s := range r.shifts {
		if s.UserID != userID {
			continue
		}
		if from != "" && s.Date.String() < from {
			continue
		}
		if to != "" && s.Date.String() > to {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeShiftRepo) FindShiftByID(ctx context.Context, userID, id string) (*entities.Shift, error) {
	for _, s := range r.shifts {
		if s.ID.String() == id && s.UserID == userID {
			found := s
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeShiftRepo) UpdateShift(ctx context.Context, shift *entities.Shift) error {
	for i, s := range r.shifts {
		if s.ID == shift.ID && s.UserID == shift.UserID {
			r.shifts[i] = *shift
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeShiftRepo) DeleteShift(ctx context.Context, userID, id string) error {
	for i, s := range r.shifts {
		if s.ID.String() == id && s.UserID == userID {
			r.shifts = append(r.shifts[:i], r.shifts[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeSleepLogRepo struct {
	mu   sync.Mutex
	logs map[string]entities.SleepLog
}

func newFakeSleepLogRepo() *fakeSleepLogRepo {
	return &fakeSleepLogRepo{logs: map[string]entities.SleepLog{}}
}

func (r *fakeSleepLogRepo) UpsertSleepLog(ctx context.Context, log *entities.SleepLog) (*entities.SleepLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := log.UserID + "|" + log.Date.String()
	stored, ok := r.logs[key]
	if !ok {
		stored = *log
		stored.ID = uuid.New()
	}
	stored.Events = log.Events
	r.logs[key] = stored
	return &stored, nil
}

func (r *fakeSleepLogRepo) FindSleepLogs(ctx context.Context, userID string, limit int) ([]entities.SleepLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.SleepLog
	for _, log := range r.logs {
		if log.UserID == userID {
			out = append(out, log)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSleepLogRepo) FindSleepLogByDate(ctx context.Context, userID, date string) (*entities.SleepLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	log, ok := r.logs[userID+"|"+date]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &log, nil
}

func (r *fakeSleepLogRepo) DeleteSleepLog(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, log := range r.logs {
		if log.UserID == userID && log.ID.String() == id {
			delete(r.logs, key)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeProfileRepo struct {
	mu          sync.Mutex
	profiles    map[string]entities.UserProfile
	preferences map[string]entities.UserPreferences
	setErr      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles:    map[string]entities.UserProfile{},
		preferences: map[string]entities.UserPreferences{},
	}
}

func (r *fakeProfileRepo) FindProfile(ctx context.Context, userID string) (*entities.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &profile, nil
}

func (r *fakeProfileRepo) UpsertProfile(ctx context.Context, profile *entities.UserProfile) (*entities.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *profile
	r.profiles[profile.UserID] = stored
	return &stored, nil
}

func (r *fakeProfileRepo) SetChronotype(ctx context.Context, userID, chronotype string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.setErr != nil {
		return r.setErr
	}
	profile := r.profiles[userID]
	profile.UserID = userID
	profile.Chronotype = chronotype
	r.profiles[userID] = profile
	return nil
}

func (r *fakeProfileRepo) SetInsomniaSeverity(ctx context.Context, userID, severity string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.setErr != nil {
		return r.setErr
	}
	profile := r.profiles[userID]
	profile.UserID = userID
	profile.InsomniaSeverity = severity
	r.profiles[userID] = profile
	return nil
}

func (r *fakeProfileRepo) FindPreferences(ctx context.Context, userID string) (*entities.UserPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prefs, ok := r.preferences[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &prefs, nil
}

func (r *fakeProfileRepo) UpsertPreferences(ctx context.Context, prefs *entities.UserPreferences) (*entities.UserPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *prefs
	r.preferences[prefs.UserID] = stored
	return &stored, nil
}

type fakeAssessmentRepo struct {
	results []entities.AssessmentResult
}

func (r *fakeAssessmentRepo) CreateResult(ctx context.Context, result *entities.AssessmentResult) error {
	result.ID = uuid.New()
	r.results = append(r.results, *result)
	return nil
}

func (r *fakeAssessmentRepo) FindResults(ctx context.Context, userID, instrumentKey string) ([]entities.AssessmentResult, error) {
	var out []entities.AssessmentResult
	for _, result := range r.results {
		if result.UserID == userID && (instrumentKey == "" || result.InstrumentKey == instrumentKey) {
			out = append(out, result)
		}
	}
	return out, nil
}

type fakeMessageRepo struct {
	messages []entities.ChatMessage
	recent   int64
}

func (r *fakeMessageRepo) CreateMessages(ctx context.Context, messages []entities.ChatMessage) error {
	for i := range messages {
		messages[i].ID = uuid.New()
	}
	r.messages = append(r.messages, messages...)
	return nil
}

func (r *fakeMessageRepo) CountMessagesSince(ctx context.Context, userID, role string, since time.Time) (int64, error) {
	count := r.recent
	for _, msg := range r.messages {
		if msg.UserID == userID && msg.Role == role && !msg.Timestamp.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *fakeMessageRepo) FindRecentMessages(ctx context.Context, userID string, limit int) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	for _, msg := range r.messages {
		if msg.UserID == userID {
			out = append(out, msg)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

type fakeModel struct {
	reply   string
	err     error
	system  string
	history []llm.Message
	calls   int
}

func (m *fakeModel) Generate(ctx context.Context, system string, history []llm.Message) (string, error) {
	m.calls++
	m.system = system
	m.history = history
	return m.reply, m.err
}
