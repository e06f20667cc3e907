package usecases

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/repositories"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/llm"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/logger"
	"golang.org/x/sync/errgroup"
)

// Códigos de erro do chat
const (
	ChatCodeInvalidRequest     = "INVALID_REQUEST"
	ChatCodeUnauthorized       = "UNAUTHORIZED"
	ChatCodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	ChatCodeConfigurationError = "CONFIGURATION_ERROR"
	ChatCodeAPIKeyError        = "API_KEY_ERROR"
	ChatCodeQuotaExceeded      = "QUOTA_EXCEEDED"
	ChatCodeTimeout            = "TIMEOUT"
	ChatCodeAPIError           = "API_ERROR"
	ChatCodeInternalError      = "INTERNAL_ERROR"
)

// ChatError carrega o status HTTP, o código e se o cliente pode tentar de novo
type ChatError struct {
	Message   string
	Status    int
	Code      string
	Retryable bool
	Err       error
}

func (e *ChatError) Error() string { return e.Message }

func (e *ChatError) Unwrap() error { return e.Err }

func newChatError(message string, status int, code string, retryable bool, err error) *ChatError {
	return &ChatError{Message: message, Status: status, Code: code, Retryable: retryable, Err: err}
}

// ChatModel gera a resposta do coach a partir das instruções e do histórico
type ChatModel interface {
	Generate(ctx context.Context, system string, history []llm.Message) (string, error)
}

// ChatMessageInput é uma mensagem enviada pelo cliente
type ChatMessageInput struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// CoachOptions vem da configuração da aplicação
type CoachOptions struct {
	RateLimit     int
	HistoryLimit  int
	RecentLogDays int
}

type CoachUseCase interface {
	Chat(ctx context.Context, userID string, messages []ChatMessageInput) (*entities.ChatMessage, error)
	GetMessages(ctx context.Context, userID string, limit int) ([]entities.ChatMessage, error)
}

type coachUseCase struct {
	model        ChatModel
	messageRepo  repositories.IChatMessageRepository
	profileRepo  repositories.IProfileRepository
	sleepLogRepo repositories.ISleepLogRepository
	opts         CoachOptions
	log          *logger.Logger
	now          func() time.Time
}

// NewCoachUseCase cria o caso de uso; model nil significa chave do Gemini não configurada
func NewCoachUseCase(model ChatModel, messageRepo repositories.IChatMessageRepository, profileRepo repositories.IProfileRepository, sleepLogRepo repositories.ISleepLogRepository, opts CoachOptions, log *logger.Logger) CoachUseCase {
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 20
	}
	if opts.RecentLogDays <= 0 {
		opts.RecentLogDays = 7
	}
	return &coachUseCase{
		model:        model,
		messageRepo:  messageRepo,
		profileRepo:  profileRepo,
		sleepLogRepo: sleepLogRepo,
		opts:         opts,
		log:          log,
		now:          time.Now,
	}
}

// validateMessages devolve o histórico para o modelo e a última mensagem do usuário
func validateMessages(messages []ChatMessageInput, limit int) ([]llm.Message, string, error) {
	if len(messages) == 0 {
		return nil, "", newChatError("Invalid request format: messages array is required", http.StatusBadRequest, ChatCodeInvalidRequest, false, nil)
	}

	history := make([]llm.Message, 0, len(messages))
	lastUser := -1
	for i, msg := range messages {
		if msg.Role != llm.RoleUser && msg.Role != llm.RoleAssistant {
			return nil, "", newChatError(fmt.Sprintf("Invalid message role %q", msg.Role), http.StatusBadRequest, ChatCodeInvalidRequest, false, nil)
		}
		if msg.Role == llm.RoleUser {
			lastUser = i
		}
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	if lastUser == -1 {
		return nil, "", newChatError("No user message found in the conversation", http.StatusBadRequest, ChatCodeInvalidRequest, false, nil)
	}
	content := strings.TrimSpace(messages[lastUser].Content)
	if content == "" {
		return nil, "", newChatError("Message content cannot be empty", http.StatusBadRequest, ChatCodeInvalidRequest, false, nil)
	}

	// o histórico enviado termina na última mensagem do usuário
	history = history[:lastUser+1]
	if len(history) > limit {
		history = history[len(history)-limit:]
	}
	return history, content, nil
}

func (uc *coachUseCase) Chat(ctx context.Context, userID string, messages []ChatMessageInput) (*entities.ChatMessage, error) {
	if uc.model == nil {
		return nil, newChatError("API key not configured", http.StatusInternalServerError, ChatCodeConfigurationError, false, nil)
	}
	if userID == "" {
		return nil, newChatError("User not authenticated", http.StatusUnauthorized, ChatCodeUnauthorized, false, nil)
	}

	history, content, err := validateMessages(messages, uc.opts.HistoryLimit)
	if err != nil {
		return nil, err
	}

	count, err := uc.messageRepo.CountMessagesSince(ctx, userID, entities.RoleUser, uc.now().Add(-time.Minute))
	if err != nil {
		return nil, newChatError("Failed to check message rate", http.StatusInternalServerError, ChatCodeInternalError, true, err)
	}
	if count >= int64(uc.opts.RateLimit) {
		return nil, newChatError("Rate limit exceeded. Please wait a moment before sending more messages.", http.StatusTooManyRequests, ChatCodeRateLimitExceeded, true, nil)
	}

	system := CoachPersona
	if userContext, err := uc.loadContext(ctx, userID); err != nil {
		uc.log.Warn("failed to load coach context", "user_id", userID, "error", err)
	} else {
		system += "\n\n" + userContext
	}

	sentAt := uc.now().UTC()
	reply, err := uc.model.Generate(ctx, system, history)
	if err != nil {
		uc.log.Error("coach generation failed", "user_id", userID, "error", err)
		return nil, chatErrorFromModel(err)
	}

	exchange := []entities.ChatMessage{
		{UserID: userID, Role: entities.RoleUser, Content: content, Timestamp: sentAt},
		{UserID: userID, Role: entities.RoleAssistant, Content: reply, Timestamp: uc.now().UTC()},
	}
	if err := uc.messageRepo.CreateMessages(ctx, exchange); err != nil {
		// a resposta já foi gerada; o usuário recebe a mensagem mesmo sem histórico salvo
		uc.log.Error("failed to store chat messages", "user_id", userID, "error", err)
	}

	answer := exchange[1]
	return &answer, nil
}

// loadContext busca perfil, preferências e diários recentes em paralelo. Registros ausentes não são erro.
func (uc *coachUseCase) loadContext(ctx context.Context, userID string) (string, error) {
	var (
		profile *entities.UserProfile
		prefs   *entities.UserPreferences
		logs    []entities.SleepLog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := uc.profileRepo.FindProfile(gctx, userID)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		profile = p
		return err
	})
	g.Go(func() error {
		p, err := uc.profileRepo.FindPreferences(gctx, userID)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		prefs = p
		return err
	})
	g.Go(func() error {
		l, err := uc.sleepLogRepo.FindSleepLogs(gctx, userID, uc.opts.RecentLogDays)
		logs = l
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	return BuildCoachContext(profile, prefs, logs), nil
}

func chatErrorFromModel(err error) *ChatError {
	switch {
	case errors.Is(err, llm.ErrAPIKey):
		return newChatError("Invalid API key configuration", http.StatusInternalServerError, ChatCodeAPIKeyError, false, err)
	case errors.Is(err, llm.ErrQuota):
		return newChatError("API quota exceeded. Please try again later.", http.StatusTooManyRequests, ChatCodeQuotaExceeded, true, err)
	case errors.Is(err, llm.ErrTimeout):
		return newChatError("Request timed out. Please try again.", http.StatusGatewayTimeout, ChatCodeTimeout, true, err)
	default:
		return newChatError(fmt.Sprintf("Gemini API Error: %v", err), http.StatusInternalServerError, ChatCodeAPIError, true, err)
	}
}

// GetMessages retorna o histórico salvo em ordem cronológica
func (uc *coachUseCase) GetMessages(ctx context.Context, userID string, limit int) ([]entities.ChatMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return uc.messageRepo.FindRecentMessages(ctx, userID, limit)
}
