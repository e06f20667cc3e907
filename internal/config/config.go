package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config reúne as variáveis de ambiente da API
type Config struct {
	Port                 string
	DatabaseURL          string
	SupabaseURL          string
	SupabaseAnonKey      string
	SupabaseJWTSecret    string
	GoogleAIAPIKey       string
	GeminiModel          string
	Timezone             string
	LogMode              string
	CORSOrigins          string
	TimelineDays         int
	TimelinePersonalized bool
	ChatRateLimit        int
	ChatHistoryLimit     int
}

// ErrMissingDatabaseURL é retornado quando DATABASE_URL não está definida
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not defined in the environment")

// Load lê o .env (se existir) e depois o ambiente do processo.
// O booleano indica se um .env foi carregado.
func Load() (*Config, bool, error) {
	loaded := godotenv.Load() == nil
	cfg, err := FromLookup(os.LookupEnv)
	return cfg, loaded, err
}

// FromLookup monta a configuração a partir de uma função de busca de variáveis
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, fallback string) string {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
		return fallback
	}

	cfg := &Config{
		Port:              get("PORT", "8080"),
		DatabaseURL:       get("DATABASE_URL", ""),
		SupabaseURL:       get("SUPABASE_URL", ""),
		SupabaseAnonKey:   get("SUPABASE_ANON_KEY", ""),
		SupabaseJWTSecret: get("SUPABASE_JWT_SECRET", ""),
		GoogleAIAPIKey:    get("GOOGLE_AI_API_KEY", ""),
		GeminiModel:       get("GEMINI_MODEL", "gemini-1.5-flash"),
		Timezone:          get("APP_TIMEZONE", "UTC"),
		LogMode:           get("LOG_MODE", "dev"),
		CORSOrigins:       get("CORS_ORIGINS", "*"),
	}

	var err error
	if cfg.TimelineDays, err = positiveInt("TIMELINE_DAYS", get("TIMELINE_DAYS", "7")); err != nil {
		return nil, err
	}
	if cfg.ChatRateLimit, err = positiveInt("CHAT_RATE_LIMIT", get("CHAT_RATE_LIMIT", "10")); err != nil {
		return nil, err
	}
	if cfg.ChatHistoryLimit, err = positiveInt("CHAT_HISTORY_LIMIT", get("CHAT_HISTORY_LIMIT", "20")); err != nil {
		return nil, err
	}
	if cfg.TimelinePersonalized, err = strconv.ParseBool(get("TIMELINE_PERSONALIZED", "false")); err != nil {
		return nil, fmt.Errorf("invalid TIMELINE_PERSONALIZED: %w", err)
	}

	return cfg, nil
}

func positiveInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %d", key, n)
	}
	return n, nil
}

// Validate confere o que a API precisa para subir
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	if c.SupabaseJWTSecret == "" && (c.SupabaseURL == "" || c.SupabaseAnonKey == "") {
		return errors.New("either SUPABASE_JWT_SECRET or SUPABASE_URL and SUPABASE_ANON_KEY must be set")
	}
	return nil
}

// CORSOriginList separa CORS_ORIGINS por vírgula
func (c *Config) CORSOriginList() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
