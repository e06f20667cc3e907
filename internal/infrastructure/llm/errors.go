package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

var (
	// ErrAPIKey indica chave inválida ou sem permissão; não adianta repetir
	ErrAPIKey = errors.New("invalid API key configuration")
	// ErrQuota indica cota esgotada ou limite de requisições do provedor
	ErrQuota = errors.New("API quota exceeded")
	// ErrTimeout indica que o provedor não respondeu a tempo
	ErrTimeout = errors.New("request timed out")
	// ErrEmptyResponse indica resposta sem texto
	ErrEmptyResponse = errors.New("empty response from model")
)

// classify anexa um dos erros acima quando reconhece a falha do provedor
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrTimeout, err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return errors.Join(ErrAPIKey, err)
		case http.StatusTooManyRequests:
			return errors.Join(ErrQuota, err)
		case http.StatusGatewayTimeout, http.StatusRequestTimeout:
			return errors.Join(ErrTimeout, err)
		}
	}

	message := strings.ToLower(err.Error())
	switch {
	case strings.Contains(message, "api key"):
		return errors.Join(ErrAPIKey, err)
	case strings.Contains(message, "quota"):
		return errors.Join(ErrQuota, err)
	case strings.Contains(message, "timeout"), strings.Contains(message, "timed out"):
		return errors.Join(ErrTimeout, err)
	}
	return err
}
