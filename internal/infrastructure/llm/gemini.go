package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Papéis aceitos no histórico
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message é uma mensagem do histórico da conversa
type Message struct {
	Role    string
	Content string
}

// GeminiClient gera respostas do coach pelo Gemini
type GeminiClient struct {
	client *genai.Client
	model  string
	retry  RetryPolicy
}

// NewGeminiClient cria o cliente; a chave é obrigatória
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
		retry:  DefaultRetryPolicy(),
	}, nil
}

// Generate envia as instruções do sistema e o histórico, com novas tentativas
func (g *GeminiClient) Generate(ctx context.Context, system string, history []Message) (string, error) {
	contents := Contents(history)
	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	return Retry(ctx, g.retry, func(ctx context.Context) (string, error) {
		resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
		if err != nil {
			return "", fmt.Errorf("GenAI generate failed: %w", err)
		}
		text := strings.TrimSpace(resp.Text())
		if text == "" {
			return "", ErrEmptyResponse
		}
		return text, nil
	})
}

// Contents converte o histórico para o formato do Gemini ("assistant" vira "model")
func Contents(history []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		var role genai.Role = genai.RoleUser
		if msg.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}
	return contents
}
