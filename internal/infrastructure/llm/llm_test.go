package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

var fastPolicy = RetryPolicy{MaxRetries: 2, InitialInterval: time.Millisecond}

func TestRetry(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		got, err := Retry(context.Background(), fastPolicy, func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("backend unavailable")
			}
			return "hello", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after the configured retries", func(t *testing.T) {
		calls := 0
		_, err := Retry(context.Background(), fastPolicy, func(context.Context) (string, error) {
			calls++
			return "", errors.New("quota exhausted for project")
		})
		assert.ErrorIs(t, err, ErrQuota)
		assert.Equal(t, 3, calls)
	})

	t.Run("api key errors are not retried", func(t *testing.T) {
		calls := 0
		_, err := Retry(context.Background(), fastPolicy, func(context.Context) (string, error) {
			calls++
			return "", genai.APIError{Code: 403, Message: "permission denied"}
		})
		assert.ErrorIs(t, err, ErrAPIKey)
		assert.Equal(t, 1, calls)
	})
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"unauthorized", genai.APIError{Code: 401}, ErrAPIKey},
		{"rate limited", genai.APIError{Code: 429}, ErrQuota},
		{"gateway timeout", genai.APIError{Code: 504}, ErrTimeout},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), ErrTimeout},
		{"message api key", errors.New("API key not valid. Please pass a valid API key."), ErrAPIKey},
		{"message timeout", errors.New("upstream timeout"), ErrTimeout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tc.err), tc.want)
		})
	}

	plain := errors.New("boom")
	assert.Equal(t, plain, classify(plain))
	assert.Nil(t, classify(nil))
}

func TestContents(t *testing.T) {
	contents := Contents([]Message{
		{Role: RoleUser, Content: "I can't sleep"},
		{Role: RoleAssistant, Content: "Tell me more"},
	})
	require.Len(t, contents, 2)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
	assert.Equal(t, "Tell me more", contents[1].Parts[0].Text)
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")
	assert.Error(t, err)
}
