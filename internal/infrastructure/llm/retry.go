package llm

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryPolicy define as novas tentativas de uma chamada ao modelo
type RetryPolicy struct {
	MaxRetries      int
	InitialInterval time.Duration
}

// DefaultRetryPolicy repete duas vezes, esperando 1s e depois 2s
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 2, InitialInterval: time.Second}
}

// Retry executa op com backoff exponencial. Erros de chave e cancelamento do contexto não são repetidos.
func Retry[T any](ctx context.Context, policy RetryPolicy, op func(context.Context) (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = policy.InitialInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0

	return backoff.Retry(ctx, func() (T, error) {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		err = classify(err)
		if errors.Is(err, ErrAPIKey) || errors.Is(err, context.Canceled) {
			return result, backoff.Permanent(err)
		}
		return result, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(policy.MaxRetries+1)),
	)
}
