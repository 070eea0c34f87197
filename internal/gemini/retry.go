package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// bornes du backoff exponentiel entre deux tentatives
const (
	retryMinWait = 4 * time.Second
	retryMaxWait = 10 * time.Second
)

// transientError marque une erreur qui mérite un retry : erreur réseau,
// 429 ou 5xx côté API. Tout le reste échoue immédiatement.
type transientError struct {
	cause error
}

func (e *transientError) Error() string { return e.cause.Error() }
func (e *transientError) Unwrap() error { return e.cause }

// doWithRetry exécute postOnce jusqu'à c.attempts fois, avec un backoff
// exponentiel borné (4 s, 8 s, puis plafonné à 10 s). L'annulation du
// contexte interrompt l'attente.
func (c *Client) doWithRetry(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	var lastErr error
	wait := retryMinWait

	for attempt := 1; attempt <= c.attempts; attempt++ {
		out, err := c.postOnce(ctx, endpoint, body)
		if err == nil {
			return out, nil
		}
		lastErr = err

		var te *transientError
		if !errors.As(err, &te) {
			return nil, err // erreur non transitoire : inutile de réessayer
		}
		if attempt == c.attempts {
			break
		}

		if c.notify != nil {
			c.notify(fmt.Sprintf("Tentative %d/%d échouée (%v), nouvelle tentative dans %s...",
				attempt, c.attempts, err, wait))
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}

		wait *= 2
		if wait > retryMaxWait {
			wait = retryMaxWait
		}
	}

	return nil, fmt.Errorf("échec après %d tentatives : %w", c.attempts, lastErr)
}
