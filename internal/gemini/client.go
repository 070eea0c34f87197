package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

var (
	// ErrAPIKeyMissing : la variable d'environnement configurée ne contient pas de clé.
	ErrAPIKeyMissing = errors.New("clé API Gemini absente")
	// ErrEmptyResponse : l'API a répondu 200 mais sans texte exploitable.
	ErrEmptyResponse = errors.New("réponse Gemini vide")
)

// Client encapsule l'API generateContent de Google Generative Language.
// Toutes les méthodes sont sûres pour un usage séquentiel; le client HTTP
// sous-jacent est réutilisé entre les appels.
type Client struct {
	hc       *http.Client
	baseURL  string
	model    string
	apiKey   string
	attempts int
	notify   func(string) // observateur des messages de progression, peut rester nil
}

// NewFromEnv construit un client en lisant la clé API dans apiKeyEnv.
// attempts <= 0 => 3 tentatives; timeoutSeconds <= 0 => 600 s (les audios
// longs prennent plusieurs minutes à transcrire).
func NewFromEnv(model, apiKeyEnv string, attempts, timeoutSeconds int) (*Client, error) {
	if apiKeyEnv == "" {
		apiKeyEnv = "GEMINI_API_KEY"
	}
	key := os.Getenv(apiKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("%w (variable %s)", ErrAPIKeyMissing, apiKeyEnv)
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if attempts <= 0 {
		attempts = 3
	}
	if timeoutSeconds <= 0 {
		timeoutSeconds = 600
	}
	return &Client{
		hc:       &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
		baseURL:  defaultBaseURL,
		model:    model,
		apiKey:   key,
		attempts: attempts,
	}, nil
}

// Model retourne le nom du modèle configuré (pour affichage).
func (c *Client) Model() string {
	return c.model
}

// SetNotify installe l'observateur qui recevra les messages de progression
// (tentatives échouées, attentes de retry). nil le désactive.
func (c *Client) SetNotify(fn func(string)) {
	c.notify = fn
}
