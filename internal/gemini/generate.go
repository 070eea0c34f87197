package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Structures requête/réponse (champs minimaux de l'API generateContent).
type gmInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}
type gmPart struct {
	Text       string        `json:"text,omitempty"`
	InlineData *gmInlineData `json:"inline_data,omitempty"`
}
type gmContent struct {
	Role  string   `json:"role,omitempty"`
	Parts []gmPart `json:"parts"`
}
type gmReq struct {
	Contents []gmContent `json:"contents"`
}
type gmResp struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateText envoie un prompt texte et retourne la réponse du modèle.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, []gmPart{{Text: prompt}})
}

// TranscribeAudio envoie le prompt de transcription accompagné du fichier
// audio (inline, encodé base64). Le fichier doit être un mp3.
func (c *Client) TranscribeAudio(ctx context.Context, prompt, audioPath string) (string, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("lecture du fichier audio %s impossible : %w", audioPath, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("fichier audio vide : %s", audioPath)
	}

	parts := []gmPart{
		{Text: prompt},
		{InlineData: &gmInlineData{
			MIMEType: "audio/mpeg",
			Data:     base64.StdEncoding.EncodeToString(data),
		}},
	}
	return c.generate(ctx, parts)
}

// generate poste la requête sur {base}/v1beta/models/{model}:generateContent
// et extrait le premier candidat. Les échecs transitoires sont retentés.
func (c *Client) generate(ctx context.Context, parts []gmPart) (string, error) {
	body, err := json.Marshal(&gmReq{
		Contents: []gmContent{{Role: "user", Parts: parts}},
	})
	if err != nil {
		return "", fmt.Errorf("encodage de la requête Gemini : %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(c.baseURL, "/"), url.PathEscape(c.model))

	respBody, err := c.doWithRetry(ctx, endpoint, body)
	if err != nil {
		return "", err
	}

	var gr gmResp
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return "", fmt.Errorf("décodage de la réponse Gemini : %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	// un candidat peut contenir plusieurs parts texte : on les concatène
	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// postOnce exécute une seule requête HTTP et classe l'erreur éventuelle
// (retryable ou non) pour doWithRetry.
func (c *Client) postOnce(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("construction de la requête : %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		// erreur réseau : candidate au retry
		return nil, &transientError{cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		msg := strings.TrimSpace(string(slurp))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode/100 == 5 {
			return nil, &transientError{cause: fmt.Errorf("gemini upstream %d: %s", resp.StatusCode, msg)}
		}
		return nil, fmt.Errorf("gemini upstream %d: %s", resp.StatusCode, msg)
	}

	return io.ReadAll(resp.Body)
}
