package ia

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/patrickprogramme/quotescribe/internal/assets"
)

// Textes de repli quand l'utilisateur ou yt-dlp ne fournit rien.
const (
	defaultFocus       = "No specific topic was provided. Focus on the most newsworthy and interesting quotes."
	defaultDescription = "No description available."
)

// GetTranscriptionPrompt retourne le prompt de transcription embarqué.
func GetTranscriptionPrompt() (string, error) {
	tplPath := assets.TemplateByName["transcription_prompt"]
	if tplPath == "" {
		return "", fmt.Errorf("template transcription_prompt introuvable dans assets.TemplateByName")
	}
	b, err := assets.Embedded.ReadFile(tplPath)
	if err != nil {
		return "", fmt.Errorf("lecture template embarqué %s: %w", tplPath, err)
	}
	return string(b), nil
}

// quotePromptData alimente le template quote_prompt.
type quotePromptData struct {
	FocusInstruction  string
	VideoDescription  string
	Timestamp         string
	TranscriptSegment string
}

// BuildQuotePrompt assemble le prompt d'extraction de citations pour un
// timestamp donné. userFocus est la description saisie après le timestamp
// (peut être vide); videoDesc vient des métadonnées yt-dlp.
func BuildQuotePrompt(userFocus, videoDesc, timestamp, segment string) (string, error) {
	tplPath := assets.TemplateByName["quote_prompt"]
	if tplPath == "" {
		return "", fmt.Errorf("template quote_prompt introuvable dans assets.TemplateByName")
	}
	b, err := assets.Embedded.ReadFile(tplPath)
	if err != nil {
		return "", fmt.Errorf("lecture template embarqué %s: %w", tplPath, err)
	}

	tpl, err := template.New("quote_prompt").Parse(string(b))
	if err != nil {
		return "", fmt.Errorf("analyse du template quote_prompt: %w", err)
	}

	data := quotePromptData{
		FocusInstruction:  strings.TrimSpace(userFocus),
		VideoDescription:  strings.TrimSpace(videoDesc),
		Timestamp:         timestamp,
		TranscriptSegment: segment,
	}
	if data.FocusInstruction == "" {
		data.FocusInstruction = defaultFocus
	} else {
		data.FocusInstruction = fmt.Sprintf("The user wants quotes specifically about: '%s'. Prioritize quotes related to this topic.", data.FocusInstruction)
	}
	if data.VideoDescription == "" {
		data.VideoDescription = defaultDescription
	}

	var sb strings.Builder
	if err := tpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("exécution du template quote_prompt: %w", err)
	}
	return sb.String(), nil
}
