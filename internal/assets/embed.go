package assets

import "embed"

//go:embed quotescribe.example.yaml
//go:embed templates/*tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "quotescribe.example.yaml"

// DefaultTemplatePaths : liste ordonnée des templates "par défaut" embarqués.
// Ce sont des chemins relatifs DANS Embedded.
var DefaultTemplatePaths = []string{
	"templates/transcription_prompt.txt.tmpl",
	"templates/quote_prompt.txt.tmpl",
	"templates/quotes_report.md.tmpl",
}

// TemplateByName donne un accès par clé (map).
var TemplateByName = map[string]string{
	"transcription_prompt": "templates/transcription_prompt.txt.tmpl",
	"quote_prompt":         "templates/quote_prompt.txt.tmpl",
	"quotes_report":        "templates/quotes_report.md.tmpl",
}
