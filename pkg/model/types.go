package model

import "fmt"

// Seconds est un alias explicite pour représenter un temps écoulé en secondes.
type Seconds int64

// HHMMSS formate Seconds en "HH:MM:SS" (toujours 2 chiffres par composant).
// Exemple : 65 -> "00:01:05", 3661 -> "01:01:01".
// Pour le format [MM:SS]/[H:MM:SS] des transcripts, voir internal/timestamp.
func (s Seconds) HHMMSS() string {
	total := int64(s)
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

// MMSS formate Seconds en "M:SS" (les minutes ne sont pas limitées à 59).
// Utilisé dans les messages du genre "maximum du transcript : 75:30".
func (s Seconds) MMSS() string {
	total := int64(s)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func (s Seconds) Milliseconds() int64 {
	return int64(s) * 1000
}

// Anchor est un timestamp fourni par l'utilisateur : le point d'intérêt
// autour duquel on extrait une citation. Description est un texte libre
// (éventuellement vide) qui guide l'extraction, jamais un délimiteur.
// Les anchors conservent l'ordre d'apparition dans le texte d'entrée ;
// cet ordre est celui utilisé pour trouver "l'anchor suivant".
type Anchor struct {
	Timestamp   string // "MM:SS" ou "HH:MM:SS", largeur libre sur le premier champ
	Description string
}

func (a Anchor) String() string {
	if a.Description == "" {
		return a.Timestamp
	}
	return fmt.Sprintf("%s - %s", a.Timestamp, a.Description)
}

// Window est la fenêtre de contexte [Start, End] en secondes, bornes incluses,
// calculée autour d'un anchor. Recalculée à chaque extraction, jamais stockée.
// Invariant : 0 <= Start <= End.
type Window struct {
	Start Seconds
	End   Seconds
}

func (w Window) String() string {
	return fmt.Sprintf("[%d, %d]", w.Start, w.End)
}

// Duration retourne la longueur de la fenêtre en secondes.
func (w Window) Duration() Seconds {
	return w.End - w.Start
}

// Chunk référence un sous-segment audio produit par le découpage :
// le chemin du fichier exporté et l'offset (en secondes) de son point
// zéro dans l'audio d'origine.
type Chunk struct {
	Path   string
	Offset Seconds
}

// Quote est le résultat de l'extraction pour un anchor : le texte formaté
// retourné par le LLM, plus le contexte qui a servi à le produire.
type Quote struct {
	Anchor Anchor
	Window Window
	Text   string
}
