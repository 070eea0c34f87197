package fsutil

import (
	"regexp"
	"strings"
)

// limite de longueur de la chaine
const max = 200

// invalidFileRunes définit les caractères interdits dans les noms de fichiers.
// \x00-\x1F sont les caractères de contrôle.
var invalidFileRunes = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// multiUnderscore réduit les séquences de '_' à un seul.
var multiUnderscore = regexp.MustCompile(`_+`)

// SanitizeFilename nettoie un titre de vidéo pour en faire une base de nom
// de fichier sûre (le titre nomme l'audio, le transcript et les quotes ;
// les trois doivent retomber sur le même nom pour que le cache fonctionne).
// Étapes :
// - Remplace les caractères interdits et les espaces par "_"
// - Réduit les "_" multiples et les retire en début/fin
// - Limite la longueur
// - Fournit un nom par défaut si la chaîne est vide
func SanitizeFilename(name string) string {
	if strings.TrimSpace(name) == "" {
		return "video"
	}

	clean := invalidFileRunes.ReplaceAllString(name, "_")
	clean = strings.ReplaceAll(clean, " ", "_")
	clean = multiUnderscore.ReplaceAllString(clean, "_")
	clean = strings.Trim(clean, "_.")

	if clean == "" {
		return "video"
	}
	if len(clean) > max {
		clean = clean[:max]
	}
	return clean
}
