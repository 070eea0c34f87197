package transcript

import (
	"regexp"
	"strings"

	"github.com/patrickprogramme/quotescribe/internal/timestamp"
	"github.com/patrickprogramme/quotescribe/pkg/model"
)

// leadingMarkerRe : un marqueur bracketé en tout début de ligne.
// Les lignes sans marqueur reconnaissable sont inertes pour le fenêtrage.
var leadingMarkerRe = regexp.MustCompile(`^\[(\d{1,2}:\d{2}(?::\d{2})?)\]`)

// ExtractSegment retourne les lignes de raw dont le marqueur de tête tombe
// dans w (bornes incluses), jointes par '\n' et dans l'ordre d'origine.
//
// Les lignes sans marqueur ne sont jamais sélectionnées. Un résultat vide
// n'est pas une erreur : c'est à l'appelant de traiter "rien à extraire"
// comme un avertissement et de sauter le traitement aval.
func ExtractSegment(raw string, w model.Window) string {
	var kept []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		m := leadingMarkerRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		sec, err := timestamp.ParseSeconds(m[1])
		if err != nil {
			// marqueur illisible -> ligne inerte
			continue
		}
		if w.Start <= sec && sec <= w.End {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// MaxTimestamp retourne le dernier timestamp connu du transcript : le
// marqueur de la dernière ligne qui en porte un, en parcourant depuis la
// fin. Retourne 0 si aucune ligne n'a de marqueur.
//
// Sert au contrôle "anchor au-delà de la fin du transcript".
func MaxTimestamp(raw string) model.Seconds {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		m := leadingMarkerRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		sec, err := timestamp.ParseSeconds(m[1])
		if err != nil {
			continue
		}
		return sec
	}
	return 0
}
