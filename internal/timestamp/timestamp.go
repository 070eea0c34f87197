// Package timestamp convertit entre le texte "MM:SS"/"HH:MM:SS" et les
// secondes écoulées, et reformate les secondes en marqueur bracketé
// "[MM:SS]"/"[H:MM:SS]". C'est le codec sur lequel reposent le parsing
// d'entrée, le fenêtrage et le stitching : tout timestamp doit passer
// par Valid avant d'être considéré comme fiable ailleurs.
package timestamp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/patrickprogramme/quotescribe/pkg/model"
)

// ErrFormat signale un timestamp malformé. L'appelant saute le timestamp
// fautif et continue le batch ; l'erreur n'est jamais fatale en elle-même.
var ErrFormat = errors.New("format de timestamp invalide")

// validRe est le garde-fou officiel : "M:SS", "MM:SS" ou "H:MM:SS"/"HH:MM:SS",
// ancré aux deux extrémités.
var validRe = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)

// Valid retourne true si text est un timestamp exploitable tel quel.
// C'est la validation stricte ; ParseSeconds est volontairement plus laxiste.
func Valid(text string) bool {
	return validRe.MatchString(text)
}

// ParseSeconds convertit "M:SS"/"MM:SS" en minutes:secondes et
// "H:MM:SS" en heures:minutes:secondes, et retourne le total en secondes.
//
// Quirk assumé : une entrée à 1 segment ou à 4+ segments retourne (0, nil)
// au lieu d'une erreur. Les appelants qui veulent une validation stricte
// doivent d'abord passer par Valid. Seul un segment non numérique dans une
// entrée à 2 ou 3 segments produit ErrFormat.
func ParseSeconds(text string) (model.Seconds, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, nil
	}

	nums := make([]int64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrFormat, text)
		}
		nums[i] = n
	}

	if len(nums) == 3 {
		return model.Seconds(nums[0]*3600 + nums[1]*60 + nums[2]), nil
	}
	return model.Seconds(nums[0]*60 + nums[1]), nil
}

// Format rend total en marqueur bracketé : "[H:MM:SS]" dès qu'il y a des
// heures (champ heure non paddé), sinon "[MM:SS]". Minutes et secondes sont
// toujours sur 2 chiffres. Le choix heure/pas-heure se fait sur la valeur,
// indépendamment du format d'origine.
func Format(total model.Seconds) string {
	t := int64(total)
	h := t / 3600
	m := (t % 3600) / 60
	s := t % 60
	if h > 0 {
		return fmt.Sprintf("[%d:%02d:%02d]", h, m, s)
	}
	return fmt.Sprintf("[%02d:%02d]", m, s)
}
