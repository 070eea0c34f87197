// Package transcript est le moteur de segmentation : calcul des fenêtres
// de contexte autour d'un anchor, extraction des lignes d'un transcript
// qui tombent dans une fenêtre, et stitching des transcripts par chunk en
// un transcript global cohérent dans le temps.
//
// Toutes les fonctions sont pures : pas d'état entre les appels, pas d'I/O.
// Deux appels identiques produisent exactement le même résultat.
package transcript

import (
	"fmt"

	"github.com/patrickprogramme/quotescribe/internal/timestamp"
	"github.com/patrickprogramme/quotescribe/pkg/model"
)

// ComputeWindow calcule la fenêtre [start, end] autour de anchors[i].
//
// La borne "après" est maxAfter pour le dernier anchor (pas d'anchor suivant
// pour la limiter), sinon min(distance au suivant, maxAfter) : la fenêtre
// d'une citation ne déborde pas sur le territoire de la suivante. Une
// distance négative (anchors dupliqués ou désordonnés) est ramenée à zéro
// plutôt que de produire une fenêtre de longueur négative.
// start est borné à 0.
//
// La recherche de "l'anchor suivant" est positionnelle : elle suppose que
// anchors est dans l'ordre fourni au parsing, pas dans l'ordre numérique.
//
// L'erreur ne peut venir que du codec (timestamp malformé) ; l'appelant
// saute alors cet anchor et continue.
func ComputeWindow(anchors []model.Anchor, i int, maxAfter, before model.Seconds) (model.Window, error) {
	if i < 0 || i >= len(anchors) {
		return model.Window{}, fmt.Errorf("index d'anchor hors limites : %d (sur %d)", i, len(anchors))
	}

	target, err := timestamp.ParseSeconds(anchors[i].Timestamp)
	if err != nil {
		return model.Window{}, fmt.Errorf("anchor %q : %w", anchors[i].Timestamp, err)
	}

	after := maxAfter
	if i < len(anchors)-1 {
		next, err := timestamp.ParseSeconds(anchors[i+1].Timestamp)
		if err != nil {
			return model.Window{}, fmt.Errorf("anchor suivant %q : %w", anchors[i+1].Timestamp, err)
		}
		if d := next - target; d < after {
			after = d
		}
		if after < 0 {
			after = 0
		}
	}

	start := target - before
	if start < 0 {
		start = 0
	}

	return model.Window{Start: start, End: target + after}, nil
}
