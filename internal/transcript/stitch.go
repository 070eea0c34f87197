package transcript

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/patrickprogramme/quotescribe/internal/timestamp"
	"github.com/patrickprogramme/quotescribe/pkg/model"
)

// markerRe : un marqueur bracketé n'importe où dans le texte (le shifting
// réécrit tous les marqueurs, pas seulement ceux en tête de ligne).
var markerRe = regexp.MustCompile(`\[(\d{1,2}:\d{2}(?::\d{2})?)\]`)

// ChunkTranscript associe le transcript d'un chunk (timestampé depuis zéro)
// à l'offset de ce chunk dans l'audio d'origine.
type ChunkTranscript struct {
	Text   string
	Offset model.Seconds
}

// ShiftTimestamps réécrit chaque marqueur [T] de text en [T+offset].
// Le rendu heure/pas-heure est choisi par valeur réécrite : un "[05:00]"
// local à un chunk peut devenir "[1:05:00]" après décalage.
// Une erreur du codec sur un marqueur remonte telle quelle.
func ShiftTimestamps(text string, offset model.Seconds) (string, error) {
	var firstErr error
	out := markerRe.ReplaceAllStringFunc(text, func(marker string) string {
		inner := strings.Trim(marker, "[]")
		sec, err := timestamp.ParseSeconds(inner)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("marqueur %q : %w", marker, err)
			}
			return marker
		}
		return timestamp.Format(sec + offset)
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// Stitch assemble les transcripts par chunk en un transcript global :
// chaque chunk est décalé de son offset, puis les chunks sont concaténés
// dans l'ordre d'entrée en supprimant les lignes déjà produites par les
// chunks précédents (les chunks sont découpés avec un recouvrement
// volontaire, la zone de recouvrement produit des lignes physiquement
// dupliquées). Une ligne répétée à l'intérieur d'un même chunk n'est pas
// un artefact de recouvrement : elle est conservée.
//
// La déduplication est un match texte exact après réécriture : deux
// transcriptions légèrement différentes du même passage ne seront pas
// dédupliquées. Imprécision assumée.
//
// Les offsets doivent être >= 0 et croissants au sens large dans l'ordre
// des chunks ; toute violation est une erreur.
func Stitch(parts []ChunkTranscript) (string, error) {
	var prev model.Seconds
	for i, p := range parts {
		if p.Offset < 0 {
			return "", fmt.Errorf("chunk %d : offset négatif %d", i+1, p.Offset)
		}
		if p.Offset < prev {
			return "", fmt.Errorf("chunk %d : offset %d inférieur au précédent %d", i+1, p.Offset, prev)
		}
		prev = p.Offset
	}

	seen := make(map[string]struct{})
	var stitched []string
	for _, p := range parts {
		shifted, err := ShiftTimestamps(p.Text, p.Offset)
		if err != nil {
			return "", err
		}
		// filtrer contre les chunks précédents seulement : le seen-set
		// n'est enrichi qu'une fois le chunk entier traité
		var kept []string
		for _, line := range strings.Split(strings.TrimSpace(shifted), "\n") {
			if _, dup := seen[line]; dup {
				continue
			}
			kept = append(kept, line)
		}
		for _, line := range kept {
			seen[line] = struct{}{}
		}
		stitched = append(stitched, kept...)
	}
	return strings.Join(stitched, "\n"), nil
}
