// Package request parse le bloc de texte collé par l'utilisateur :
// une ligne URL au maximum, et zéro ou plusieurs lignes "timestamp - description".
// Le parsing est une fonction pure ; la validation est séparée pour que
// l'appelant décide quoi faire d'une requête incomplète.
package request

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/patrickprogramme/quotescribe/internal/timestamp"
	"github.com/patrickprogramme/quotescribe/pkg/model"
)

var (
	ErrNoURL        = errors.New("aucune URL trouvée dans l'entrée")
	ErrNoAnchors    = errors.New("aucun timestamp trouvé dans l'entrée")
	ErrBadTimestamp = errors.New("timestamp invalide")
)

// urlRe : un schéma http(s) suivi de caractères non blancs, n'importe où
// dans la ligne.
var urlRe = regexp.MustCompile(`https?://\S+`)

// anchorRe : un timestamp M:SS/MM:SS en début de ligne, suivi d'un
// " - description" optionnel. Le groupe 3 est la description.
var anchorRe = regexp.MustCompile(`^(\d{1,2}:\d{2})(\s*-\s*(.*))?`)

// Request est le résultat structuré du parsing d'un bloc d'entrée.
type Request struct {
	URL     string
	Anchors []model.Anchor
}

// Parse découpe textBlock en lignes et en extrait l'URL et les anchors.
//
// Règles :
//   - les lignes vides sont ignorées ;
//   - tant que l'URL n'est pas trouvée, une ligne est testée comme URL
//     d'abord : la ligne qui fournit Request.URL ne peut pas aussi être un
//     anchor ;
//   - une fois l'URL retenue, les lignes suivantes sont testées comme
//     anchors même si elles contiennent une URL ("1:30 - voir https://...") ;
//   - les lignes commençant par un timestamp deviennent des anchors, dans
//     l'ordre d'apparition, sans déduplication ;
//   - tout le reste est silencieusement ignoré.
func Parse(textBlock string) Request {
	var req Request

	for _, line := range strings.Split(strings.TrimSpace(textBlock), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if req.URL == "" {
			if m := urlRe.FindString(line); m != "" {
				req.URL = m
				continue
			}
		}

		if m := anchorRe.FindStringSubmatch(line); m != nil {
			req.Anchors = append(req.Anchors, model.Anchor{
				Timestamp:   m[1],
				Description: strings.TrimSpace(m[3]),
			})
		}
	}
	return req
}

// Validate vérifie que la requête est exploitable : URL présente, au moins
// un anchor, et chaque anchor au format strict MM:SS ou HH:MM:SS.
// La première violation rencontrée est retournée.
func (r Request) Validate() error {
	if r.URL == "" {
		return ErrNoURL
	}
	if len(r.Anchors) == 0 {
		return ErrNoAnchors
	}
	for _, a := range r.Anchors {
		if !timestamp.Valid(a.Timestamp) {
			return fmt.Errorf("%w: %q", ErrBadTimestamp, a.Timestamp)
		}
	}
	return nil
}
