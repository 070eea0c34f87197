package ui

import (
	"context"
)

// Interface découple le pipeline du terminal : les tâches signalent leur
// progression et leurs avertissements via ces méthodes, sans dépendre de stdout.
type Interface interface {
	// GetRequestBlock doit renvoyer le bloc de demande brut (URL + timestamps).
	// Implémentation terminale : priorité clipboard -> saisie ligne à ligne,
	// terminée par une ligne vide.
	GetRequestBlock(ctx context.Context) (string, error)

	// AskContextWindow demande la fenêtre de contexte (secondes après/avant
	// chaque timestamp). Entrée vide => valeurs par défaut passées en paramètre.
	AskContextWindow(ctx context.Context, defAfter, defBefore int) (after, before int, err error)

	// WaitForExit bloque jusqu'à ce qu'un signal d'annulation soit reçu via ctx (Ctrl+C).
	WaitForExit(ctx context.Context) error

	PrintInfo(ctx context.Context, s string)
	PrintWarn(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
