package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/patrickprogramme/quotescribe/internal/fsutil"
	"github.com/patrickprogramme/quotescribe/internal/ia"
	"github.com/patrickprogramme/quotescribe/internal/media"
	"github.com/patrickprogramme/quotescribe/internal/timestamp"
	"github.com/patrickprogramme/quotescribe/internal/transcript"
	"github.com/patrickprogramme/quotescribe/internal/updater"
	"github.com/patrickprogramme/quotescribe/pkg/model"
)

// DownloadAndPrepareAudio télécharge l'audio en mp3 dans outDir, sauf si un
// fichier non vide est déjà présent (cache : relancer l'outil sur la même
// vidéo ne retélécharge pas).
func (a *App) DownloadAndPrepareAudio(ctx context.Context, url, outDir, baseName string) (string, error) {
	audioPath := filepath.Join(outDir, baseName+".mp3")

	if st, err := os.Stat(audioPath); err == nil && st.Size() > 0 {
		a.ui.PrintInfo(ctx, fmt.Sprintf("Audio déjà présent, téléchargement sauté : %s", audioPath))
		return audioPath, nil
	}

	a.ui.PrintInfo(ctx, "Téléchargement de l'audio...")
	if err := a.ytClient.DownloadAudio(ctx, url, audioPath, a.cfg.Audio.Quality); err != nil {
		return "", fmt.Errorf("download audio: %w", err)
	}

	if st, err := os.Stat(audioPath); err != nil || st.Size() == 0 {
		return "", fmt.Errorf("le fichier audio attendu est absent ou vide : %s", audioPath)
	}
	return audioPath, nil
}

// GetOrCreateTranscript retourne le transcript horodaté complet de l'audio.
// Un transcript déjà présent sur disque est réutilisé tel quel.
func (a *App) GetOrCreateTranscript(ctx context.Context, audioPath, outDir, baseName string) (string, error) {
	tPath := filepath.Join(outDir, baseName+"_transcript.txt")

	if data, err := os.ReadFile(tPath); err == nil && strings.TrimSpace(string(data)) != "" {
		a.ui.PrintInfo(ctx, fmt.Sprintf("Transcript déjà présent, transcription sautée : %s", tPath))
		return string(data), nil
	}

	text, err := a.TranscribeWithChunking(ctx, audioPath)
	if err != nil {
		return "", err
	}

	if a.cfg.SaveTranscript {
		if _, werr := fsutil.SaveTextAtomic(outDir, baseName+"_transcript", ".txt", []byte(text), true); werr != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("écriture du transcript : %v", werr))
		}
	}
	return text, nil
}

// TranscribeWithChunking transcrit l'audio via Gemini. Au-delà des seuils de
// taille/durée configurés, l'audio est découpé en chunks qui se recouvrent,
// transcrits un par un, puis recalés et recousus en un transcript unique.
func (a *App) TranscribeWithChunking(ctx context.Context, audioPath string) (string, error) {
	prompt, err := ia.GetTranscriptionPrompt()
	if err != nil {
		return "", err
	}

	prober := media.NewProber(a.cfg.Audio.FfprobeName, a.cfg.Audio.FfmpegName)
	info, perr := prober.Probe(ctx, audioPath)
	if perr != nil {
		// sans ffprobe on tente la transcription directe : l'API refusera
		// d'elle-même les fichiers trop gros
		a.ui.PrintWarn(ctx, fmt.Sprintf("probe audio impossible (%v), transcription directe", perr))
		return a.llm.TranscribeAudio(ctx, prompt, audioPath)
	}

	if !media.NeedsChunking(info, a.cfg.Chunking.MaxFileSizeMB, a.cfg.Chunking.MaxDurationMinutes) {
		a.ui.PrintInfo(ctx, fmt.Sprintf("Transcription de l'audio (%s, %.1f MB)...",
			info.Duration.HHMMSS(), info.SizeMB))
		return a.llm.TranscribeAudio(ctx, prompt, audioPath)
	}

	plan := media.PlanChunks(info.Duration,
		model.Seconds(a.cfg.Chunking.ChunkLengthMinutes)*60,
		model.Seconds(a.cfg.Chunking.OverlapSeconds))
	a.ui.PrintInfo(ctx, fmt.Sprintf("Audio long (%s, %.1f MB) : découpage en %d chunks...",
		info.Duration.HHMMSS(), info.SizeMB, len(plan)))

	chunks, err := media.SplitChunks(ctx, a.cfg.Audio.FfmpegName, audioPath, plan)
	if err != nil {
		return "", fmt.Errorf("split chunks: %w", err)
	}
	// les fichiers intermédiaires ne servent qu'à la transcription
	defer func() {
		for _, c := range chunks {
			_ = os.Remove(c.Path)
		}
	}()

	parts := make([]transcript.ChunkTranscript, 0, len(chunks))
	for i, c := range chunks {
		a.ui.PrintInfo(ctx, fmt.Sprintf("Transcription du chunk %d/%d...", i+1, len(chunks)))
		text, terr := a.llm.TranscribeAudio(ctx, prompt, c.Path)
		if terr != nil {
			return "", fmt.Errorf("transcription du chunk %d: %w", i+1, terr)
		}
		parts = append(parts, transcript.ChunkTranscript{Text: text, Offset: c.Offset})
	}

	full, err := transcript.Stitch(parts)
	if err != nil {
		return "", fmt.Errorf("stitch transcript: %w", err)
	}
	return full, nil
}

// ProcessAnchors extrait une citation par anchor. Chaque anchor défaillant
// (timestamp illisible, hors vidéo, fenêtre vide, échec API) est signalé et
// sauté : on retourne toujours les citations des anchors restants.
func (a *App) ProcessAnchors(ctx context.Context, anchors []model.Anchor, v *video, after, before model.Seconds) []model.Quote {
	maxTS := transcript.MaxTimestamp(v.transcript)

	var quotes []model.Quote
	for i, anc := range anchors {
		target, err := timestamp.ParseSeconds(anc.Timestamp)
		if err != nil {
			a.ui.PrintWarn(ctx, fmt.Sprintf("timestamp %q illisible, anchor sauté", anc.Timestamp))
			continue
		}

		if maxTS > 0 && target > maxTS {
			a.ui.PrintWarn(ctx, fmt.Sprintf("timestamp %q au-delà de la fin du transcript (%s), anchor sauté",
				anc.Timestamp, maxTS.HHMMSS()))
			continue
		}

		w, err := transcript.ComputeWindow(anchors, i, after, before)
		if err != nil {
			a.ui.PrintWarn(ctx, fmt.Sprintf("fenêtre impossible pour %q (%v), anchor sauté", anc.Timestamp, err))
			continue
		}

		segment := transcript.ExtractSegment(v.transcript, w)
		if strings.TrimSpace(segment) == "" {
			a.ui.PrintWarn(ctx, fmt.Sprintf("aucune ligne du transcript dans %s pour %q, anchor sauté",
				w, anc.Timestamp))
			continue
		}

		ts := timestamp.Format(target)
		prompt, err := ia.BuildQuotePrompt(anc.Description, v.meta.Description, ts, segment)
		if err != nil {
			a.ui.PrintWarn(ctx, fmt.Sprintf("construction du prompt pour %q : %v", anc.Timestamp, err))
			continue
		}

		a.ui.PrintInfo(ctx, fmt.Sprintf("Extraction des citations autour de %s...", ts))
		text, err := a.llm.GenerateText(ctx, prompt)
		if err != nil {
			if ctx.Err() != nil {
				a.ui.PrintWarn(ctx, "extraction interrompue")
				break
			}
			a.ui.PrintWarn(ctx, fmt.Sprintf("extraction pour %q a échoué : %v", anc.Timestamp, err))
			continue
		}

		quotes = append(quotes, model.Quote{
			Anchor: anc,
			Window: w,
			Text:   ts + "\n" + text,
		})
	}
	return quotes
}

// JoinQuotes concatène les citations, séparées par une ligne vide.
func JoinQuotes(quotes []model.Quote) string {
	parts := make([]string, 0, len(quotes))
	for _, q := range quotes {
		parts = append(parts, q.Text)
	}
	return strings.Join(parts, "\n\n")
}

// SaveQuotes écrit le fichier texte <baseName>_quotes.txt dans outDir.
func SaveQuotes(quotes []model.Quote, outDir, baseName string) (string, error) {
	if len(quotes) == 0 {
		return "", fmt.Errorf("SaveQuotes: aucune citation à sauvegarder")
	}
	return fsutil.SaveTextAtomic(outDir, baseName+"_quotes", ".txt", []byte(JoinQuotes(quotes)), true)
}

// YtDlpUpdateCheck compare la version locale de yt-dlp à la dernière release
// GitHub et affiche le lien de téléchargement si une mise à jour existe.
func (a *App) YtDlpUpdateCheck(ctx context.Context, timeout time.Duration, version string) error {
	uc, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	check, err := updater.CheckYtDlpUpdate(uc, version)
	if err != nil {
		a.ui.PrintWarn(ctx, fmt.Sprintf("vérification de mise à jour a échoué : %v", err))
		return err
	}

	if check.IsUpToDate {
		a.ui.PrintInfo(ctx, fmt.Sprintf("✅ yt-dlp est à jour (%s)", check.CurrentVersion))
		return nil
	}

	a.ui.PrintInfo(ctx, "⚠️ Nouvelle version de yt-dlp disponible :")
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Installée : %s", check.CurrentVersion))
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Dernière  : %s", check.LatestRelease.TagName))
	a.ui.PrintInfo(ctx, "Téléchargez-la ici:")
	a.ui.PrintInfo(ctx, check.GetUpdateLink(runtime.GOOS))

	return nil
}
