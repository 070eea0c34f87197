package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/patrickprogramme/quotescribe/internal/clipboard"
	"github.com/patrickprogramme/quotescribe/internal/config"
	"github.com/patrickprogramme/quotescribe/internal/fsutil"
	"github.com/patrickprogramme/quotescribe/internal/gemini"
	"github.com/patrickprogramme/quotescribe/internal/report"
	"github.com/patrickprogramme/quotescribe/internal/request"
	"github.com/patrickprogramme/quotescribe/internal/ui"
	"github.com/patrickprogramme/quotescribe/internal/yt"
	"github.com/patrickprogramme/quotescribe/pkg/model"
)

const (
	defaultUpdateTimeout  = 15 * time.Second
	defaultExtractTimeout = 2 * time.Minute
	dirPerm               = 0o755
)

// CLIFlags contient les informations venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	URL        string
	YtDlpPath  string
}

// App orchestre les différentes dépendances (UI, YtDlp, Gemini, FS...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	ytClient yt.Interface   // initialisé dans Run
	llm      *gemini.Client // initialisé dans Run
	renderer *report.Renderer
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags, renderer *report.Renderer) *App {
	return &App{
		cfg:      cfg,
		ui:       uiClient,
		flags:    flags,
		renderer: renderer,
	}
}

// video regroupe ce que la phase de préparation produit : métadonnées,
// dossier de sortie et transcript horodaté complet.
type video struct {
	meta       *model.Meta
	outDir     string
	baseName   string
	transcript string
}

// Run exécute le flux principal : bloc de demande -> audio -> transcript ->
// extraction des citations -> sauvegardes.
func (a *App) Run(ctx context.Context) error {
	// Récupération du bloc de demande : priorité flag > clipboard > prompt
	block := a.flags.URL
	if block == "" {
		b, err := a.ui.GetRequestBlock(ctx)
		if err != nil {
			return fmt.Errorf("get request block: %w", err)
		}
		block = b
	}

	req := request.Parse(block)
	if err := req.Validate(); err != nil {
		return fmt.Errorf("bloc de demande invalide : %w", err)
	}

	// fenêtre de contexte : défauts depuis la config, modifiables au clavier
	after, before, err := a.ui.AskContextWindow(ctx, a.cfg.Context.AfterSeconds, a.cfg.Context.BeforeSeconds)
	if err != nil {
		return fmt.Errorf("ask context window: %w", err)
	}

	if err := a.initClients(ctx); err != nil {
		return err
	}

	v, err := a.prepareVideo(ctx, req.URL)
	if err != nil {
		return err
	}

	// extraction des citations, un anchor à la fois
	runID := uuid.NewString()
	quotes := a.ProcessAnchors(ctx, req.Anchors, v,
		model.Seconds(after), model.Seconds(before))
	if len(quotes) == 0 {
		a.ui.PrintWarn(ctx, "Aucune citation n'a pu être extraite.")
		return a.ui.WaitForExit(ctx)
	}

	// sauvegarde texte brut
	quotesPath, err := SaveQuotes(quotes, v.outDir, v.baseName)
	if err != nil {
		return fmt.Errorf("sauvegarde des citations : %w", err)
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Citations écrites dans :\n%s", quotesPath))

	// rapport markdown
	if a.cfg.SaveReport && a.renderer != nil {
		data := report.NewReportData(v.meta, quotes, runID)
		content, rerr := a.renderer.Render("quotes_report.md.tmpl", data)
		if rerr != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("rendu du rapport : %v", rerr))
		} else {
			outPath, werr := fsutil.SaveTextAtomic(v.outDir, data.Filename, ".md", content, true)
			if werr != nil {
				a.ui.PrintError(ctx, fmt.Sprintf("écriture du rapport : %v", werr))
			} else {
				a.ui.PrintInfo(ctx, fmt.Sprintf("Rapport écrit dans :\n%s", outPath))
			}
		}
	}

	// copie dans le presse-papier
	if a.cfg.CopyQuotesToClipboard {
		if cerr := clipboard.WriteAll(JoinQuotes(quotes)); cerr != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("copie presse-papier : %v", cerr))
		} else {
			a.ui.PrintInfo(ctx, "Citations copiées dans le presse-papier.")
		}
	}

	return a.ui.WaitForExit(ctx)
}

// RunTranscriptOnly télécharge et transcrit sans extraire de citations
// (mode `transcript`). L'URL peut venir du flag ou du bloc interactif.
func (a *App) RunTranscriptOnly(ctx context.Context) error {
	block := a.flags.URL
	if block == "" {
		b, err := a.ui.GetRequestBlock(ctx)
		if err != nil {
			return fmt.Errorf("get request block: %w", err)
		}
		block = b
	}

	req := request.Parse(block)
	if req.URL == "" {
		return request.ErrNoURL
	}

	if err := a.initClients(ctx); err != nil {
		return err
	}

	// dans ce mode le transcript EST la sortie : on force sa sauvegarde
	a.cfg.SaveTranscript = true

	v, err := a.prepareVideo(ctx, req.URL)
	if err != nil {
		return err
	}

	a.ui.PrintInfo(ctx, fmt.Sprintf("Transcript disponible dans :\n%s",
		filepath.Join(v.outDir, v.baseName+"_transcript.txt")))
	return nil
}

// initClients met en place yt-dlp et le client Gemini.
func (a *App) initClients(ctx context.Context) error {
	// si l'utilisateur a passé --yt-dlp-path, l'appliquer et re-résoudre
	if a.flags.YtDlpPath != "" {
		a.cfg.YtDlp.Path = a.flags.YtDlpPath
		a.cfg.ResolveYtDlpPath()
	}

	dl, version, err := yt.InitYtDlp(ctx, a.cfg, func(msg string) {
		a.ui.PrintInfo(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("yt init: %w", err)
	}
	a.ytClient = dl

	// Update check (optionnel)
	if a.cfg.YtDlp.AutoUpdateCheck {
		a.YtDlpUpdateCheck(ctx, defaultUpdateTimeout, version)
	}

	llm, err := gemini.NewFromEnv(a.cfg.Gemini.Model, a.cfg.Gemini.APIKeyEnv,
		a.cfg.Gemini.RetryAttempts, a.cfg.Gemini.TimeoutSeconds)
	if err != nil {
		return fmt.Errorf("gemini init: %w", err)
	}
	llm.SetNotify(func(msg string) {
		a.ui.PrintWarn(ctx, msg)
	})
	a.llm = llm

	return nil
}

// prepareVideo extrait les métadonnées, télécharge (ou réutilise) l'audio et
// produit le transcript horodaté complet (avec cache disque).
func (a *App) prepareVideo(ctx context.Context, url string) (*video, error) {
	exCtx, exCancel := context.WithTimeout(ctx, defaultExtractTimeout)
	defer exCancel()

	raw, err := a.ytClient.ExtractRaw(exCtx, url)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("opération annulée")
		}
		return nil, fmt.Errorf("extract raw: %w", err)
	}
	if a.cfg.YtDlp.ShowWarnings {
		raw.PrintWarnings()
	}

	meta, err := yt.ParseYTDLP(raw.JSON)
	if err != nil {
		return nil, fmt.Errorf("parse ytdlp: %w", err)
	}
	a.ui.PrintInfo(ctx, meta.Pretty())

	// préparation du dossier de sortie
	outDir := a.cfg.OutputDir
	baseName := fsutil.SanitizeFilename(meta.Title)
	if a.cfg.SaveInSubdir {
		outDir = filepath.Join(outDir, baseName)
	}
	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}

	audioPath, err := a.DownloadAndPrepareAudio(ctx, url, outDir, baseName)
	if err != nil {
		return nil, err
	}

	transcript, err := a.GetOrCreateTranscript(ctx, audioPath, outDir, baseName)
	if err != nil {
		return nil, err
	}

	return &video{
		meta:       meta,
		outDir:     outDir,
		baseName:   baseName,
		transcript: transcript,
	}, nil
}
