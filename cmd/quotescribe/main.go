package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/patrickprogramme/quotescribe/internal/app"
	"github.com/patrickprogramme/quotescribe/internal/assets"
	"github.com/patrickprogramme/quotescribe/internal/bootstrap"
	"github.com/patrickprogramme/quotescribe/internal/config"
	"github.com/patrickprogramme/quotescribe/internal/report"
	"github.com/patrickprogramme/quotescribe/internal/ui"
	"github.com/spf13/cobra"
)

// renseigné au build via -ldflags "-X main.version=..."
var version = "dev"

var flags = &app.CLIFlags{}

var rootCmd = &cobra.Command{
	Use:   "quotescribe",
	Short: "Extrait des citations horodatées depuis une vidéo YouTube",
	Long: `QuoteScribe télécharge l'audio d'une vidéo YouTube, le transcrit via
Gemini, puis extrait des citations prêtes à publier autour des timestamps
que vous fournissez (collez l'URL suivie d'un timestamp par ligne).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(false)
	},
}

var transcriptCmd = &cobra.Command{
	Use:   "transcript",
	Short: "Télécharge et transcrit seulement (pas d'extraction de citations)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(true)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Affiche la version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quotescribe %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "chemin du fichier de configuration")
	rootCmd.PersistentFlags().StringVar(&flags.URL, "url", "", "URL YouTube (optionnel, sinon interactif)")
	rootCmd.PersistentFlags().StringVar(&flags.YtDlpPath, "yt-dlp-path", "", "chemin absolu vers l'exécutable yt-dlp")
	rootCmd.AddCommand(transcriptCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(transcriptOnly bool) error {
	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'exécutable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
	}

	// emplacement config par défaut : à côté du binaire
	if flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "quotescribe.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	// s'assurer que les templates existent (dans binDir/templates)
	tplDir := filepath.Join(binDir, "templates")
	if err := bootstrap.EnsureTemplatesPresent(
		tplDir,
		assets.Embedded,
		assets.DefaultTemplatePaths,
	); err != nil {
		log.Printf("warning: ensure templates present: %v", err)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	if err := cfg.ValidateOutputDir(); err != nil {
		return err
	}
	if warnings, err := cfg.ValidateYtDlpPresence(); err != nil {
		return err
	} else {
		for _, w := range warnings {
			log.Printf("warning: %s", w)
		}
	}

	// construction du renderer (templates à côté du binaire)
	renderer, err := report.DefaultRenderer(exePath)
	if err != nil {
		log.Printf("warning: renderer indisponible, rapport markdown désactivé: %v", err)
		renderer = nil
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags, renderer)
	if transcriptOnly {
		return a.RunTranscriptOnly(ctx)
	}
	return a.Run(ctx)
}
