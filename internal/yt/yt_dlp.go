package yt

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// NewYtDlp construit une instance. Path doit être le chemin résolu vers l'exe
func NewYtDlp(name string, resolvedPath string, cfg YtDlpConfig) *YtDlp {
	return &YtDlp{
		Name:   name,
		Path:   resolvedPath,
		Config: cfg,
	}
}

// exe retourne le chemin résolu, ou le nom seul (recherche dans PATH).
func (y *YtDlp) exe() string {
	if y.Path != "" {
		return y.Path
	}
	return y.Name
}

// CheckBinary vérifie que le binaire existe et n'est pas un répertoire.
// Si aucun chemin n'est résolu, on tente la recherche dans le PATH.
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("yt-dlp non initialisé")
	}

	if y.Path == "" {
		if _, err := exec.LookPath(y.Name); err != nil {
			return fmt.Errorf("yt-dlp introuvable dans le PATH (%s) : %w", y.Name, err)
		}
		return nil
	}

	info, err := os.Stat(y.Path)
	if err != nil {
		return fmt.Errorf("yt-dlp introuvable (%s) à l'emplacement spécifié : %v", y.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("le chemin spécifié pour yt-dlp est un répertoire, pas un fichier exécutable")
	}

	return nil
}

// ExtractRaw exécute `yt-dlp -j <url>` et renvoie la sortie JSON brute.
// Les lignes non-JSON de la sortie sont collectées comme avertissements.
func (y *YtDlp) ExtractRaw(ctx context.Context, url string) (*ExtractedRaw, error) {
	start := time.Now()
	defer func() {
		y.notify(fmt.Sprintf("Métadonnées extraites en %s", time.Since(start)))
	}()

	args := y.Config.BuildMetaArgs(url)

	cmd := exec.CommandContext(ctx, y.exe(), args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp dump json failed: %w, output: %s", err, string(out))
	}

	var jsonLine string
	var warnings []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") {
			jsonLine = line
		} else {
			warnings = append(warnings, line)
		}
	}
	if jsonLine == "" {
		return nil, fmt.Errorf("aucun JSON détecté dans la sortie: %s", string(out))
	}
	return &ExtractedRaw{
		JSON:     []byte(jsonLine),
		Warnings: warnings,
	}, nil
}

// DownloadAudio télécharge la piste audio en mp3 vers outPath.
// yt-dlp gère lui-même la conversion via ffmpeg (-x --audio-format mp3).
func (y *YtDlp) DownloadAudio(ctx context.Context, url, outPath, quality string) error {
	start := time.Now()
	defer func() {
		y.notify(fmt.Sprintf("Audio téléchargé en %s", time.Since(start)))
	}()

	args := y.Config.BuildAudioArgs(url, outPath, quality)

	cmd := exec.CommandContext(ctx, y.exe(), args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("échec du téléchargement audio : %w, output: %s", err, string(out))
	}
	return nil
}
