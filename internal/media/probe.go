package media

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/patrickprogramme/quotescribe/pkg/model"
)

// AudioInfo regroupe ce qu'on sait d'un fichier audio avant transcription.
type AudioInfo struct {
	Duration model.Seconds
	SizeMB   float64
}

// Prober interroge ffprobe pour la durée et le système de fichiers pour la taille.
type Prober struct {
	FfprobeName string
	FfmpegName  string
}

func NewProber(ffprobeName, ffmpegName string) *Prober {
	if ffprobeName == "" {
		ffprobeName = "ffprobe"
	}
	if ffmpegName == "" {
		ffmpegName = "ffmpeg"
	}
	return &Prober{FfprobeName: ffprobeName, FfmpegName: ffmpegName}
}

// Probe retourne durée et taille du fichier audio.
// ffprobe -v error -show_entries format=duration -of default=noprint_wrappers=1:nokey=1 <path>
func (p *Prober) Probe(ctx context.Context, path string) (AudioInfo, error) {
	var info AudioInfo

	st, err := os.Stat(path)
	if err != nil {
		return info, fmt.Errorf("stat du fichier audio %s impossible : %w", path, err)
	}
	info.SizeMB = float64(st.Size()) / (1024 * 1024)

	out, err := exec.CommandContext(ctx, p.FfprobeName,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).CombinedOutput()
	if err != nil {
		return info, fmt.Errorf("ffprobe a échoué sur %s : %w, output: %s", path, err, string(out))
	}

	secs, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return info, fmt.Errorf("durée ffprobe illisible (%q) : %w", strings.TrimSpace(string(out)), err)
	}
	info.Duration = model.Seconds(int64(math.Round(secs)))

	return info, nil
}
