package media

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/patrickprogramme/quotescribe/pkg/model"
)

// NeedsChunking décide si un audio doit être découpé avant transcription :
// au-delà d'une taille ou d'une durée maximale, l'API refuse ou dégrade.
func NeedsChunking(info AudioInfo, maxSizeMB, maxDurationMinutes float64) bool {
	if maxSizeMB > 0 && info.SizeMB > maxSizeMB {
		return true
	}
	if maxDurationMinutes > 0 && float64(info.Duration)/60 > maxDurationMinutes {
		return true
	}
	return false
}

// PlanChunks calcule les fenêtres de découpage d'un audio de durée total.
// Chaque chunk dure chunkLen secondes et recouvre le précédent de overlap
// secondes, pour que les phrases coupées en bordure apparaissent entières
// dans au moins un chunk. Le dernier chunk est raccourci à la durée restante.
//
// Fonction pure : pas d'E/S, testable sans ffmpeg.
func PlanChunks(total, chunkLen, overlap model.Seconds) []model.Window {
	if total <= 0 || chunkLen <= 0 {
		return nil
	}
	if overlap < 0 {
		overlap = 0
	}
	step := chunkLen - overlap
	if step <= 0 {
		// recouvrement >= longueur : un seul chunk couvrant tout
		return []model.Window{{Start: 0, End: total}}
	}

	var plan []model.Window
	for start := model.Seconds(0); start < total; start += step {
		end := start + chunkLen
		if end > total {
			end = total
		}
		plan = append(plan, model.Window{Start: start, End: end})
		if end == total {
			break
		}
	}
	return plan
}

// SplitChunks découpe l'audio selon le plan, via ffmpeg -ss/-t -acodec copy
// (pas de ré-encodage). Les fichiers sont nommés <base>_chunk_NN.mp3 à côté
// de l'original. Retourne un Chunk par fenêtre avec son offset de départ.
func SplitChunks(ctx context.Context, ffmpegName, audioPath string, plan []model.Window) ([]model.Chunk, error) {
	if ffmpegName == "" {
		ffmpegName = "ffmpeg"
	}

	ext := filepath.Ext(audioPath)
	base := strings.TrimSuffix(audioPath, ext)

	chunks := make([]model.Chunk, 0, len(plan))
	for i, w := range plan {
		outPath := fmt.Sprintf("%s_chunk_%02d%s", base, i+1, ext)

		cmd := exec.CommandContext(ctx, ffmpegName,
			"-y",
			"-i", audioPath,
			"-ss", strconv.FormatInt(int64(w.Start), 10),
			"-t", strconv.FormatInt(int64(w.Duration()), 10),
			"-acodec", "copy",
			outPath,
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			return nil, fmt.Errorf("ffmpeg a échoué sur le chunk %d : %w, output: %s", i+1, err, string(out))
		}

		chunks = append(chunks, model.Chunk{Path: outPath, Offset: w.Start})
	}
	return chunks, nil
}
