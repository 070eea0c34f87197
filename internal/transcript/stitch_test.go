package transcript

import (
	"strings"
	"testing"

	"github.com/patrickprogramme/quotescribe/internal/timestamp"
	"github.com/patrickprogramme/quotescribe/pkg/model"
)

func TestShiftTimestamps(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		offset int64
		want   string
	}{
		{
			name:   "offset nul réécrit en format canonique",
			in:     "[0:20] y",
			offset: 0,
			want:   "[00:20] y",
		},
		{
			name:   "décalage simple",
			in:     "[0:20] y\n[0:40] z",
			offset: 30,
			want:   "[00:50] y\n[01:10] z",
		},
		{
			name:   "bascule en rendu avec heures",
			in:     "[05:00] fin de chunk",
			offset: 3600,
			want:   "[1:05:00] fin de chunk",
		},
		{
			name:   "marqueurs multiples sur une ligne",
			in:     "[0:10] début, repris en [0:30]",
			offset: 60,
			want:   "[01:10] début, repris en [01:30]",
		},
		{
			name:   "lignes sans marqueur inchangées",
			in:     "pas de marqueur ici",
			offset: 100,
			want:   "pas de marqueur ici",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ShiftTimestamps(tc.in, model.Seconds(tc.offset))
			if err != nil {
				t.Fatalf("ShiftTimestamps error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ShiftTimestamps = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStitchDropsOverlapDuplicates(t *testing.T) {
	// le chunk 2 commence à 30s : sa zone de recouvrement re-transcrit la
	// ligne "y" à son heure locale 0:00 -> décalée, elle duplique exactement
	// la ligne du chunk 1 et doit être supprimée.
	parts := []ChunkTranscript{
		{Text: "[00:00] x\n[00:30] y", Offset: 0},
		{Text: "[0:00] y\n[0:40] z", Offset: 30},
	}
	got, err := Stitch(parts)
	if err != nil {
		t.Fatalf("Stitch error: %v", err)
	}
	want := "[00:00] x\n[00:30] y\n[01:10] z"
	if got != want {
		t.Errorf("Stitch = %q, want %q", got, want)
	}
}

func TestStitchNearDuplicateNotDeduplicated(t *testing.T) {
	// imprécision assumée : une transcription légèrement différente du même
	// passage n'est pas dédupliquée (match texte exact uniquement)
	parts := []ChunkTranscript{
		{Text: "[00:30] bonjour à tous", Offset: 0},
		{Text: "[0:00] bonjour a tous", Offset: 30},
	}
	got, err := Stitch(parts)
	if err != nil {
		t.Fatalf("Stitch error: %v", err)
	}
	if n := len(strings.Split(got, "\n")); n != 2 {
		t.Errorf("expected both near-duplicate lines kept, got:\n%s", got)
	}
}

func TestStitchChronologicalAcrossBoundaries(t *testing.T) {
	// propriété : chunks internement chronologiques + offsets croissants
	// => timestamps non décroissants dans le résultat. Chaque zone de
	// recouvrement re-transcrit la dernière ligne du chunk précédent à
	// l'identique.
	parts := []ChunkTranscript{
		{Text: "[00:00] a\n[10:00] b", Offset: 0},
		{Text: "[0:10] b\n[10:00] c", Offset: 590},
		{Text: "[0:10] c\n[55:00] f", Offset: 1180},
	}
	got, err := Stitch(parts)
	if err != nil {
		t.Fatalf("Stitch error: %v", err)
	}

	var prev model.Seconds = -1
	for _, line := range strings.Split(got, "\n") {
		m := leadingMarkerRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		sec, err := timestamp.ParseSeconds(m[1])
		if err != nil {
			t.Fatalf("marqueur illisible %q: %v", line, err)
		}
		if sec < prev {
			t.Fatalf("timestamps décroissants dans le résultat :\n%s", got)
		}
		prev = sec
	}
}

func TestStitchKeepsRepeatsWithinChunk(t *testing.T) {
	// la déduplication ne vise que le recouvrement entre chunks : une ligne
	// répétée à l'intérieur d'un même chunk (tic verbal, refrain) est gardée
	got, err := Stitch([]ChunkTranscript{
		{Text: "[00:10] ouais\n[00:10] ouais", Offset: 0},
	})
	if err != nil {
		t.Fatalf("Stitch error: %v", err)
	}
	if want := "[00:10] ouais\n[00:10] ouais"; got != want {
		t.Errorf("Stitch = %q, want %q", got, want)
	}

	// la répétition interne survit aussi dans un chunk suivant, alors que la
	// ligne de recouvrement, elle, est supprimée
	got, err = Stitch([]ChunkTranscript{
		{Text: "[00:00] x\n[00:30] y", Offset: 0},
		{Text: "[0:00] y\n[0:40] z\n[0:40] z", Offset: 30},
	})
	if err != nil {
		t.Fatalf("Stitch error: %v", err)
	}
	if want := "[00:00] x\n[00:30] y\n[01:10] z\n[01:10] z"; got != want {
		t.Errorf("Stitch = %q, want %q", got, want)
	}
}

func TestStitchRejectsBadOffsets(t *testing.T) {
	if _, err := Stitch([]ChunkTranscript{{Text: "[0:00] a", Offset: -1}}); err == nil {
		t.Fatal("expected error for negative offset")
	}
	parts := []ChunkTranscript{
		{Text: "[0:00] a", Offset: 60},
		{Text: "[0:00] b", Offset: 30},
	}
	if _, err := Stitch(parts); err == nil {
		t.Fatal("expected error for decreasing offsets")
	}
}

func TestStitchSingleChunkPassthrough(t *testing.T) {
	got, err := Stitch([]ChunkTranscript{{Text: "[00:10] seul\n[00:20] chunk", Offset: 0}})
	if err != nil {
		t.Fatalf("Stitch error: %v", err)
	}
	if got != "[00:10] seul\n[00:20] chunk" {
		t.Errorf("Stitch = %q", got)
	}
}

func TestShiftTimestampsDeterministic(t *testing.T) {
	in := "[0:10] a\n[0:20] b"
	a, _ := ShiftTimestamps(in, 30)
	b, _ := ShiftTimestamps(in, 30)
	if a != b {
		t.Fatalf("two identical calls differ: %q vs %q", a, b)
	}
}
