package transcript

import (
	"errors"
	"testing"

	"github.com/patrickprogramme/quotescribe/internal/timestamp"
	"github.com/patrickprogramme/quotescribe/pkg/model"
)

func anchors(ts ...string) []model.Anchor {
	out := make([]model.Anchor, 0, len(ts))
	for _, t := range ts {
		out = append(out, model.Anchor{Timestamp: t})
	}
	return out
}

func TestComputeWindow(t *testing.T) {
	tests := []struct {
		name     string
		anchors  []model.Anchor
		i        int
		maxAfter model.Seconds
		before   model.Seconds
		want     model.Window
	}{
		{
			name:     "borné par l'anchor suivant",
			anchors:  anchors("1:00", "2:00"),
			i:        0,
			maxAfter: 120,
			before:   30,
			// target=60, next=120, after=min(60,120)=60 -> [30, 120]
			want: model.Window{Start: 30, End: 120},
		},
		{
			name:     "plafond utilisateur plus proche que l'anchor suivant",
			anchors:  anchors("1:00", "10:00"),
			i:        0,
			maxAfter: 90,
			before:   30,
			want:     model.Window{Start: 30, End: 150},
		},
		{
			name:     "dernier anchor -> plafond complet",
			anchors:  anchors("1:00", "2:00"),
			i:        1,
			maxAfter: 120,
			before:   30,
			want:     model.Window{Start: 90, End: 240},
		},
		{
			name:     "anchor unique traité comme dernier",
			anchors:  anchors("0:50"),
			i:        0,
			maxAfter: 90,
			before:   30,
			want:     model.Window{Start: 20, End: 140},
		},
		{
			name:     "start borné à zéro",
			anchors:  anchors("0:10", "5:00"),
			i:        0,
			maxAfter: 60,
			before:   30,
			want:     model.Window{Start: 0, End: 70},
		},
		{
			name:     "anchors dupliqués -> fenêtre dégénérée, pas négative",
			anchors:  anchors("1:00", "1:00"),
			i:        0,
			maxAfter: 90,
			before:   0,
			want:     model.Window{Start: 60, End: 60},
		},
		{
			name:     "anchors désordonnés -> after ramené à zéro",
			anchors:  anchors("2:00", "1:00"),
			i:        0,
			maxAfter: 90,
			before:   30,
			want:     model.Window{Start: 90, End: 120},
		},
		{
			name:     "anchor HH:MM:SS",
			anchors:  anchors("1:00:00"),
			i:        0,
			maxAfter: 90,
			before:   30,
			want:     model.Window{Start: 3570, End: 3690},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeWindow(tc.anchors, tc.i, tc.maxAfter, tc.before)
			if err != nil {
				t.Fatalf("ComputeWindow error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ComputeWindow = %v, want %v", got, tc.want)
			}
			if got.Start > got.End {
				t.Errorf("fenêtre de longueur négative : %v", got)
			}
		})
	}
}

func TestComputeWindowBadAnchor(t *testing.T) {
	_, err := ComputeWindow(anchors("1:xx"), 0, 90, 30)
	if !errors.Is(err, timestamp.ErrFormat) {
		t.Fatalf("err = %v, want ErrFormat", err)
	}

	// l'erreur de l'anchor suivant remonte aussi
	_, err = ComputeWindow(anchors("1:00", "2:yy"), 0, 90, 30)
	if !errors.Is(err, timestamp.ErrFormat) {
		t.Fatalf("err (next) = %v, want ErrFormat", err)
	}
}

func TestComputeWindowIndexOutOfRange(t *testing.T) {
	if _, err := ComputeWindow(anchors("1:00"), 1, 90, 30); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if _, err := ComputeWindow(nil, 0, 90, 30); err == nil {
		t.Fatal("expected error for empty anchors")
	}
}
