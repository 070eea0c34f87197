package request

import (
	"errors"
	"testing"

	"github.com/patrickprogramme/quotescribe/pkg/model"
)

func TestParseBlock(t *testing.T) {
	in := "https://x/y\n1:30 - hello\nnotaline\n2:00"
	req := Parse(in)

	if req.URL != "https://x/y" {
		t.Errorf("URL = %q, want %q", req.URL, "https://x/y")
	}
	want := []model.Anchor{
		{Timestamp: "1:30", Description: "hello"},
		{Timestamp: "2:00", Description: ""},
	}
	if len(req.Anchors) != len(want) {
		t.Fatalf("got %d anchors, want %d : %#v", len(req.Anchors), len(want), req.Anchors)
	}
	for i, a := range req.Anchors {
		if a != want[i] {
			t.Errorf("anchor %d = %#v, want %#v", i, a, want[i])
		}
	}
}

func TestParseRules(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantURL     string
		wantAnchors int
	}{
		{
			name:        "seule la première URL est gardée",
			in:          "https://a/b\nhttps://c/d\n1:00",
			wantURL:     "https://a/b",
			wantAnchors: 1,
		},
		{
			name:        "une ligne URL n'est jamais un anchor",
			in:          "1:30 voir https://a/b",
			wantURL:     "https://a/b",
			wantAnchors: 0,
		},
		{
			name:        "lignes vides et bruit ignorés",
			in:          "\n\nblabla\n  \n2:15 - ok\n",
			wantURL:     "",
			wantAnchors: 1,
		},
		{
			name:        "anchors dupliqués conservés",
			in:          "1:00\n1:00\n1:00",
			wantURL:     "",
			wantAnchors: 3,
		},
		{
			name:        "ordre d'apparition préservé même non chronologique",
			in:          "5:00 - b\n1:00 - a",
			wantURL:     "",
			wantAnchors: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := Parse(tc.in)
			if req.URL != tc.wantURL {
				t.Errorf("URL = %q, want %q", req.URL, tc.wantURL)
			}
			if len(req.Anchors) != tc.wantAnchors {
				t.Errorf("anchors = %d, want %d : %#v", len(req.Anchors), tc.wantAnchors, req.Anchors)
			}
		})
	}
}

// Une fois l'URL capturée, une ligne anchor qui contient une URL reste un
// anchor (sa description peut citer un lien).
func TestParseAnchorLineWithURLAfterCapture(t *testing.T) {
	req := Parse("https://a/b\n1:30 - voir https://exemple.com/c\n2:00")

	if req.URL != "https://a/b" {
		t.Errorf("URL = %q, want %q", req.URL, "https://a/b")
	}
	if len(req.Anchors) != 2 {
		t.Fatalf("got %d anchors, want 2 : %#v", len(req.Anchors), req.Anchors)
	}
	if got := req.Anchors[0]; got.Timestamp != "1:30" || got.Description != "voir https://exemple.com/c" {
		t.Errorf("anchor 0 = %#v", got)
	}
	if got := req.Anchors[1].Timestamp; got != "2:00" {
		t.Errorf("anchor 1 timestamp = %q, want %q", got, "2:00")
	}
}

func TestParseKeepsInsertionOrder(t *testing.T) {
	req := Parse("5:00 - b\n1:00 - a")
	if req.Anchors[0].Timestamp != "5:00" || req.Anchors[1].Timestamp != "1:00" {
		t.Fatalf("expected insertion order [5:00, 1:00], got %#v", req.Anchors)
	}
}

func TestParseDescriptionTrimmed(t *testing.T) {
	req := Parse("1:30   -   un sujet intéressant  ")
	if len(req.Anchors) != 1 {
		t.Fatalf("got %d anchors, want 1", len(req.Anchors))
	}
	if got := req.Anchors[0].Description; got != "un sujet intéressant" {
		t.Errorf("description = %q, want %q", got, "un sujet intéressant")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "pas d'URL",
			req:     Request{Anchors: []model.Anchor{{Timestamp: "1:30"}}},
			wantErr: ErrNoURL,
		},
		{
			name:    "pas d'anchors",
			req:     Request{URL: "https://a/b"},
			wantErr: ErrNoAnchors,
		},
		{
			name: "timestamp hors format",
			req: Request{
				URL:     "https://a/b",
				Anchors: []model.Anchor{{Timestamp: "1:3"}},
			},
			wantErr: ErrBadTimestamp,
		},
		{
			name: "requête valide avec HH:MM:SS",
			req: Request{
				URL:     "https://a/b",
				Anchors: []model.Anchor{{Timestamp: "1:02:03"}, {Timestamp: "12:30"}},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
