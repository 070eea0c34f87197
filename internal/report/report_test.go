package report

import (
	"strings"
	"testing"
	"time"

	"github.com/patrickprogramme/quotescribe/internal/assets"
	"github.com/patrickprogramme/quotescribe/pkg/model"
)

func sampleMeta() *model.Meta {
	return &model.Meta{
		ID:         "abc123",
		Title:      "Grand entretien",
		Uploader:   "La Chaîne",
		UploadDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewReportData(t *testing.T) {
	quotes := []model.Quote{
		{Anchor: model.Anchor{Timestamp: "1:30", Description: "le budget"}, Text: "Jean Dupont: \"Nous refusons.\""},
	}
	data := NewReportData(sampleMeta(), quotes, "run-42")

	if want := "https://www.youtube.com/watch?v=abc123"; data.URL != want {
		t.Errorf("URL = %q, want %q", data.URL, want)
	}
	if want := "2025-03-14"; data.DateStr != want {
		t.Errorf("DateStr = %q, want %q", data.DateStr, want)
	}
	if want := "Grand_entretien 2025-03-14"; data.Filename != want {
		t.Errorf("Filename = %q, want %q", data.Filename, want)
	}
	if len(data.Quotes) != 1 {
		t.Fatalf("Quotes = %d, want 1", len(data.Quotes))
	}
}

// Sans date d'upload, le suffixe du nom de fichier retombe sur l'ID vidéo.
func TestNewReportDataNoDate(t *testing.T) {
	m := sampleMeta()
	m.UploadDate = time.Time{}
	data := NewReportData(m, nil, "run-42")

	if data.DateStr != "unknown" {
		t.Errorf("DateStr = %q, want %q", data.DateStr, "unknown")
	}
	if !strings.HasSuffix(data.Filename, " abc123") {
		t.Errorf("Filename = %q, devrait finir par l'ID vidéo", data.Filename)
	}
}

func TestRenderReport(t *testing.T) {
	r, err := NewRendererFromFS(assets.Embedded, []string{"templates/quotes_report.md.tmpl"})
	if err != nil {
		t.Fatalf("NewRendererFromFS() error = %v", err)
	}

	quotes := []model.Quote{
		{Anchor: model.Anchor{Timestamp: "1:30", Description: "le budget"}, Text: "Jean Dupont: \"Nous refusons.\"\nMarie Martin: \"Pourquoi ?\""},
		{Anchor: model.Anchor{Timestamp: "12:05"}, Text: "Jean Dupont: \"C'est terminé.\""},
	}
	data := NewReportData(sampleMeta(), quotes, "run-42")

	out, err := r.Render("quotes_report.md.tmpl", data)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := string(out)

	for _, want := range []string{
		"source: https://www.youtube.com/watch?v=abc123",
		`title: "Grand entretien"`,
		"run: run-42",
		`  - "youtube"`,
		"### 1:30 — le budget",
		"### 12:05",
		"> Jean Dupont: \"Nous refusons.\"\n> Marie Martin: \"Pourquoi ?\"",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("le rendu devrait contenir %q\n---\n%s", want, got)
		}
	}
}

func TestQuoteBlockPure(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"une ligne", "> une ligne"},
		{"a\nb\n", "> a\n> b"},
	}
	for _, tc := range tests {
		if got := quoteBlockPure(tc.in); got != tc.want {
			t.Errorf("quoteBlockPure(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
