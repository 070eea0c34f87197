package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/patrickprogramme/quotescribe/pkg/model"
)

func TestJoinQuotes(t *testing.T) {
	quotes := []model.Quote{
		{Text: "[01:30]\nJean: \"Non.\""},
		{Text: "[12:05]\nMarie: \"Oui.\""},
	}
	want := "[01:30]\nJean: \"Non.\"\n\n[12:05]\nMarie: \"Oui.\""
	if got := JoinQuotes(quotes); got != want {
		t.Errorf("JoinQuotes() = %q, want %q", got, want)
	}

	if got := JoinQuotes(nil); got != "" {
		t.Errorf("JoinQuotes(nil) = %q, want vide", got)
	}
}

func TestSaveQuotes(t *testing.T) {
	dir := t.TempDir()
	quotes := []model.Quote{{Text: "[01:30]\nJean: \"Non.\""}}

	path, err := SaveQuotes(quotes, dir, "ma_video")
	if err != nil {
		t.Fatalf("SaveQuotes() error = %v", err)
	}
	if want := filepath.Join(dir, "ma_video_quotes.txt"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("lecture du fichier : %v", err)
	}
	if string(data) != quotes[0].Text {
		t.Errorf("contenu = %q, want %q", data, quotes[0].Text)
	}
}

func TestSaveQuotesEmpty(t *testing.T) {
	if _, err := SaveQuotes(nil, t.TempDir(), "x"); err == nil {
		t.Fatal("SaveQuotes(nil) devrait échouer")
	}
}
