package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotescribe.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	// fichier minimal : tous les champs absents retombent sur les défauts
	path := writeConfig(t, "config_version: 1\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Context.AfterSeconds != 90 || cfg.Context.BeforeSeconds != 30 {
		t.Errorf("contexte = %d/%d, want 90/30", cfg.Context.AfterSeconds, cfg.Context.BeforeSeconds)
	}
	if cfg.Chunking.ChunkLengthMinutes != 30 || cfg.Chunking.OverlapSeconds != 30 {
		t.Errorf("chunking = %d/%d, want 30/30", cfg.Chunking.ChunkLengthMinutes, cfg.Chunking.OverlapSeconds)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("model = %q", cfg.Gemini.Model)
	}
	if cfg.Audio.Quality != "192" {
		t.Errorf("audio quality = %q, want 192", cfg.Audio.Quality)
	}
	if cfg.YtDlp.Name != "yt-dlp" && !strings.HasPrefix(cfg.YtDlp.Name, "yt-dlp") {
		t.Errorf("yt-dlp name = %q", cfg.YtDlp.Name)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
output_dir: "out"
context:
  after_seconds: 120
  before_seconds: 10
gemini:
  model: "gemini-2.5-pro"
config_version: 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want out", cfg.OutputDir)
	}
	if cfg.Context.AfterSeconds != 120 || cfg.Context.BeforeSeconds != 10 {
		t.Errorf("contexte = %d/%d, want 120/10", cfg.Context.AfterSeconds, cfg.Context.BeforeSeconds)
	}
	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("model = %q", cfg.Gemini.Model)
	}
}

// Des valeurs absurdes sont ramenées aux défauts par la normalisation.
func TestLoadNormalizesBadValues(t *testing.T) {
	path := writeConfig(t, `
context:
  after_seconds: -5
  before_seconds: -1
chunking:
  chunk_length_minutes: 0
config_version: 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Context.AfterSeconds != 90 || cfg.Context.BeforeSeconds != 30 {
		t.Errorf("contexte = %d/%d, want 90/30", cfg.Context.AfterSeconds, cfg.Context.BeforeSeconds)
	}
	if cfg.Chunking.ChunkLengthMinutes != 30 {
		t.Errorf("chunk_length_minutes = %d, want 30", cfg.Chunking.ChunkLengthMinutes)
	}
}

// Un fichier d'une version antérieure est migré et sauvegardé (.bak).
func TestLoadMigratesOldVersion(t *testing.T) {
	path := writeConfig(t, "config_version: 0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Errorf("ConfigVersion = %d, want %d", cfg.ConfigVersion, CurrentConfigVersion)
	}

	// une sauvegarde doit exister à côté du fichier migré
	matches, _ := filepath.Glob(path + ".bak.*")
	if len(matches) == 0 {
		t.Error("aucune sauvegarde .bak créée lors de la migration")
	}
}

func TestLoadCreatesDefaultFromEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotescribe.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("le fichier de configuration par défaut n'a pas été créé : %v", err)
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Errorf("ConfigVersion = %d, want %d", cfg.ConfigVersion, CurrentConfigVersion)
	}
}

func TestResolveYtDlpPath(t *testing.T) {
	c := defaultConfig()
	c.YtDlp.Path = ""
	c.ResolveYtDlpPath()
	if c.YtDlp.ResolvedPath != "" {
		t.Errorf("sans Path, ResolvedPath = %q, want vide (recherche PATH)", c.YtDlp.ResolvedPath)
	}

	c.YtDlp.Path = filepath.Join("tools", "bin")
	c.ResolveYtDlpPath()
	if got, want := c.YtDlp.ResolvedPath, filepath.Join("tools", "bin", c.YtDlp.Name); got != want {
		t.Errorf("ResolvedPath = %q, want %q", got, want)
	}
}
