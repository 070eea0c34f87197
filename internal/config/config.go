package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/patrickprogramme/quotescribe/internal/assets"
	"github.com/patrickprogramme/quotescribe/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir string `yaml:"output_dir"`

	// Organisation
	SaveInSubdir bool `yaml:"save_in_subdir"`

	// Sorties
	SaveTranscript        bool `yaml:"save_transcript"`
	SaveReport            bool `yaml:"save_report"`
	CopyQuotesToClipboard bool `yaml:"copy_quotes_to_clipboard"`

	// Fenêtre de contexte (secondes autour de chaque timestamp)
	Context struct {
		AfterSeconds  int `yaml:"after_seconds"`
		BeforeSeconds int `yaml:"before_seconds"`
	} `yaml:"context"`

	// Découpage des audios longs avant transcription
	Chunking struct {
		ChunkLengthMinutes int     `yaml:"chunk_length_minutes"`
		OverlapSeconds     int     `yaml:"overlap_seconds"`
		MaxFileSizeMB      float64 `yaml:"max_file_size_mb"`
		MaxDurationMinutes float64 `yaml:"max_duration_minutes"`
	} `yaml:"chunking"`

	// API Gemini
	Gemini struct {
		Model          string `yaml:"model"`
		APIKeyEnv      string `yaml:"api_key_env"`
		RetryAttempts  int    `yaml:"retry_attempts"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"gemini"`

	// Audio
	Audio struct {
		Quality     string `yaml:"quality"`
		FfmpegName  string `yaml:"ffmpeg_name"`
		FfprobeName string `yaml:"ffprobe_name"`
	} `yaml:"audio"`

	// yt-dlp
	YtDlp struct {
		Name            string `yaml:"name"`
		Path            string `yaml:"path"`
		ShowWarnings    bool   `yaml:"show_warnings"`
		AutoUpdateCheck bool   `yaml:"auto_update_check"`

		// ResolvedPath contient le chemin effectif vers l'exécutable
		ResolvedPath string `yaml:"-"`
	} `yaml:"yt_dlp"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Chemins
	c.OutputDir = "."

	// Organisation
	c.SaveInSubdir = true

	// Sorties
	c.SaveTranscript = true
	c.SaveReport = true
	c.CopyQuotesToClipboard = true

	// Fenêtre de contexte
	c.Context.AfterSeconds = 90
	c.Context.BeforeSeconds = 30

	// Découpage
	c.Chunking.ChunkLengthMinutes = 30
	c.Chunking.OverlapSeconds = 30
	c.Chunking.MaxFileSizeMB = 100
	c.Chunking.MaxDurationMinutes = 50

	// Gemini
	c.Gemini.Model = "gemini-2.5-flash"
	c.Gemini.APIKeyEnv = "GEMINI_API_KEY"
	c.Gemini.RetryAttempts = 3
	c.Gemini.TimeoutSeconds = 600

	// Audio
	c.Audio.Quality = "192"
	c.Audio.FfmpegName = "ffmpeg"
	c.Audio.FfprobeName = "ffprobe"

	// yt-dlp
	c.YtDlp.Name = "yt-dlp"
	c.YtDlp.Path = ""
	c.YtDlp.ShowWarnings = false
	c.YtDlp.AutoUpdateCheck = false

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "quotescribe.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		// re-normaliser au cas où la migration a modifié des valeurs
		cfg.normalizeConfig()
	}

	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = filepath.Clean(c.OutputDir)

	// Fenêtre de contexte : des valeurs absentes ou absurdes retombent
	// sur les défauts du projet (90s après, 30s avant)
	if c.Context.AfterSeconds <= 0 {
		c.Context.AfterSeconds = 90
	}
	if c.Context.BeforeSeconds < 0 {
		c.Context.BeforeSeconds = 30
	}

	if c.Chunking.ChunkLengthMinutes <= 0 {
		c.Chunking.ChunkLengthMinutes = 30
	}
	if c.Chunking.OverlapSeconds < 0 {
		c.Chunking.OverlapSeconds = 30
	}
	if c.Chunking.MaxFileSizeMB <= 0 {
		c.Chunking.MaxFileSizeMB = 100
	}
	if c.Chunking.MaxDurationMinutes <= 0 {
		c.Chunking.MaxDurationMinutes = 50
	}

	c.Gemini.Model = strings.TrimSpace(c.Gemini.Model)
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.APIKeyEnv == "" {
		c.Gemini.APIKeyEnv = "GEMINI_API_KEY"
	}
	if c.Gemini.RetryAttempts <= 0 {
		c.Gemini.RetryAttempts = 3
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		c.Gemini.TimeoutSeconds = 600
	}

	if c.Audio.Quality == "" {
		c.Audio.Quality = "192"
	}
	if c.Audio.FfmpegName == "" {
		c.Audio.FfmpegName = "ffmpeg"
	}
	if c.Audio.FfprobeName == "" {
		c.Audio.FfprobeName = "ffprobe"
	}

	// centraliser la résolution/normalisation de yt-dlp
	c.ResolveYtDlpPath()
}

// ResolveYtDlpPath normalise le nom et résout le chemin complet vers l'exécutable.
// Appeler après avoir modifié cfg.YtDlp.Name ou cfg.YtDlp.Path.
func (c *Config) ResolveYtDlpPath() {
	if c == nil {
		return
	}

	c.YtDlp.Name = strings.TrimSpace(c.YtDlp.Name)
	if c.YtDlp.Name == "" {
		c.YtDlp.Name = "yt-dlp"
	}

	// ajoute .exe si nécessaire
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(c.YtDlp.Name), ".exe") {
		c.YtDlp.Name = c.YtDlp.Name + ".exe"
	}

	// si cfg.Path est vide -> recherche dans le PATH via le nom seul
	exeName := c.YtDlp.Name
	cfgPath := strings.TrimSpace(c.YtDlp.Path)
	if cfgPath == "" {
		c.YtDlp.ResolvedPath = ""
		return
	}
	cleanPath := filepath.Clean(cfgPath)

	// si le chemin fourni finit déjà par l'exécutable -> on l'utilise
	if filepath.Base(cleanPath) == exeName {
		c.YtDlp.ResolvedPath = cleanPath
	} else {
		// sinon on considère cfgPath comme un répertoire et on y joint l'exe
		c.YtDlp.ResolvedPath = filepath.Join(cleanPath, exeName)
	}
}
