package yt

// YtDlpConfig représente les flags ajoutables quand on utilise yt-dlp
type YtDlpConfig struct {
	NoWarnings bool // true => ajouter --no-warnings
	NoProgress bool
	NoUpdate   bool
	NoConfig   bool // true => ajouter --no-config pour ignorer les configs utilisateur
}

// NewYtDlpConfig initialise une configuration standard de yt-dlp, showWarning vient du yaml de config
func NewYtDlpConfig(showWarning bool) *YtDlpConfig {
	return &YtDlpConfig{
		NoWarnings: !showWarning,
		NoProgress: true,
		NoUpdate:   true,
		NoConfig:   true, // ignorer les fichiers de config extérieurs (plus prévisible)
	}
}

// commonArgs retourne les flags partagés par toutes les invocations.
func (c *YtDlpConfig) commonArgs() []string {
	args := make([]string, 0, 4)
	// mettre --no-config en tête pour éviter que des configs locales modifient le comportement
	if c.NoConfig {
		args = append(args, "--no-config")
	}
	if c.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if c.NoProgress {
		args = append(args, "--no-progress")
	}
	if c.NoUpdate {
		args = append(args, "--no-update")
	}
	return args
}

// BuildMetaArgs construit les arguments pour l'extraction des métadonnées (JSON).
func (c *YtDlpConfig) BuildMetaArgs(url string) []string {
	args := c.commonArgs()
	args = append(args, "-j", "--skip-download", url)
	return args
}

// BuildAudioArgs construit les arguments pour le téléchargement audio en mp3.
// quality est la valeur passée à --audio-quality (ex: "192").
func (c *YtDlpConfig) BuildAudioArgs(url, outPath, quality string) []string {
	args := c.commonArgs()
	args = append(args,
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", quality,
		"-o", outPath,
		url,
	)
	return args
}
