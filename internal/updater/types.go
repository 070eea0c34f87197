package updater

import (
	"time"
)

// YtDlpAsset décrit un binaire téléchargeable attaché à une release yt-dlp.
type YtDlpAsset struct {
	Name               string
	BrowserDownloadURL string
	ContentType        string
}

// YtDlpReleaseInfo est la vue réduite d'une release GitHub de yt-dlp :
// les métadonnées utiles à l'affichage, plus le binaire de chacune des
// deux plateformes que QuoteScribe sait lancer.
type YtDlpReleaseInfo struct {
	TagName        string
	Name           string
	PublishedAt    time.Time
	Body           string
	HTMLURL        string
	WindowsRelease YtDlpAsset
	LinuxRelease   YtDlpAsset
}

// AssetFor retourne le binaire correspondant à goos (valeur de
// runtime.GOOS). Tout système non Windows reçoit le binaire Linux.
func (r YtDlpReleaseInfo) AssetFor(goos string) YtDlpAsset {
	if goos == "windows" {
		return r.WindowsRelease
	}
	return r.LinuxRelease
}
