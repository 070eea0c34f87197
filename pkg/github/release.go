// Package github expose une vue minimale de l'API releases de GitHub,
// suffisante pour vérifier la dernière version d'un outil publié là-bas.
package github

import (
	"fmt"
	"time"
)

// Asset représente un fichier attaché à une release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	ContentType        string `json:"content_type"`
}

// Release contient les métadonnées d'une release GitHub.
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	Body        string    `json:"body"`
	HTMLURL     string    `json:"html_url"`
	Assets      []Asset   `json:"assets"`
}

// LatestReleaseURL construit l'URL de l'API pour la dernière release d'un dépôt.
func LatestReleaseURL(owner, repo string) string {
	return fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)
}

// AssetByName retourne l'asset portant exactement ce nom, ou nil.
func (r *Release) AssetByName(name string) *Asset {
	for i := range r.Assets {
		if r.Assets[i].Name == name {
			return &r.Assets[i]
		}
	}
	return nil
}
