package updater

import (
	"context"
	"fmt"

	"github.com/patrickprogramme/quotescribe/internal/fetch"
	"github.com/patrickprogramme/quotescribe/pkg/github"
)

// GetLatestYtDlpRelease récupère la dernière release yt-dlp sur GitHub
// et en extrait les deux assets qui nous intéressent.
func GetLatestYtDlpRelease(ctx context.Context) (*YtDlpReleaseInfo, error) {
	url := github.LatestReleaseURL("yt-dlp", "yt-dlp")
	raw, err := fetch.FetchJSON[github.Release](ctx, url, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("récupération de la release GitHub: %w", err)
	}

	info := &YtDlpReleaseInfo{
		TagName:     raw.TagName,
		Name:        raw.Name,
		PublishedAt: raw.PublishedAt,
		Body:        raw.Body,
		HTMLURL:     raw.HTMLURL,
	}

	if a := raw.AssetByName("yt-dlp.exe"); a != nil {
		info.WindowsRelease = YtDlpAsset{a.Name, a.BrowserDownloadURL, a.ContentType}
	}
	if a := raw.AssetByName("yt-dlp"); a != nil {
		info.LinuxRelease = YtDlpAsset{a.Name, a.BrowserDownloadURL, a.ContentType}
	}

	if info.WindowsRelease.BrowserDownloadURL == "" {
		return nil, fmt.Errorf("asset Windows introuvable")
	}
	if info.LinuxRelease.BrowserDownloadURL == "" {
		return nil, fmt.Errorf("asset Linux introuvable")
	}

	return info, nil
}
