package updater

import (
	"context"
	"fmt"
)

// UpdateCheck contient le résultat de la comparaison
type UpdateCheck struct {
	CurrentVersion string            // version récupérée localement
	LatestRelease  *YtDlpReleaseInfo // info complète de la release distante
	IsUpToDate     bool              // true si CurrentVersion == LatestRelease.TagName
}

// CheckYtDlpUpdate compare la version locale et la version GitHub.
func CheckYtDlpUpdate(ctx context.Context, localVer string) (*UpdateCheck, error) {
	latest, err := GetLatestYtDlpRelease(ctx)
	if err != nil {
		return nil, fmt.Errorf("impossible de récupérer la release GitHub : %w", err)
	}

	return &UpdateCheck{
		CurrentVersion: localVer,
		LatestRelease:  latest,
		IsUpToDate:     localVer == latest.TagName,
	}, nil
}

// GetUpdateLink retourne le lien de téléchargement adapté au système.
func (u UpdateCheck) GetUpdateLink(system string) string {
	return u.LatestRelease.AssetFor(system).BrowserDownloadURL
}
