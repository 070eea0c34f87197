package yt

import (
	"encoding/json"
	"fmt"
)

// ytdlpOutput représente la sortie JSON brute retournée par yt-dlp pour une vidéo.
// Chaque champ correspond à un élément présent dans le JSON de yt-dlp.
type ytdlpOutput struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Uploader    string  `json:"uploader"`
	UploadDate  string  `json:"upload_date"`
	Timestamp   int64   `json:"timestamp"` // en Unix epoch
	Description string  `json:"description"`
	Duration    float64 `json:"duration"` // en secondes
}

// ExtractedRaw contient le JSON raw, une liste de lignes d'avertissements
type ExtractedRaw struct {
	JSON     []byte
	Warnings []string
}

// PrettyJSON retourne un json indenté
func (r *ExtractedRaw) PrettyJSON() ([]byte, error) {
	var obj any
	if err := json.Unmarshal(r.JSON, &obj); err != nil {
		return nil, err
	}
	return json.MarshalIndent(obj, "", "  ")
}

// PrintWarnings affiche les avertissements de yt-dlp
func (r *ExtractedRaw) PrintWarnings() {
	if len(r.Warnings) == 0 {
		return
	}
	fmt.Println("⚠️  Avertissements yt-dlp :")
	for _, w := range r.Warnings {
		fmt.Printf("  - %s\n", w)
	}
}

// YtDlp représente la commande yt-dlp à exécuter (nom de binaire ou chemin) + flags.
type YtDlp struct {
	Name   string
	Path   string // chemin vers l'exe
	Config YtDlpConfig
	Notify func(string) // observateur des messages de progression, peut rester nil
}

// notify transmet un message de progression à l'observateur, s'il y en a un.
func (y *YtDlp) notify(msg string) {
	if y.Notify != nil {
		y.Notify(msg)
	}
}

func (y YtDlp) ShowPath() {
	fmt.Println("yt-dlp path:", y.Path)
}
