package model

import (
	"fmt"
	"time"
)

// Meta regroupe les métadonnées extraites d'une vidéo YouTube, dans la
// mesure où elles servent au pipeline : le titre nomme les fichiers de
// sortie, la description alimente le prompt d'extraction.
type Meta struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Uploader    string        `json:"uploader,omitempty"`
	UploadDate  time.Time     `json:"upload_date,omitempty"`
	Description string        `json:"description,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
}

func (m Meta) String() string {
	return fmt.Sprintf("Meta[ID=%s, Title=%q, Uploader=%s, Duration=%s]",
		m.ID, m.Title, m.Uploader, m.Duration)
}

// Pretty retourne une fiche multi-lignes simple pour l'affichage terminal.
func (m Meta) Pretty() string {
	dateStr := "<unknown>"
	if !m.UploadDate.IsZero() {
		dateStr = m.UploadDate.Format("2006-01-02")
	}

	durStr := "<unknown>"
	if m.Duration > 0 {
		durStr = Seconds(int64(m.Duration / time.Second)).HHMMSS()
	}

	return fmt.Sprintf(
		"Meta:\n"+
			"  ID       : %s\n"+
			"  Title    : %q\n"+
			"  Uploader : %s\n"+
			"  Date     : %s\n"+
			"  Duration : %s\n",
		m.ID,
		m.Title,
		m.Uploader,
		dateStr,
		durStr,
	)
}
