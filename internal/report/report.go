package report

import (
	"fmt"

	"github.com/patrickprogramme/quotescribe/internal/fsutil"
	"github.com/patrickprogramme/quotescribe/pkg/model"
)

const baseYtURL = "https://www.youtube.com/watch?v="

var baseTags = []string{"youtube", "quotes"}

// ReportData contient les données "brutes" pour le rapport Markdown.
type ReportData struct {
	URL      string
	Title    string
	Uploader string
	DateStr  string // formaté YYYY-MM-DD
	RunID    string
	Tags     []string
	Quotes   []model.Quote
	Filename string
}

// NewReportData construit ReportData à partir de model.Meta et des citations extraites.
func NewReportData(m *model.Meta, quotes []model.Quote, runID string) ReportData {
	url := baseYtURL + m.ID

	var suffixe string
	dateStr := "unknown"
	if !m.UploadDate.IsZero() {
		dateStr = m.UploadDate.Format("2006-01-02")
		suffixe = dateStr
	} else {
		suffixe = m.ID
	}

	base := fsutil.SanitizeFilename(m.Title)
	filename := fmt.Sprintf("%s %s", base, suffixe)

	return ReportData{
		URL:      url,
		Title:    m.Title,
		Uploader: m.Uploader,
		DateStr:  dateStr,
		RunID:    runID,
		Tags:     baseTags,
		Quotes:   quotes,
		Filename: filename,
	}
}
