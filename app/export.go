package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/xhd2015/shabda/component/gender"
	"github.com/xhd2015/shabda/component/text"
	"github.com/xhd2015/shabda/models"
)

// ExportData is the JSON form of exported cards
type ExportData struct {
	Title string              `json:"title,omitempty"`
	Words []*models.WordEntry `json:"words"`
}

// ExportCards writes words to filename as JSON or HTML, chosen by the
// file extension. An existing file is never overwritten.
func ExportCards(filename string, title string, words []*models.WordEntry) error {
	if strings.TrimSpace(filename) == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("file %s already exists", filename)
	}

	var content []byte
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		data, err := json.MarshalIndent(ExportData{Title: title, Words: words}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal export data: %w", err)
		}
		content = data
	case ".html", ".htm":
		data, err := RenderHTML(title, words)
		if err != nil {
			return err
		}
		content = data
	default:
		return fmt.Errorf("unsupported export format %q, use .json or .html", ext)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

type htmlCard struct {
	Word           *models.WordEntry
	GenderVariant  string
	Gender         string
	EnglishMeaning string
	HindiMeaning   string
}

type htmlPage struct {
	Title           string
	Cards           []htmlCard
	EnglishLabel    string
	HindiLabel      string
	AllEnglishLabel string
	AllHindiLabel   string
}

var cardsTemplate = template.Must(template.New("cards").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="word-cards">
{{- range .Cards}}
<div class="word-card">
  <div class="word-header">
    <div class="sanskrit-word">{{.Word.Sanskrit}}</div>
    <span class="gender-badge gender-{{.GenderVariant}}">{{.Gender}}</span>
  </div>
  <div class="meaning-section">
    <div class="meaning-label">{{$.EnglishLabel}}</div>
    <div class="meaning-text">{{.EnglishMeaning}}</div>
  </div>
  <div class="meaning-section">
    <div class="meaning-label">{{$.HindiLabel}}</div>
    <div class="meaning-text hindi-text">{{.HindiMeaning}}</div>
  </div>
  {{- if gt (len .Word.AllEnglishMeanings) 1}}
  <strong>{{$.AllEnglishLabel}}</strong>
  <ul>{{range .Word.AllEnglishMeanings}}<li>{{.}}</li>{{end}}</ul>
  {{- end}}
  {{- if gt (len .Word.AllHindiMeanings) 1}}
  <strong>{{$.AllHindiLabel}}</strong>
  <ul class="hindi-text">{{range .Word.AllHindiMeanings}}<li>{{.}}</li>{{end}}</ul>
  {{- end}}
</div>
{{- end}}
</div>
</body>
</html>
`))

// RenderHTML renders words as a static page. Word-derived text is
// escaped by html/template.
func RenderHTML(title string, words []*models.WordEntry) ([]byte, error) {
	if title == "" {
		title = "shabda"
	}
	page := htmlPage{
		Title:           title,
		Cards:           make([]htmlCard, 0, len(words)),
		EnglishLabel:    EnglishLabel,
		HindiLabel:      HindiLabel,
		AllEnglishLabel: AllEnglishLabel,
		AllHindiLabel:   AllHindiLabel,
	}
	for _, word := range words {
		page.Cards = append(page.Cards, htmlCard{
			Word:           word,
			GenderVariant:  gender.Variant(word.Gender),
			Gender:         gender.Label(word.Gender),
			EnglishMeaning: text.Truncate(word.EnglishMeaning, text.MaxMeaningLength),
			HindiMeaning:   text.Truncate(word.HindiMeaning, text.MaxMeaningLength),
		})
	}

	var buf bytes.Buffer
	if err := cardsTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("failed to render html: %w", err)
	}
	return buf.Bytes(), nil
}
