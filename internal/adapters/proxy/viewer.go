package proxy

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"sync"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
	"github.com/kamal-hamza/gallery-cli/internal/core/services"
	"github.com/kamal-hamza/gallery-cli/pkg/richtext"
)

//go:embed web/index.html.tmpl web/static
var webFS embed.FS

var (
	viewerOnce sync.Once
	viewerTmpl *template.Template
	viewerErr  error
)

// viewerPage is everything index.html.tmpl renders
type viewerPage struct {
	Filter   domain.Filter
	Programs []string
	Tags     []string
	Rows     []viewerRow
	Total    int
	Error    string
}

type viewerRow struct {
	ImageName   string
	ImageURL    string
	DownloadURL string
	FileName    string
	ContentName string
	Message     template.HTML // sanitized
	TagLine     string
}

func parseTemplates() error {
	viewerOnce.Do(func() {
		viewerTmpl, viewerErr = template.New("index.html.tmpl").
			Funcs(template.FuncMap{
				"programURL": programURL,
				"resetURL":   resetURL,
			}).
			ParseFS(webFS, "web/index.html.tmpl")
		if viewerErr != nil {
			viewerErr = fmt.Errorf("failed to parse viewer template: %w", viewerErr)
		}
	})
	return viewerErr
}

func staticFS() fs.FS {
	sub, err := fs.Sub(webFS, "web/static")
	if err != nil {
		panic(err)
	}
	return sub
}

// handleViewer renders the gallery table for the program and tag in the query.
// A failed load still renders the page, with an empty table and a banner.
func (s *Server) handleViewer(w http.ResponseWriter, r *http.Request) {
	b := s.current()
	logger := loggerFrom(r.Context())

	query := r.URL.Query()
	filter := domain.Filter{
		Program: query.Get("program"),
		Tag:     query.Get("tag"),
	}.Normalize()

	page := viewerPage{Filter: filter}

	resp, err := b.Gallery.Load(r.Context(), services.LoadRequest{})
	if err != nil {
		logger.Error("failed to load gallery", "error", err)
		page.Error = err.Error()
	} else {
		page.Programs = resp.Programs
		page.Tags = resp.Tags
		page.Total = resp.Total
		for _, asset := range b.Gallery.Filter(resp.Assets, filter) {
			page.Rows = append(page.Rows, newViewerRow(asset))
		}
	}

	var buf bytes.Buffer
	if err := viewerTmpl.Execute(&buf, page); err != nil {
		logger.Error("failed to render viewer", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func newViewerRow(a domain.Asset) viewerRow {
	return viewerRow{
		ImageName:   a.ImageName,
		ImageURL:    a.ImageURL,
		DownloadURL: a.DownloadURL(),
		FileName:    a.FileName(),
		ContentName: a.ContentName,
		Message:     template.HTML(richtext.Sanitize(a.Content)),
		TagLine:     a.TagLine(),
	}
}

// programURL selects a program; the tag is dropped so it resets to all
func programURL(program string) string {
	if program == "" || program == domain.All {
		return "/"
	}
	return "/?" + url.Values{"program": {program}}.Encode()
}

// resetURL keeps the program and clears the tag
func resetURL(f domain.Filter) string {
	return programURL(f.Program)
}
