package web

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

type sitemapEntry struct {
	path       string
	changeFreq string
	priority   string
}

var sitemapEntries = []sitemapEntry{
	{"", "weekly", "1.0"},
	{"/#tariffs", "weekly", "0.9"},
	{"/instructions", "monthly", "0.8"},
	{"/contacts", "monthly", "0.7"},
	{"/offerta", "yearly", "0.5"},
	{"/agreement", "yearly", "0.5"},
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// WriteSitemap writes sitemap.xml for the configured site URL.
func (s *Site) WriteSitemap(ctx context.Context, w io.Writer) error {
	base, err := s.baseURL(ctx)
	if err != nil {
		return err
	}

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	lastMod := s.now().UTC().Format("2006-01-02")
	for _, e := range sitemapEntries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + e.path,
			LastMod:    lastMod,
			ChangeFreq: e.changeFreq,
			Priority:   e.priority,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(set)
}

// WriteRobots writes robots.txt pointing crawlers at the sitemap.
func (s *Site) WriteRobots(ctx context.Context, w io.Writer) error {
	base, err := s.baseURL(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /admin\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", base)
	return err
}

func (s *Site) baseURL(ctx context.Context) (string, error) {
	info, err := s.info.Get(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(firstNonEmpty(info.SiteURL, fallbackSiteURL), "/"), nil
}

// Sitemap handles GET /sitemap.xml
func (s *Site) Sitemap(w http.ResponseWriter, r *http.Request) {
	s.serveText(w, r, "application/xml; charset=utf-8", s.WriteSitemap)
}

// Robots handles GET /robots.txt
func (s *Site) Robots(w http.ResponseWriter, r *http.Request) {
	s.serveText(w, r, "text/plain; charset=utf-8", s.WriteRobots)
}

func (s *Site) serveText(w http.ResponseWriter, r *http.Request, contentType string, write func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := write(r.Context(), &buf); err != nil {
		s.logger.Error("Failed to render SEO file", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	buf.WriteTo(w)
}
