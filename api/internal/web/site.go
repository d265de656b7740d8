// Package web renders the public pages and the admin panel from the
// configuration document, either per request or as a static export.
package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageID names a rendered page.
type PageID string

const (
	PageHome         PageID = "home"
	PageInstructions PageID = "instructions"
	PageContacts     PageID = "contacts"
	PageOfferta      PageID = "offerta"
	PageAgreement    PageID = "agreement"
	PageAdmin        PageID = "admin"
)

// page describes one route: where it lives, how it is titled and how its body
// is built from the configuration.
type page struct {
	id          PageID
	path        string
	file        string
	title       string // empty for the home page, which uses the SEO title
	description string
	public      bool
	body        func(s *Site, ctx context.Context, t *template.Template, info domain.SiteInfo) (any, error)
}

var pages = []page{
	{id: PageHome, path: "/", file: "home.html", public: true, body: (*Site).homeBody},
	{id: PageInstructions, path: "/instructions", file: "instructions.html", public: true,
		title: "Как подключиться", description: "Пошаговая инструкция по подключению.",
		body: func(_ *Site, _ context.Context, _ *template.Template, info domain.SiteInfo) (any, error) {
			return FormatInstructions(info.Instructions), nil
		}},
	{id: PageContacts, path: "/contacts", file: "contacts.html", public: true,
		title: "Контакты", description: "Свяжитесь с нами.",
		body: func(_ *Site, _ context.Context, _ *template.Template, info domain.SiteInfo) (any, error) {
			return contactsView{
				Email:       info.Contacts.Email,
				Telegram:    info.Contacts.Telegram,
				TelegramURL: TelegramURL(info.Contacts.Telegram),
				LogoURL:     info.LogoURL,
				BrandName:   info.Brand.Name,
			}, nil
		}},
	{id: PageOfferta, path: "/offerta", file: "document.html", public: true,
		title: "Публичная оферта", description: "Публичная оферта.",
		body: func(_ *Site, _ context.Context, _ *template.Template, info domain.SiteInfo) (any, error) {
			return documentView{Heading: "Публичная оферта", Text: info.Offerta}, nil
		}},
	{id: PageAgreement, path: "/agreement", file: "document.html", public: true,
		title: "Соглашение", description: "Соглашение о конфиденциальности и использовании сервиса.",
		body: func(_ *Site, _ context.Context, _ *template.Template, info domain.SiteInfo) (any, error) {
			return documentView{Heading: "Соглашение", Subheading: "О конфиденциальности и использовании сервиса", Text: info.Agreement}, nil
		}},
	{id: PageAdmin, path: "/admin", file: "admin.html", title: "Админ-панель",
		body: func(_ *Site, _ context.Context, _ *template.Template, _ domain.SiteInfo) (any, error) {
			return newAdminView(), nil
		}},
}

// Site renders pages. It keeps parsed templates only; configuration and
// tariffs are read on every render.
type Site struct {
	info    domain.SiteInfoRepository
	tariffs domain.TariffRepository
	logger  *slog.Logger
	now     func() time.Time

	templates map[PageID]*template.Template
}

func New(info domain.SiteInfoRepository, tariffs domain.TariffRepository, logger *slog.Logger) (*Site, error) {
	base, err := template.New("base").ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout templates: %w", err)
	}

	s := &Site{
		info:      info,
		tariffs:   tariffs,
		logger:    logger,
		now:       time.Now,
		templates: make(map[PageID]*template.Template, len(pages)),
	}
	for _, p := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, "templates/"+p.file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", p.file, err)
		}
		s.templates[p.id] = t
	}
	return s, nil
}

// WithClock overrides the time source used for the footer year and sitemap.
func (s *Site) WithClock(now func() time.Time) *Site {
	s.now = now
	return s
}

// Render writes the full HTML document for id.
func (s *Site) Render(ctx context.Context, id PageID, w io.Writer) error {
	p, ok := lookupPage(id)
	if !ok {
		return fmt.Errorf("unknown page %q", id)
	}
	t := s.templates[id]

	info, err := s.info.Get(ctx)
	if err != nil {
		return err
	}
	info.LogoURL = firstNonEmpty(info.LogoURL, fallbackLogo)

	header, err := s.renderHeader(t, info)
	if err != nil {
		return err
	}
	body, err := p.body(s, ctx, t, info)
	if err != nil {
		return err
	}

	data := layoutView{
		Meta:     s.meta(p, info),
		ThemeCSS: themeCSS(info.Theme),
		Header:   header,
		Footer:   s.footer(info),
		Design:   info.Design,
		Body:     body,
		Admin:    p.id == PageAdmin,
	}
	data.WebsiteLD, data.OrganizationLD = structuredData(data.Meta)

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", id, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// Page serves a rendered page. Rendering happens into a buffer, so a failure
// still produces a clean 500.
func (s *Site) Page(id PageID) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := s.Render(r.Context(), id, &buf); err != nil {
			s.logger.Error("Failed to render page", slog.String("page", string(id)), slog.String("error", err.Error()))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if id == PageAdmin {
			w.Header().Set("Cache-Control", "no-store")
			w.Header().Set("X-Robots-Tag", "noindex")
		}
		buf.WriteTo(w)
	}
}

// Static serves the embedded stylesheet and scripts.
func (s *Site) Static() http.Handler {
	sub, _ := fs.Sub(staticFS, "static")
	return http.FileServer(http.FS(sub))
}

// PublicPages lists the paths of every page included in a static export.
func PublicPages() map[PageID]string {
	out := make(map[PageID]string)
	for _, p := range pages {
		if p.public {
			out[p.id] = p.path
		}
	}
	return out
}

func lookupPage(id PageID) (page, bool) {
	for _, p := range pages {
		if p.id == id {
			return p, true
		}
	}
	return page{}, false
}

// fragment is a named sub-template plus its data. Layout tables resolve to
// fragments, which are then executed in order.
type fragment struct {
	name string
	data any
}

func renderFragments(t *template.Template, frags []fragment) (template.HTML, error) {
	var buf bytes.Buffer
	for _, f := range frags {
		if err := t.ExecuteTemplate(&buf, f.name, f.data); err != nil {
			return "", fmt.Errorf("failed to render %s: %w", f.name, err)
		}
	}
	return template.HTML(buf.String()), nil
}

func sortedCurrencies() []string {
	codes := make([]string, 0, len(domain.CurrencySymbols))
	for code := range domain.CurrencySymbols {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	// RUB first: it is the default for new tariffs.
	for i, c := range codes {
		if c == domain.DefaultCurrency {
			copy(codes[1:i+1], codes[:i])
			codes[0] = c
			break
		}
	}
	return codes
}
