package web

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/layout"
)

const (
	fallbackSiteURL  = "https://afina.vip"
	fallbackSiteName = "AFINA VPN"
	fallbackLogo     = "/logo.png"
)

type layoutView struct {
	Meta     Meta
	ThemeCSS template.CSS
	Header   headerView
	Footer   footerView
	Design   domain.Design
	Body     any
	Admin    bool

	WebsiteLD      map[string]any
	OrganizationLD map[string]any
}

// Meta is everything that ends up in <head>.
type Meta struct {
	Title       string
	Description string
	Keywords    string
	SiteName    string
	SiteURL     string
	Canonical   string
	OGImage     string
	Icon        string
}

type headerView struct {
	Left  template.HTML
	Right template.HTML
	Nav   []navLink
	Auth  authLinks
}

type navLink struct {
	Label    string
	Href     string
	External bool
}

type authLinks struct {
	AuthURL     string
	RegisterURL string
}

type footerView struct {
	BrandName string
	Tagline   string
	LogoURL   string
	Copyright string
}

type contactsView struct {
	Email       string
	Telegram    string
	TelegramURL string
	LogoURL     string
	BrandName   string
}

type documentView struct {
	Heading    string
	Subheading string
	Text       string
}

type adminView struct {
	Currencies []string
	Periods    []string
}

func newAdminView() adminView {
	return adminView{Currencies: sortedCurrencies(), Periods: domain.Periods}
}

func (s *Site) meta(p page, info domain.SiteInfo) Meta {
	siteURL := firstNonEmpty(info.SiteURL, fallbackSiteURL)
	siteName := strings.TrimSpace(firstNonEmpty(info.Brand.Name, fallbackSiteName))
	description := firstNonEmpty(info.SEO.Description, "VPN-сервис на протоколе VLESS.")

	title := firstNonEmpty(info.SEO.Title, info.Brand.Name, fallbackSiteName)
	canonical := siteURL
	if p.title != "" {
		title = fmt.Sprintf("%s | %s", p.title, siteName)
		canonical = strings.TrimRight(siteURL, "/") + p.path
	}
	if p.description != "" && p.public {
		description = p.description
	}

	return Meta{
		Title:       title,
		Description: description,
		Keywords:    info.SEO.Keywords,
		SiteName:    siteName,
		SiteURL:     siteURL,
		Canonical:   canonical,
		OGImage:     AbsoluteURL(siteURL, firstNonEmpty(info.SEO.OGImage, info.LogoURL, fallbackLogo)),
		Icon:        AbsoluteURL(siteURL, firstNonEmpty(info.LogoURL, fallbackLogo)),
	}
}

// structuredData returns the WebSite and Organization JSON-LD objects.
func structuredData(m Meta) (map[string]any, map[string]any) {
	website := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        m.SiteName,
		"description": m.Description,
		"url":         m.SiteURL,
	}
	org := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Organization",
		"name":        m.SiteName,
		"url":         m.SiteURL,
		"logo":        m.OGImage,
		"description": m.Description,
	}
	return website, org
}

// themeCSS emits the theme colors as custom properties.
func themeCSS(t domain.Theme) template.CSS {
	var b strings.Builder
	fmt.Fprintf(&b, ":root{--theme-primary:%s;--theme-accent:%s;--theme-bg:%s;--theme-text:%s;--theme-card:%s;--theme-heading:%s;--theme-header-bg:%s}",
		CSSValue(t.PrimaryColor), CSSValue(t.AccentColor), CSSValue(t.BgColor), CSSValue(t.TextColor),
		CSSValue(t.CardBg), CSSValue(t.HeadingColor), CSSValue(t.HeaderBg))
	fmt.Fprintf(&b, "body{background:linear-gradient(180deg,%s 0%%,#0c1222 50%%,#0a0f1a 100%%);color:%s}",
		CSSValue(t.BgColor), CSSValue(t.TextColor))
	return template.CSS(b.String())
}

// renderHeader splits the header element order into the brand side (logo,
// brand) and the action side (nav, auth), keeping the configured order within
// each side.
func (s *Site) renderHeader(t *template.Template, info domain.SiteInfo) (headerView, error) {
	h := info.Header
	nav := make([]navLink, 0, len(h.NavItems))
	for _, item := range h.NavItems {
		nav = append(nav, navLink{Label: item.Label, Href: item.Href, External: IsExternal(item.Href)})
	}
	auth := authLinks{
		AuthURL:     firstNonEmpty(info.AuthURL, "#"),
		RegisterURL: firstNonEmpty(info.RegisterURL, "#"),
	}

	table := layout.Table[domain.HeaderElementID, fragment]{
		domain.HeaderLogo: layout.When(h.ShowLogo, func() fragment {
			return fragment{"header-logo", info}
		}),
		domain.HeaderBrand: layout.When(h.ShowBrand, func() fragment {
			return fragment{"header-brand", info.Brand}
		}),
		domain.HeaderNav:  layout.Show(fragment{"header-nav", nav}),
		domain.HeaderAuth: layout.Show(fragment{"header-auth", auth}),
	}

	left, err := renderFragments(t, layout.Resolve(layout.Filter(h.ElementOrder, domain.HeaderLogo, domain.HeaderBrand), table))
	if err != nil {
		return headerView{}, err
	}
	right, err := renderFragments(t, layout.Resolve(layout.Filter(h.ElementOrder, domain.HeaderNav, domain.HeaderAuth), table))
	if err != nil {
		return headerView{}, err
	}
	return headerView{Left: left, Right: right, Nav: nav, Auth: auth}, nil
}

func (s *Site) footer(info domain.SiteInfo) footerView {
	copyright := info.Footer.Copyright
	if copyright == "" {
		copyright = fallbackSiteName
	}
	return footerView{
		BrandName: info.Brand.Name,
		Tagline:   info.Brand.Tagline,
		LogoURL:   info.LogoURL,
		Copyright: fmt.Sprintf("© %d %s", s.now().Year(), copyright),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
