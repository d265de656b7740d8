package domain

// SiteInfo is the single editable configuration document behind every public page.
// It is persisted as site-info.json and always read through the merge engine, so
// every field is populated even when the stored file is partial.
type SiteInfo struct {
	Contacts     Contacts    `json:"contacts"`
	AuthURL      string      `json:"authUrl"`
	RegisterURL  string      `json:"registerUrl"`
	ConnectURL   string      `json:"connectUrl"`
	SiteURL      string      `json:"siteUrl"`
	Offerta      string      `json:"offerta"`
	Agreement    string      `json:"agreement"`
	FAQ          []FAQItem   `json:"faq"`
	Instructions string      `json:"instructions"`
	TrustFacts   []TrustFact `json:"trustFacts"`

	// Logo & brand
	LogoURL string `json:"logoUrl"`
	Brand   Brand  `json:"brand"`

	SEO    SEO    `json:"seo"`
	Theme  Theme  `json:"theme"`
	Header Header `json:"header"`
	Design Design `json:"design"`
	Hero   Hero   `json:"hero"`

	// Block visibility and render order
	Blocks     Blocks    `json:"blocks"`
	BlockOrder []BlockID `json:"blockOrder"`

	FeaturesBlock FeaturesBlock `json:"featuresBlock"`
	TariffsBlock  TariffsBlock  `json:"tariffsBlock"`
	Footer        Footer        `json:"footer"`
}

type Contacts struct {
	Email    string `json:"email"`
	Telegram string `json:"telegram"`
}

type Brand struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
}

type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	OGImage     string `json:"ogImage"`
}

// Theme holds CSS color tokens. Values are emitted verbatim into a style block.
type Theme struct {
	PrimaryColor string `json:"primaryColor"`
	AccentColor  string `json:"accentColor"`
	BgColor      string `json:"bgColor"`
	TextColor    string `json:"textColor"`
	CardBg       string `json:"cardBg"`
	HeadingColor string `json:"headingColor"`
	HeaderBg     string `json:"headerBg"`
}

type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Header struct {
	ShowLogo     bool              `json:"showLogo"`
	ShowBrand    bool              `json:"showBrand"`
	ElementOrder []HeaderElementID `json:"elementOrder"`
	NavItems     []NavItem         `json:"navItems"`
}

// Design carries free-form utility class strings (sizes, spacing, radii).
type Design struct {
	HeroTitleSize    string          `json:"heroTitleSize"`
	HeroSubtitleSize string          `json:"heroSubtitleSize"`
	SectionPadding   string          `json:"sectionPadding"`
	CardRadius       string          `json:"cardRadius"`
	ButtonRadius     string          `json:"buttonRadius"`
	HeroElementOrder []HeroElementID `json:"heroElementOrder"`
}

type Hero struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText"`
}

// Blocks is the per-block visibility map. A block missing from the stored
// document keeps its default (visible).
type Blocks struct {
	Hero       bool `json:"hero"`
	TrustFacts bool `json:"trustFacts"`
	Features   bool `json:"features"`
	Tariffs    bool `json:"tariffs"`
	FAQ        bool `json:"faq"`
}

// Visible reports the flag for id. Unknown ids are never visible.
func (b Blocks) Visible(id BlockID) bool {
	switch id {
	case BlockHero:
		return b.Hero
	case BlockTrustFacts:
		return b.TrustFacts
	case BlockFeatures:
		return b.Features
	case BlockTariffs:
		return b.Tariffs
	case BlockFAQ:
		return b.FAQ
	}
	return false
}

type FeatureItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FeaturesBlock struct {
	Title string        `json:"title"`
	Items []FeatureItem `json:"items"`
}

type TariffsBlock struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type Footer struct {
	Copyright string `json:"copyright"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type TrustFact struct {
	Title string `json:"title"`
	Value string `json:"value"`
}
