package web

import (
	"context"
	"html/template"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/layout"
)

type homeView struct {
	Blocks template.HTML
}

type heroView struct {
	Elements template.HTML
	Design   domain.Design
}

type heroTitle struct {
	Title   string
	Tagline string
	Design  domain.Design
}

type heroSubtitle struct {
	Text   string
	Design domain.Design
}

type heroButton struct {
	Href   string
	Text   string
	Design domain.Design
}

type tariffsView struct {
	Block   domain.TariffsBlock
	Tariffs []tariffCard
	Design  domain.Design
}

type tariffCard struct {
	domain.Tariff
	PriceText  string
	ButtonHref string
}

type sectionView[T any] struct {
	Title  string
	Items  []T
	Design domain.Design
}

func (s *Site) homeBody(ctx context.Context, t *template.Template, info domain.SiteInfo) (any, error) {
	tariffs, err := s.tariffs.List(ctx)
	if err != nil {
		return nil, err
	}

	hero, err := s.renderHero(t, info)
	if err != nil {
		return nil, err
	}

	visible := info.Blocks.Visible
	d := info.Design

	table := layout.Table[domain.BlockID, fragment]{
		domain.BlockHero: layout.When(visible(domain.BlockHero), func() fragment {
			return fragment{"block-hero", heroView{Elements: hero, Design: d}}
		}),
		domain.BlockTrustFacts: layout.When(visible(domain.BlockTrustFacts) && len(info.TrustFacts) > 0, func() fragment {
			return fragment{"block-trust", sectionView[domain.TrustFact]{Items: info.TrustFacts, Design: d}}
		}),
		domain.BlockFeatures: layout.When(visible(domain.BlockFeatures), func() fragment {
			return fragment{"block-features", sectionView[domain.FeatureItem]{Title: info.FeaturesBlock.Title, Items: info.FeaturesBlock.Items, Design: d}}
		}),
		domain.BlockTariffs: layout.When(visible(domain.BlockTariffs), func() fragment {
			return fragment{"block-tariffs", tariffsView{Block: info.TariffsBlock, Tariffs: tariffCards(tariffs), Design: d}}
		}),
		domain.BlockFAQ: layout.When(visible(domain.BlockFAQ) && len(info.FAQ) > 0, func() fragment {
			return fragment{"block-faq", sectionView[domain.FAQItem]{Title: "Частые вопросы", Items: info.FAQ, Design: d}}
		}),
	}

	blocks, err := renderFragments(t, layout.Resolve(info.BlockOrder, table))
	if err != nil {
		return nil, err
	}
	return homeView{Blocks: blocks}, nil
}

func (s *Site) renderHero(t *template.Template, info domain.SiteInfo) (template.HTML, error) {
	d := info.Design
	table := layout.Table[domain.HeroElementID, fragment]{
		domain.HeroLogo: layout.Show(fragment{"hero-logo", info}),
		domain.HeroTitle: layout.Show(fragment{"hero-title", heroTitle{
			Title:   firstNonEmpty(info.Hero.Title, info.Brand.Name),
			Tagline: info.Brand.Tagline,
			Design:  d,
		}}),
		domain.HeroSubtitle: layout.When(info.Hero.Subtitle != "", func() fragment {
			return fragment{"hero-subtitle", heroSubtitle{Text: info.Hero.Subtitle, Design: d}}
		}),
		domain.HeroButton: layout.Show(fragment{"hero-button", heroButton{
			Href:   firstNonEmpty(info.ConnectURL, "#tariffs"),
			Text:   firstNonEmpty(info.Hero.ButtonText, "Подключиться"),
			Design: d,
		}}),
	}
	return renderFragments(t, layout.Resolve(d.HeroElementOrder, table))
}

func tariffCards(tariffs []domain.Tariff) []tariffCard {
	cards := make([]tariffCard, 0, len(tariffs))
	for _, tr := range tariffs {
		cards = append(cards, tariffCard{
			Tariff:     tr,
			PriceText:  domain.FormatPrice(tr.Price, tr.Currency),
			ButtonHref: firstNonEmpty(tr.ButtonURL, "#"),
		})
	}
	return cards
}
