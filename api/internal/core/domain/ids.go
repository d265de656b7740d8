package domain

// BlockID names a top-level section of the home page.
type BlockID string

const (
	BlockHero       BlockID = "hero"
	BlockTrustFacts BlockID = "trustFacts"
	BlockFeatures   BlockID = "features"
	BlockTariffs    BlockID = "tariffs"
	BlockFAQ        BlockID = "faq"
)

// KnownBlocks lists every block the home page knows how to render.
var KnownBlocks = []BlockID{BlockHero, BlockTrustFacts, BlockFeatures, BlockTariffs, BlockFAQ}

// HeaderElementID names a piece of the site header.
type HeaderElementID string

const (
	HeaderLogo  HeaderElementID = "logo"
	HeaderBrand HeaderElementID = "brand"
	HeaderNav   HeaderElementID = "nav"
	HeaderAuth  HeaderElementID = "auth"
)

// HeroElementID names a piece of the hero block.
type HeroElementID string

const (
	HeroLogo     HeroElementID = "logo"
	HeroTitle    HeroElementID = "title"
	HeroSubtitle HeroElementID = "subtitle"
	HeroButton   HeroElementID = "button"
)
