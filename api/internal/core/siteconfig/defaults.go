package siteconfig

import "github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"

// Defaults builds a fresh copy of the built-in configuration tree.
// Every call allocates new slices, so callers may mutate the result freely.
func Defaults() domain.SiteInfo {
	return domain.SiteInfo{
		Contacts:    domain.Contacts{Email: "support@afina.vip", Telegram: "@afinavpn"},
		AuthURL:     "",
		RegisterURL: "",
		ConnectURL:  "#tariffs",
		SiteURL:     "https://afina.vip",
		LogoURL:     "/logo.png",
		Brand:       domain.Brand{Name: "AFINA", Tagline: "VPN"},
		SEO: domain.SEO{
			Title:       "AFINA VPN — Защищённое подключение | afina.vip",
			Description: "VPN-сервис на протоколе VLESS. Стабильность, конфиденциальность, надёжность.",
			Keywords:    "VPN, VLESS, защита, конфиденциальность",
			OGImage:     "/logo.png",
		},
		Theme: DefaultTheme(),
		Header: domain.Header{
			ShowLogo:  true,
			ShowBrand: true,
			ElementOrder: []domain.HeaderElementID{
				domain.HeaderLogo, domain.HeaderBrand, domain.HeaderNav, domain.HeaderAuth,
			},
			NavItems: []domain.NavItem{
				{Label: "Тарифы", Href: "/#tariffs"},
				{Label: "Инструкции", Href: "/instructions"},
				{Label: "Оферта", Href: "/offerta"},
				{Label: "Соглашение", Href: "/agreement"},
				{Label: "Контакты", Href: "/contacts"},
			},
		},
		Design: domain.Design{
			HeroTitleSize:    "text-5xl md:text-6xl lg:text-7xl",
			HeroSubtitleSize: "text-lg md:text-xl",
			SectionPadding:   "py-16 md:py-20",
			CardRadius:       "rounded-xl",
			ButtonRadius:     "rounded-full",
			HeroElementOrder: []domain.HeroElementID{
				domain.HeroLogo, domain.HeroTitle, domain.HeroSubtitle, domain.HeroButton,
			},
		},
		Hero: domain.Hero{
			Title:      "AFINA",
			Subtitle:   "Защищённое подключение на протоколе VLESS. Стабильность, конфиденциальность и надёжность для требовательных пользователей.",
			ButtonText: "Подключиться",
		},
		Blocks:     domain.Blocks{Hero: true, TrustFacts: true, Features: true, Tariffs: true, FAQ: true},
		BlockOrder: append([]domain.BlockID(nil), domain.KnownBlocks...),
		FeaturesBlock: domain.FeaturesBlock{
			Title: "Почему AFINA VPN",
			Items: []domain.FeatureItem{
				{Title: "Протокол VLESS", Description: "Современный протокол для стабильного и быстрого подключения с повышенным уровнем шифрования."},
				{Title: "Скорость и стабильность", Description: "Оптимизированная инфраструктура обеспечивает высокую скорость и бесперебойную работу."},
				{Title: "Конфиденциальность", Description: "Строгая политика в отношении данных. Ваше подключение — ваше дело."},
			},
		},
		TariffsBlock: domain.TariffsBlock{
			Title:    "Тарифные планы",
			Subtitle: "Выберите подходящий план. Все тарифы включают неограниченный трафик и поддержку.",
		},
		Footer: domain.Footer{Copyright: "AFINA VPN. Протокол VLESS. Защищённое подключение."},
		FAQ: []domain.FAQItem{
			{Question: "Какой протокол используется?", Answer: "AFINA VPN работает на протоколе VLESS — современном решении с высокой скоростью и стабильностью."},
			{Question: "Сохраняются ли логи активности?", Answer: "Нет. Мы не ведём логи активности пользователей. Ваше подключение остаётся конфиденциальным."},
			{Question: "Как получить доступ после оплаты?", Answer: "Детали подключения отправляются на указанные контактные данные в течение суток после подтверждения оплаты."},
		},
		TrustFacts: []domain.TrustFact{
			{Title: "Протокол", Value: "VLESS"},
			{Title: "Логи", Value: "Не ведутся"},
			{Title: "Трафик", Value: "Безлимит"},
			{Title: "Поддержка", Value: "24/7"},
		},
		Instructions: defaultInstructions,
		Offerta:      defaultOfferta,
		Agreement:    defaultAgreement,
	}
}

// DefaultTheme is the stock dark palette.
func DefaultTheme() domain.Theme {
	return domain.Theme{
		PrimaryColor: "#14b8a6",
		AccentColor:  "#f59e0b",
		BgColor:      "#0f172a",
		TextColor:    "#e2e8f0",
		CardBg:       "#1e293b",
		HeadingColor: "#fbbf24",
		HeaderBg:     "rgba(2,6,23,0.98)",
	}
}

// DefaultTariffs is served until the first tariff is saved.
func DefaultTariffs() []domain.Tariff {
	return []domain.Tariff{
		{ID: "1", Name: "Базовый", Price: 299, Currency: "RUB", Period: "1 месяц",
			Features: []string{"VLESS протокол", "Неограниченный трафик", "Поддержка 24/7"}, SortOrder: 1},
		{ID: "2", Name: "Стандарт", Price: 749, Currency: "RUB", Period: "3 месяца",
			Features: []string{"VLESS протокол", "Неограниченный трафик", "Приоритетная поддержка", "Резервные серверы"},
			Popular:  true, SortOrder: 2},
		{ID: "3", Name: "Премиум", Price: 1299, Currency: "RUB", Period: "12 месяцев",
			Features: []string{"VLESS протокол", "Неограниченный трафик", "Приоритетная поддержка", "Резервные серверы", "Максимальная скорость"},
			SortOrder: 3},
	}
}

const defaultInstructions = `# Как подключиться

## 1. Выберите тариф
Перейдите в раздел «Тарифы» и выберите подходящий план.

## 2. Оплатите подписку
Оплатите выбранный тариф удобным способом.

## 3. Получите данные
После подтверждения оплаты на вашу почту или в Telegram будут отправлены данные для подключения.

## 4. Настройте клиент
Установите поддерживаемый клиент (например, v2rayN, Nekoray) и добавьте конфигурацию согласно инструкции.

## 5. Подключитесь
Запустите VPN и пользуйтесь защищённым подключением.`

const defaultOfferta = `ПУБЛИЧНАЯ ОФЕРТА

1. ОБЩИЕ ПОЛОЖЕНИЯ
Настоящий документ является официальным предложением (публичной офертой) AFINA VPN (далее — Исполнитель) заключить договор оказания услуг на условиях, изложенных ниже.

2. ПРЕДМЕТ ДОГОВОРА
Исполнитель обязуется оказать Заказчику услуги по предоставлению доступа к виртуальной частной сети (VPN) на базе протокола VLESS, а Заказчик обязуется оплатить указанные услуги.

3. ПОРЯДОК ОКАЗАНИЯ УСЛУГ
Услуги предоставляются дистанционно. Доступ к сервису обеспечивается после подтверждения оплаты. Детали подключения направляются на контактные данные Заказчика.

4. СТОИМОСТЬ И ПОРЯДОК ОПЛАТЫ
Стоимость услуг указана на сайте. Оплата производится в соответствии с выбранным тарифным планом. Датой оказания услуг считается дата активации доступа.

5. СРОК ДЕЙСТВИЯ
Договор вступает в силу с момента оплаты и действует в течение срока выбранного тарифного плана.

6. КОНФИДЕНЦИАЛЬНОСТЬ
Исполнитель обеспечивает защиту персональных данных Заказчика в соответствии с действующим законодательством.`

const defaultAgreement = `СОГЛАШЕНИЕ О КОНФИДЕНЦИАЛЬНОСТИ И ИСПОЛЬЗОВАНИИ СЕРВИСА

1. ПРИНИМАНИЕ УСЛОВИЙ
Используя сервис AFINA VPN, вы подтверждаете согласие с настоящим Соглашением.

2. УСЛУГИ
AFINA VPN предоставляет услуги виртуальной частной сети (VPN) с использованием протокола VLESS. Сервис предназначен для обеспечения защищённого и стабильного подключения к сети.

3. ПРАВИЛЬНОЕ ИСПОЛЬЗОВАНИЕ
Заказчик обязуется использовать сервис исключительно в законных целях. Запрещается использование сервиса для деятельности, нарушающей законодательство.

4. ЗАЩИТА ДАННЫХ
Мы применяем современные методы шифрования и не храним логи активности пользователей. Ваши данные защищены.

5. КОНТАКТЫ
По всем вопросам: support@afina.vip`
