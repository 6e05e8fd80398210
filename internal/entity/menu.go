package entity

// Main menu labels, fixed order: Luxury Consulting, Investment, About,
// Booking, Contact. The label text is what the user taps and what the
// dialog engine matches keywords against.

var mainMenus = map[string][]string{
	LangEnglish: {
		"Luxury Business Consulting 💎",
		"Investment in UAE 🏙",
		"About Mehrsa Sharoleslam",
		"Book Consultation (Calendly)",
		"Contact Us",
	},
	LangFarsi: {
		"مشاوره بیزینس لوکس 💎",
		"سرمایه‌گذاری در امارات 🏙",
		"درباره مهرسا شرع‌الاسلام",
		"رزرو وقت مشاوره (Calendly)",
		"ارتباط با ما",
	},
	LangArabic: {
		"استشارات الأعمال الفاخرة 💎",
		"الاستثمار في الإمارات 🏙",
		"عن مهرسا شرع الإسلام",
		"حجز موعد (Calendly)",
		"اتصل بنا",
	},
	LangRussian: {
		"Люксовый бизнес-консалтинг 💎",
		"Инвестиции в ОАЭ 🏙",
		"О Mehrsa Sharoleslam",
		"Забронировать (Calendly)",
		"Контакты",
	},
}

// MainMenuOptions returns the localized menu labels. Unknown or unset
// languages fall back to English. Always returns a fresh slice.
func MainMenuOptions(language string) []string {
	menu, ok := mainMenus[language]
	if !ok {
		menu = mainMenus[LangEnglish]
	}
	out := make([]string, len(menu))
	copy(out, menu)
	return out
}
