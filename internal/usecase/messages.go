package usecase

import (
	"fmt"

	"github.com/mehrsalabs/leadbot/internal/entity"
)

const (
	ConsultantName = "Mehrsa Sharoleslam"
	Location       = "Dubai, United Arab Emirates"
)

var consultantTitle = map[string]string{
	entity.LangEnglish: "Luxury Business Advisor & Investment Consultant",
	entity.LangFarsi:   "مشاور کسب‌وکارهای لوکس و سرمایه‌گذاری",
	entity.LangArabic:  "مستشارة الأعمال الفاخرة والاستثمار",
	entity.LangRussian: "Советник по люксовому бизнесу и инвестициям",
}

// messages holds every user-visible string keyed by message id and language.
// Lookups go through message() so the English fallback is uniform instead of
// per call site.
var messages = map[string]map[string]string{
	"select_language": {
		entity.LangEnglish: "Please select a language:",
	},
	"ask_name": {
		entity.LangEnglish: "Thank you. Please enter your Full Name:",
		entity.LangFarsi:   "سپاسگزارم. لطفاً نام و نام خانوادگی خود را وارد کنید:",
		entity.LangArabic:  "شكراً لك. الرجاء إدخال اسمك الكامل:",
		entity.LangRussian: "Спасибо. Пожалуйста, введите ваше полное имя:",
	},
	"ask_phone": {
		entity.LangEnglish: "Pleasure to meet you, %s. To provide you with premium support, please share your WhatsApp number:",
		entity.LangFarsi:   "خوشبختم %s عزیز. برای دریافت خدمات ویژه، لطفاً شماره واتساپ خود را ارسال کنید:",
		entity.LangArabic:  "تشرفنا %s. لتقديم دعم متميز، يرجى مشاركة رقم الواتساب:",
		entity.LangRussian: "Приятно познакомиться, %s. Для предоставления премиум-поддержки укажите ваш номер WhatsApp:",
	},
	"registration_complete": {
		entity.LangEnglish: "Registration Complete. How can we assist you in scaling your business globally?",
		entity.LangFarsi:   "ثبت نام تکمیل شد. چگونه می‌توانیم در جهانی‌سازی کسب‌وکارتان به شما کمک کنیم؟",
		entity.LangArabic:  "اكتمل التسجيل. كيف يمكننا مساعدتك في توسيع نطاق عملك عالمياً؟",
		entity.LangRussian: "Регистрация завершена. Как мы можем помочь вам масштабировать бизнес?",
	},
	"menu_luxury": {
		entity.LangEnglish: "💎 <b>Luxury Business Consulting:</b>\n\n" +
			"We specialize in helping brands enter the <b>Premium & Luxury Markets</b>.\n" +
			"✅ Global Brand Positioning\n" +
			"✅ High-Ticket Sales Strategy\n" +
			"✅ Business Expansion to GCC\n\n" +
			"<i>Let's build your world-class brand.</i>",
		entity.LangFarsi: "💎 <b>مشاوره کسب‌وکارهای لوکس:</b>\n\n" +
			"تخصص ما کمک به ورود برندها به <b>بازارهای پریمیوم و لوکس</b> است.\n" +
			"✅ جایگاه‌سازی برند در سطح جهانی\n" +
			"✅ استراتژی فروش High-Ticket\n" +
			"✅ توسعه کسب‌وکار در کشورهای حوزه خلیج فارس (GCC)\n\n" +
			"<i>بیایید برند جهانی شما را بسازیم.</i>",
		entity.LangArabic: "💎 <b>استشارات الأعمال الفاخرة:</b>\n\n" +
			"نحن متخصصون في مساعدة العلامات التجارية على دخول <b>الأسواق الفاخرة</b>.\n" +
			"✅ تحديد موقع العلامة التجارية عالمياً\n" +
			"✅ استراتيجية المبيعات عالية القيمة\n" +
			"✅ توسيع الأعمال في دول مجلس التعاون الخليجي",
		entity.LangRussian: "💎 <b>Люксовый бизнес-консалтинг:</b>\n\n" +
			"Мы помогаем брендам выйти на <b>рынки премиум-класса</b>.\n" +
			"✅ Глобальное позиционирование бренда\n" +
			"✅ Стратегия продаж с высоким чеком\n" +
			"✅ Расширение бизнеса в страны Персидского залива",
	},
	"menu_investment": {
		entity.LangEnglish: "🏙 <b>Investment in Dubai & UAE:</b>\n\nGuidance on profitable investment opportunities in Dubai's thriving market.\n- Real Estate\n- Business Setup\n- Golden Visa Services",
		entity.LangFarsi:   "🏙 <b>سرمایه‌گذاری در دبی و امارات:</b>\n\nمشاوره تخصصی برای فرصت‌های سرمایه‌گذاری سودآور در بازار دبی.\n- املاک و مستغلات\n- ثبت شرکت و راه‌اندازی بیزینس\n- خدمات ویزای طلایی",
		entity.LangArabic:  "🏙 <b>الاستثمار في دبي والإمارات:</b>\n\nتوجيه حول فرص الاستثمار المربحة في سوق دبي المزدهر.\n- العقارات\n- تأسيس الشركات\n- خدمات الإقامة الذهبية",
		entity.LangRussian: "🏙 <b>Инвестиции в Дубай и ОАЭ:</b>\n\nКонсультации по выгодным инвестиционным возможностям.\n- Недвижимость\n- Регистрация бизнеса\n- Золотая виза",
	},
	"menu_booking": {
		entity.LangEnglish: "📅 <b>Book a VIP Consultation:</b>\n\nSelect a time that works for you directly via Calendly:\n👉 <a href='%s'>Click here to Book Appointment</a>",
		entity.LangFarsi:   "📅 <b>رزرو وقت مشاوره اختصاصی:</b>\n\nبرای تنظیم زمان جلسه آنلاین، از لینک زیر استفاده کنید:\n👉 <a href='%s'>کلیک برای رزرو در Calendly</a>",
		entity.LangArabic:  "📅 <b>حجز استشارة VIP:</b>\n\nاختر الوقت المناسب لك مباشرة عبر Calendly:\n👉 <a href='%s'>اضغط هنا لحجز موعد</a>",
		entity.LangRussian: "📅 <b>Забронировать VIP-консультацию:</b>\n\nВыберите удобное время через Calendly:\n👉 <a href='%s'>Нажмите здесь для записи</a>",
	},
	"menu_contact": {
		entity.LangEnglish: "📞 <b>Contact Us:</b>\n\nWhatsApp: +971565585649\nEmail: mehrsasharoleslam@gmail.com\n\nOur team is available 24/7 to assist global clients.",
		entity.LangFarsi:   "📞 <b>ارتباط با ما:</b>\n\nواتساپ: 971565585649+\nایمیل: mehrsasharoleslam@gmail.com\n\nتیم ما ۲۴ ساعته آماده پاسخگویی به مشتریان بین‌المللی است.",
		entity.LangArabic:  "📞 <b>اتصل بنا:</b>\n\nواتساب: 971565585649+\nالبريد الإلكتروني: mehrsasharoleslam@gmail.com",
		entity.LangRussian: "📞 <b>Контакты:</b>\n\nWhatsApp: +971565585649\nEmail: mehrsasharoleslam@gmail.com",
	},
	"menu_fallback": {
		entity.LangEnglish: "Please select an option from the menu.",
		entity.LangFarsi:   "لطفاً یکی از گزینه‌های منو را انتخاب کنید.",
		entity.LangArabic:  "الرجاء اختيار خيار من القائمة.",
		entity.LangRussian: "Пожалуйста, выберите опцию из меню.",
	},
	"restart_hint": {
		entity.LangEnglish: "Type /start to restart.",
	},
}

// message resolves a localized string with a single fallback chain:
// requested language, then English. Total over any key/language pair.
func message(key, language string) string {
	table, ok := messages[key]
	if !ok {
		return ""
	}
	if text, ok := table[language]; ok {
		return text
	}
	return table[entity.LangEnglish]
}

func welcomeMessage() string {
	return fmt.Sprintf(
		"Welcome to <b>%s</b>'s Official Bot 🌟\n"+
			"Your Gateway to Luxury Business & Investment in Dubai.\n\n"+
			"Please select your language / لطفاً زبان خود را انتخاب کنید:",
		ConsultantName,
	)
}

func languageSelector() []string {
	return []string{"English (EN)", "فارسی (FA)", "العربية (AR)", "Русский (RU)"}
}

func aboutMessage(language string, links Links) string {
	title, ok := consultantTitle[language]
	if !ok {
		title = consultantTitle[entity.LangEnglish]
	}
	return fmt.Sprintf(
		"👤 <b>%s</b>\n"+
			"<i>%s</i>\n\n"+
			"📍 <b>Base:</b> %s\n\n"+
			"🌐 <b>Website:</b> <a href='%s'>mehrsasharoleslam.com</a>\n"+
			"📸 <b>Instagram:</b> <a href='%s'>@mehrsasharoleslam</a>\n"+
			"🎥 <b>YouTube:</b> <a href='%s'>Channel</a>\n\n"+
			"Helping you step into your power and build a global business.",
		ConsultantName, title, Location, links.Website, links.Instagram, links.YouTube,
	)
}
