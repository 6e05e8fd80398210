package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mehrsalabs/leadbot/internal/entity"
)

func TestMainMenuOptionsOrder(t *testing.T) {
	menu := entity.MainMenuOptions(entity.LangEnglish)

	assert.Equal(t, []string{
		"Luxury Business Consulting 💎",
		"Investment in UAE 🏙",
		"About Mehrsa Sharoleslam",
		"Book Consultation (Calendly)",
		"Contact Us",
	}, menu)
}

func TestMainMenuOptionsLocalized(t *testing.T) {
	for _, lang := range []string{entity.LangEnglish, entity.LangFarsi, entity.LangArabic, entity.LangRussian} {
		assert.Len(t, entity.MainMenuOptions(lang), 5, "language %s", lang)
	}

	assert.Equal(t, "Люксовый бизнес-консалтинг 💎", entity.MainMenuOptions(entity.LangRussian)[0])
}

func TestMainMenuOptionsFallsBackToEnglish(t *testing.T) {
	english := entity.MainMenuOptions(entity.LangEnglish)

	assert.Equal(t, english, entity.MainMenuOptions(""))
	assert.Equal(t, english, entity.MainMenuOptions("xx"))
}

func TestMainMenuOptionsReturnsCopy(t *testing.T) {
	menu := entity.MainMenuOptions(entity.LangEnglish)
	menu[0] = "mutated"

	assert.Equal(t, "Luxury Business Consulting 💎", entity.MainMenuOptions(entity.LangEnglish)[0])
}
