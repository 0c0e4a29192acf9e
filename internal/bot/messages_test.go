package bot

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/askvrtsv/eda/internal/models"
)

var unescapeRe = regexp.MustCompile(`\\(.)`)

func unescape(s string) string {
	return unescapeRe.ReplaceAllString(s, "$1")
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `Салат "Оливье"`, EscapeMarkdown(`Салат "Оливье"`))
	assert.Equal(t, `Картофель фри \(домашний\)`, EscapeMarkdown("Картофель фри (домашний)"))
	assert.Equal(t, `1\.5 яйца\!`, EscapeMarkdown("1.5 яйца!"))

	// Каждый спецсимвол экранируется ровно один раз
	special := "_*[]()~>#+-=|{}.!"
	escaped := EscapeMarkdown(special)
	for _, r := range special {
		assert.Contains(t, escaped, `\`+string(r))
	}
	assert.Equal(t, special, unescape(escaped))
}

func TestEscapeMarkdownRoundTrip(t *testing.T) {
	names := []string{
		"Суп-пюре (грибной)",
		"Паста #1 c сыром",
		"Обычное имя",
	}
	for _, name := range names {
		assert.Equal(t, name, unescape(EscapeMarkdown(name)))
	}
}

func TestFormatMenuEmpty(t *testing.T) {
	assert.Equal(t, "", FormatMenu(map[models.Mealtime][]string{}))
	assert.Equal(t, "", FormatMenu(nil))
	assert.Equal(t, "", FormatMenu(map[models.Mealtime][]string{
		models.MealtimeLunch: {},
	}))
}

func TestFormatMenu(t *testing.T) {
	menu := map[models.Mealtime][]string{
		models.MealtimeDinner:    {"Салат", "Суп"},
		models.MealtimeBreakfast: {"Овсянка"},
	}

	text := FormatMenu(menu)
	assert.Equal(t, "*Завтрак*\nОвсянка\n\n*Ужин*\nСалат\nСуп", text)
}

func TestFormatMenuEscapesRecipeNames(t *testing.T) {
	menu := map[models.Mealtime][]string{
		models.MealtimeBreakfast: {"Сырники (творожные)"},
	}

	text := FormatMenu(menu)
	assert.Equal(t, `*Завтрак*`+"\n"+`Сырники \(творожные\)`, text)
}

func TestFormatDateLabel(t *testing.T) {
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "сегодня", FormatDateLabel(today, today))
	assert.Equal(t, "завтра", FormatDateLabel(today.AddDate(0, 0, 1), today))
	assert.Equal(t, "15.01", FormatDateLabel(today.AddDate(0, 0, 5), today))
	assert.Equal(t, "09.01", FormatDateLabel(today.AddDate(0, 0, -1), today))
}

func TestFormatDateLabelIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)
	date := time.Date(2024, 1, 10, 7, 30, 0, 0, time.UTC)

	assert.Equal(t, "сегодня", FormatDateLabel(date, today))
}

func TestFormatMenuDate(t *testing.T) {
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Меню на сегодня", FormatMenuDate(today, today))
	assert.Equal(t, "Меню на завтра", FormatMenuDate(today.AddDate(0, 0, 1), today))
	assert.Equal(t, "Меню на 20.01", FormatMenuDate(today.AddDate(0, 0, 10), today))
}
