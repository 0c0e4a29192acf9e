package bot

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/askvrtsv/eda/internal/models"
)

// Спецсимволы MarkdownV2, которые Telegram требует экранировать
var markdownRe = regexp.MustCompile(`[_*\[\]()~>#+\-=|{}.!]`)

// EscapeMarkdown экранирует спецсимволы MarkdownV2 в пользовательском
// тексте. Служебная разметка самого сообщения не экранируется.
func EscapeMarkdown(s string) string {
	return markdownRe.ReplaceAllString(s, `\$0`)
}

// FormatMenu собирает текст меню: по секции на прием пищи в порядке
// завтрак/обед/ужин, приемы без блюд пропускаются. Пустое меню - пустая
// строка, такое сообщение отправлять не нужно.
func FormatMenu(menu map[models.Mealtime][]string) string {
	var sections []string
	for _, mealtime := range models.Mealtimes {
		recipes := menu[mealtime]
		if len(recipes) == 0 {
			continue
		}
		lines := make([]string, 0, len(recipes)+1)
		lines = append(lines, "*"+capitalize(mealtime.Label())+"*")
		for _, name := range recipes {
			lines = append(lines, EscapeMarkdown(name))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n")
}

// FormatDateLabel подписывает дату относительно текущего дня:
// "сегодня", "завтра" или ДД.ММ.
func FormatDateLabel(date, today time.Time) string {
	date = models.DateOf(date)
	today = models.DateOf(today)

	switch {
	case date.Equal(today):
		return "сегодня"
	case date.Equal(today.AddDate(0, 0, 1)):
		return "завтра"
	}
	return date.Format("02.01")
}

// FormatMenuDate - заголовок анонса меню
func FormatMenuDate(date, today time.Time) string {
	return "Меню на " + FormatDateLabel(date, today)
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
