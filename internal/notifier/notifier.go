// Package notifier отправляет меню в чат по расписанию:
// утром - меню на сегодня, вечером - меню на завтра.
package notifier

import (
	"errors"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"

	"github.com/askvrtsv/eda/internal/bot"
	"github.com/askvrtsv/eda/internal/models"
	"github.com/askvrtsv/eda/pkg/utils"
)

// Sender - транспорт отправки сообщений (реализуется tgbotapi.BotAPI)
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// MenuGetter - источник меню (реализуется service.MenuService)
type MenuGetter interface {
	GetMenuAt(date time.Time) (map[models.Mealtime][]string, error)
}

// Notifier анонсирует меню в один фиксированный чат
type Notifier struct {
	sender Sender
	menus  MenuGetter
	chatID int64
	loc    *time.Location
	now    func() time.Time
}

func New(sender Sender, menus MenuGetter, chatID int64, loc *time.Location) *Notifier {
	return &Notifier{
		sender: sender,
		menus:  menus,
		chatID: chatID,
		loc:    loc,
		now:    time.Now,
	}
}

// AnnounceToday отправляет меню на сегодня
func (n *Notifier) AnnounceToday() {
	n.Announce(n.today())
}

// AnnounceTomorrow отправляет меню на завтра
func (n *Notifier) AnnounceTomorrow() {
	n.Announce(n.today().AddDate(0, 0, 1))
}

// Announce отправляет меню на дату двумя сообщениями: заголовок с датой,
// затем само меню с разметкой. Отсутствующее или пустое меню - штатная
// ситуация, ничего не отправляем. Ошибки транспорта логируются, но не
// ретраятся: первое отправленное сообщение не отзывается.
func (n *Notifier) Announce(date time.Time) {
	menu, err := n.menus.GetMenuAt(date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Log.Info("No menu at " + models.DateOf(date).Format("2006-01-02"))
			return
		}
		utils.Log.Error("Failed to load menu: " + err.Error())
		return
	}

	text := bot.FormatMenu(menu)
	if text == "" {
		utils.Log.Info("Menu at " + models.DateOf(date).Format("2006-01-02") + " is empty")
		return
	}

	header := tgbotapi.NewMessage(n.chatID, bot.FormatMenuDate(date, n.today()))
	if _, err := n.sender.Send(header); err != nil {
		utils.Log.Error("Failed to send menu date: " + err.Error())
		return
	}

	body := tgbotapi.NewMessage(n.chatID, text)
	body.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := n.sender.Send(body); err != nil {
		utils.Log.Error("Failed to send menu: " + err.Error())
	}
}

func (n *Notifier) today() time.Time {
	return models.DateOf(n.now().In(n.loc))
}
