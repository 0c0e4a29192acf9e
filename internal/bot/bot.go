package bot

import (
	"errors"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"

	"github.com/askvrtsv/eda/internal/models"
	"github.com/askvrtsv/eda/pkg/utils"
)

const helpMessage = `Я напоминаю, что готовить сегодня и завтра.

/today - меню на сегодня
/tomorrow - меню на завтра
/list - список покупок на два дня
/help - эта справка`

const (
	menuNotSetMessage      = "Меню не заполнено"
	groceryListEmpty       = "Список покупок пуст"
	unknownCommandMessage  = "Неизвестная команда. Используйте /help"
	internalFailureMessage = "Что-то пошло не так, попробуйте позже"
)

// Sender - транспорт отправки сообщений (реализуется tgbotapi.BotAPI)
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// MenuSource - запросы меню (реализуется service.MenuService)
type MenuSource interface {
	GetMenuAt(date time.Time) (map[models.Mealtime][]string, error)
	GetGroceryList(from, to time.Time) ([]string, error)
}

// BotApp - основная структура бота
type BotApp struct {
	API *tgbotapi.BotAPI

	sender Sender
	chatID int64 // единственный чат, который бот обслуживает
	menus  MenuSource
	loc    *time.Location
	now    func() time.Time
}

// Конструктор бота
func NewBotApp(token string, chatID int64, menus MenuSource, loc *time.Location) (*BotApp, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &BotApp{
		API:    botAPI,
		sender: botAPI,
		chatID: chatID,
		menus:  menus,
		loc:    loc,
		now:    time.Now,
	}, nil
}

// Запуск бота
func (b *BotApp) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.API.GetUpdatesChan(u)
	utils.Log.Info("Bot started")

	for update := range updates {
		if update.Message == nil {
			continue
		}

		// Команды из чужих чатов игнорируем
		if update.Message.Chat.ID != b.chatID {
			continue
		}

		if !update.Message.IsCommand() {
			continue
		}

		// Запросы к базе не должны задерживать цикл обновлений
		go b.handleCommand(update.Message.Command())
	}
}

func (b *BotApp) handleCommand(cmd string) {
	today := b.today()

	switch cmd {
	case "start", "help":
		b.sendText(helpMessage)
	case "today":
		b.replyMenu(today)
	case "tomorrow":
		b.replyMenu(today.AddDate(0, 0, 1))
	case "list":
		b.replyGroceryList(today, today.AddDate(0, 0, 1))
	default:
		b.sendText(unknownCommandMessage)
	}
}

func (b *BotApp) replyMenu(date time.Time) {
	menu, err := b.menus.GetMenuAt(date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			b.sendText(menuNotSetMessage)
			return
		}
		utils.Log.Error("Failed to load menu: " + err.Error())
		b.sendText(internalFailureMessage)
		return
	}

	text := FormatMenu(menu)
	if text == "" {
		b.sendText(menuNotSetMessage)
		return
	}
	b.sendMarkdown(text)
}

func (b *BotApp) replyGroceryList(from, to time.Time) {
	products, err := b.menus.GetGroceryList(from, to)
	if err != nil {
		utils.Log.Error("Failed to load grocery list: " + err.Error())
		b.sendText(internalFailureMessage)
		return
	}

	if len(products) == 0 {
		b.sendText(groceryListEmpty)
		return
	}

	b.sendText(strings.Join(products, "\n"))
}

// Текущая дата в таймзоне аудитории
func (b *BotApp) today() time.Time {
	return models.DateOf(b.now().In(b.loc))
}

// Отправка сообщений
func (b *BotApp) sendText(text string) {
	msg := tgbotapi.NewMessage(b.chatID, text)
	if _, err := b.sender.Send(msg); err != nil {
		utils.Log.Error("Failed to send message: " + err.Error())
	}
}

func (b *BotApp) sendMarkdown(text string) {
	msg := tgbotapi.NewMessage(b.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := b.sender.Send(msg); err != nil {
		utils.Log.Error("Failed to send message: " + err.Error())
	}
}
