package notifier

import (
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/askvrtsv/eda/internal/models"
)

type fakeSender struct {
	sent     []tgbotapi.MessageConfig
	failFrom int // начиная с какой отправки возвращать ошибку, 0 - не падать
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, errors.New("unexpected chattable")
	}
	f.sent = append(f.sent, msg)
	if f.failFrom > 0 && len(f.sent) >= f.failFrom {
		return tgbotapi.Message{}, errors.New("send failed")
	}
	return tgbotapi.Message{}, nil
}

type fakeMenus struct {
	menu map[models.Mealtime][]string
	err  error
}

func (f *fakeMenus) GetMenuAt(date time.Time) (map[models.Mealtime][]string, error) {
	return f.menu, f.err
}

func newTestNotifier(sender *fakeSender, menus *fakeMenus) *Notifier {
	n := New(sender, menus, 42, time.UTC)
	n.now = func() time.Time {
		return time.Date(2024, 1, 10, 7, 30, 0, 0, time.UTC)
	}
	return n
}

func TestAnnounceSendsHeaderThenBody(t *testing.T) {
	sender := &fakeSender{}
	menus := &fakeMenus{menu: map[models.Mealtime][]string{
		models.MealtimeBreakfast: {"Овсянка"},
	}}

	n := newTestNotifier(sender, menus)
	n.AnnounceToday()

	assert.Len(t, sender.sent, 2)

	header := sender.sent[0]
	assert.Equal(t, int64(42), header.ChatID)
	assert.Equal(t, "Меню на сегодня", header.Text)
	assert.Empty(t, header.ParseMode)

	body := sender.sent[1]
	assert.Equal(t, int64(42), body.ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdownV2, body.ParseMode)
	assert.Contains(t, body.Text, "Овсянка")
}

func TestAnnounceTomorrowHeader(t *testing.T) {
	sender := &fakeSender{}
	menus := &fakeMenus{menu: map[models.Mealtime][]string{
		models.MealtimeDinner: {"Суп"},
	}}

	n := newTestNotifier(sender, menus)
	n.AnnounceTomorrow()

	assert.Len(t, sender.sent, 2)
	assert.Equal(t, "Меню на завтра", sender.sent[0].Text)
}

func TestAnnounceSkipsMissingMenu(t *testing.T) {
	sender := &fakeSender{}
	menus := &fakeMenus{err: gorm.ErrRecordNotFound}

	n := newTestNotifier(sender, menus)
	n.AnnounceToday()

	assert.Empty(t, sender.sent)
}

func TestAnnounceSkipsEmptyMenu(t *testing.T) {
	sender := &fakeSender{}
	menus := &fakeMenus{menu: map[models.Mealtime][]string{}}

	n := newTestNotifier(sender, menus)
	n.AnnounceToday()

	assert.Empty(t, sender.sent)
}

func TestAnnounceSkipsOnQueryError(t *testing.T) {
	sender := &fakeSender{}
	menus := &fakeMenus{err: errors.New("db down")}

	n := newTestNotifier(sender, menus)
	n.AnnounceToday()

	assert.Empty(t, sender.sent)
}

func TestAnnounceHeaderFailureAbortsBody(t *testing.T) {
	sender := &fakeSender{failFrom: 1}
	menus := &fakeMenus{menu: map[models.Mealtime][]string{
		models.MealtimeLunch: {"Борщ"},
	}}

	n := newTestNotifier(sender, menus)
	n.AnnounceToday()

	// Заголовок не ушел, тело не отправляем
	assert.Len(t, sender.sent, 1)
}

func TestAnnounceBodyFailureNotCompensated(t *testing.T) {
	sender := &fakeSender{failFrom: 2}
	menus := &fakeMenus{menu: map[models.Mealtime][]string{
		models.MealtimeLunch: {"Борщ"},
	}}

	n := newTestNotifier(sender, menus)
	n.AnnounceToday()

	// Обе отправки состоялись, отзыва заголовка нет
	assert.Len(t, sender.sent, 2)
}
