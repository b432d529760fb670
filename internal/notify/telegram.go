package notify

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"plate-sentry/internal/domain/entity"
	"plate-sentry/internal/domain/port"
)

// TelegramChannel отправляет уведомления в Telegram-чат
type TelegramChannel struct {
	token  string
	chatID int64

	mu  sync.Mutex
	bot *tgbotapi.BotAPI
}

// NewTelegramChannel создаёт канал Telegram. Пустой токен или
// идентификатор чата делают канал ненастроенным, это не ошибка.
func NewTelegramChannel(token, chatID string) *TelegramChannel {
	id, _ := strconv.ParseInt(chatID, 10, 64)
	return &TelegramChannel{
		token:  token,
		chatID: id,
	}
}

// Name возвращает имя канала для логов
func (c *TelegramChannel) Name() string {
	return "telegram"
}

// Configured сообщает, заданы ли токен и идентификатор чата
func (c *TelegramChannel) Configured() bool {
	return c.token != "" && c.chatID != 0
}

// Send отправляет фото с подписью, либо текстовое сообщение
// с HTML-разметкой, если снимка нет
func (c *TelegramChannel) Send(ctx context.Context, message, imagePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	bot, err := c.api()
	if err != nil {
		return fmt.Errorf("%w: telegram: %v", entity.ErrAPI, err)
	}

	if imagePath != "" {
		photo := tgbotapi.NewPhoto(c.chatID, tgbotapi.FilePath(imagePath))
		photo.Caption = message
		if _, err := bot.Send(photo); err != nil {
			return fmt.Errorf("%w: telegram: %v", entity.ErrAPI, err)
		}
		return nil
	}

	msg := tgbotapi.NewMessage(c.chatID, message)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := bot.Send(msg); err != nil {
		return fmt.Errorf("%w: telegram: %v", entity.ErrAPI, err)
	}

	return nil
}

// api лениво создаёт клиент Telegram при первой отправке
func (c *TelegramChannel) api() (*tgbotapi.BotAPI, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bot != nil {
		return c.bot, nil
	}

	bot, err := tgbotapi.NewBotAPI(c.token)
	if err != nil {
		return nil, err
	}

	c.bot = bot
	return bot, nil
}

// Проверка реализации интерфейса
var _ port.AlertChannel = (*TelegramChannel)(nil)
