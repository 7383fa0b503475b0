package bot

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"homework_bot/internal/config"
)

// Sender - часть tgbotapi.BotAPI, нужная для отправки сообщений.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier отправляет текстовые сообщения в один чат. Дубликаты не отсекает.
type Notifier struct {
	api    Sender
	chatID string
}

func NewNotifier(api Sender, chatID string) *Notifier {
	return &Notifier{api: api, chatID: chatID}
}

// NewTelegram собирает клиент Telegram без запроса getMe: сеть при запуске
// не нужна, ошибки отправки обрабатывает цикл опроса.
func NewTelegram(cfg *config.Config, log zerolog.Logger) *Notifier {
	api := &tgbotapi.BotAPI{
		Token:  cfg.TelegramToken,
		Debug:  cfg.Debug,
		Client: &http.Client{Timeout: cfg.HTTPTimeout},
		Buffer: 100,
	}
	api.SetAPIEndpoint(tgbotapi.APIEndpoint)
	log.Info().Str("chat_id", cfg.ChatID).Msg("Клиент Telegram создан")

	return NewNotifier(api, cfg.ChatID)
}

func (n *Notifier) Notify(text string) error {
	msg, err := n.message(text)
	if err != nil {
		return err
	}
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func (n *Notifier) message(text string) (tgbotapi.MessageConfig, error) {
	if strings.HasPrefix(n.chatID, "@") {
		return tgbotapi.NewMessageToChannel(n.chatID, text), nil
	}
	id, err := strconv.ParseInt(n.chatID, 10, 64)
	if err != nil {
		return tgbotapi.MessageConfig{}, fmt.Errorf("invalid chat id %q: %w", n.chatID, err)
	}
	return tgbotapi.NewMessage(id, text), nil
}
