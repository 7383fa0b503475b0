package bot

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"homework_bot/internal/config"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (s *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.sent = append(s.sent, c)
	return tgbotapi.Message{}, s.err
}

func TestNotify(t *testing.T) {
	tests := []struct {
		name     string
		chatID   string
		wantID   int64
		wantChan string
	}{
		{name: "numeric", chatID: "42", wantID: 42},
		{name: "negative group", chatID: "-1001234", wantID: -1001234},
		{name: "channel", chatID: "@homework", wantChan: "@homework"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			if err := NewNotifier(sender, tt.chatID).Notify("привет"); err != nil {
				t.Fatalf("Notify error: %v", err)
			}
			if len(sender.sent) != 1 {
				t.Fatalf("sent %d, want 1", len(sender.sent))
			}
			msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
			if !ok {
				t.Fatalf("sent %T, want MessageConfig", sender.sent[0])
			}
			if msg.ChatID != tt.wantID || msg.ChannelUsername != tt.wantChan || msg.Text != "привет" {
				t.Fatalf("unexpected message: chat=%d channel=%q text=%q", msg.ChatID, msg.ChannelUsername, msg.Text)
			}
		})
	}
}

func TestNotifyError(t *testing.T) {
	boom := errors.New("boom")
	n := NewNotifier(&fakeSender{err: boom}, "42")

	if err := n.Notify("x"); !errors.Is(err, boom) {
		t.Fatalf("Notify error = %v, want wrapped boom", err)
	}
}

func TestNotifyInvalidChatID(t *testing.T) {
	sender := &fakeSender{}
	if err := NewNotifier(sender, "chat").Notify("x"); err == nil {
		t.Fatal("expected error for invalid chat id")
	}
	if len(sender.sent) != 0 {
		t.Fatalf("sent %d, want 0", len(sender.sent))
	}
}

func TestNewTelegramOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL + "/bot%s/%s"
	srv.Close()

	n := NewTelegram(&config.Config{
		TelegramToken: "123:abc",
		ChatID:        "1",
		HTTPTimeout:   time.Second,
	}, zerolog.Nop())

	api, ok := n.api.(*tgbotapi.BotAPI)
	if !ok {
		t.Fatalf("api is %T", n.api)
	}
	api.SetAPIEndpoint(endpoint)

	err := n.Notify("x")
	if err == nil || !strings.Contains(err.Error(), "failed to send message") {
		t.Fatalf("Notify error = %v, want send failure", err)
	}
}
