package bot

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"homework_bot/internal/homework"
	"homework_bot/internal/schedule"
)

const failurePrefix = "Сбой в работе программы: "

// Fetcher получает ответ API статусов работ.
type Fetcher interface {
	Fetch(ctx context.Context, since int64) (any, error)
}

// Messenger отправляет текст пользователю.
type Messenger interface {
	Notify(text string) error
}

type Bot struct {
	api      Fetcher
	notifier Messenger
	waiter   schedule.Waiter
	log      zerolog.Logger
	now      func() time.Time
	state    State
}

func New(api Fetcher, notifier Messenger, waiter schedule.Waiter, log zerolog.Logger) *Bot {
	return &Bot{
		api:      api,
		notifier: notifier,
		waiter:   waiter,
		log:      log,
		now:      time.Now,
	}
}

// Run опрашивает API до отмены ctx. Ошибки цикла не прерывают работу.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info().Msg("Бот запущен")
	for {
		b.cycle(ctx)

		if err := b.waiter.Wait(ctx); err != nil {
			b.log.Info().Err(err).Msg("Бот остановлен")
			return err
		}
	}
}

// State возвращает копию состояния дедупликации.
func (b *Bot) State() State {
	return b.state
}

func (b *Bot) cycle(ctx context.Context) {
	err := b.poll(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}

	text := failurePrefix + err.Error()
	if text != b.state.LastError {
		if sendErr := b.notifier.Notify(text); sendErr != nil {
			b.log.Error().Err(sendErr).Msg("Не удалось отправить сообщение об ошибке")
		} else {
			b.state.LastError = text
		}
	}
	b.log.Error().Err(err).Msg(text)
}

func (b *Bot) poll(ctx context.Context) error {
	now := b.now().Unix()
	response, err := b.api.Fetch(ctx, now)
	if err != nil {
		return err
	}
	b.log.Debug().Interface("response", response).Int64("timestamp", now).Msg("Ответ API")

	works, err := homework.Extract(response)
	if err != nil {
		return err
	}
	if len(works) == 0 {
		b.log.Info().Msg("Статус работы не изменился")
		return nil
	}

	// Рассматривается только первая, самая свежая работа.
	work := works[0]
	b.log.Debug().Interface("homework", work).Int("total", len(works)).Msg("Последняя работа")

	message, err := homework.FormatStatusChange(work)
	if err != nil {
		return err
	}
	b.log.Info().Msg(message)

	if message == b.state.LastMessage {
		b.log.Info().Msg("Статус работы не изменился")
		return nil
	}
	if err := b.notifier.Notify(message); err != nil {
		return err
	}
	b.state.LastMessage = message
	b.log.Info().Msg("Сообщение отправлено в телеграмм")
	return nil
}
