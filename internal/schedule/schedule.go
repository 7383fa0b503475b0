package schedule

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// Waiter блокирует цикл опроса до следующего запуска.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Interval ждёт фиксированный интервал между циклами.
type Interval struct {
	schedule cron.Schedule
	now      func() time.Time
	timer    func(d time.Duration) (<-chan time.Time, func() bool)
}

// Every округляет d до секунды, минимум одна секунда.
func Every(d time.Duration) *Interval {
	return &Interval{
		schedule: cron.Every(d),
		now:      time.Now,
		timer:    newTimer,
	}
}

func newTimer(d time.Duration) (<-chan time.Time, func() bool) {
	t := time.NewTimer(d)
	return t.C, t.Stop
}

// Next возвращает время следующего запуска относительно t.
func (i *Interval) Next(t time.Time) time.Time {
	return i.schedule.Next(t)
}

func (i *Interval) Wait(ctx context.Context) error {
	now := i.now()
	fired, stop := i.timer(i.Next(now).Sub(now))
	defer stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-fired:
		return nil
	}
}
